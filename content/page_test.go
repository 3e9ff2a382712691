package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrontmatterMeta(t *testing.T) {
	tests := []struct {
		name    string
		fm      Frontmatter
		want    Meta
		wantErr bool
	}{
		{
			name: "avatar url kept",
			fm:   Frontmatter{Author: " Ann ", Avatar: "https://img.example/a.png"},
			want: Meta{Author: "Ann", Avatar: "https://img.example/a.png"},
		},
		{
			name: "avatar handle becomes github avatar",
			fm:   Frontmatter{Avatar: "@stvlynn"},
			want: Meta{Avatar: "https://github.com/stvlynn.png"},
		},
		{
			name: "github username used when avatar is missing",
			fm:   Frontmatter{GithubUsername: "stvlynn", XUsername: "@Stv_Lynn"},
			want: Meta{Avatar: "https://github.com/stvlynn.png", GithubUsername: "stvlynn", XUsername: "Stv_Lynn"},
		},
		{
			name: "site relative avatar kept",
			fm:   Frontmatter{Avatar: "/images/me.png"},
			want: Meta{Avatar: "/images/me.png"},
		},
		{
			name: "valid demo url",
			fm:   Frontmatter{DemoURL: "https://demo.hellodify.com/chat"},
			want: Meta{DemoURL: "https://demo.hellodify.com/chat"},
		},
		{
			name:    "relative demo url dropped",
			fm:      Frontmatter{Author: "Ann", DemoURL: "/demo"},
			want:    Meta{Author: "Ann"},
			wantErr: true,
		},
		{
			name:    "non http demo url dropped",
			fm:      Frontmatter{DemoURL: "javascript:alert(1)"},
			want:    Meta{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fm.Meta()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFilePath(t *testing.T) {
	require.Equal(t, "guides/a.mdx", File{Dir: "guides", Name: "a", Ext: ".mdx"}.Path())
	require.Equal(t, "intro.zh.mdx", File{Name: "intro.zh", Ext: ".mdx"}.Path())
	require.Equal(t, "guides/a", File{Dir: "guides", Name: "a"}.Path())
}

func TestDocsURL(t *testing.T) {
	require.Equal(t, "/en/docs", DocsURL("en", nil))
	require.Equal(t, "/zh/docs/guides/a", DocsURL("zh", []string{"guides", "a"}))
}
