package content

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/ip812/helloadp/logger"
)

func doc(fm string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte("---\n" + fm + "\n---\n# Heading\n\nBody text.\n")}
}

func newTestLoader(fsys fstest.MapFS) *Loader {
	return NewLoader(fsys, "en", []string{"en", "zh", "ja"}, logger.NewNop())
}

func TestLoader_AssignsLanguageSlugsAndURL(t *testing.T) {
	fsys := fstest.MapFS{
		"index.mdx":           doc("title: Welcome"),
		"intro.mdx":           doc("title: Intro"),
		"intro.zh.mdx":        doc("title: 简介"),
		"guides/index.mdx":    doc("title: Guides"),
		"guides/a.mdx":        doc("title: A\nauthor: Ann"),
		"guides/deep/b.ja.md": doc("title: B"),
		"guides/meta.json":    &fstest.MapFile{Data: []byte(`{"title":"ignored"}`)},
		".drafts/x.mdx":       doc("title: Hidden"),
		"notes/v1.2.mdx":      doc("title: Version notes"),
	}

	idx, err := newTestLoader(fsys).Load()
	require.NoError(t, err)

	intro, ok := idx.Lookup("en", []string{"intro"})
	require.True(t, ok)
	require.Equal(t, "/en/docs/intro", intro.URL)
	require.Equal(t, File{Name: "intro", Ext: ".mdx"}, intro.File)

	zh, ok := idx.Lookup("zh", []string{"intro"})
	require.True(t, ok)
	require.Equal(t, "简介", zh.Title)
	require.Equal(t, "/zh/docs/intro", zh.URL)
	require.Equal(t, "intro.zh.mdx", zh.File.Path())

	root, ok := idx.Lookup("en", nil)
	require.True(t, ok)
	require.Equal(t, "/en/docs", root.URL)

	guides, ok := idx.Lookup("en", []string{"guides"})
	require.True(t, ok)
	require.Equal(t, "Guides", guides.Title)

	a, ok := idx.LookupURL("/en/docs/guides/a")
	require.True(t, ok)
	require.Equal(t, "Ann", a.Meta.Author)
	require.Equal(t, "guides/a.mdx", a.File.Path())
	require.Contains(t, string(a.Body), "# Heading")

	b, ok := idx.Lookup("ja", []string{"guides", "deep", "b"})
	require.True(t, ok)
	require.Equal(t, []string{"guides", "deep", "b"}, b.Slugs)

	// an unknown suffix is part of the slug, not a language
	_, ok = idx.Lookup("en", []string{"notes", "v1.2"})
	require.True(t, ok)

	_, ok = idx.LookupURL("/en/docs/.drafts/x")
	require.False(t, ok)
	require.Equal(t, 7, idx.Len())
}

func TestLoader_SkipsBrokenDocuments(t *testing.T) {
	fsys := fstest.MapFS{
		"ok.mdx":       doc("title: OK"),
		"broken.mdx":   &fstest.MapFile{Data: []byte("---\ntitle: Broken\n")},
		"badyaml.mdx":  &fstest.MapFile{Data: []byte("---\ntitle: [x\n---\n")},
		"untitled.mdx": &fstest.MapFile{Data: []byte("# No frontmatter\n")},
	}

	idx, err := newTestLoader(fsys).Load()
	require.NoError(t, err)
	require.Equal(t, 2, idx.Len())

	untitled, ok := idx.Lookup("en", []string{"untitled"})
	require.True(t, ok, "untitled pages are indexed, publishing filters them")
	require.Empty(t, untitled.Title)
}

func TestLoader_DropsInvalidDemoURL(t *testing.T) {
	fsys := fstest.MapFS{
		"demo.mdx": doc("title: Demo\ndemo_url: not-a-url"),
	}

	idx, err := newTestLoader(fsys).Load()
	require.NoError(t, err)

	p, ok := idx.Lookup("en", []string{"demo"})
	require.True(t, ok)
	require.Empty(t, p.Meta.DemoURL)
}

func TestLoader_DuplicateSlugKeepsFirst(t *testing.T) {
	fsys := fstest.MapFS{
		"guides.mdx":       doc("title: From file"),
		"guides/index.mdx": doc("title: From index"),
	}

	idx, err := newTestLoader(fsys).Load()
	require.NoError(t, err)

	p, ok := idx.Lookup("en", []string{"guides"})
	require.True(t, ok)
	// the directory sorts before guides.mdx, so its index is seen first
	require.Equal(t, "From index", p.Title)
	require.Equal(t, 1, idx.Len())
}

func TestLoader_MissingRootIsEmpty(t *testing.T) {
	fsys := os.DirFS(filepath.Join(t.TempDir(), "missing"))

	idx, err := NewLoader(fsys, "en", []string{"en"}, logger.NewNop()).Load()
	require.NoError(t, err)
	require.Zero(t, idx.Len())
}
