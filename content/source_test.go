package content

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/ip812/helloadp/logger"
)

func newTestSource(t *testing.T, fsys fstest.MapFS) *Source {
	t.Helper()
	lib := NewLibrary(newTestLoader(fsys), logger.NewNop())
	return NewSource(lib, "en")
}

func titles(pages []Page) []string {
	out := make([]string, 0, len(pages))
	for _, p := range pages {
		out = append(out, p.Title)
	}
	return out
}

func TestSource_ExcludesUntitledPages(t *testing.T) {
	src := newTestSource(t, fstest.MapFS{
		"a.mdx":     doc("title: A"),
		"draft.mdx": doc("description: no title yet"),
	})

	require.Equal(t, []string{"A"}, titles(src.Pages("en")))

	_, ok := src.Page("en", []string{"draft"})
	require.False(t, ok)
	_, ok = src.PageByURL("/en/docs/draft")
	require.False(t, ok)
}

func TestSource_FallsBackToDefaultLanguageWhenEmpty(t *testing.T) {
	src := newTestSource(t, fstest.MapFS{
		"a.mdx":    doc("title: A"),
		"b.mdx":    doc("title: B"),
		"a.zh.mdx": doc("title: 甲"),
		// a ja page without a title leaves the ja set empty
		"c.ja.mdx": doc("author: nobody"),
	})

	require.Equal(t, []string{"甲"}, titles(src.Pages("zh")), "a non-empty localized set is not merged")
	require.Equal(t, src.Pages("en"), src.Pages("ja"))
	require.Equal(t, src.Pages("en"), src.Pages("fr"))
}

func TestSource_DefaultLanguageNeverFallsBack(t *testing.T) {
	src := newTestSource(t, fstest.MapFS{
		"a.zh.mdx": doc("title: 甲"),
	})

	require.Empty(t, src.Pages("en"))
	require.Equal(t, "en", src.DefaultLanguage())
}

func TestSource_PageIsLanguageExact(t *testing.T) {
	src := newTestSource(t, fstest.MapFS{
		"guides/index.mdx": doc("title: Guides"),
	})

	p, ok := src.Page("en", []string{"guides"})
	require.True(t, ok)
	require.Equal(t, "/en/docs/guides", p.URL)

	_, ok = src.Page("zh", []string{"guides"})
	require.False(t, ok)
}
