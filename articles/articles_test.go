package articles

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ip812/helloadp/content"
	"github.com/ip812/helloadp/logger"
)

var (
	t1  = time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	t2  = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	now = time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)
)

func mdx(fm string, mod time.Time) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte("---\n" + fm + "\n---\nBody.\n"), ModTime: mod}
}

func newTestBuilder(fsys fstest.MapFS) *Builder {
	log := logger.NewNop()
	lib := content.NewLibrary(content.NewLoader(fsys, "en", []string{"en", "zh", "ja"}, log), log)
	source := content.NewSource(lib, "en")
	resolver := content.NewResolver(fsys, ".mdx", 4, log)
	return NewBuilder(source, resolver).WithClock(func() time.Time { return now })
}

func viewTitles(views []ArticleCardView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.Title
	}
	return out
}

func TestBuild_RanksAndGroups(t *testing.T) {
	b := newTestBuilder(fstest.MapFS{
		"guides/b.mdx": mdx("title: B", t1),
		"guides/a.mdx": mdx("title: A", t1),
		"intro.mdx":    mdx("title: Intro", t2),
	})

	vm := b.Build("en", "General")

	require.Equal(t, 3, vm.TotalCount)
	require.NotNil(t, vm.Featured)
	require.Equal(t, "Intro", vm.Featured.Title)
	require.Equal(t, "3 days ago", vm.Featured.UpdatedLabel)
	require.Equal(t, []string{"A", "B"}, viewTitles(vm.Rest))
	require.Equal(t, []CategoryLink{
		{Key: "", Label: "General", Href: "/en/docs/intro"},
		{Key: "guides", Label: "Guides", Href: "/en/docs/guides/a"},
	}, vm.Categories)
	require.Equal(t, "/en/search", vm.SearchHref)
}

func TestBuild_Empty(t *testing.T) {
	vm := newTestBuilder(fstest.MapFS{}).Build("en", "General")

	require.Zero(t, vm.TotalCount)
	require.Nil(t, vm.Featured)
	require.NotNil(t, vm.Rest)
	require.Empty(t, vm.Rest)
	require.NotNil(t, vm.Categories)
	require.Empty(t, vm.Categories)
	require.Empty(t, vm.Cards())
}

func TestBuild_FallsBackToDefaultLanguage(t *testing.T) {
	b := newTestBuilder(fstest.MapFS{
		"intro.mdx": mdx("title: Intro", t2),
	})

	vm := b.Build("ja", "一般")

	require.Equal(t, 1, vm.TotalCount)
	require.Equal(t, "/en/docs/intro", vm.Featured.Href)
	require.Equal(t, "3 日前", vm.Featured.UpdatedLabel)
	require.Equal(t, "/ja/search", vm.SearchHref)
}

func TestBuild_UsesCategoryIndexPages(t *testing.T) {
	b := newTestBuilder(fstest.MapFS{
		"guides/index.mdx": mdx("title: All guides", t1),
		"guides/a.mdx":     mdx("title: A", t2),
	})

	vm := b.Build("en", "General")

	require.Equal(t, []string{"A", "All guides"}, viewTitles(vm.Cards()))
	require.Equal(t, "/en/docs/guides", vm.Categories[0].Href)
}

func TestBuild_MissingFileHasEmptyLabel(t *testing.T) {
	fsys := fstest.MapFS{
		"a.mdx": mdx("title: A", t1),
		"b.mdx": mdx("title: B", t2),
	}
	b := newTestBuilder(fsys)
	// load the index, then remove the file behind it
	b.source.Pages("en")
	delete(fsys, "b.mdx")

	vm := b.Build("en", "General")

	require.Equal(t, []string{"A", "B"}, viewTitles(vm.Cards()))
	require.Empty(t, vm.Rest[0].UpdatedLabel)
}

func TestViewModel_Demo(t *testing.T) {
	b := newTestBuilder(fstest.MapFS{
		"bot.mdx":  mdx("title: Bot\ndemo_url: https://demo.example.com", t2),
		"note.mdx": mdx("title: Note", t1),
	})
	vm := b.Build("en", "General")

	demo := vm.Demo("/en/docs/bot")
	require.NotNil(t, demo)
	require.Equal(t, "https://demo.example.com", demo.DemoURL)

	require.Nil(t, vm.Demo("/en/docs/note"), "no demo link")
	require.Nil(t, vm.Demo("/en/docs/missing"))
}

func TestNewCard(t *testing.T) {
	page := content.Page{
		URL:         "/en/docs/agents/getting-started/first-bot",
		Slugs:       []string{"agents", "getting-started", "first-bot"},
		Title:       "First bot",
		Description: "Build it",
		Meta:        content.Meta{Author: "Ann", Avatar: "https://github.com/ann.png", DemoURL: "https://demo.example.com"},
	}

	card := NewCard(page, content.Resolved(t1), "General")

	require.Equal(t, page.URL, card.ID)
	require.Equal(t, page.URL, card.Href)
	require.Equal(t, "agents/getting-started", card.CategoryKey)
	require.Equal(t, "Agents / Getting Started", card.CategoryLabel)
	require.Equal(t, "Ann", card.Author)
	require.True(t, card.ModifiedAt.Known())
}
