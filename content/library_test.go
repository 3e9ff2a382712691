package content

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/ip812/helloadp/logger"
)

func TestLibrary_LoadsLazilyAndCaches(t *testing.T) {
	fsys := fstest.MapFS{"a.mdx": doc("title: A")}
	lib := NewLibrary(newTestLoader(fsys), logger.NewNop())

	first := lib.Index()
	require.Equal(t, 1, first.Len())

	fsys["b.mdx"] = doc("title: B")
	require.Same(t, first, lib.Index(), "index is kept until reloaded")
}

func TestLibrary_ReloadReportsAddedPages(t *testing.T) {
	fsys := fstest.MapFS{"a.mdx": doc("title: A")}
	lib := NewLibrary(newTestLoader(fsys), logger.NewNop())

	added, err := lib.Reload()
	require.NoError(t, err)
	require.Empty(t, added, "the first load announces nothing")

	fsys["b.mdx"] = doc("title: B")
	fsys["b.zh.mdx"] = doc("title: 乙")
	delete(fsys, "a.mdx")

	added, err = lib.Reload()
	require.NoError(t, err)
	require.Equal(t, []string{"B", "乙"}, titles(added))
	require.Equal(t, 2, lib.Index().Len())
}
