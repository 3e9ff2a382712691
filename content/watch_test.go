package content

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ip812/helloadp/logger"
)

func TestWatch_AnnouncesPublishedPages(t *testing.T) {
	watchDebounce = 100 * time.Millisecond
	t.Cleanup(func() { watchDebounce = 500 * time.Millisecond })

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.mdx"), []byte("---\ntitle: A\n---\n"), 0o644))

	lib := NewLibrary(NewLoader(os.DirFS(root), "en", []string{"en", "zh"}, logger.NewNop()), logger.NewNop())
	require.Equal(t, 1, lib.Index().Len())

	var (
		mu        sync.Mutex
		published []string
	)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	err := Watch(ctx, root, lib, logger.NewNop(), func(pages []Page) {
		mu.Lock()
		defer mu.Unlock()
		published = append(published, titles(pages)...)
	})
	require.NoError(t, err)

	require.NoError(t, os.Mkdir(filepath.Join(root, "guides"), 0o755))
	// give the watcher a moment to pick up the new directory
	time.Sleep(300 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(root, "guides", "b.mdx"), []byte("---\ntitle: B\n---\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "draft.mdx"), []byte("no frontmatter\n"), 0o644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(published) == 1 && published[0] == "B"
	}, 5*time.Second, 20*time.Millisecond)

	_, ok := lib.Index().Lookup("en", []string{"draft"})
	require.True(t, ok)
}

func TestWatch_MissingRoot(t *testing.T) {
	lib := NewLibrary(NewLoader(os.DirFS(t.TempDir()), "en", []string{"en"}, logger.NewNop()), logger.NewNop())

	err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing"), lib, logger.NewNop(), nil)
	require.Error(t, err)
}
