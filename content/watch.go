package content

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ip812/helloadp/logger"
)

var watchDebounce = 500 * time.Millisecond

// Watch reloads lib whenever the tree under root changes and hands the
// newly published pages to onPublished. It returns once the watcher is set
// up; watching stops when ctx is done.
func Watch(ctx context.Context, root string, lib *Library, log logger.Logger, onPublished func([]Page)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := addTree(watcher, root, log); err != nil {
		watcher.Close()
		return err
	}
	log.Info("watching %s for documentation changes", root)

	reload := func() {
		added, err := lib.Reload()
		if err != nil {
			log.Error("failed to reload documentation: %v", err)
			return
		}
		if added = published(added); len(added) > 0 && onPublished != nil {
			onPublished(added)
		}
	}

	go func() {
		defer watcher.Close()

		var timer *time.Timer
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
					continue
				}
				if event.Has(fsnotify.Create) && isDir(event.Name) {
					if err := addTree(watcher, event.Name, log); err != nil {
						log.Warn("failed to watch new directory %s: %v", event.Name, err)
					}
				}
				log.Debug("documentation change: %s (%s)", event.Name, event.Op)

				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(watchDebounce, reload)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("documentation watcher error: %v", err)
			}
		}
	}()

	return nil
}

func addTree(watcher *fsnotify.Watcher, root string, log logger.Logger) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return fmt.Errorf("failed to watch %s: %w", root, err)
			}
			log.Warn("skipping %s: %v", p, err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(p); err != nil {
			log.Warn("failed to watch %s: %v", p, err)
		}
		return nil
	})
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
