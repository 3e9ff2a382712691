package content

import (
	"sync"

	"github.com/ip812/helloadp/logger"
	"github.com/ip812/helloadp/o11y"
)

// Library keeps the most recent Index of the documentation tree. It is the
// only component that holds parsed content between requests; Reload swaps
// in a fresh snapshot.
type Library struct {
	loader *Loader
	log    logger.Logger

	reloadMu sync.Mutex
	mu       sync.RWMutex
	index    *Index
}

func NewLibrary(loader *Loader, log logger.Logger) *Library {
	return &Library{
		loader: loader,
		log:    log,
	}
}

// Index returns the current snapshot, loading it on first use. A failed
// load yields an empty index and is retried on the next call.
func (lib *Library) Index() *Index {
	lib.mu.RLock()
	idx := lib.index
	lib.mu.RUnlock()
	if idx != nil {
		return idx
	}

	if _, err := lib.Reload(); err != nil {
		lib.log.Error("failed to load documentation: %v", err)
		return newIndex()
	}

	lib.mu.RLock()
	defer lib.mu.RUnlock()
	return lib.index
}

// Reload rebuilds the index and returns the pages that were not part of
// the previous snapshot. The first load reports nothing as added.
func (lib *Library) Reload() ([]Page, error) {
	lib.reloadMu.Lock()
	defer lib.reloadMu.Unlock()

	next, err := lib.loader.Load()
	if err != nil {
		return nil, err
	}

	lib.mu.Lock()
	prev := lib.index
	lib.index = next
	lib.mu.Unlock()

	o11y.ContentReloads.Inc()
	for lang, pages := range next.byLang {
		o11y.DocsPages.WithLabelValues(lang).Set(float64(len(pages)))
	}
	if prev != nil {
		for lang := range prev.byLang {
			if _, ok := next.byLang[lang]; !ok {
				o11y.DocsPages.WithLabelValues(lang).Set(0)
			}
		}
	}

	if prev == nil {
		return nil, nil
	}

	var added []Page
	for _, lang := range sortedLangs(next.byLang) {
		for _, p := range next.byLang[lang] {
			if _, ok := prev.byURL[p.URL]; !ok {
				added = append(added, p)
			}
		}
	}
	lib.log.Info("documentation reloaded: %d pages, %d new", next.Len(), len(added))
	return added, nil
}
