package content

import (
	"io/fs"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ip812/helloadp/logger"
	"github.com/ip812/helloadp/o11y"
)

// Resolver looks up the modification time of the file backing a page.
type Resolver struct {
	fsys        fs.FS
	ext         string
	concurrency int
	log         logger.Logger
}

func NewResolver(fsys fs.FS, ext string, concurrency int, log logger.Logger) *Resolver {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Resolver{
		fsys:        fsys,
		ext:         ext,
		concurrency: concurrency,
		log:         log,
	}
}

// Resolve stats relPath under the docs root, retrying with the canonical
// extension appended when the path does not already carry it. It never
// fails: a missing file resolves to Unknown.
func (r *Resolver) Resolve(relPath string) Timestamp {
	p := path.Clean(strings.TrimPrefix(relPath, "/"))

	info, err := r.stat(p)
	if err != nil && r.ext != "" && !strings.HasSuffix(p, r.ext) {
		info, err = r.stat(p + r.ext)
	}
	if err != nil {
		o11y.UnknownModTimes.Inc()
		r.log.Warn("could not resolve modification time of %s: %v", relPath, err)
		return Unknown()
	}

	return Resolved(info.ModTime())
}

// ResolveAll resolves every page concurrently and returns the timestamps in
// page order once all lookups have finished.
func (r *Resolver) ResolveAll(pages []Page) []Timestamp {
	out := make([]Timestamp, len(pages))

	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, p := range pages {
		g.Go(func() error {
			out[i] = r.Resolve(p.File.Path())
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (r *Resolver) stat(p string) (fs.FileInfo, error) {
	if p == "." || !fs.ValidPath(p) {
		return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrInvalid}
	}
	return fs.Stat(r.fsys, p)
}
