package content

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/ip812/helloadp/logger"
)

var documentExtensions = []string{".mdx", ".md"}

// Index is an immutable snapshot of the documentation tree.
type Index struct {
	byLang map[string][]Page
	byKey  map[string]Page
	byURL  map[string]Page
}

func newIndex() *Index {
	return &Index{
		byLang: map[string][]Page{},
		byKey:  map[string]Page{},
		byURL:  map[string]Page{},
	}
}

func pageKey(lang string, slugs []string) string {
	return lang + ":" + strings.Join(slugs, "/")
}

func (i *Index) add(p Page) bool {
	key := pageKey(p.Lang, p.Slugs)
	if _, dup := i.byKey[key]; dup {
		return false
	}
	i.byKey[key] = p
	i.byURL[p.URL] = p
	i.byLang[p.Lang] = append(i.byLang[p.Lang], p)
	return true
}

// Pages returns every page of the language in tree order, titled or not.
func (i *Index) Pages(lang string) []Page {
	return slices.Clone(i.byLang[lang])
}

func (i *Index) Lookup(lang string, slugs []string) (Page, bool) {
	p, ok := i.byKey[pageKey(lang, slugs)]
	return p, ok
}

func (i *Index) LookupURL(url string) (Page, bool) {
	p, ok := i.byURL[url]
	return p, ok
}

func (i *Index) Len() int {
	return len(i.byURL)
}

// Loader reads a documentation tree into an Index. Files carry their
// language as a dot suffix (intro.zh.mdx); files without one belong to the
// default language.
type Loader struct {
	fsys        fs.FS
	defaultLang string
	languages   []string
	log         logger.Logger
}

func NewLoader(fsys fs.FS, defaultLang string, languages []string, log logger.Logger) *Loader {
	return &Loader{
		fsys:        fsys,
		defaultLang: defaultLang,
		languages:   languages,
		log:         log,
	}
}

func (l *Loader) Load() (*Index, error) {
	idx := newIndex()

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == "." {
				return err
			}
			l.log.Warn("skipping %s: %v", p, err)
			return nil
		}
		if p != "." && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !slices.Contains(documentExtensions, path.Ext(p)) {
			return nil
		}

		page, err := l.loadPage(p)
		if err != nil {
			l.log.Warn("skipping document %s: %v", p, err)
			return nil
		}
		if !idx.add(page) {
			l.log.Warn("document %s duplicates %s, ignoring it", p, page.URL)
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		l.log.Warn("documentation root does not exist, serving no documents")
		return idx, nil
	}
	if err != nil {
		return nil, fmt.Errorf("walk documentation root: %w", err)
	}

	return idx, nil
}

func (l *Loader) loadPage(p string) (Page, error) {
	raw, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Page{}, err
	}

	fm, body, err := parseFrontmatter(raw)
	if err != nil {
		return Page{}, fmt.Errorf("frontmatter: %w", err)
	}

	meta, err := fm.Meta()
	if err != nil {
		l.log.Warn("document %s: %v", p, err)
	}

	file := fileOf(p)
	lang, slug := l.splitLanguage(file.Name)

	var slugs []string
	if file.Dir != "" {
		slugs = strings.Split(file.Dir, "/")
	}
	if slug != "index" {
		slugs = append(slugs, slug)
	}

	return Page{
		URL:         DocsURL(lang, slugs),
		Slugs:       slugs,
		Lang:        lang,
		Title:       strings.TrimSpace(fm.Title),
		Description: strings.TrimSpace(fm.Description),
		Meta:        meta,
		File:        file,
		Body:        body,
	}, nil
}

func (l *Loader) splitLanguage(name string) (lang, slug string) {
	if ext := path.Ext(name); ext != "" {
		if candidate := ext[1:]; slices.Contains(l.languages, candidate) {
			return candidate, strings.TrimSuffix(name, ext)
		}
	}
	return l.defaultLang, name
}

func fileOf(p string) File {
	dir, base := path.Split(p)
	ext := path.Ext(base)
	return File{
		Dir:  strings.TrimSuffix(dir, "/"),
		Name: strings.TrimSuffix(base, ext),
		Ext:  ext,
	}
}
