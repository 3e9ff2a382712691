package content

import (
	"slices"
)

type Indexer interface {
	Index() *Index
}

// Source serves the published pages of a language. Pages without a title
// are drafts and never published.
type Source struct {
	indexer     Indexer
	defaultLang string
}

func NewSource(indexer Indexer, defaultLang string) *Source {
	return &Source{
		indexer:     indexer,
		defaultLang: defaultLang,
	}
}

func (s *Source) DefaultLanguage() string {
	return s.defaultLang
}

// Pages returns the published pages of lang. When a non-default language has
// none, the default language's pages are returned instead.
func (s *Source) Pages(lang string) []Page {
	idx := s.indexer.Index()

	pages := published(idx.Pages(lang))
	if len(pages) == 0 && lang != s.defaultLang {
		return published(idx.Pages(s.defaultLang))
	}
	return pages
}

// Page looks up a published page in exactly the given language.
func (s *Source) Page(lang string, slugs []string) (Page, bool) {
	p, ok := s.indexer.Index().Lookup(lang, slugs)
	if !ok || p.Title == "" {
		return Page{}, false
	}
	return p, true
}

func (s *Source) PageByURL(url string) (Page, bool) {
	p, ok := s.indexer.Index().LookupURL(url)
	if !ok || p.Title == "" {
		return Page{}, false
	}
	return p, true
}

func published(pages []Page) []Page {
	return slices.DeleteFunc(pages, func(p Page) bool {
		return p.Title == ""
	})
}

func sortedLangs(m map[string][]Page) []string {
	langs := make([]string, 0, len(m))
	for lang := range m {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}
