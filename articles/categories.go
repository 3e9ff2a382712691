package articles

import (
	"strings"

	"github.com/ip812/helloadp/content"
)

type CategoryLink struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Href  string `json:"href"`
}

// PageLookup finds the published page at slugs in exactly lang.
type PageLookup interface {
	Page(lang string, slugs []string) (content.Page, bool)
}

// CategoryIndex returns one link per distinct category in first-seen order of
// the ranked cards. The href is the first of: the category index page in lang,
// the index page in defaultLang, the first card of the category, the docs root.
func CategoryIndex(cards []ArticleCard, lang, defaultLang string, pages PageLookup) []CategoryLink {
	links := []CategoryLink{}
	seen := make(map[string]struct{})

	for _, card := range cards {
		if _, ok := seen[card.CategoryKey]; ok {
			continue
		}
		seen[card.CategoryKey] = struct{}{}

		links = append(links, CategoryLink{
			Key:   card.CategoryKey,
			Label: card.CategoryLabel,
			Href:  categoryHref(card, lang, defaultLang, pages),
		})
	}

	return links
}

func categoryHref(card ArticleCard, lang, defaultLang string, pages PageLookup) string {
	var slugs []string
	if card.CategoryKey != "" {
		slugs = strings.Split(card.CategoryKey, "/")
	}

	if p, ok := pages.Page(lang, slugs); ok {
		return p.URL
	}
	if lang != defaultLang {
		if p, ok := pages.Page(defaultLang, slugs); ok {
			return p.URL
		}
	}
	if card.Href != "" {
		return card.Href
	}
	return content.DocsURL(lang, nil)
}
