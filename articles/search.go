package articles

import (
	"strings"

	"golang.org/x/text/cases"
)

// Search keeps the cards matching every whitespace separated term of query,
// case folded, in title, description, author or category label. Order is kept.
func Search(cards []ArticleCardView, query string) []ArticleCardView {
	fold := cases.Fold()
	terms := strings.Fields(fold.String(query))

	out := []ArticleCardView{}
	if len(terms) == 0 {
		return out
	}

	for _, c := range cards {
		haystack := fold.String(strings.Join([]string{c.Title, c.Description, c.Author, c.CategoryLabel}, "\n"))
		if matchesAll(haystack, terms) {
			out = append(out, c)
		}
	}

	return out
}

func matchesAll(haystack string, terms []string) bool {
	for _, t := range terms {
		if !strings.Contains(haystack, t) {
			return false
		}
	}
	return true
}
