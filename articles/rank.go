package articles

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Rank orders cards newest first; equal times fall back to the title in the
// collation order of tag. The input is not modified.
func Rank(cards []ArticleCard, tag language.Tag) []ArticleCard {
	col := collate.New(tag)

	ranked := slices.Clone(cards)
	slices.SortStableFunc(ranked, func(a, b ArticleCard) int {
		if c := b.ModifiedAt.Compare(a.ModifiedAt); c != 0 {
			return c
		}
		return col.CompareString(a.Title, b.Title)
	})
	return ranked
}

// Split takes the first view as featured. Featured is nil and rest is empty
// for no views.
func Split(views []ArticleCardView) (featured *ArticleCardView, rest []ArticleCardView) {
	if len(views) == 0 {
		return nil, []ArticleCardView{}
	}
	first := views[0]
	return &first, slices.Clone(views[1:])
}
