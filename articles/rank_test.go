package articles

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/ip812/helloadp/content"
)

func cardTitles(cards []ArticleCard) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Title
	}
	return out
}

func TestRank_NewestFirstThenTitle(t *testing.T) {
	cards := []ArticleCard{
		{Title: "B", ModifiedAt: content.Resolved(t1)},
		{Title: "Unknown", ModifiedAt: content.Unknown()},
		{Title: "A", ModifiedAt: content.Resolved(t1)},
		{Title: "Intro", ModifiedAt: content.Resolved(t2)},
	}

	ranked := Rank(cards, language.English)

	require.Equal(t, []string{"Intro", "A", "B", "Unknown"}, cardTitles(ranked))
	require.Equal(t, "B", cards[0].Title, "input is untouched")
}

func TestRank_UnknownSortsBelowEpoch(t *testing.T) {
	cards := []ArticleCard{
		{Title: "A", ModifiedAt: content.Unknown()},
		{Title: "B", ModifiedAt: content.Resolved(t1.AddDate(-60, 0, 0))},
	}

	require.Equal(t, []string{"B", "A"}, cardTitles(Rank(cards, language.English)))
}

func TestSplit(t *testing.T) {
	featured, rest := Split(nil)
	require.Nil(t, featured)
	require.NotNil(t, rest)
	require.Empty(t, rest)

	views := []ArticleCardView{{Title: "A"}, {Title: "B"}, {Title: "C"}}
	featured, rest = Split(views)
	require.Equal(t, "A", featured.Title)
	require.Equal(t, []string{"B", "C"}, viewTitles(rest))

	featured, rest = Split(views[:1])
	require.Equal(t, "A", featured.Title)
	require.Empty(t, rest)
}
