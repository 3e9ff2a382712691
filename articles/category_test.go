package articles

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ip812/helloadp/content"
)

func TestCategoryKey(t *testing.T) {
	tests := []struct {
		segments []string
		want     string
	}{
		{nil, ""},
		{[]string{"intro"}, ""},
		{[]string{"guides", "a"}, "guides"},
		{[]string{"guides", "deep", "b"}, "guides/deep"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, CategoryKey(tt.segments), tt.segments)
	}
}

func TestCategoryLabel(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", "General"},
		{"guides", "Guides"},
		{"getting-started", "Getting Started"},
		{"agents/rag-pipelines", "Agents / Rag Pipelines"},
		{"apis/openAPI", "Apis / OpenAPI"},
		{"1st-steps", "1st Steps"},
		{"guides/2nd-bot", "Guides / 2nd Bot"},
		{"ios-app", "Ios App"},
		{"déjà-vu", "Déjà Vu"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, CategoryLabel(tt.key, "General"), tt.key)
	}
}

type lookupFunc func(lang string, slugs []string) (content.Page, bool)

func (f lookupFunc) Page(lang string, slugs []string) (content.Page, bool) {
	return f(lang, slugs)
}

func TestCategoryIndex_HrefPriority(t *testing.T) {
	pages := lookupFunc(func(lang string, slugs []string) (content.Page, bool) {
		switch {
		case lang == "zh" && len(slugs) == 1 && slugs[0] == "guides":
			return content.Page{URL: "/zh/docs/guides"}, true
		case lang == "en" && len(slugs) == 1 && slugs[0] == "tools":
			return content.Page{URL: "/en/docs/tools"}, true
		}
		return content.Page{}, false
	})

	cards := []ArticleCard{
		{Href: "/zh/docs/guides/a", CategoryKey: "guides", CategoryLabel: "Guides"},
		{Href: "/zh/docs/tools/x", CategoryKey: "tools", CategoryLabel: "Tools"},
		{Href: "/zh/docs/guides/b", CategoryKey: "guides", CategoryLabel: "Guides"},
		{Href: "/zh/docs/misc/y", CategoryKey: "misc", CategoryLabel: "Misc"},
		{CategoryKey: "empty", CategoryLabel: "Empty"},
	}

	got := CategoryIndex(cards, "zh", "en", pages)

	require.Equal(t, []CategoryLink{
		{Key: "guides", Label: "Guides", Href: "/zh/docs/guides"},
		{Key: "tools", Label: "Tools", Href: "/en/docs/tools"},
		{Key: "misc", Label: "Misc", Href: "/zh/docs/misc/y"},
		{Key: "empty", Label: "Empty", Href: "/zh/docs"},
	}, got)
}
