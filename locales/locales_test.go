package locales

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCopyTables_CoverEverySupportedLanguage(t *testing.T) {
	for _, l := range Supported {
		require.Contains(t, landing, l.Code)
		require.Contains(t, showcase, l.Code)
		require.Contains(t, meta, l.Code)
		require.NotEmpty(t, Showcase(l.Code).DefaultCategory)
	}
}

func TestCopyTables_UnknownLanguageUsesEnglish(t *testing.T) {
	require.Equal(t, Landing("en"), Landing("fr"))
	require.Equal(t, Showcase("en"), Showcase("fr"))
	require.Equal(t, "en_US", Meta("fr").OGLocale)
}

func TestTag(t *testing.T) {
	require.Equal(t, language.Chinese, Tag("zh"))
	require.Equal(t, language.Japanese, Tag("ja"))
	require.Equal(t, language.English, Tag("not a tag!"))
}

func TestSwitchPath(t *testing.T) {
	require.Equal(t, "/zh", SwitchPath("/en", "en", "zh"))
	require.Equal(t, "/zh/docs/guides/a", SwitchPath("/en/docs/guides/a", "en", "zh"))
	require.Equal(t, "/ja", SwitchPath("/elsewhere", "en", "ja"))
}

func TestNames(t *testing.T) {
	require.Equal(t, []Locale{{"zh", "中文"}, {"de", "de"}}, Names([]string{"zh", "de"}))
}
