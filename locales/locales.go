// Package locales holds the per-language copy of the site. Nothing here
// changes behavior; the strings are passed through to the views.
package locales

import (
	"strings"

	"golang.org/x/text/language"
)

const (
	RepositoryURL = "https://github.com/stvlynn/hello-adp"
	CommunityURL  = "https://discord.gg/PwZDHH4mv3"
	LogoPath      = "/static/images/hello-adp.svg"
)

type Locale struct {
	Code string
	Name string
}

var Supported = []Locale{
	{Code: "en", Name: "English"},
	{Code: "zh", Name: "中文"},
	{Code: "ja", Name: "日本語"},
}

// Tag returns the language tag used for collation and relative time
// formatting. Unknown codes map to English.
func Tag(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	return tag
}

// Names returns the display name for each code, in the given order.
func Names(codes []string) []Locale {
	out := make([]Locale, 0, len(codes))
	for _, code := range codes {
		name := code
		for _, l := range Supported {
			if l.Code == code {
				name = l.Name
				break
			}
		}
		out = append(out, Locale{Code: code, Name: name})
	}
	return out
}

// SwitchPath rewrites the language segment of a site path.
func SwitchPath(path, from, to string) string {
	prefix := "/" + from
	if path == prefix {
		return "/" + to
	}
	if rest, ok := strings.CutPrefix(path, prefix+"/"); ok {
		return "/" + to + "/" + rest
	}
	return "/" + to
}

func pick[T any](table map[string]T, lang string) T {
	if v, ok := table[lang]; ok {
		return v
	}
	return table["en"]
}
