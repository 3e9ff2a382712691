package articles

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CategoryKey joins every segment but the last. Root pages have the empty key.
func CategoryKey(segments []string) string {
	if len(segments) <= 1 {
		return ""
	}
	return strings.Join(segments[:len(segments)-1], "/")
}

// CategoryLabel word-cases each part of key and joins them with " / ".
// The empty key is labelled with fallback.
func CategoryLabel(key, fallback string) string {
	if key == "" {
		return fallback
	}

	upper := cases.Upper(language.Und)
	parts := strings.Split(key, "/")
	for i, part := range parts {
		words := strings.Split(strings.ReplaceAll(part, "-", " "), " ")
		for j, w := range words {
			words[j] = upperFirst(upper, w)
		}
		parts[i] = strings.Join(words, " ")
	}
	return strings.Join(parts, " / ")
}

// upperFirst upper-cases the first rune of w and keeps the rest as written.
func upperFirst(upper cases.Caser, w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if size == 0 {
		return w
	}
	return upper.String(string(r)) + w[size:]
}
