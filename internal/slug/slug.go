// Package slug builds URL-safe identifiers from category names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make lower-cases text, strips diacritics and collapses every run of
// characters outside [a-z0-9] into a single hyphen. Make(Make(x)) == Make(x).
func Make(text string) string {
	stripped, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn))),
		strings.ToLower(text),
	)
	if err != nil {
		stripped = strings.ToLower(text)
	}

	return strings.Trim(nonAlnum.ReplaceAllString(stripped, "-"), "-")
}
