package textutil

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoveAccents decomposes s (NFD) and drops every nonspacing mark, leaving
// the base letters: "Crème brûlée" becomes "Creme brulee". The result is not
// recomposed. Letters that do not decompose, such as "ø" or "ß", are kept.
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
