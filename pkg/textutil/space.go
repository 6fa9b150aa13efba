package textutil

import "unicode"

// IsSpace reports whether r is whitespace: unicode.IsSpace plus the C0
// information separators U+001C..U+001F, which regex engines and most
// scripting languages treat as whitespace too. Every helper in textkit that
// splits or collapses whitespace uses this predicate.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
