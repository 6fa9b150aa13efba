package textutil

import (
	"strings"
	"unicode"
)

var sanitizeFilename = Compose(
	keepFilenameRunes,
	collapseWhitespace("_"),
	func(s string) string { return strings.Trim(s, "_.-") },
)

// SanitizeFilename reduces s to letters, numbers, underscores, periods and
// hyphens. Whitespace runs become a single underscore and leading or trailing
// underscores, periods and hyphens are trimmed:
// "My File: v2.0!.txt" becomes "My_File_v2.0.txt".
//
// Letters outside ASCII are kept. Path separators are removed, so the result
// never points outside the current directory, but it may be empty.
func SanitizeFilename(s string) string {
	return sanitizeFilename(s)
}

func keepFilenameRunes(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || IsSpace(r) {
			return r
		}
		switch r {
		case '_', '.', '-':
			return r
		}
		return -1
	}, s)
}

// collapseWhitespace replaces every whitespace run with sep.
func collapseWhitespace(sep string) func(string) string {
	return func(s string) string {
		var b strings.Builder
		b.Grow(len(s))

		inSpace := false
		for _, r := range s {
			if IsSpace(r) {
				if !inSpace {
					b.WriteString(sep)
				}
				inSpace = true
				continue
			}
			b.WriteRune(r)
			inSpace = false
		}
		return b.String()
	}
}
