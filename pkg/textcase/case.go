package textcase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/textkit/pkg/textutil"
)

// ToSnakeCase converts s to snake_case.
// An underscore is inserted before every run of ASCII uppercase letters, each
// run of whitespace or hyphens becomes a single underscore, underscores are
// trimmed from both ends and the result is lowercased. Any other character is
// kept as is, so applying ToSnakeCase twice gives the same result as once.
func ToSnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	inUpper, inSep := false, false
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			if !inUpper {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			inUpper, inSep = true, false
		case r == '-' || textutil.IsSpace(r):
			if !inSep {
				b.WriteByte('_')
			}
			inUpper, inSep = false, true
		default:
			b.WriteRune(r)
			inUpper, inSep = false, false
		}
	}

	return strings.ToLower(strings.Trim(b.String(), "_"))
}

// ToCamelCase joins the words of s into camelCase.
// Words are separated by hyphens, underscores or whitespace as defined by
// textutil.IsSpace. The first word is lowercased; every following word gets
// an uppercase first letter and keeps the rest of its letters untouched.
// Returns "" when s has no words.
func ToCamelCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(upperFirst(w))
	}
	return b.String()
}

// ToPascalCase joins the words of s into PascalCase using the same word rules
// as ToCamelCase, with every word starting uppercase.
func ToPascalCase(s string) string {
	words := splitWords(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, w := range words {
		b.WriteString(upperFirst(w))
	}
	return b.String()
}

// CapitalizeWords splits s on whitespace, capitalizes every word (first letter
// upper, the rest lower) and joins them with single spaces. Leading, trailing
// and repeated whitespace is dropped.
func CapitalizeWords(s string) string {
	words := strings.FieldsFunc(s, textutil.IsSpace)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// splitWords breaks s on hyphens, underscores and whitespace, dropping empty
// fragments.
func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || textutil.IsSpace(r)
	})
}

// upperFirst title-cases the first rune of w and leaves the remainder alone.
func upperFirst(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if size == 0 {
		return w
	}
	return string(unicode.ToTitle(r)) + w[size:]
}

// capitalize title-cases the first rune of w and lowercases the remainder.
func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if size == 0 {
		return w
	}
	return string(unicode.ToTitle(r)) + strings.ToLower(w[size:])
}
