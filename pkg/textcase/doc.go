// Package textcase converts text between naming conventions and applies
// simple display formatting.
//
// The package covers the "case and format" half of textkit:
//
//   - ToSnakeCase, ToCamelCase, ToPascalCase – identifier styles
//   - Slugify, SlugifyWith – URL-safe slugs (thin wrappers over pkg/slug)
//   - Truncate – rune-aware shortening with a configurable suffix
//   - CapitalizeWords – title-style words with normalised spacing
//   - Reverse – code point reversal
//
// # Usage
//
//	import "github.com/dmitrymomot/textkit/pkg/textcase"
//
//	textcase.ToSnakeCase("HelloWorld")       // "hello_world"
//	textcase.ToCamelCase("user-first_name")  // "userFirstName"
//	textcase.Slugify("  Héllo, World!  ")    // "hello-world"
//	textcase.Truncate("abcdefgh", 5)         // "ab..."
//
// # Units
//
// All lengths are counted in runes (Unicode code points), not bytes. Reverse
// works on code points as well, so combining sequences and multi code point
// graphemes (flags, emoji with modifiers) do not survive reversal visually.
//
// # Empty input
//
// None of the helpers panics or returns an error. Input without any words
// produces an empty string from ToCamelCase, ToPascalCase and CapitalizeWords.
//
// All functions are stateless and safe for concurrent use.
package textcase
