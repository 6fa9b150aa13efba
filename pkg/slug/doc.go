// Package slug builds URL-safe identifiers from arbitrary text.
//
// Make normalises its input with Unicode compatibility decomposition (NFKD),
// drops everything that is not ASCII afterwards, lowercases, removes every
// character other than letters, digits, underscores, whitespace and hyphens,
// and finally joins the remaining words with a separator:
//
//	slug.Make("  Héllo, World!  ")            // "hello-world"
//	slug.Make("Crème Brûlée", slug.Separator("_")) // "creme_brulee"
//
// Characters without an ASCII decomposition (ß, æ, ø, CJK, emoji …) are
// removed rather than transliterated. Hyphens already present in the input
// are kept, so "a - b" becomes "a---b"; only whitespace runs are collapsed.
//
// # Options
//
//   - Separator: string placed between words (default "-"). Its characters
//     are also trimmed from both ends of the slug.
//   - Lowercase: disable lowercasing (default enabled).
//   - MaxLength: cap the slug length in runes.
//   - StripChars: remove specific characters before slugifying.
//   - CustomReplace: substitute substrings before slugifying ("&" → "and").
//   - WithSuffix: append a random alphanumeric suffix to reduce collisions.
//
// # Thread Safety
//
// Make is safe for concurrent use. Random suffixes come from crypto/rand.
package slug
