// Package textutil holds the text utilities that go beyond case handling:
// accent stripping, pattern extraction, masking, random strings, filename
// sanitization and edit distance.
//
//   - RemoveAccents – NFD decomposition without combining marks
//   - ExtractEmails, ExtractURLs – pattern extraction in order of appearance
//   - MaskString – hide the middle of sensitive values
//   - RandomString, Generator – random strings from a configurable alphabet
//   - SanitizeFilename – keep a conservative filename character set
//   - LevenshteinDistance, Similarity, Closest – edit distance helpers
//   - Apply, Compose – small generic transform pipelines
//
// # Usage
//
//	import "github.com/dmitrymomot/textkit/pkg/textutil"
//
//	textutil.RemoveAccents("Crème brûlée")             // "Creme brulee"
//	textutil.ExtractEmails("contact a@b.com or c@d.org") // ["a@b.com" "c@d.org"]
//	textutil.MaskString("1234567890123")                // "1234*****0123"
//	textutil.SanitizeFilename("My File: v2.0!.txt")     // "My_File_v2.0.txt"
//	textutil.LevenshteinDistance("kitten", "sitting")   // 3
//
// Optional parameters use functional options:
//
//	textutil.MaskString(card, textutil.VisibleStart(0), textutil.MaskChar('•'))
//	textutil.RandomString(textutil.Length(16), textutil.WithSymbols(true))
//
// Package-wide defaults can be read from the environment with LoadDefaults
// (TEXTKIT_MASK_*, TEXTKIT_RANDOM_* and TEXTKIT_TRUNCATE_SUFFIX).
//
// # Randomness
//
// RandomString is NOT cryptographically secure and must not be used for
// passwords, tokens or any other secret. It draws from math/rand/v2; pass a
// seeded *rand.Rand with WithSource for reproducible output.
//
// # Error handling
//
// The transforms never fail. Extraction without matches returns an empty
// slice. Only LoadDefaults and Defaults.Validate return errors.
//
// Everything except a caller-supplied random source is safe for concurrent
// use.
package textutil
