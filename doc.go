// Package textkit is a collection of small, stateless text utilities for Go
// services.
//
// The functionality lives in importable packages under pkg/:
//
//   - pkg/textcase – snake_case, camelCase, PascalCase, slugs, truncation,
//     word capitalization and reversal
//   - pkg/textutil – accent removal, e-mail and URL extraction, masking,
//     random strings, filename sanitization and Levenshtein distance
//   - pkg/slug – the configurable slug engine behind textcase.Slugify
//   - pkg/logger – slog factory that redacts sensitive attributes
//   - pkg/config – typed environment configuration
//
// Basic Usage:
//
//	import (
//		"github.com/dmitrymomot/textkit/pkg/textcase"
//		"github.com/dmitrymomot/textkit/pkg/textutil"
//	)
//
//	textcase.ToSnakeCase("HelloWorld")                // "hello_world"
//	textcase.Slugify("  Héllo, World!  ")             // "hello-world"
//	textutil.MaskString("1234567890123")              // "1234*****0123"
//	textutil.ExtractEmails("contact a@b.com or c@d.org") // ["a@b.com" "c@d.org"]
//
// All transforms are pure functions: no global state, no I/O, safe for
// concurrent use. None of them returns an error.
package textkit
