package textcase

import (
	"unicode/utf8"

	"github.com/dmitrymomot/textkit/pkg/slug"
	"github.com/dmitrymomot/textkit/pkg/textutil"
)

// DefaultTruncateSuffix is appended by Truncate unless WithSuffix overrides it.
const DefaultTruncateSuffix = "..."

// Slugify turns s into a lowercase, hyphen-separated, ASCII-only slug.
func Slugify(s string) string {
	return slug.Make(s)
}

// SlugifyWith is Slugify with a custom separator. The separator is also the
// cut set trimmed from both ends of the result.
func SlugifyWith(s, separator string) string {
	return slug.Make(s, slug.Separator(separator))
}

// TruncateOption configures Truncate.
type TruncateOption func(*truncateConfig)

type truncateConfig struct {
	suffix string
}

// WithSuffix replaces the default "..." marker appended to truncated text.
func WithSuffix(suffix string) TruncateOption {
	return func(c *truncateConfig) {
		c.suffix = suffix
	}
}

// TruncateOptions converts the suffix loaded by textutil.LoadDefaults into
// options for Truncate.
func TruncateOptions(d textutil.Defaults) []TruncateOption {
	return []TruncateOption{WithSuffix(d.TruncateSuffix)}
}

// Truncate shortens s to at most maxLength runes, suffix included.
// Strings that already fit are returned unchanged. When maxLength is smaller
// than the suffix itself, the suffix is cut down to maxLength runes; a
// non-positive maxLength yields "".
func Truncate(s string, maxLength int, opts ...TruncateOption) string {
	cfg := truncateConfig{suffix: DefaultTruncateSuffix}
	for _, opt := range opts {
		opt(&cfg)
	}

	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	if maxLength <= 0 {
		return ""
	}

	suffix := []rune(cfg.suffix)
	keep := maxLength - len(suffix)
	if keep < 0 {
		return string(suffix[:maxLength])
	}

	runes := []rune(s)
	return string(runes[:keep]) + cfg.suffix
}

// Reverse returns s with its code points in reverse order.
// Invalid UTF-8 bytes are replaced by utf8.RuneError.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
