package textutil

import (
	"strings"
	"unicode/utf8"
)

// Mask defaults.
const (
	DefaultVisibleStart = 4
	DefaultVisibleEnd   = 4
	DefaultMaskChar     = '*'
)

// MaskOption configures MaskString.
type MaskOption func(*maskConfig)

type maskConfig struct {
	visibleStart int
	visibleEnd   int
	maskChar     rune
}

// VisibleStart sets how many leading runes stay readable. Negative values count as 0.
func VisibleStart(n int) MaskOption {
	return func(c *maskConfig) {
		c.visibleStart = max(n, 0)
	}
}

// VisibleEnd sets how many trailing runes stay readable. Negative values count as 0.
func VisibleEnd(n int) MaskOption {
	return func(c *maskConfig) {
		c.visibleEnd = max(n, 0)
	}
}

// MaskChar sets the rune used to hide characters.
func MaskChar(r rune) MaskOption {
	return func(c *maskConfig) {
		c.maskChar = r
	}
}

// MaskString hides the middle of s, keeping the first and last few runes
// readable: "1234567890123" becomes "1234*****0123". Strings no longer than
// the visible parts combined cannot be masked and are returned unchanged.
func MaskString(s string, opts ...MaskOption) string {
	cfg := maskConfig{
		visibleStart: DefaultVisibleStart,
		visibleEnd:   DefaultVisibleEnd,
		maskChar:     DefaultMaskChar,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := utf8.RuneCountInString(s)
	// compared without adding so huge visible counts cannot overflow
	if cfg.visibleStart >= n || cfg.visibleEnd >= n-cfg.visibleStart {
		return s
	}

	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(string(runes[:cfg.visibleStart]))
	b.WriteString(strings.Repeat(string(cfg.maskChar), n-cfg.visibleStart-cfg.visibleEnd))
	b.WriteString(string(runes[n-cfg.visibleEnd:]))
	return b.String()
}
