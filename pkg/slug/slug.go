package slug

import (
	"crypto/rand"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Whitespace as seen after ASCII folding: the C0 separators 0x1c-0x1f count
// as whitespace too.
var (
	disallowedRegex = regexp.MustCompile(`[^A-Za-z0-9_\t\n\v\f\r \x1c-\x1f-]+`)
	whitespaceRegex = regexp.MustCompile(`[\t\n\v\f\r \x1c-\x1f]+`)
)

// Option configures the slug generation behavior.
type Option func(*config)

type config struct {
	maxLength     int
	separator     string
	lowercase     bool
	stripChars    string
	customReplace map[string]string
	suffixLength  int
}

func defaultConfig() *config {
	return &config{
		separator: "-",
		lowercase: true,
	}
}

// MaxLength sets the maximum length of the generated slug in runes.
// Zero or a negative value means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator sets the string placed between words. Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// Lowercase controls whether the slug is lowercased. Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// StripChars removes every rune of chars from the input before slugifying.
func StripChars(chars string) Option {
	return func(c *config) {
		c.stripChars = chars
	}
}

// CustomReplace sets substring replacements applied before slugification,
// for example {"&": "and", "@": "at"}. Longer keys win over their prefixes.
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		c.customReplace = replacements
	}
}

// WithSuffix appends a random alphanumeric suffix of the given length,
// joined with the separator: "hello-world-x7g3k2".
func WithSuffix(length int) Option {
	return func(c *config) {
		c.suffixLength = length
	}
}

// Make creates a URL-safe slug from s.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if len(cfg.customReplace) > 0 {
		s = replacer(cfg.customReplace).Replace(s)
	}
	if cfg.stripChars != "" {
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(cfg.stripChars, r) {
				return -1
			}
			return r
		}, s)
	}

	s = toASCII(strings.TrimSpace(s))
	if cfg.lowercase {
		s = strings.ToLower(s)
	}
	s = disallowedRegex.ReplaceAllString(s, "")
	s = whitespaceRegex.ReplaceAllLiteralString(s, cfg.separator)
	result := strings.Trim(s, cfg.separator)

	if cfg.maxLength > 0 {
		result = cut(result, cfg.maxLength, cfg.separator)
	}

	if cfg.suffixLength > 0 {
		result = appendSuffix(result, cfg)
	}

	return result
}

// toASCII decomposes s with NFKD and drops every rune outside ASCII, which
// strips accents and transliterates compatibility forms ("ﬁ" → "fi").
func toASCII(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// replacer builds a deterministic replacer from an unordered map.
func replacer(m map[string]string) *strings.Replacer {
	keys := make([]string, 0, len(m))
	for k := range m {
		if k != "" {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, m[k])
	}
	return strings.NewReplacer(pairs...)
}

// cut limits s to maxLen runes and drops a dangling separator.
func cut(s string, maxLen int, separator string) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	r := []rune(s)
	return strings.TrimRight(string(r[:maxLen]), separator)
}

func appendSuffix(result string, cfg *config) string {
	suffixLen := cfg.suffixLength
	if cfg.maxLength > 0 && suffixLen > cfg.maxLength {
		suffixLen = cfg.maxLength
	}
	suffix := generateSuffix(suffixLen, cfg.lowercase)

	if cfg.maxLength > 0 {
		room := cfg.maxLength - utf8.RuneCountInString(cfg.separator) - suffixLen
		if room <= 0 {
			return suffix
		}
		result = cut(result, room, cfg.separator)
	}

	if result == "" {
		return suffix
	}
	return result + cfg.separator + suffix
}

// generateSuffix creates a random alphanumeric suffix of the specified length.
func generateSuffix(length int, lowercase bool) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	const charsUpper = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	charset := chars
	if !lowercase {
		charset = charsUpper
	}

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		// Fallback to deterministic suffix on rand.Read failure
		for i := range b {
			b[i] = charset[i%len(charset)]
		}
		return string(b)
	}

	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}

	return string(b)
}
