package textutil

import (
	"math/rand/v2"
	"strings"
)

// Character sets used by RandomString.
const (
	Letters     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits      = "0123456789"
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// DefaultRandomLength is the length RandomString uses without a Length option.
const DefaultRandomLength = 10

// Source is the random number source used by Generator.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// globalSource draws from the goroutine-safe top-level math/rand/v2 functions.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// RandomOption configures RandomString and NewGenerator.
type RandomOption func(*randomConfig)

type randomConfig struct {
	length  int
	digits  bool
	symbols bool
	source  Source
}

// Length sets the number of characters to generate.
func Length(n int) RandomOption {
	return func(c *randomConfig) {
		c.length = n
	}
}

// WithDigits toggles 0-9 in the alphabet. Enabled by default.
func WithDigits(enabled bool) RandomOption {
	return func(c *randomConfig) {
		c.digits = enabled
	}
}

// WithSymbols toggles ASCII punctuation in the alphabet. Disabled by default.
func WithSymbols(enabled bool) RandomOption {
	return func(c *randomConfig) {
		c.symbols = enabled
	}
}

// WithSource replaces the default random source, for example with a seeded
// *rand.Rand in tests. Nil is ignored.
func WithSource(src Source) RandomOption {
	return func(c *randomConfig) {
		if src != nil {
			c.source = src
		}
	}
}

// Generator produces random strings with a fixed configuration.
// It is safe for concurrent use only if its Source is.
type Generator struct {
	length   int
	alphabet string
	source   Source
}

// NewGenerator builds a Generator from the given options.
func NewGenerator(opts ...RandomOption) *Generator {
	cfg := randomConfig{
		length: DefaultRandomLength,
		digits: true,
		source: globalSource{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	alphabet := Letters
	if cfg.digits {
		alphabet += Digits
	}
	if cfg.symbols {
		alphabet += Punctuation
	}

	return &Generator{
		length:   cfg.length,
		alphabet: alphabet,
		source:   cfg.source,
	}
}

// Alphabet returns the characters the generator draws from.
func (g *Generator) Alphabet() string {
	return g.alphabet
}

// Generate returns a new random string. Each character is picked uniformly and
// independently from the alphabet. A non-positive length yields "".
func (g *Generator) Generate() string {
	if g.length <= 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(g.length)
	for range g.length {
		b.WriteByte(g.alphabet[g.source.IntN(len(g.alphabet))])
	}
	return b.String()
}

// RandomString returns a random string of ASCII letters, digits by default
// and optionally punctuation. Ten characters unless Length says otherwise.
//
// The output is predictable to anyone who can observe or guess the random
// source state. Never use it for passwords, tokens or keys.
func RandomString(opts ...RandomOption) string {
	return NewGenerator(opts...).Generate()
}
