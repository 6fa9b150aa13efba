package textcase_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/pkg/textcase"
	"github.com/dmitrymomot/textkit/pkg/textutil"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "accented padded input", input: "  Héllo, World!  ", expected: "hello-world"},
		{name: "simple", input: "Hello World", expected: "hello-world"},
		{name: "symbols only", input: "?!*", expected: ""},
		{name: "non-latin script removed", input: "Привет world", expected: "world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, textcase.Slugify(tt.input))
		})
	}
}

func TestSlugifyWith(t *testing.T) {
	assert.Equal(t, "hello_world", textcase.SlugifyWith("Hello World", "_"))
	assert.Equal(t, "hello.world", textcase.SlugifyWith(" Hello  World ", "."))
	assert.Equal(t, "helloworld", textcase.SlugifyWith("Hello World", ""))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxLength int
		opts      []textcase.TruncateOption
		expected  string
	}{
		{name: "longer than max", input: "abcdefgh", maxLength: 5, expected: "ab..."},
		{name: "exactly max", input: "abcde", maxLength: 5, expected: "abcde"},
		{name: "shorter than max", input: "abc", maxLength: 5, expected: "abc"},
		{name: "max equals suffix length", input: "abcdefgh", maxLength: 3, expected: "..."},
		{name: "max shorter than suffix", input: "abcdefgh", maxLength: 2, expected: ".."},
		{name: "zero max", input: "abcdefgh", maxLength: 0, expected: ""},
		{name: "negative max", input: "abcdefgh", maxLength: -3, expected: ""},
		{name: "empty input", input: "", maxLength: 0, expected: ""},
		{name: "counts runes", input: "héllo wörld", maxLength: 8, expected: "héllo..."},
		{
			name:      "custom suffix",
			input:     "The quick brown fox",
			maxLength: 10,
			opts:      []textcase.TruncateOption{textcase.WithSuffix("…")},
			expected:  "The quick…",
		},
		{
			name:      "empty suffix",
			input:     "abcdefgh",
			maxLength: 4,
			opts:      []textcase.TruncateOption{textcase.WithSuffix("")},
			expected:  "abcd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := textcase.Truncate(tt.input, tt.maxLength, tt.opts...)
			assert.Equal(t, tt.expected, result)
			if tt.maxLength >= 0 {
				assert.LessOrEqual(t, utf8.RuneCountInString(result), tt.maxLength)
			}
		})
	}
}

func TestTruncateOptions(t *testing.T) {
	t.Run("suffix from defaults", func(t *testing.T) {
		opts := textcase.TruncateOptions(textutil.Defaults{TruncateSuffix: "~"})
		assert.Equal(t, "abcd~", textcase.Truncate("abcdefgh", 5, opts...))
	})

	t.Run("suffix from environment", func(t *testing.T) {
		t.Setenv("TEXTKIT_TRUNCATE_SUFFIX", " [more]")

		d, err := textutil.LoadDefaults()
		require.NoError(t, err)
		assert.Equal(t, "abc [more]", textcase.Truncate("abcdefghijkl", 10, textcase.TruncateOptions(d)...))
	})

	t.Run("built-in default suffix", func(t *testing.T) {
		d, err := textutil.LoadDefaults()
		require.NoError(t, err)
		assert.Equal(t, "ab...", textcase.Truncate("abcdefgh", 5, textcase.TruncateOptions(d)...))
	})
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "ascii", input: "hello", expected: "olleh"},
		{name: "empty", input: "", expected: ""},
		{name: "single rune", input: "x", expected: "x"},
		{name: "multi-byte runes", input: "añb日", expected: "日bña"},
		{name: "palindrome", input: "racecar", expected: "racecar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, textcase.Reverse(tt.input))
		})
	}
}

func TestReverseIsInvolution(t *testing.T) {
	inputs := []string{"", "a", "hello world", "Grüße, 世界!", "é", "🇩🇪🙂"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, in, textcase.Reverse(textcase.Reverse(in)))
		})
	}
}

func TestReverseSplitsCombiningSequences(t *testing.T) {
	// code point reversal moves the accent in front of its base letter
	assert.Equal(t, "\u0301e", textcase.Reverse("e\u0301"))
}
