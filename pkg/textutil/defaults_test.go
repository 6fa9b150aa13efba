package textutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/pkg/config"
	"github.com/dmitrymomot/textkit/pkg/textutil"
)

func TestLoadDefaults(t *testing.T) {
	t.Run("built-in defaults", func(t *testing.T) {
		d, err := textutil.LoadDefaults()
		require.NoError(t, err)

		assert.Equal(t, textutil.Defaults{
			MaskVisibleStart: 4,
			MaskVisibleEnd:   4,
			MaskChar:         "*",
			RandomLength:     10,
			RandomDigits:     true,
			RandomSymbols:    false,
			TruncateSuffix:   "...",
		}, d)
		assert.Equal(t, "1234*****0123", textutil.MaskString("1234567890123", d.MaskOptions()...))
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("TEXTKIT_MASK_VISIBLE_START", "2")
		t.Setenv("TEXTKIT_MASK_VISIBLE_END", "1")
		t.Setenv("TEXTKIT_MASK_CHAR", "#")
		t.Setenv("TEXTKIT_RANDOM_LENGTH", "6")
		t.Setenv("TEXTKIT_RANDOM_DIGITS", "false")

		d, err := textutil.LoadDefaults()
		require.NoError(t, err)

		assert.Equal(t, "12####7", textutil.MaskString("1234567", d.MaskOptions()...))
		assert.Regexp(t, "^[A-Za-z]{6}$", textutil.RandomString(d.RandomOptions()...))
	})

	t.Run("env file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("TEXTKIT_TRUNCATE_SUFFIX=~\n"), 0o600))
		t.Setenv("TEXTKIT_TRUNCATE_SUFFIX", "")
		require.NoError(t, os.Unsetenv("TEXTKIT_TRUNCATE_SUFFIX"))

		d, err := textutil.LoadDefaults(path)
		require.NoError(t, err)
		assert.Equal(t, "~", d.TruncateSuffix)
	})

	t.Run("missing env file", func(t *testing.T) {
		_, err := textutil.LoadDefaults(filepath.Join(t.TempDir(), "nope.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFiles)
	})

	t.Run("unparsable value", func(t *testing.T) {
		t.Setenv("TEXTKIT_RANDOM_LENGTH", "ten")
		_, err := textutil.LoadDefaults()
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("multi-rune mask char", func(t *testing.T) {
		t.Setenv("TEXTKIT_MASK_CHAR", "**")
		_, err := textutil.LoadDefaults()
		assert.ErrorIs(t, err, textutil.ErrInvalidDefaults)
		assert.ErrorIs(t, err, textutil.ErrInvalidMaskChar)
	})
}

func TestDefaultsValidate(t *testing.T) {
	valid := textutil.Defaults{MaskVisibleStart: 4, MaskVisibleEnd: 4, MaskChar: "*", RandomLength: 10}
	require.NoError(t, valid.Validate())

	negative := valid
	negative.MaskVisibleEnd = -1
	assert.ErrorIs(t, negative.Validate(), textutil.ErrInvalidDefaults)

	badLength := valid
	badLength.RandomLength = -2
	assert.ErrorIs(t, badLength.Validate(), textutil.ErrInvalidDefaults)

	emptyChar := valid
	emptyChar.MaskChar = ""
	assert.ErrorIs(t, emptyChar.Validate(), textutil.ErrInvalidMaskChar)
}
