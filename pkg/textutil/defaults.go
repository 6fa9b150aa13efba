package textutil

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dmitrymomot/textkit/pkg/config"
)

// Defaults holds package-wide settings that can be supplied through the
// environment instead of code.
type Defaults struct {
	MaskVisibleStart int    `env:"TEXTKIT_MASK_VISIBLE_START" envDefault:"4"`
	MaskVisibleEnd   int    `env:"TEXTKIT_MASK_VISIBLE_END" envDefault:"4"`
	MaskChar         string `env:"TEXTKIT_MASK_CHAR" envDefault:"*"`
	RandomLength     int    `env:"TEXTKIT_RANDOM_LENGTH" envDefault:"10"`
	RandomDigits     bool   `env:"TEXTKIT_RANDOM_DIGITS" envDefault:"true"`
	RandomSymbols    bool   `env:"TEXTKIT_RANDOM_SYMBOLS" envDefault:"false"`
	TruncateSuffix   string `env:"TEXTKIT_TRUNCATE_SUFFIX" envDefault:"..."`
}

// LoadDefaults reads Defaults from the environment, loading the given .env
// files first when any are passed.
func LoadDefaults(envFiles ...string) (Defaults, error) {
	if len(envFiles) > 0 {
		if err := config.LoadEnv(envFiles...); err != nil {
			return Defaults{}, err
		}
	}

	var d Defaults
	if err := config.Load(&d); err != nil {
		return Defaults{}, err
	}
	if err := d.Validate(); err != nil {
		return Defaults{}, err
	}
	return d, nil
}

// Validate reports settings the helpers cannot honour.
func (d Defaults) Validate() error {
	if utf8.RuneCountInString(d.MaskChar) != 1 {
		return errors.Join(ErrInvalidDefaults, fmt.Errorf("%w: %q", ErrInvalidMaskChar, d.MaskChar))
	}
	if d.MaskVisibleStart < 0 || d.MaskVisibleEnd < 0 {
		return errors.Join(ErrInvalidDefaults, fmt.Errorf("mask visible counts must not be negative: start=%d end=%d", d.MaskVisibleStart, d.MaskVisibleEnd))
	}
	if d.RandomLength < 0 {
		return errors.Join(ErrInvalidDefaults, fmt.Errorf("random length must not be negative: %d", d.RandomLength))
	}
	return nil
}

// MaskOptions converts the mask settings into options for MaskString.
func (d Defaults) MaskOptions() []MaskOption {
	opts := []MaskOption{
		VisibleStart(d.MaskVisibleStart),
		VisibleEnd(d.MaskVisibleEnd),
	}
	if r, size := utf8.DecodeRuneInString(d.MaskChar); size > 0 {
		opts = append(opts, MaskChar(r))
	}
	return opts
}

// RandomOptions converts the random string settings into options for
// RandomString and NewGenerator.
func (d Defaults) RandomOptions() []RandomOption {
	return []RandomOption{
		Length(d.RandomLength),
		WithDigits(d.RandomDigits),
		WithSymbols(d.RandomSymbols),
	}
}
