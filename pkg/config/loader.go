package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadEnv loads variables from the given .env files into the process
// environment. Without arguments it reads ".env" from the working directory.
// Files earlier in the list take precedence; existing variables are kept.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFiles, err)
	}
	return nil
}

// Load parses environment variables into v according to its `env` and
// `envDefault` field tags.
//
// Example:
//
//	type RandomConfig struct {
//		Length  int  `env:"TEXTKIT_RANDOM_LENGTH" envDefault:"10"`
//		Symbols bool `env:"TEXTKIT_RANDOM_SYMBOLS" envDefault:"false"`
//	}
//
//	var cfg RandomConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
