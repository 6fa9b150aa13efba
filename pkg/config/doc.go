// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment.
//     Variables that are already set are never overwritten.
//   - Load parses the environment into any struct annotated with `env` tags.
//   - MustLoad panics on failure, for configuration the caller cannot run
//     without.
//
// # Usage
//
//	type MaskConfig struct {
//	    VisibleStart int    `env:"TEXTKIT_MASK_VISIBLE_START" envDefault:"4"`
//	    MaskChar     string `env:"TEXTKIT_MASK_CHAR" envDefault:"*"`
//	}
//
//	if err := config.LoadEnv("./config/.env"); err != nil {
//	    return err
//	}
//
//	var cfg MaskConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Each Load call parses the current environment, so tests can change
// variables with t.Setenv between calls.
//
// # Error Handling
//
// Sentinel errors can be matched with errors.Is:
//
//   - ErrNilPointer      – nil pointer passed to Load or MustLoad.
//   - ErrParsingConfig   – env vars could not be parsed into the struct.
//   - ErrLoadingEnvFiles – a .env file could not be read.
//
// The underlying library error is joined to the sentinel.
package config
