package textutil

import "errors"

var (
	// ErrInvalidMaskChar is returned when the configured mask character is not exactly one rune.
	ErrInvalidMaskChar = errors.New("mask char must be a single rune")

	// ErrInvalidDefaults is returned when configured defaults are out of range.
	ErrInvalidDefaults = errors.New("invalid text utility defaults")
)
