package textcase_test

import (
	"testing"

	"github.com/dmitrymomot/textkit/pkg/textcase"
)

var benchInputs = []string{
	"helloWorld",
	"Hello World Test Data",
	"user-first_name last",
	"  Héllo, World!  ",
	"The quick brown fox jumps over the lazy dog",
}

func BenchmarkToSnakeCase(b *testing.B) {
	for _, s := range benchInputs {
		b.Run(s, func(b *testing.B) {
			for b.Loop() {
				_ = textcase.ToSnakeCase(s)
			}
		})
	}
}

func BenchmarkToCamelCase(b *testing.B) {
	for _, s := range benchInputs {
		b.Run(s, func(b *testing.B) {
			for b.Loop() {
				_ = textcase.ToCamelCase(s)
			}
		})
	}
}

func BenchmarkSlugify(b *testing.B) {
	for _, s := range benchInputs {
		b.Run(s, func(b *testing.B) {
			for b.Loop() {
				_ = textcase.Slugify(s)
			}
		})
	}
}

func BenchmarkTruncate(b *testing.B) {
	input := "The quick brown fox jumps over the lazy dog"
	for b.Loop() {
		_ = textcase.Truncate(input, 20)
	}
}
