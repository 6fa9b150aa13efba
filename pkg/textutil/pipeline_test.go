package textutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/textkit/pkg/textutil"
)

func TestApply(t *testing.T) {
	assert.Equal(t, "HELLO", textutil.Apply("  hello ", strings.TrimSpace, strings.ToUpper))
	assert.Equal(t, "unchanged", textutil.Apply("unchanged"))
	assert.Equal(t, 9, textutil.Apply(1, func(n int) int { return n + 2 }, func(n int) int { return n * 3 }))
}

func TestCompose(t *testing.T) {
	clean := textutil.Compose(
		strings.TrimSpace,
		textutil.RemoveAccents,
		strings.ToLower,
	)

	assert.Equal(t, "creme brulee", clean("  Crème Brûlée "))
	assert.Equal(t, "ecole", clean("École"))
}
