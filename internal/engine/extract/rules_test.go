package extract

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapture(t *testing.T) {
	rule := Capture(regexp.MustCompile(`id=(\d+)`))

	v, ok := rule("id=42 id=43")
	assert.True(t, ok)
	assert.Equal(t, "42", v)

	_, ok = rule("no id here")
	assert.False(t, ok)
}

func TestLiteral(t *testing.T) {
	rule := Literal(regexp.MustCompile(`\d+`))

	v, ok := rule("order 42")
	assert.True(t, ok)
	assert.Equal(t, "42", v)

	_, ok = rule("no digits")
	assert.False(t, ok)
}

func TestFirst(t *testing.T) {
	rule := First(
		Capture(regexp.MustCompile(`primary=(\w+)`)),
		Capture(regexp.MustCompile(`fallback=(\w+)`)),
	)

	v, ok := rule("fallback=b primary=a")
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = rule("fallback=b")
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = rule("nothing")
	assert.False(t, ok)
}
