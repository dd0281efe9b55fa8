package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlural(t *testing.T) {
	assert.Equal(t, "0 items", Plural(0, "item", "items"))
	assert.Equal(t, "1 item", Plural(1, "item", "items"))
	assert.Equal(t, "2 items", Plural(2, "item", "items"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "hel…", Truncate("hello", 4))
	assert.Equal(t, "", Truncate("hello", 0))
	// Wide runes take two columns each.
	assert.LessOrEqual(t, Width(Truncate("日本語テキスト", 6)), 6)
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", PadRight("ab", 4))
	assert.Equal(t, "abc…", PadRight("abcdef", 4))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "42.5%", Percent(42.5, 1))
	assert.Equal(t, "100%", Percent(100, 0))
}
