package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	testCases := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1 000",
		1234567: "1 234 567",
		-45000:  "-45 000",
		100000:  "100 000",
	}
	for in, want := range testCases {
		assert.Equal(t, want, formatNumber(in), "formatNumber(%d)", in)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Slay th...", truncate("Slay the giant rat", 10))
	assert.Equal(t, "Épé...", truncate("Épée magique", 6))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}

func TestNextThemeName(t *testing.T) {
	names := ThemeNames()
	assert.Equal(t, names[1], nextThemeName(names[0], 1))
	assert.Equal(t, names[len(names)-1], nextThemeName(names[0], -1))
	assert.Equal(t, DefaultTheme, newStyles("unknown").theme)
}
