package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lorem = "The map projection determines how coordinates on the globe are flattened onto the page and every choice distorts something"

func TestHardWrap_WidthLimit(t *testing.T) {
	for _, width := range []int{12, 20, 40, 72} {
		wrapped := HardWrap(lorem, width)
		for _, line := range strings.Split(wrapped, "\n") {
			assert.LessOrEqual(t, len(line), width, "width %d line %q", width, line)
		}
	}
}

func TestHardWrap_PreservesWords(t *testing.T) {
	wrapped := HardWrap(lorem, 30)
	assert.Equal(t, strings.Fields(lorem), strings.Fields(wrapped))
}

func TestHardWrap_LongWord(t *testing.T) {
	wrapped := HardWrap("a Llanfairpwllgwyngyll b", 8)
	lines := strings.Split(wrapped, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Llanfairpwllgwyngyll", lines[1])
}

func TestHardWrap_Paragraphs(t *testing.T) {
	wrapped := HardWrap("one two three\n\nfour five six", 40)
	assert.Equal(t, "one two three\n\nfour five six", wrapped)
}

func TestHardWrap_Degenerate(t *testing.T) {
	assert.Equal(t, "", HardWrap("", 10))
	assert.Equal(t, lorem, HardWrap(lorem, 0))
}

func TestSplitIntoN(t *testing.T) {
	tests := []struct {
		name string
		text string
		n    int
	}{
		{name: "two parts", text: lorem, n: 2},
		{name: "three parts", text: lorem, n: 3},
		{name: "more parts than words", text: "a b c", n: 5},
		{name: "single part", text: lorem, n: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := SplitIntoN(tt.text, tt.n)
			require.NoError(t, err)
			assert.Len(t, parts, tt.n)
			assert.Equal(t, tt.text, strings.Join(parts, ""))
		})
	}
}

func TestSplitIntoN_BreaksAtWhitespace(t *testing.T) {
	parts, err := SplitIntoN(lorem, 3)
	require.NoError(t, err)
	for _, p := range parts[:len(parts)-1] {
		if p == "" {
			continue
		}
		assert.True(t, strings.HasSuffix(p, " "), "part %q should end at a word boundary", p)
	}
}

func TestSplitIntoN_Error(t *testing.T) {
	_, err := SplitIntoN(lorem, 0)
	assert.Error(t, err)
}
