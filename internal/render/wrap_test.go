package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestWrap_KeepsText(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"markup", "Lesson learned: growth <mindset> beats fixed thinking."},
		{"entity", "Proud of AT&amp;T partnership"},
		{"spaces", "Step 1:  listen.   Step 2:  lead."},
		{"newlines", "One\n\nTwo"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.in, Wrap(tc.in, 96))
		})
	}
}

func TestWrap_BreaksLongLines(t *testing.T) {
	in := "aaa bbb  ccc <dd> &amp; eee"
	out := Wrap(in, 8)

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 8, "line %q", line)
	}
	assert.Equal(t, in, strings.ReplaceAll(out, "\n", ""))
	assert.Equal(t, "aaa bbb \n ccc \n<dd> \n&amp; \neee", out)
}

func TestWrap_LongWord(t *testing.T) {
	assert.Equal(t, "abcd\nefgh\nij", Wrap("abcdefghij", 4))
	assert.Equal(t, "x", Wrap("x", 0))
}
