package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestToText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"empty", "", 40, ""},
		{"plain", "Rewritten!", 40, "Rewritten!"},
		{"entities", "Q&amp;A &#128640; time", 0, "Q&A 🚀 time"},
		{"paragraphs", "<p>One</p><p>Two</p>", 0, "One\n\nTwo"},
		{"br", "line one<br>line two", 0, "line one\nline two"},
		{"strips tags", "<b>Big</b> <i>news</i>", 0, "Big news"},
		{"wraps", "aaa bbb ccc", 7, "aaa bbb\nccc"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToText(tc.in, tc.width))
		})
	}
}

func TestToText_WrapWidthRespected(t *testing.T) {
	in := "I'm thrilled to announce that we're embarking on an exciting new journey #growth #synergy 🚀🚀"
	out := ToText(in, 20)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 20, "line %q", line)
	}
}
