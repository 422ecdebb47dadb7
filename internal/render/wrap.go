package render

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Wrap breaks text into lines no wider than width cells, preferring to break
// after a space. Only newlines are added; every character of text is kept.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	var sb strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for lipgloss.Width(line) > width {
			cut := breakAt(line, width)
			sb.WriteString(line[:cut])
			sb.WriteByte('\n')
			line = line[cut:]
		}
		sb.WriteString(line)
	}
	return sb.String()
}

// breakAt returns the byte offset to split line at so the head fits in width
// cells. It always advances by at least one rune.
func breakAt(line string, width int) int {
	w, fit, lastSpace := 0, 0, 0
	for i, r := range line {
		rw := lipgloss.Width(string(r))
		if w+rw > width {
			break
		}
		w += rw
		fit = i + utf8.RuneLen(r)
		if r == ' ' {
			lastSpace = fit
		}
	}
	switch {
	case lastSpace > 0:
		return lastSpace
	case fit > 0:
		return fit
	default:
		_, size := utf8.DecodeRuneInString(line)
		return size
	}
}
