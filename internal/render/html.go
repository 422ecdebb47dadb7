package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xhtml "golang.org/x/net/html"
)

// ToText converts a post returned by the backend to wrapped plain text.
// Posts are usually plain text, but model output sometimes carries HTML
// entities or simple markup (<p>, <br>, <b>, <i>); those are flattened.
func ToText(raw string, width int) string {
	if raw == "" {
		return ""
	}

	tokenizer := xhtml.NewTokenizer(strings.NewReader(raw))
	var sb strings.Builder

	for {
		tt := tokenizer.Next()
		switch tt {
		case xhtml.ErrorToken:
			return wrapText(strings.TrimSpace(sb.String()), width)

		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			t := tokenizer.Token()
			switch t.Data {
			case "p":
				if sb.Len() > 0 {
					sb.WriteString("\n\n")
				}
			case "br":
				sb.WriteString("\n")
			case "li":
				sb.WriteString("\n• ")
			}

		case xhtml.TextToken:
			// Token() unescapes entities.
			sb.WriteString(tokenizer.Token().Data)
		}
	}
}

// wrapText performs word wrapping to the given display width.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	var result strings.Builder
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}
		lineLen := 0
		for i, word := range words {
			wlen := lipgloss.Width(word)
			if i > 0 && lineLen+1+wlen > width {
				result.WriteString("\n")
				lineLen = 0
			} else if i > 0 {
				result.WriteString(" ")
				lineLen++
			}
			result.WriteString(word)
			lineLen += wlen
		}
		result.WriteString("\n")
	}
	return strings.TrimRight(result.String(), "\n")
}
