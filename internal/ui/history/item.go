package history

import (
	"fmt"
	"strings"

	"github.com/fragmede/linkedinify/internal/api"
	"github.com/fragmede/linkedinify/internal/render"
)

const previewLen = 72

// EntryItem wraps a history entry for the bubbles list.
type EntryItem struct {
	api.HistoryEntry
	Index int
}

func (e EntryItem) Title() string {
	return preview(e.Input)
}

func (e EntryItem) Description() string {
	if e.Post == "" {
		return "(no post)"
	}
	return "→ " + preview(render.ToText(e.Post, 0))
}

func (e EntryItem) FilterValue() string {
	return e.Input + " " + e.Post
}

// preview collapses s to one line of at most previewLen runes.
func preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= previewLen {
		return s
	}
	return fmt.Sprintf("%s…", string(r[:previewLen-1]))
}
