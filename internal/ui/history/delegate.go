package history

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fragmede/linkedinify/internal/ui/theme"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.White)

	descStyle = lipgloss.NewStyle().
			Foreground(theme.Gray)

	selectedTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(theme.Blue)

	selectedDescStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#CCCCCC"))

	indexStyle = lipgloss.NewStyle().
			Foreground(theme.Blue).
			Width(4).
			Align(lipgloss.Right)
)

type Delegate struct{}

func (d Delegate) Height() int                             { return 2 }
func (d Delegate) Spacing() int                            { return 1 }
func (d Delegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d Delegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	entry, ok := listItem.(EntryItem)
	if !ok {
		return
	}

	idx := indexStyle.Render(fmt.Sprintf("%d.", entry.Index+1))

	title, desc := titleStyle, descStyle
	if index == m.Index() {
		title, desc = selectedTitleStyle, selectedDescStyle
	}
	fmt.Fprintf(w, "%s %s\n     %s", idx, title.Render(entry.Title()), desc.Render(entry.Description()))
}
