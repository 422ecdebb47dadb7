package statusbar

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fragmede/linkedinify/internal/ui/messages"
	"github.com/fragmede/linkedinify/internal/ui/theme"
)

var (
	barStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(theme.White)

	brandStyle = lipgloss.NewStyle().
			Background(theme.Blue).
			Foreground(theme.White).
			Bold(true).
			Padding(0, 1)

	viewStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#555555")).
			Foreground(lipgloss.Color("#CCCCCC")).
			Padding(0, 1)

	accountStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#00FF00")).
			Padding(0, 1)

	statusTextStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#AAAAAA")).
			Padding(0, 1)

	errorTextStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#8B0000")).
			Foreground(theme.White).
			Bold(true).
			Padding(0, 1)
)

// Model is the status bar at the bottom of the screen.
type Model struct {
	width     int
	view      string
	account   string
	signedIn  bool
	status    string
	statusErr bool
}

// New creates a new status bar.
func New() Model {
	return Model{}
}

// SetSize sets the width.
func (m *Model) SetSize(w int) {
	m.width = w
}

// SetView sets the label of the active view.
func (m *Model) SetView(label string) {
	m.view = label
}

// SetAccount marks the bar signed in. label may be empty when the token
// carries no readable subject.
func (m *Model) SetAccount(label string) {
	m.signedIn = true
	m.account = label
}

// ClearAccount marks the bar signed out.
func (m *Model) ClearAccount() {
	m.signedIn = false
	m.account = ""
}

// SetStatus sets a temporary status message.
func (m *Model) SetStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// Update picks up status messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if s, ok := msg.(messages.StatusMsg); ok {
		m.SetStatus(s.Text, s.IsError)
	}
	return m, nil
}

// View renders the status bar.
func (m Model) View() string {
	left := brandStyle.Render("LinkedInify")
	if m.view != "" {
		left += viewStyle.Render(m.view)
	}

	var right string
	if m.status != "" {
		if m.statusErr {
			right += errorTextStyle.Render(m.status)
		} else {
			right += statusTextStyle.Render(m.status)
		}
	}
	switch {
	case m.signedIn && m.account != "":
		right += accountStyle.Render(m.account)
	case m.signedIn:
		right += accountStyle.Render("signed in")
	default:
		right += statusTextStyle.Render("not signed in")
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	mid := barStyle.Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, left, mid, right)
}
