package login

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fragmede/linkedinify/internal/ui/messages"
	"github.com/fragmede/linkedinify/internal/ui/theme"
)

// Messages shown to the user. Server detail is never surfaced here.
const (
	ErrLoginFailed      = "Invalid email or password"
	ErrRegisterFailed   = "Registration failed. Email may already be in use."
	ErrPasswordMismatch = "Passwords do not match"
	ErrMissingFields    = "Email and password required"
)

// Authenticator signs the user in and stores the resulting token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password string) (string, error)
}

type tab int

const (
	tabLogin tab = iota
	tabRegister
)

// Model is the login/register view.
type Model struct {
	tab    tab
	focus  int
	login  []textinput.Model // email, password
	signup []textinput.Model // email, password, confirm

	err        string
	submitting bool
	auth       Authenticator
	width      int
	height     int
}

// New creates the login view with the Login tab active.
func New(auth Authenticator) Model {
	m := Model{
		login: []textinput.Model{
			newInput("email", false),
			newInput("password", true),
		},
		signup: []textinput.Model{
			newInput("email", false),
			newInput("password", true),
			newInput("confirm password", true),
		},
		auth: auth,
	}
	m.updateFocus()
	return m
}

func newInput(placeholder string, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = 40
	in.CharLimit = 256
	if secret {
		in.EchoMode = textinput.EchoPassword
	}
	return in
}

// SetSize sets the viewport dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Err returns the error line currently shown.
func (m Model) Err() string {
	return m.err
}

// Submitting reports whether a request is in flight.
func (m Model) Submitting() bool {
	return m.submitting
}

func (m *Model) fields() []textinput.Model {
	if m.tab == tabRegister {
		return m.signup
	}
	return m.login
}

func (m *Model) updateFocus() tea.Cmd {
	var cmd tea.Cmd
	fields := m.fields()
	for i := range m.login {
		m.login[i].Blur()
	}
	for i := range m.signup {
		m.signup[i].Blur()
	}
	if m.focus >= 0 && m.focus < len(fields) {
		cmd = fields[m.focus].Focus()
	}
	return cmd
}

func (m *Model) switchTab() tea.Cmd {
	if m.tab == tabLogin {
		m.tab = tabRegister
	} else {
		m.tab = tabLogin
	}
	m.focus = 0
	m.err = ""
	return m.updateFocus()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+t":
			// The pending result belongs to the tab that sent it.
			if m.submitting {
				return m, nil
			}
			return m, m.switchTab()
		case "tab", "down":
			m.focus = (m.focus + 1) % len(m.fields())
			return m, m.updateFocus()
		case "shift+tab", "up":
			n := len(m.fields())
			m.focus = (m.focus + n - 1) % n
			return m, m.updateFocus()
		case "enter":
			return m.submit()
		}

	case messages.AuthResultMsg:
		m.submitting = false
		if msg.Err == nil {
			return m, nil
		}
		if msg.Mode == messages.AuthRegister {
			m.err = ErrRegisterFailed
		} else {
			m.err = ErrLoginFailed
		}
		return m, nil
	}

	var cmd tea.Cmd
	fields := m.fields()
	if m.focus < len(fields) {
		fields[m.focus], cmd = fields[m.focus].Update(msg)
	}
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	m.err = ""

	auth := m.auth
	if m.tab == tabRegister {
		email := strings.TrimSpace(m.signup[0].Value())
		password := m.signup[1].Value()
		if password != m.signup[2].Value() {
			m.err = ErrPasswordMismatch
			return m, nil
		}
		if email == "" || password == "" {
			m.err = ErrMissingFields
			return m, nil
		}
		m.submitting = true
		return m, func() tea.Msg {
			_, err := auth.Register(context.Background(), email, password)
			return messages.AuthResultMsg{Mode: messages.AuthRegister, Err: err}
		}
	}

	email := strings.TrimSpace(m.login[0].Value())
	password := m.login[1].Value()
	if email == "" || password == "" {
		m.err = ErrMissingFields
		return m, nil
	}
	m.submitting = true
	return m, func() tea.Msg {
		_, err := auth.Login(context.Background(), email, password)
		return messages.AuthResultMsg{Mode: messages.AuthLogin, Err: err}
	}
}

// View renders the login form.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(theme.TitleStyle.Render("LinkedInify"))
	sb.WriteString("\n\n")

	loginTab, registerTab := theme.InactiveTabStyle, theme.InactiveTabStyle
	if m.tab == tabLogin {
		loginTab = theme.ActiveTabStyle
	} else {
		registerTab = theme.ActiveTabStyle
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		loginTab.Render("Login"), " ", registerTab.Render("Register")))
	sb.WriteString("\n\n")

	labels := []string{"Email:", "Password:", "Confirm password:"}
	for i, in := range m.fields() {
		sb.WriteString(theme.LabelStyle.Render(labels[i]))
		sb.WriteString("\n")
		sb.WriteString(in.View())
		sb.WriteString("\n\n")
	}

	if m.err != "" {
		sb.WriteString(theme.ErrorStyle.Render(m.err))
		sb.WriteString("\n\n")
	}

	if m.submitting {
		if m.tab == tabRegister {
			sb.WriteString("Creating account...")
		} else {
			sb.WriteString("Logging in...")
		}
	} else {
		sb.WriteString(theme.FocusedStyle.Render("Enter") + " to submit, " +
			theme.FocusedStyle.Render("Ctrl+T") + " to switch tab, " +
			theme.FocusedStyle.Render("Ctrl+C") + " to quit")
	}

	content := sb.String()
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
