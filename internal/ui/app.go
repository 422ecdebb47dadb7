package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/fragmede/linkedinify/internal/api"
	"github.com/fragmede/linkedinify/internal/auth"
	"github.com/fragmede/linkedinify/internal/config"
	"github.com/fragmede/linkedinify/internal/ui/composer"
	"github.com/fragmede/linkedinify/internal/ui/history"
	"github.com/fragmede/linkedinify/internal/ui/login"
	"github.com/fragmede/linkedinify/internal/ui/messages"
	"github.com/fragmede/linkedinify/internal/ui/statusbar"
)

// ViewType identifies the active view.
type ViewType int

const (
	ViewLogin ViewType = iota
	ViewComposer
	ViewHistory
)

func (v ViewType) label() string {
	switch v {
	case ViewComposer:
		return "Compose"
	case ViewHistory:
		return "History"
	default:
		return "Login"
	}
}

// App is the root Bubble Tea model. Child views are created when they are
// first shown; the composer and history exist only past the login gate.
type App struct {
	// View state
	activeView    ViewType
	previousViews []ViewType

	// Child models
	loginForm login.Model
	composer  composer.Model
	history   history.Model
	statusBar statusbar.Model

	hasLogin    bool
	hasComposer bool
	hasHistory  bool

	// Shared state
	cfg     config.Config
	client  *api.Client
	session *auth.Session
	log     *zap.SugaredLogger

	// Dimensions
	width  int
	height int
}

// NewApp creates the root application model.
func NewApp(cfg config.Config, client *api.Client, session *auth.Session, log *zap.SugaredLogger) *App {
	return &App{
		statusBar: statusbar.New(),
		cfg:       cfg,
		client:    client,
		session:   session,
		log:       log,
	}
}

// ActiveView returns the view currently shown.
func (a *App) ActiveView() ViewType {
	return a.activeView
}

// Init picks the first view from the stored credential.
func (a *App) Init() tea.Cmd {
	ctx := context.Background()
	if !a.session.IsAuthenticated(ctx) {
		a.log.Infow("no stored session, showing login")
		a.showLogin()
		return nil
	}
	a.showComposer(ctx)
	return nil
}

// Update handles all messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.statusBar.SetSize(msg.Width)
		h := a.contentHeight()
		if a.hasLogin {
			a.loginForm.SetSize(msg.Width, h)
		}
		if a.hasComposer {
			a.composer.SetSize(msg.Width, h)
		}
		if a.hasHistory {
			a.history.SetSize(msg.Width, h)
		}
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, Keys.Quit):
			if a.hasComposer {
				a.composer.Cancel()
			}
			return a, tea.Quit
		case a.activeView == ViewLogin:
			// The form takes every other key.
		case a.activeView == ViewComposer && a.composer.Alert() != "":
			// The alert takes the key that dismisses it.
		case key.Matches(msg, Keys.Logout):
			return a, send(messages.LogoutMsg{})
		case key.Matches(msg, Keys.History) && a.activeView == ViewComposer:
			return a, send(messages.OpenHistoryMsg{})
		case key.Matches(msg, Keys.Back) && a.activeView == ViewHistory && !a.history.Filtering():
			return a, send(messages.GoBackMsg{})
		}
		return a, a.routeKey(msg)

	// View transitions.
	case messages.LogoutMsg:
		if !a.hasComposer {
			return a, nil
		}
		return a, a.logout()

	case messages.OpenHistoryMsg:
		if a.activeView != ViewComposer {
			return a, nil
		}
		return a, a.openHistory()

	case messages.GoBackMsg:
		a.goBack()
		return a, nil

	case messages.AuthResultMsg:
		if msg.Err == nil {
			a.log.Infow("signed in", "mode", msg.Mode)
			a.showComposer(context.Background())
			return a, nil
		}
		a.log.Warnw("sign in failed", "mode", msg.Mode, "error", msg.Err)

	case messages.ReuseInputMsg:
		if a.hasComposer {
			a.composer, _ = a.composer.Update(msg)
			a.goBack()
		}
		return a, nil
	}

	return a, a.broadcast(msg)
}

// routeKey sends a key to the active view only.
func (a *App) routeKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch a.activeView {
	case ViewLogin:
		a.loginForm, cmd = a.loginForm.Update(msg)
	case ViewComposer:
		a.composer, cmd = a.composer.Update(msg)
	case ViewHistory:
		a.history, cmd = a.history.Update(msg)
	}
	return cmd
}

// broadcast sends any other message to every live view, so results land in
// their view even when it is not the one shown.
func (a *App) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if a.hasLogin {
		a.loginForm, cmd = a.loginForm.Update(msg)
		cmds = append(cmds, cmd)
	}
	if a.hasComposer {
		a.composer, cmd = a.composer.Update(msg)
		cmds = append(cmds, cmd)
	}
	if a.hasHistory {
		a.history, cmd = a.history.Update(msg)
		cmds = append(cmds, cmd)
	}
	a.statusBar, cmd = a.statusBar.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

// View renders the application.
func (a *App) View() string {
	var content string
	switch a.activeView {
	case ViewLogin:
		content = a.loginForm.View()
	case ViewComposer:
		content = a.composer.View()
	case ViewHistory:
		content = a.history.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, a.statusBar.View())
}

func (a *App) contentHeight() int {
	if a.height <= 1 {
		return 0
	}
	return a.height - 1 // status bar
}

func (a *App) showLogin() {
	a.loginForm = login.New(a.session)
	a.loginForm.SetSize(a.width, a.contentHeight())
	a.hasLogin = true
	a.activeView = ViewLogin
	a.previousViews = nil
	a.statusBar.SetView(ViewLogin.label())
	a.statusBar.ClearAccount()
}

func (a *App) showComposer(ctx context.Context) {
	a.composer = composer.New(a.session, a.client, a.log)
	a.composer.SetSize(a.width, a.contentHeight())
	a.hasComposer = true
	a.hasLogin = false
	a.loginForm = login.Model{}
	a.activeView = ViewComposer
	a.previousViews = nil
	a.statusBar.SetView(ViewComposer.label())
	a.statusBar.SetAccount(a.session.Account(ctx))
	a.statusBar.SetStatus("", false)
}

func (a *App) openHistory() tea.Cmd {
	if !a.session.IsAuthenticated(context.Background()) {
		a.dropSignedInViews()
		a.showLogin()
		return nil
	}
	a.history = history.New(a.session, a.client, a.cfg.HistoryPageSize, a.log)
	a.history.SetSize(a.width, a.contentHeight())
	a.hasHistory = true
	a.pushView(ViewHistory)
	return a.history.Init()
}

// logout cancels any in-flight transform, forgets the credential and
// returns to the login view.
func (a *App) logout() tea.Cmd {
	status := messages.StatusMsg{Text: "Logged out"}
	if err := a.session.Remove(context.Background()); err != nil {
		a.log.Errorw("logging out", "error", err)
		status = messages.StatusMsg{Text: "Could not clear the stored session", IsError: true}
	}
	a.dropSignedInViews()
	a.showLogin()
	return send(status)
}

func (a *App) dropSignedInViews() {
	if a.hasComposer {
		a.composer.Cancel()
	}
	a.composer = composer.Model{}
	a.history = history.Model{}
	a.hasComposer = false
	a.hasHistory = false
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (a *App) pushView(v ViewType) {
	a.previousViews = append(a.previousViews, a.activeView)
	a.activeView = v
	a.statusBar.SetView(v.label())
}

func (a *App) goBack() {
	if len(a.previousViews) == 0 {
		return
	}
	if a.activeView == ViewHistory {
		a.history = history.Model{}
		a.hasHistory = false
	}
	a.activeView = a.previousViews[len(a.previousViews)-1]
	a.previousViews = a.previousViews[:len(a.previousViews)-1]
	a.statusBar.SetView(a.activeView.label())
}
