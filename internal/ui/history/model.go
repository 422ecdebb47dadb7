package history

import (
	"context"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/fragmede/linkedinify/internal/api"
	"github.com/fragmede/linkedinify/internal/ui/messages"
	"github.com/fragmede/linkedinify/internal/ui/theme"
)

// ErrLoadFailed is shown when the history cannot be fetched.
const ErrLoadFailed = "Could not load history."

const listTitle = "Your LinkedInified posts"

// TokenSource yields the stored credential.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// Fetcher loads a page of history.
type Fetcher interface {
	History(ctx context.Context, token string, page, pageSize int) ([]api.HistoryEntry, error)
}

// lastGen numbers loads across all history models, so a result only ever
// matches the load that asked for it.
var lastGen uint64

// Model is the history list view.
type Model struct {
	list     list.Model
	tokens   TokenSource
	client   Fetcher
	pageSize int
	loading  bool
	gen      uint64
	err      string
	log      *zap.SugaredLogger
	width    int
	height   int
}

// New creates the history view. Call Init to fetch the first page.
func New(tokens TokenSource, client Fetcher, pageSize int, log *zap.SugaredLogger) Model {
	l := list.New(nil, Delegate{}, 0, 0)
	l.Title = listTitle
	l.Styles.Title = theme.ActiveTabStyle
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("post", "posts")

	return Model{
		list:     l,
		tokens:   tokens,
		client:   client,
		pageSize: pageSize,
		log:      log,
	}
}

// Init loads the first page.
func (m *Model) Init() tea.Cmd {
	m.loading = true
	m.err = ""
	m.list.Title = listTitle + " (loading...)"
	m.gen = atomic.AddUint64(&lastGen, 1)
	return m.load()
}

// SetSize updates the viewport dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.list.SetSize(w, h-2)
}

// Filtering reports whether the list filter is taking keystrokes.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Loading() bool { return m.loading }

func (m Model) Err() string { return m.err }

// Len returns the number of entries shown.
func (m Model) Len() int { return len(m.list.Items()) }

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.HistoryLoadedMsg:
		if msg.Gen != m.gen {
			m.log.Debugw("discarding stale history", "gen", msg.Gen, "current", m.gen)
			return m, nil
		}
		m.loading = false
		m.list.Title = listTitle
		if msg.Err != nil {
			m.log.Errorw("loading history", "error", msg.Err)
			m.err = ErrLoadFailed
			m.list.SetItems(nil)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.Entries))
		for i, e := range msg.Entries {
			items = append(items, EntryItem{HistoryEntry: e, Index: i})
		}
		return m, m.list.SetItems(items)

	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(EntryItem); ok {
				text := item.Input
				return m, func() tea.Msg {
					return messages.ReuseInputMsg{Text: text}
				}
			}
			return m, nil
		case "r":
			return m, m.Init()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the list.
func (m Model) View() string {
	if m.err != "" {
		return lipgloss.JoinVertical(lipgloss.Left,
			theme.TitleStyle.Render(listTitle),
			"",
			theme.ErrorStyle.Render(m.err),
			"",
			theme.HintStyle.Render("r to retry, esc to go back"),
		)
	}
	return m.list.View()
}

func (m Model) load() tea.Cmd {
	tokens, client, size, gen := m.tokens, m.client, m.pageSize, m.gen
	return func() tea.Msg {
		ctx := context.Background()
		token, _ := tokens.Token(ctx)
		entries, err := client.History(ctx, token, 1, size)
		return messages.HistoryLoadedMsg{Gen: gen, Entries: entries, Err: err}
	}
}
