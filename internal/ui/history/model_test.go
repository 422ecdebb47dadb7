package history

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fragmede/linkedinify/internal/api"
	"github.com/fragmede/linkedinify/internal/logging"
	"github.com/fragmede/linkedinify/internal/ui/messages"
)

type staticToken string

func (s staticToken) Token(context.Context) (string, bool) { return string(s), s != "" }

type fakeFetcher struct {
	entries  []api.HistoryEntry
	err      error
	token    string
	page     int
	pageSize int
}

func (f *fakeFetcher) History(_ context.Context, token string, page, pageSize int) ([]api.HistoryEntry, error) {
	f.token, f.page, f.pageSize = token, page, pageSize
	return f.entries, f.err
}

func loaded(t *testing.T, ff *fakeFetcher) Model {
	t.Helper()
	m := New(staticToken("tok"), ff, 25, logging.Nop())
	m.SetSize(80, 30)
	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.True(t, m.Loading())
	m, _ = m.Update(cmd())
	return m
}

func TestLoad_FetchesFirstPage(t *testing.T) {
	ff := &fakeFetcher{entries: []api.HistoryEntry{
		{ID: "1", Input: "we shipped", Post: "Humbled to announce we shipped."},
		{ID: "2", Input: "lunch", Post: "Lunch taught me about leadership."},
	}}
	m := loaded(t, ff)

	assert.Equal(t, "tok", ff.token)
	assert.Equal(t, 1, ff.page)
	assert.Equal(t, 25, ff.pageSize)
	assert.False(t, m.Loading())
	assert.Empty(t, m.Err())
	assert.Equal(t, 2, m.Len())
	assert.Contains(t, m.View(), "we shipped")
}

func TestLoad_ErrorShowsFixedMessage(t *testing.T) {
	ff := &fakeFetcher{err: errors.New("fetching history: HTTP 401: token expired")}
	m := loaded(t, ff)

	assert.Equal(t, ErrLoadFailed, m.Err())
	assert.Zero(t, m.Len())
	assert.Contains(t, m.View(), ErrLoadFailed)
	assert.NotContains(t, m.View(), "token expired")
}

func TestRetryClearsError(t *testing.T) {
	ff := &fakeFetcher{err: errors.New("down")}
	m := loaded(t, ff)
	require.NotEmpty(t, m.Err())

	ff.err = nil
	ff.entries = []api.HistoryEntry{{ID: "1", Input: "x", Post: "y"}}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	assert.Empty(t, m.Err())
	m, _ = m.Update(cmd())
	assert.Equal(t, 1, m.Len())
}

func TestEnter_ReusesInput(t *testing.T) {
	ff := &fakeFetcher{entries: []api.HistoryEntry{{ID: "1", Input: "we shipped", Post: "p"}}}
	m := loaded(t, ff)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ReuseInputMsg{Text: "we shipped"}, cmd())
}

func TestEntryItem(t *testing.T) {
	e := EntryItem{HistoryEntry: api.HistoryEntry{
		Input: "line one\nline   two",
		Post:  "<p>Big &amp; bold</p>",
	}}
	assert.Equal(t, "line one line two", e.Title())
	assert.Equal(t, "→ Big & bold", e.Description())

	long := EntryItem{HistoryEntry: api.HistoryEntry{Input: strings.Repeat("a", 200)}}
	assert.Equal(t, previewLen, len([]rune(long.Title())))
	assert.True(t, strings.HasSuffix(long.Title(), "…"))
	assert.Equal(t, "(no post)", long.Description())
}

func TestStaleLoadDiscarded(t *testing.T) {
	ff := &fakeFetcher{entries: []api.HistoryEntry{{ID: "1", Input: "first", Post: "p"}}}
	m := New(staticToken("tok"), ff, 25, logging.Nop())
	m.SetSize(80, 30)

	first := m.Init()
	require.NotNil(t, first)
	firstMsg := first()

	// A retry supersedes the first load.
	ff.entries = []api.HistoryEntry{{ID: "1", Input: "a", Post: "p"}, {ID: "2", Input: "b", Post: "q"}}
	second := m.Init()
	require.NotNil(t, second)

	m, _ = m.Update(firstMsg)
	assert.True(t, m.Loading())
	assert.Zero(t, m.Len())

	m, _ = m.Update(second())
	assert.False(t, m.Loading())
	assert.Equal(t, 2, m.Len())
}

func TestLoadForOtherModelIgnored(t *testing.T) {
	ff := &fakeFetcher{err: errors.New("down")}
	old := New(staticToken("tok"), ff, 25, logging.Nop())
	late := old.Init()

	fresh := loaded(t, &fakeFetcher{entries: []api.HistoryEntry{{ID: "1", Input: "x", Post: "y"}}})
	fresh, _ = fresh.Update(late())

	assert.Empty(t, fresh.Err())
	assert.Equal(t, 1, fresh.Len())
}
