package composer

import (
	"context"
	"math/rand"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/fragmede/linkedinify/internal/render"
	"github.com/fragmede/linkedinify/internal/ui/messages"
	"github.com/fragmede/linkedinify/internal/ui/theme"
)

const (
	AlertEmptyInput = "Please enter some text to LinkedInify"
	LoadingText     = "Transforming your text..."
	FailureText     = "Something went wrong. Please try again."
	FallbackPost    = "I'm thrilled to announce that we're embarking on an exciting new journey..."
	ExampleInput    = "We started a new project last week."
)

var submitKey = key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "LinkedInify"))

// TokenSource yields the stored credential.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// Transformer rewrites text.
type Transformer interface {
	Transform(ctx context.Context, token, text string) (string, error)
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Model is the main view: an input, the trigger, and the rewritten output.
type Model struct {
	id      int
	input   textarea.Model
	spinner spinner.Model

	output   string
	loading  bool
	disabled bool
	alert    string

	pulse     bool
	pulseSeq  int
	hearts    []heart
	animating bool
	rng       *rand.Rand

	// gen numbers transform requests; only the result for the current
	// generation is applied.
	gen    uint64
	cancel context.CancelFunc

	tokens TokenSource
	client Transformer
	log    *zap.SugaredLogger
	width  int
	height int
}

// New creates the composer with the example text filled in.
func New(tokens TokenSource, client Transformer, log *zap.SugaredLogger) Model {
	ta := textarea.New()
	ta.Placeholder = "Write something casual..."
	ta.SetValue(ExampleInput)
	ta.Focus()
	ta.SetWidth(80)
	ta.SetHeight(5)

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Blue)),
	)

	return Model{
		id:      nextID(),
		input:   ta,
		spinner: sp,
		rng:     newRand(),
		tokens:  tokens,
		client:  client,
		log:     log,
	}
}

// SetSize sets the viewport dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	tw := w - 4
	if tw > 100 {
		tw = 100
	}
	if tw < 20 {
		tw = 20
	}
	m.input.SetWidth(tw)
}

// Output returns the raw text of the output area.
func (m Model) Output() string { return m.output }

func (m Model) Loading() bool { return m.loading }

func (m Model) Disabled() bool { return m.disabled }

// Alert returns the blocking alert text, empty when none is shown.
func (m Model) Alert() string { return m.alert }

func (m Model) Pulsing() bool { return m.pulse }

// SetInput replaces the input text.
func (m *Model) SetInput(s string) {
	m.input.SetValue(s)
}

// Cancel abandons the in-flight request, if any. Its result will be
// discarded when it arrives.
func (m *Model) Cancel() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if m.loading {
		m.gen++
		m.loading = false
		m.disabled = false
		m.output = ""
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The alert swallows the key that dismisses it.
		if m.alert != "" {
			m.alert = ""
			return m, nil
		}
		if key.Matches(msg, submitKey) {
			return m.trigger()
		}

	case messages.TransformResultMsg:
		m.finish(msg)
		return m, nil

	case messages.ReuseInputMsg:
		m.input.SetValue(msg.Text)
		return m, nil

	case heartSpawnMsg:
		if msg.id != m.id {
			return m, nil
		}
		return m, m.spawn(msg.h)

	case heartFrameMsg:
		if msg.id != m.id {
			return m, nil
		}
		return m, m.advance()

	case pulseEndMsg:
		if msg.id == m.id && msg.seq == m.pulseSeq {
			m.pulse = false
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) trigger() (Model, tea.Cmd) {
	if m.disabled {
		return m, nil
	}
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		m.alert = AlertEmptyInput
		return m, nil
	}

	m.pulse = true
	m.pulseSeq++
	id, seq := m.id, m.pulseSeq
	pulse := tea.Tick(pulseDuration, func(time.Time) tea.Msg {
		return pulseEndMsg{id: id, seq: seq}
	})
	hearts := m.burst()

	m.disabled = true
	m.loading = true
	m.output = LoadingText

	m.gen++
	gen := m.gen
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	tokens, client := m.tokens, m.client
	request := func() tea.Msg {
		token, _ := tokens.Token(ctx)
		post, err := client.Transform(ctx, token, text)
		return messages.TransformResultMsg{Gen: gen, Post: post, Err: err}
	}

	m.log.Debugw("transform started", "gen", gen, "chars", len(text))
	return m, tea.Batch(pulse, hearts, m.spinner.Tick, request)
}

func (m *Model) finish(msg messages.TransformResultMsg) {
	if msg.Gen != m.gen {
		m.log.Debugw("discarding stale transform result", "gen", msg.Gen, "current", m.gen)
		return
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.disabled = false
	m.loading = false

	switch {
	case msg.Err != nil:
		m.log.Errorw("transform failed", "gen", msg.Gen, "error", msg.Err)
		m.output = FailureText
	case msg.Post == "":
		m.output = FallbackPost
	default:
		m.output = msg.Post
	}
}

// View renders the composer.
func (m Model) View() string {
	if m.alert != "" {
		box := theme.AlertStyle.Render(m.alert + "\n\n" + theme.HintStyle.Render("press any key"))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}

	var sb strings.Builder

	sb.WriteString(theme.TitleStyle.Render("LinkedInify"))
	sb.WriteString(theme.HintStyle.Render("  everyday text, thought-leadership tone"))
	sb.WriteString("\n\n")

	sb.WriteString(theme.LabelStyle.Render("Your text:"))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")

	var button string
	switch {
	case m.disabled:
		button = theme.ButtonDisabledStyle.Render("LinkedInify ♥")
	case m.pulse:
		button = theme.ButtonPulseStyle.Render("LinkedInify ♥")
	default:
		button = theme.ButtonStyle.Render("LinkedInify ♥")
	}
	sb.WriteString(m.stage(m.width, lipgloss.Width(button)/2))
	sb.WriteString("\n")
	sb.WriteString(button)
	sb.WriteString("\n\n")

	sb.WriteString(theme.LabelStyle.Render("LinkedIn version:"))
	sb.WriteString("\n")
	var out string
	switch {
	case m.loading:
		out = m.spinner.View() + " " + LoadingText
	case m.output == "":
		out = theme.HintStyle.Render("Your post will appear here.")
	default:
		w := m.width - 6
		if w > 96 {
			w = 96
		}
		out = render.Wrap(m.output, w)
	}
	sb.WriteString(theme.OutputStyle.Render(out))
	sb.WriteString("\n\n")

	sb.WriteString(theme.HintStyle.Render("Ctrl+S LinkedInify | Ctrl+R history | Ctrl+L log out | Ctrl+C quit"))
	return sb.String()
}
