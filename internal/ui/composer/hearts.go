package composer

import (
	"math"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fragmede/linkedinify/internal/ui/theme"
)

const (
	heartGlyph    = "♥"
	heartDelay    = 100 * time.Millisecond
	heartFrame    = 80 * time.Millisecond
	heartLifetime = 12 // frames
	stageHeight   = 5
	pulseDuration = 300 * time.Millisecond
)

// heart is one floating heart, positioned relative to the trigger's centre
// in terminal cells. Negative dy is above the trigger.
type heart struct {
	dx  int
	dy  int
	ttl int
}

// Animation messages carry the id of the composer that scheduled them so a
// fresh composer ignores ticks left over from a previous one.
type (
	heartSpawnMsg struct {
		id int
		h  heart
	}
	heartFrameMsg struct{ id int }
	pulseEndMsg   struct {
		id  int
		seq int
	}
)

// burst schedules 5 to 10 hearts scattered around the trigger, each appearing
// heartDelay after the previous.
func (m *Model) burst() tea.Cmd {
	n := m.rng.Intn(6) + 5
	cmds := make([]tea.Cmd, 0, n)
	for i := 0; i < n; i++ {
		angle := m.rng.Float64() * math.Pi * 2
		distance := m.rng.Float64()*3 + 2
		// Cells are roughly twice as tall as they are wide.
		h := heart{
			dx:  int(math.Round(math.Cos(angle) * distance * 2)),
			dy:  -int(math.Round(math.Abs(math.Sin(angle)) * distance / 2)),
			ttl: heartLifetime,
		}
		delay := time.Duration(i) * heartDelay
		id := m.id
		cmds = append(cmds, tea.Tick(delay, func(time.Time) tea.Msg {
			return heartSpawnMsg{id: id, h: h}
		}))
	}
	return tea.Batch(cmds...)
}

func (m *Model) frameTick() tea.Cmd {
	id := m.id
	return tea.Tick(heartFrame, func(time.Time) tea.Msg {
		return heartFrameMsg{id: id}
	})
}

// spawn adds a heart and starts the frame loop if it is idle.
func (m *Model) spawn(h heart) tea.Cmd {
	m.hearts = append(m.hearts, h)
	if m.animating {
		return nil
	}
	m.animating = true
	return m.frameTick()
}

// advance floats every heart one step and drops the expired ones. The loop
// stops once no hearts remain.
func (m *Model) advance() tea.Cmd {
	alive := m.hearts[:0]
	for _, h := range m.hearts {
		h.ttl--
		if h.ttl <= 0 {
			continue
		}
		if h.ttl%3 == 0 {
			h.dy--
		}
		alive = append(alive, h)
	}
	m.hearts = alive
	if len(m.hearts) == 0 {
		m.animating = false
		return nil
	}
	return m.frameTick()
}

// stage renders the hearts in the rows above the trigger. centre is the
// trigger's column.
func (m Model) stage(width, centre int) string {
	if width <= 0 {
		width = 60
	}
	rows := make([][]bool, stageHeight)
	for i := range rows {
		rows[i] = make([]bool, width)
	}
	for _, h := range m.hearts {
		row := stageHeight - 1 + h.dy
		col := centre + h.dx
		if row < 0 || row >= stageHeight || col < 0 || col >= width {
			continue
		}
		rows[row][col] = true
	}

	lines := make([]string, stageHeight)
	for i, row := range rows {
		var sb strings.Builder
		for _, on := range row {
			if on {
				sb.WriteString(theme.HeartStyle.Render(heartGlyph))
			} else {
				sb.WriteByte(' ')
			}
		}
		lines[i] = strings.TrimRight(sb.String(), " ")
	}
	return strings.Join(lines, "\n")
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
