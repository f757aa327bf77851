package play

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
	"github.com/vinser/snake/internal/engine"
	"github.com/vinser/snake/internal/grid"
	"github.com/vinser/snake/internal/input"
	"github.com/vinser/snake/internal/render"
	"github.com/vinser/snake/internal/style"
)

// TerminalDimensions holds the terminal size information
type TerminalDimensions struct {
	Width  int
	Height int
}

type Model struct {
	engine   *engine.Engine
	snapshot engine.Snapshot
	grid     *grid.Grid
	keys     input.KeyMap
	help     help.Model
	interval time.Duration
	log      *log.Entry

	gen      int  // generation of the tick in flight; older ticks are dropped
	paused   bool // paused by the player
	held     bool // suspended while another screen is shown
	terminal TerminalDimensions
}

// TickMsg advances the game by one step.
// Gen ties the message to the clock that scheduled it, so ticks scheduled
// before a pause, a reset or game over are ignored.
type TickMsg struct {
	Gen  int
	Time time.Time
}

func tick(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// GameOverMsg is a message sent when the snake has crashed.
// It carries the final state for the game over screen.
type GameOverMsg struct {
	Snapshot engine.Snapshot
}

func gameOverCmd(s engine.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return GameOverMsg{Snapshot: s}
	}
}

// New returns a new play model.
func New(e *engine.Engine, g *grid.Grid, keys input.KeyMap, interval time.Duration, l *log.Entry) Model {
	h := help.New()
	h.ShortSeparator = ", "
	return Model{
		engine:   e,
		snapshot: e.Snapshot(),
		grid:     g,
		keys:     keys,
		help:     h,
		interval: interval,
		log:      l,
	}
}

func (m Model) Init() tea.Cmd {
	if !m.running() {
		return nil
	}
	return tick(m.interval, m.gen)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminal = TerminalDimensions{Width: msg.Width, Height: msg.Height}
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Pause) {
			m.paused = !m.paused
			m.log.WithField("paused", m.paused).Debug("pause toggled")
			if m.paused {
				m.gen++
				return m, nil
			}
			return m, m.schedule() // Game is resumed, start ticking again
		}
		if d, ok := m.keys.Direction(msg); ok && !m.paused {
			m.engine.SetDirection(d)
			m.snapshot = m.engine.Snapshot()
		}
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen || !m.running() {
			return m, nil
		}
		m.snapshot = m.engine.Tick()
		if m.snapshot.GameOver {
			m.gen++
			return m, gameOverCmd(m.snapshot)
		}
		return m, tick(m.interval, m.gen)
	}
	return m, nil
}

// Suspend stops the clock while another screen covers the board.
func (m *Model) Suspend() {
	m.held = true
	m.gen++
}

// Resume restarts the clock after Suspend.
func (m *Model) Resume() tea.Cmd {
	m.held = false
	return m.schedule()
}

// Reset starts a new game and restarts the clock.
func (m *Model) Reset() tea.Cmd {
	m.snapshot = m.engine.Reset()
	m.paused = false
	m.held = false
	return m.schedule()
}

// SetGrid switches the sprites used to draw the board.
func (m *Model) SetGrid(g *grid.Grid) {
	m.grid = g
}

// SetKeys switches the key bindings.
func (m *Model) SetKeys(k input.KeyMap) {
	m.keys = k
}

func (m Model) Snapshot() engine.Snapshot {
	return m.snapshot
}

func (m Model) Paused() bool {
	return m.paused
}

func (m Model) running() bool {
	return !m.paused && !m.held && !m.snapshot.GameOver
}

// schedule arms a fresh clock generation if the game may advance.
func (m *Model) schedule() tea.Cmd {
	m.gen++
	if !m.running() {
		return nil
	}
	return tick(m.interval, m.gen)
}

// View returns the complete screen output with the board and stats.
func (m Model) View() string {
	board := render.Board(m.snapshot, m.grid)
	width := lipgloss.Width(board)

	header := " "
	if m.paused {
		header = "PAUSED"
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		style.TopPattern.Render(strings.Repeat("/", width)),
		style.Title.Render(header),
		board,
		m.footer(width),
	)
	if m.terminal.Width > 0 && m.terminal.Height > 0 {
		return lipgloss.Place(m.terminal.Width, m.terminal.Height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

func (m Model) footer(width int) string {
	text := m.help.View(m.keys)
	fill := max(width-lipgloss.Width(text)-1, 0)
	return text + " " + style.Footer.Render(strings.Repeat("/", fill))
}
