package quit

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const quitPeriod = 1500 * time.Millisecond

type Model struct {
	score      int
	quitUntil  time.Time
	termWidth  int
	termHeight int
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

func New(score int) Model {
	return Model{
		score:     score,
		quitUntil: time.Now().Add(quitPeriod),
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if time.Now().After(m.quitUntil) {
		return m, timedoutCmd()
	}
	return m, tick()
}

func (m Model) View() string {
	view := fmt.Sprintf("\nFinal score: %d\nBye!\n", m.score)
	if m.termWidth > 0 && m.termHeight > 0 {
		return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}
