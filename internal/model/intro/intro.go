package intro

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/snake/internal/style"
)

const introPeriod = 2 * time.Second

const banner = `
▄▀▀▀ █▄  █ ▄▀▀▄ █ ▄▀ █▀▀▀
 ▀▀▄ █ ▀▄█ █▀▀█ █▀▄  █▀▀ 
▀▀▀  ▀   ▀ ▀  ▀ ▀  ▀ ▀▀▀▀
`

type Model struct {
	introUntil time.Time
	termWidth  int
	termHeight int
}

// TickMsg is a tick message.
type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// TimedoutMsg ends the intro, either on time or on any key.
type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

func New() Model {
	return Model{
		introUntil: time.Now().Add(introPeriod),
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
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, timedoutCmd()
	}
	if time.Now().After(m.introUntil) {
		return m, timedoutCmd()
	}
	return m, tick()
}

func (m Model) View() string {
	var flash string
	if (time.Now().UnixNano()/int64(time.Millisecond)/500)%2 == 0 {
		flash = "press any key"
	}
	view := lipgloss.JoinVertical(lipgloss.Center, style.Banner.Render(banner), style.Footer.Render(flash))
	if m.termWidth > 0 && m.termHeight > 0 {
		return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}
