package over

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/snake/internal/engine"
	"github.com/vinser/snake/internal/grid"
	"github.com/vinser/snake/internal/render"
	"github.com/vinser/snake/internal/style"
)

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	snapshot engine.Snapshot
	grid     *grid.Grid
}

// PlayAgainMsg is a message sent when the user chooses to play again.
type PlayAgainMsg struct{}

func playAgainCmd() tea.Cmd {
	return func() tea.Msg {
		return PlayAgainMsg{}
	}
}

// QuitGameMsg is a message sent when the user chooses to quit from the game over screen.
type QuitGameMsg struct{}

func quitGameCmd() tea.Cmd {
	return func() tea.Msg {
		return QuitGameMsg{}
	}
}

// New returns the game over screen for the final state s drawn with g.
func New(s engine.Snapshot, g *grid.Grid) Model {
	w, h := g.Size()
	return Model{
		width:    w + 2,
		height:   h + 8,
		snapshot: s,
		grid:     g,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r", "enter", " ":
			return m, playAgainCmd()
		case "q", "esc":
			return m, quitGameCmd()
		}
	}
	return m, nil
}

const footer = "r — play again, q — quit"

func (m Model) View() string {
	return render.Page("Game Over!", m.renderContent(), footer, m.width, m.height, m.termWidth, m.termHeight)
}

func (m Model) renderContent() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		render.Board(m.snapshot, m.grid),
		"",
		style.GameOver.Render(fmt.Sprintf("Your score: %d", m.snapshot.Score)),
	)
}

func (m Model) Score() int {
	return m.snapshot.Score
}
