package about

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/snake/internal/embeddata"
	"github.com/vinser/snake/internal/input"
	"github.com/vinser/snake/internal/render"
)

type Model struct {
	footer      string
	width       int
	height      int
	startHeight int
	termWidth   int
	termHeight  int

	viewport viewport.Model
}

type CloseAboutMsg struct{}

func closeAboutCmd() tea.Cmd {
	return func() tea.Msg {
		return CloseAboutMsg{}
	}
}

// New returns the about page. The footer reminds the player of the keys that steer.
func New(keys input.KeyMap, width, height int) Model {
	footer := fmt.Sprintf("%s — steer, pgup pgdn — scroll, esc — back", keys.Up.Help().Key)
	if width < lipgloss.Width(footer) {
		width = lipgloss.Width(footer)
	}
	content, err := embeddata.ReadAboutMD()
	if err != nil {
		content = []byte("Steer with the arrow keys, eat the food, avoid walls and yourself.")
	}

	vp := viewport.New(width, height)
	vp.Style = lipgloss.NewStyle()
	const glamourGutter = 2
	vp.SetContent(glamContent(string(content), width, vp.Style.GetHorizontalFrameSize(), glamourGutter))

	return Model{
		footer:      footer,
		width:       width,
		height:      height,
		startHeight: height,

		viewport: vp,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
	if m.startHeight > m.termHeight-5 {
		m.height = m.termHeight
		m.viewport.Height = max(m.termHeight-5, 1)
	} else {
		m.height = m.startHeight
		m.viewport.Height = m.startHeight
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?":
			return m, closeAboutCmd()
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return render.Page("About", m.viewport.View(), m.footer, m.width, m.height, m.termWidth, m.termHeight)
}

func glamContent(content string, width, frame, gutter int) string {
	renderWidth := width - frame - gutter
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(renderWidth),
	)
	if err != nil {
		return content
	}
	str, err := r.Render(content)
	if err != nil {
		return content
	}
	return str
}
