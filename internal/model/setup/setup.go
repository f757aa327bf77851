package setup

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/snake/internal/config"
	"github.com/vinser/snake/internal/render"
	"github.com/vinser/snake/internal/style"
)

const (
	width  = 40
	height = 10
)

const (
	selectedSpriteSize = iota
	selectedKeys
	numSettings
)

type Model struct {
	spriteSize string // small, medium or large
	keys       string // arrows, wasd or vim

	selectedSetting int
	termWidth       int
	termHeight      int
}

type SaveSettingsMsg struct {
	SpriteSize string
	Keys       string
}

func saveSettingsCmd(spriteSize, keys string) tea.Cmd {
	return func() tea.Msg {
		return SaveSettingsMsg{
			SpriteSize: spriteSize,
			Keys:       keys,
		}
	}
}

type DiscardSettingsMsg struct{}

func discardSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		return DiscardSettingsMsg{}
	}
}

func New(spriteSize, keys string) Model {
	return Model{
		spriteSize: spriteSize,
		keys:       keys,
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
		case "s":
			return m, saveSettingsCmd(m.spriteSize, m.keys)
		case "esc":
			return m, discardSettingsCmd()
		case "up":
			if m.selectedSetting > 0 {
				m.selectedSetting--
			}
		case "down":
			if m.selectedSetting < numSettings-1 {
				m.selectedSetting++
			}
		case "enter", " ":
			switch m.selectedSetting {
			case selectedSpriteSize:
				m.spriteSize = nextSpriteSize(m.spriteSize)
			case selectedKeys:
				m.keys = nextKeys(m.keys)
			}
		}
	}
	return m, nil
}

func nextSpriteSize(current string) string {
	switch current {
	case config.SpriteSmall:
		return config.SpriteMedium
	case config.SpriteMedium:
		return config.SpriteLarge
	case config.SpriteLarge:
		return config.SpriteSmall
	default:
		return config.SpriteDefault
	}
}

func nextKeys(current string) string {
	switch current {
	case config.KeysArrows:
		return config.KeysWASD
	case config.KeysWASD:
		return config.KeysVim
	case config.KeysVim:
		return config.KeysArrows
	default:
		return config.KeysDefault
	}
}

const footer = "↑ ↓ — select, space — change, s — save, esc — cancel"

func (m Model) View() string {
	type option struct {
		label string
		value string
	}
	options := []option{
		{"Sprite size", m.spriteSize},
		{"Keys", m.keys},
	}

	var lines []string
	for i, opt := range options {
		prefix := "  "
		if i == m.selectedSetting {
			prefix = "➤ "
		}
		line := fmt.Sprintf("%s%s: %s", prefix, opt.label, opt.value)
		if i == m.selectedSetting {
			lines = append(lines, style.SetupItemSelected.Render(line))
		} else {
			lines = append(lines, style.SetupItem.Render(line))
		}
	}
	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return render.Page("Options", content, footer, width, height, m.termWidth, m.termHeight)
}
