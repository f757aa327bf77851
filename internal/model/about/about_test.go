package about

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinser/snake/internal/config"
	"github.com/vinser/snake/internal/input"
)

func TestClose(t *testing.T) {
	m := New(input.NewKeyMap(config.KeysArrows), 60, 20)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.IsType(t, CloseAboutMsg{}, cmd())
}

func TestView(t *testing.T) {
	m := New(input.NewKeyMap(config.KeysArrows), 60, 30)
	m.SetSize(100, 40)

	view := ansi.Strip(m.View())

	assert.Contains(t, view, "About")
	assert.Contains(t, view, "Snake")
	assert.Contains(t, view, "esc — back")
}

func TestFooterShowsKeySet(t *testing.T) {
	tests := []struct {
		keys string
		want string
	}{
		{config.KeysArrows, "← ↑ ↓ → — steer"},
		{config.KeysWASD, "w a s d — steer"},
		{config.KeysVim, "h j k l — steer"},
	}
	for _, tt := range tests {
		t.Run(tt.keys, func(t *testing.T) {
			m := New(input.NewKeyMap(tt.keys), 60, 20)

			assert.Contains(t, ansi.Strip(m.View()), tt.want)
		})
	}
}
