package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/vinser/snake/internal/config"
	"github.com/vinser/snake/internal/engine"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDirectionArrows(t *testing.T) {
	k := NewKeyMap(config.KeysArrows)

	tests := []struct {
		msg  tea.KeyMsg
		want engine.Direction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, engine.Up},
		{tea.KeyMsg{Type: tea.KeyDown}, engine.Down},
		{tea.KeyMsg{Type: tea.KeyLeft}, engine.Left},
		{tea.KeyMsg{Type: tea.KeyRight}, engine.Right},
	}
	for _, tt := range tests {
		d, ok := k.Direction(tt.msg)
		assert.True(t, ok, tt.msg.String())
		assert.Equal(t, tt.want, d, tt.msg.String())
	}

	_, ok := k.Direction(runeKey('w'))
	assert.False(t, ok)
	_, ok = k.Direction(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, ok)
}

func TestDirectionAlternativeSets(t *testing.T) {
	wasd := NewKeyMap(config.KeysWASD)
	d, ok := wasd.Direction(runeKey('a'))
	assert.True(t, ok)
	assert.Equal(t, engine.Left, d)
	_, ok = wasd.Direction(tea.KeyMsg{Type: tea.KeyLeft})
	assert.False(t, ok)

	vim := NewKeyMap(config.KeysVim)
	d, ok = vim.Direction(runeKey('j'))
	assert.True(t, ok)
	assert.Equal(t, engine.Down, d)
}

func TestShortHelp(t *testing.T) {
	k := NewKeyMap(config.KeysVim)
	assert.Equal(t, "h j k l", k.ShortHelp()[0].Help().Key)
}
