// Package input maps terminal key presses to game actions.
package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/snake/internal/config"
	"github.com/vinser/snake/internal/engine"
)

// KeyMap holds the bindings of the play screen.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	Options key.Binding
	About   key.Binding
	Quit    key.Binding
}

// NewKeyMap returns the bindings for a key set. Unknown sets fall back to arrows.
func NewKeyMap(set string) KeyMap {
	up, down, left, right := "up", "down", "left", "right"
	arrows := "← ↑ ↓ →"
	switch set {
	case config.KeysWASD:
		up, down, left, right = "w", "s", "a", "d"
		arrows = "w a s d"
	case config.KeysVim:
		up, down, left, right = "k", "j", "h", "l"
		arrows = "h j k l"
	}
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys(up), key.WithHelp(arrows, "move")),
		Down:    key.NewBinding(key.WithKeys(down)),
		Left:    key.NewBinding(key.WithKeys(left)),
		Right:   key.NewBinding(key.WithKeys(right)),
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Options: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "options")),
		About:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "about")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Direction returns the direction bound to msg. Any other key reports false.
func (k KeyMap) Direction(msg tea.KeyMsg) (engine.Direction, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return engine.Up, true
	case key.Matches(msg, k.Down):
		return engine.Down, true
	case key.Matches(msg, k.Left):
		return engine.Left, true
	case key.Matches(msg, k.Right):
		return engine.Right, true
	}
	return 0, false
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Pause, k.Options, k.About, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
