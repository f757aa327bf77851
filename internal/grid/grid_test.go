package grid

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinser/snake/internal/config"
	"github.com/vinser/snake/internal/engine"
)

func snapshot() engine.Snapshot {
	return engine.Snapshot{
		Snake: []engine.Position{{Row: 0, Col: 1}, {Row: 0, Col: 0}},
		Food:  engine.Position{Row: 1, Col: 2},
	}
}

func TestItemAt(t *testing.T) {
	s := snapshot()

	assert.Equal(t, Head, ItemAt(s, engine.Position{Row: 0, Col: 1}))
	assert.Equal(t, Body, ItemAt(s, engine.Position{Row: 0, Col: 0}))
	assert.Equal(t, Food, ItemAt(s, engine.Position{Row: 1, Col: 2}))
	assert.Equal(t, Empty, ItemAt(s, engine.Position{Row: 5, Col: 5}))
}

func TestItemAtSnakeOverFood(t *testing.T) {
	s := snapshot()
	s.Food = s.Snake[1]

	assert.Equal(t, Body, ItemAt(s, s.Food))
}

func TestCharDims(t *testing.T) {
	tests := []struct {
		size string
		w, h int
	}{
		{config.SpriteSmall, 1, 1},
		{config.SpriteMedium, 2, 1},
		{config.SpriteLarge, 4, 2},
	}
	for _, tt := range tests {
		g := New(tt.size)
		w, h := g.CharDims()
		assert.Equal(t, tt.w, w, tt.size)
		assert.Equal(t, tt.h, h, tt.size)
	}
}

func TestLinesSmall(t *testing.T) {
	g := New(config.SpriteSmall)

	lines := g.Lines(snapshot())

	require.Len(t, lines, engine.GridSize)
	assert.Equal(t, "o@"+strings.Repeat("·", engine.GridSize-2), ansi.Strip(lines[0]))
	assert.Equal(t, "··*"+strings.Repeat("·", engine.GridSize-3), ansi.Strip(lines[1]))
}

func TestLinesLarge(t *testing.T) {
	g := New(config.SpriteLarge)

	lines := g.Lines(snapshot())

	assert.Len(t, lines, engine.GridSize*2)
}
