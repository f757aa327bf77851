// Package grid turns engine snapshots into rows of terminal sprites.
package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/vinser/snake/internal/config"
	"github.com/vinser/snake/internal/engine"
	"github.com/vinser/snake/internal/style"
)

// ItemType represents what occupies a cell of the grid.
type ItemType int

const (
	Empty ItemType = iota
	Body
	Head
	Food
)

// Grid renders snapshots with sprites of one size.
type Grid struct {
	SpriteSize string
	Sprites    map[ItemType][]string
}

// New returns a grid with styled sprites for the given sprite size.
func New(spriteSize string) *Grid {
	sprites := make(map[ItemType][]string)
	for _, item := range []ItemType{Empty, Body, Head, Food} {
		st := itemStyle(item)
		var sprite []string
		for _, s := range getSprite(spriteSize, item) {
			sprite = append(sprite, st.Render(s))
		}
		sprites[item] = sprite
	}
	return &Grid{
		SpriteSize: spriteSize,
		Sprites:    sprites,
	}
}

// ItemAt returns the item shown at p. The snake is drawn over food.
func ItemAt(s engine.Snapshot, p engine.Position) ItemType {
	if len(s.Snake) > 0 && s.Snake[0] == p {
		return Head
	}
	if s.Occupies(p) {
		return Body
	}
	if s.Food == p {
		return Food
	}
	return Empty
}

// CharDims returns (cellWidthChars, cellHeightRows) for the sprite size.
func (g *Grid) CharDims() (int, int) {
	sprite := getSprite(g.SpriteSize, Empty)
	return runewidth.StringWidth(sprite[0]), len(sprite)
}

// Size returns the rendered grid size in terminal columns and rows.
func (g *Grid) Size() (int, int) {
	w, h := g.CharDims()
	return engine.GridSize * w, engine.GridSize * h
}

// Lines renders the snapshot as terminal lines, one or more per grid row.
func (g *Grid) Lines(s engine.Snapshot) []string {
	_, rows := g.CharDims()
	lines := make([]string, 0, engine.GridSize*rows)
	for r := 0; r < engine.GridSize; r++ {
		row := make([]strings.Builder, rows)
		for c := 0; c < engine.GridSize; c++ {
			sprite := g.Sprites[ItemAt(s, engine.Position{Row: r, Col: c})]
			for i := range row {
				row[i].WriteString(sprite[i])
			}
		}
		for i := range row {
			lines = append(lines, row[i].String())
		}
	}
	return lines
}

// View renders the snapshot as one block.
func (g *Grid) View(s engine.Snapshot) string {
	return lipgloss.JoinVertical(lipgloss.Left, g.Lines(s)...)
}

func itemStyle(item ItemType) lipgloss.Style {
	switch item {
	case Head:
		return style.Foreground("lime").Bold(true)
	case Body:
		return style.Dim("green", 48)
	case Food:
		return style.Foreground("red").Bold(true)
	default:
		return style.Dim("grey", 64)
	}
}

func getSprite(size string, item ItemType) []string {
	switch size {
	case config.SpriteSmall:
		switch item {
		case Head:
			return []string{"@"}
		case Body:
			return []string{"o"}
		case Food:
			return []string{"*"}
		default:
			return []string{"·"}
		}
	case config.SpriteLarge:
		switch item {
		case Head:
			return []string{"▛██▜", "▙██▟"}
		case Body:
			return []string{"▓▓▓▓", "▓▓▓▓"}
		case Food:
			return []string{" ▄▄ ", " ▀▀ "}
		default:
			return []string{"    ", " ·  "}
		}
	default: // config.SpriteMedium
		switch item {
		case Head:
			return []string{"██"}
		case Body:
			return []string{"▓▓"}
		case Food:
			return []string{"◖◗"}
		default:
			return []string{" ·"}
		}
	}
}
