package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// General UI
	Banner = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")) // Green

	SetupItem         = lipgloss.NewStyle()
	SetupItemSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true) // Pinkish-reddish purple

	GameOver = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")) // Bright red
	Score    = lipgloss.NewStyle().Bold(true)
	// Page styles
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))            // Pinkish-reddish purple
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	Border     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("241"))
)

type RGB struct {
	R int
	G int
	B int
}

var RGBColor = map[string]RGB{
	"black": {0, 0, 0},
	"red":   {255, 0, 0},
	"green": {0, 255, 0},
	"lime":  {128, 255, 0},
	"grey":  {128, 128, 128},
	"white": {255, 255, 255},
}

// GenerateHexColor generates hexadecimal string for given RGB values. r, g, b should be in the range 0-255
// Format: #RRGGBB
func GenerateHexColor(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", clamp(r), clamp(g), clamp(b))
}

// Foreground returns a style painting text in the named color.
func Foreground(name string) lipgloss.Style {
	c := RGBColor[name]
	return lipgloss.NewStyle().Foreground(lipgloss.Color(GenerateHexColor(c.R, c.G, c.B)))
}

// Dim returns a style painting text in the named color darkened by shift on every channel.
func Dim(name string, shift int) lipgloss.Style {
	c := RGBColor[name]
	return lipgloss.NewStyle().Foreground(lipgloss.Color(GenerateHexColor(c.R-shift, c.G-shift, c.B-shift)))
}

func clamp(v int) int {
	return max(0, min(255, v))
}
