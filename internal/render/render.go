package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/vinser/snake/internal/engine"
	"github.com/vinser/snake/internal/grid"
	"github.com/vinser/snake/internal/style"
)

// Page renders page with title at the top, content block and footer at the bottom.
// Style of content is left intact.
func Page(title, renderedContent, footer string, width, height, termWidth, termHeight int) string {
	width = max(width, runewidth.StringWidth(footer), runewidth.StringWidth(title))

	renderedTopPattern := style.TopPattern.Render(strings.Repeat("/", width))
	renderedTitle := style.Title.Render(title)
	renderedFooter := style.Footer.Render(footer)

	// Whatever is left between the title and the footer holds the centered content
	availableHeight := height - lipgloss.Height(renderedTopPattern) - lipgloss.Height(renderedTitle) - lipgloss.Height(renderedFooter)
	centeredContent := lipgloss.PlaceVertical(availableHeight, lipgloss.Center, renderedContent)

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		renderedTopPattern,
		renderedTitle,
		centeredContent,
		renderedFooter,
	)
	if termWidth > 0 && termHeight > 0 {
		return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// ScoreLine is the plain score text shown above the board.
func ScoreLine(s engine.Snapshot) string {
	return fmt.Sprintf("Score: %d", s.Score)
}

// Board renders the score line above the bordered grid.
func Board(s engine.Snapshot, g *grid.Grid) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		style.Score.Render(ScoreLine(s)),
		style.Border.Render(g.View(s)),
	)
}

// Writer draws full frames to an io.Writer. It serves sessions that run
// without the interactive terminal UI.
type Writer struct {
	out   io.Writer
	grid  *grid.Grid
	clear bool
}

// NewWriter returns a frame writer. With clear set every frame repaints the screen.
func NewWriter(out io.Writer, g *grid.Grid, clear bool) *Writer {
	return &Writer{out: out, grid: g, clear: clear}
}

// Render writes one frame for the snapshot.
func (w *Writer) Render(s engine.Snapshot) error {
	var b strings.Builder
	if w.clear {
		b.WriteString(ansi.CursorHomePosition)
		b.WriteString(ansi.EraseEntireScreen)
	}
	b.WriteString(Board(s, w.grid))
	b.WriteString("\n")
	if s.GameOver {
		b.WriteString(style.GameOver.Render("Game Over!"))
		b.WriteString("\n")
	}
	if _, err := io.WriteString(w.out, b.String()); err != nil {
		return errors.Wrap(err, "render: write frame")
	}
	return nil
}
