// Package render draws a board for the console.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vancomm/minesweeper-console/internal/mines"
)

const (
	glyphHidden = "□"
	glyphFlag   = "⚑"
	glyphMine   = "✹"
	glyphEmpty  = " "
)

// classic minesweeper palette, indexed by neighbour count
var numberColors = [9]lipgloss.Color{
	"", "4", "2", "1", "5", "3", "6", "7", "8",
}

type Renderer struct {
	color   bool
	dim     lipgloss.Style
	mine    lipgloss.Style
	numbers [9]lipgloss.Style
}

// New returns a renderer for out. With color off, or when out is not a
// terminal, glyphs are written without escape codes.
func New(out io.Writer, color bool) *Renderer {
	r := lipgloss.NewRenderer(out)
	rr := &Renderer{
		color: color,
		dim:   r.NewStyle().Foreground(lipgloss.Color("8")),
		mine:  r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
	for n, c := range numberColors {
		rr.numbers[n] = r.NewStyle().Foreground(c)
	}
	return rr
}

func (r *Renderer) paint(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

func (r *Renderer) glyph(c mines.Cell) string {
	switch c.State {
	case mines.Hidden:
		return r.paint(r.dim, glyphHidden)
	case mines.Flagged:
		return r.paint(r.mine, glyphFlag)
	}
	if c.Content.IsMine() {
		return r.paint(r.mine, glyphMine)
	}
	n := c.Content.Count()
	if n == 0 {
		return glyphEmpty
	}
	return r.paint(r.numbers[n], fmt.Sprint(n))
}

func border(width int) string {
	return "   +" + strings.Repeat("---", width) + "+\n"
}

// Board draws column and row numbers, a framed grid and a legend.
func (r *Renderer) Board(b *mines.Board) string {
	size := b.Config().Size
	var sb strings.Builder

	sb.WriteString("    ")
	for col := range size.Width {
		sb.WriteString(r.paint(r.dim, fmt.Sprintf("%2d", col)) + " ")
	}
	sb.WriteString("\n")

	sb.WriteString(border(size.Width))
	for row := range size.Height {
		sb.WriteString(r.paint(r.dim, fmt.Sprintf("%2d", row)) + " |")
		for col := range size.Width {
			c, _ := b.Cell(mines.Position{Row: row, Col: col})
			sb.WriteString(" " + r.glyph(c) + " ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border(size.Width))

	sb.WriteString(r.Legend() + "\n")
	return sb.String()
}

func (r *Renderer) Legend() string {
	return fmt.Sprintf(
		"%s %s hidden, %s flag, %s mine, numbers count adjacent mines",
		r.paint(r.dim, "Legend:"),
		glyphHidden,
		r.paint(r.mine, glyphFlag),
		r.paint(r.mine, glyphMine),
	)
}

// Status summarises the board: mines left to flag and safe cells left to
// open.
func Status(b *mines.Board) string {
	c := b.Config()
	return fmt.Sprintf(
		"mines: %d  flags: %d  safe cells left: %d",
		c.MineCount, b.Flags(), c.CellCount()-c.MineCount-b.Revealed(),
	)
}
