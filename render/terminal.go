// Package render draws finished mazes for terminals.
package render

import (
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// Terminal renders a grid as box-art text with emoji markers. Walls and highlighted
// cells are colored unless the renderer is plain.
type Terminal struct {
	plain bool

	colorWall      color.Style
	colorHighlight color.Style
	colorEmoji     color.Style
}

// NewTerminal creates a terminal renderer.
func NewTerminal(plain bool) *Terminal {
	return &Terminal{
		plain:          plain,
		colorWall:      color.Style{color.FgGray, color.OpBold},
		colorHighlight: color.Style{color.BgYellow},
		colorEmoji:     color.Style{color.OpBold},
	}
}

func (t *Terminal) paint(s color.Style, text string) string {
	if t.plain {
		return text
	}
	return s.Sprint(text)
}

func (t *Terminal) wall(open bool, closed, gap string) string {
	if open {
		return gap
	}
	return t.paint(t.colorWall, closed)
}

// body returns the three-column interior of a cell.
func (t *Terminal) body(c *maze.Cell) string {
	text := "   "
	if c.Emoji != "" {
		// most emoji occupy two columns
		text = " " + t.paint(t.colorEmoji, c.Emoji)
	}
	if c.Background != "" {
		return t.paint(t.colorHighlight, text)
	}
	return text
}

// Render writes the grid to w.
func (t *Terminal) Render(w io.Writer, g *maze.Grid) error {
	var b strings.Builder
	corner := t.paint(t.colorWall, "+")

	b.WriteString(corner)
	for x := 0; x < g.Cols(); x++ {
		b.WriteString(t.wall(!g.Cell(x, 0).HasNorthWall(), "---", "   "))
		b.WriteString(corner)
	}
	b.WriteString("\n")

	for y := 0; y < g.Rows(); y++ {
		b.WriteString(t.wall(!g.Cell(0, y).HasWestWall(), "|", " "))
		for x := 0; x < g.Cols(); x++ {
			c := g.Cell(x, y)
			b.WriteString(t.body(c))
			b.WriteString(t.wall(!c.HasEastWall(), "|", " "))
		}
		b.WriteString("\n")

		b.WriteString(corner)
		for x := 0; x < g.Cols(); x++ {
			b.WriteString(t.wall(!g.Cell(x, y).HasSouthWall(), "---", "   "))
			b.WriteString(corner)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// String renders the grid into a string.
func (t *Terminal) String(g *maze.Grid) string {
	var b strings.Builder
	_ = t.Render(&b, g)
	return b.String()
}
