/*
Package maze provides tools for carving and inspecting rectangular perfect mazes.

A Grid is made of Cell values that carry a wall bitmask, a visited flag and free
metadata slots for decorators. A Generator runs a randomized depth-first carve over a
Grid using an explicit stack and an injected random source, so a seed fully determines
the resulting layout.

Coordinates are (x, y): x is the column in [0, cols), y the row in [0, rows), and north
is y-1.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrInvalidAdjacency  = errors.New("cells are not adjacent")
	ErrInvalidMask       = errors.New("invalid wall mask")
)

// neighborOrder is the fixed order UnvisitedNeighbors reports cells in.
var neighborOrder = [...]Direction{North, West, South, East}

// Point is a cell coordinate.
type Point struct {
	X int
	Y int
}

// Passage is a carved opening between two adjacent cells. From is always the north or
// west cell of the pair, so each opening has exactly one Passage value.
type Passage struct {
	From Point
	To   Point
}

// Grid represents a rectangular maze consisting of cells with walls.
type Grid struct {
	cols  int
	rows  int
	cells []*Cell // row-major, index y*cols+x
}

// New allocates a cols x rows grid with every wall present and no cell visited.
func New(cols, rows int) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cols, rows)
	}

	cells := make([]*Cell, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cells = append(cells, newCell(x, y))
		}
	}

	return &Grid{
		cols:  cols,
		rows:  rows,
		cells: cells,
	}, nil
}

// FromMasks rebuilds a finished maze from row-major wall masks as returned by Masks.
// Every cell of the rebuilt grid is marked visited. Masks that open a boundary wall or
// disagree with their neighbor are rejected.
func FromMasks(cols, rows int, masks []uint8) (*Grid, error) {
	g, err := New(cols, rows)
	if err != nil {
		return nil, err
	}
	if len(masks) != cols*rows {
		return nil, fmt.Errorf("%w: got %d masks for %d cells", ErrInvalidMask, len(masks), cols*rows)
	}

	for i, m := range masks {
		if Direction(m)&^allWalls != 0 {
			return nil, fmt.Errorf("%w: cell %d has mask %#x", ErrInvalidMask, i, m)
		}
		g.cells[i].walls = Direction(m)
		g.cells[i].visited = true
	}

	if err := checkWalls(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return g.rows
}

// InBound checks whether (x, y) is inside the grid.
func (g *Grid) InBound(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// Cell returns the cell at (x, y), or nil if out of bounds.
func (g *Grid) Cell(x, y int) *Cell {
	if !g.InBound(x, y) {
		return nil
	}
	return g.cells[y*g.cols+x]
}

// ForEachCell calls fn for every cell in row-major order.
func (g *Grid) ForEachCell(fn func(c *Cell)) {
	for _, c := range g.cells {
		fn(c)
	}
}

// neighbor returns the cell on side d of c, or nil at the boundary.
func (g *Grid) neighbor(c *Cell, d Direction) *Cell {
	dx, dy := d.Delta()
	return g.Cell(c.x+dx, c.y+dy)
}

// UnvisitedNeighbors returns the edge-adjacent cells of c that have not been visited, in
// north, west, south, east order.
func (g *Grid) UnvisitedNeighbors(c *Cell) []*Cell {
	var result []*Cell
	for _, d := range neighborOrder {
		if n := g.neighbor(c, d); n != nil && !n.visited {
			result = append(result, n)
		}
	}
	return result
}

// owns reports whether c is the cell stored at its own coordinates.
func (g *Grid) owns(c *Cell) bool {
	return c != nil && g.Cell(c.x, c.y) == c
}

// RemoveWallBetween clears the facing walls of two adjacent cells. Both walls change in
// the same call; removing an already open wall is a no-op.
func (g *Grid) RemoveWallBetween(a, b *Cell) error {
	if !g.owns(a) || !g.owns(b) {
		return fmt.Errorf("%w: cell does not belong to the grid", ErrInvalidAdjacency)
	}

	var side Direction
	switch dx, dy := b.x-a.x, b.y-a.y; {
	case dx == 0 && dy == -1:
		side = North
	case dx == 1 && dy == 0:
		side = East
	case dx == 0 && dy == 1:
		side = South
	case dx == -1 && dy == 0:
		side = West
	default:
		return fmt.Errorf("%w: (%d,%d) and (%d,%d)", ErrInvalidAdjacency, a.x, a.y, b.x, b.y)
	}

	a.walls &^= side
	b.walls &^= side.Opposite()
	return nil
}

// Masks returns the wall masks of all cells in row-major order.
func (g *Grid) Masks() []uint8 {
	masks := make([]uint8, len(g.cells))
	for i, c := range g.cells {
		masks[i] = c.Mask()
	}
	return masks
}

// Passages returns the set of carved openings. Only east and south sides are inspected,
// so a half-open wall pair is reported once, from the cell that opened it.
func (g *Grid) Passages() mapset.Set[Passage] {
	passages := mapset.New[Passage]()
	for _, c := range g.cells {
		for _, d := range [...]Direction{East, South} {
			if n := g.neighbor(c, d); n != nil && !c.HasWall(d) {
				passages.Put(Passage{From: Point{c.x, c.y}, To: Point{n.x, n.y}})
			}
		}
	}
	return passages
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+")
	for x := 0; x < g.cols; x++ {
		if g.Cell(x, 0).HasNorthWall() {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteString("\n")

	for y := 0; y < g.rows; y++ {
		// Cell rows
		if g.Cell(0, y).HasWestWall() {
			b.WriteString("|")
		} else {
			b.WriteString(" ")
		}
		for x := 0; x < g.cols; x++ {
			if g.Cell(x, y).HasEastWall() {
				b.WriteString("   |")
			} else {
				b.WriteString("    ")
			}
		}
		b.WriteString("\n")

		// Wall rows
		b.WriteString("+")
		for x := 0; x < g.cols; x++ {
			if g.Cell(x, y).HasSouthWall() {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
