package maze

import (
	"errors"
	"fmt"

	"github.com/spakin/disjoint"
)

var (
	ErrAsymmetricWall = errors.New("wall is open on one side only")
	ErrOpenBoundary   = errors.New("boundary wall is open")
	ErrCycle          = errors.New("carved passages form a cycle")
	ErrDisconnected   = errors.New("carved passages do not connect every cell")
	ErrUnvisited      = errors.New("cell was never visited")
)

// checkWalls verifies that interior walls are mirrored and the outer boundary is closed.
func checkWalls(g *Grid) error {
	for _, c := range g.cells {
		for _, d := range neighborOrder {
			n := g.neighbor(c, d)
			if n == nil {
				if !c.HasWall(d) {
					return fmt.Errorf("%w: %s side of (%d,%d)", ErrOpenBoundary, d, c.x, c.y)
				}
				continue
			}
			if c.HasWall(d) != n.HasWall(d.Opposite()) {
				return fmt.Errorf("%w: %s side of (%d,%d)", ErrAsymmetricWall, d, c.x, c.y)
			}
		}
	}
	return nil
}

// Validate checks that g is a finished perfect maze: walls mirrored, boundary closed,
// every cell visited, and the carved passages forming a spanning tree of the grid.
func Validate(g *Grid) error {
	if err := checkWalls(g); err != nil {
		return err
	}

	sets := make([]*disjoint.Element, len(g.cells))
	for i, c := range g.cells {
		if !c.visited {
			return fmt.Errorf("%w: (%d,%d)", ErrUnvisited, c.x, c.y)
		}
		sets[i] = disjoint.NewElement()
	}

	components := len(g.cells)
	var cycle error
	g.Passages().Each(func(p Passage) {
		if cycle != nil {
			return
		}
		a := sets[p.From.Y*g.cols+p.From.X]
		b := sets[p.To.Y*g.cols+p.To.X]
		if a.Find() == b.Find() {
			cycle = fmt.Errorf("%w: (%d,%d)-(%d,%d)", ErrCycle, p.From.X, p.From.Y, p.To.X, p.To.Y)
			return
		}
		disjoint.Union(a, b)
		components--
	})
	if cycle != nil {
		return cycle
	}

	if components != 1 {
		return fmt.Errorf("%w: %d regions", ErrDisconnected, components)
	}
	return nil
}
