package maze

import (
	"errors"
	"fmt"
)

var (
	ErrNilRand      = errors.New("random source is required")
	ErrInvalidStart = errors.New("start cell is out of the maze")
	ErrGridInUse    = errors.New("grid already has visited cells")
)

// Rand is the random source used for carving. *rand.Rand from math/rand satisfies it.
type Rand interface {
	// Intn returns a uniform integer in [0, n). n is always positive.
	Intn(n int) int
}

// Backtracker decides where the carve continues after a dead end.
type Backtracker interface {
	// Backtrack returns the next current cell (nil when the stack is exhausted), the
	// remaining stack and whether a frame was discarded without being revisited.
	Backtrack(stack []*Cell, r Rand) (next *Cell, rest []*Cell, skipped bool)
}

// LIFOBacktracker returns to the most recent cell on the stack.
type LIFOBacktracker struct{}

// Backtrack implements Backtracker.
func (LIFOBacktracker) Backtrack(stack []*Cell, _ Rand) (*Cell, []*Cell, bool) {
	next, rest := pop(stack)
	return next, rest, false
}

// SkipBacktracker draws from {1, 2, 3} on every dead end. On a 1 with a non-empty stack
// it drops the frame at a random index before popping the top, so about a third of the
// dead ends consume two frames instead of one.
type SkipBacktracker struct{}

// Backtrack implements Backtracker.
func (SkipBacktracker) Backtrack(stack []*Cell, r Rand) (*Cell, []*Cell, bool) {
	skipped := false
	if draw := 1 + r.Intn(3); draw == 1 && len(stack) > 0 {
		i := r.Intn(len(stack))
		stack = append(stack[:i], stack[i+1:]...)
		skipped = true
	}

	next, rest := pop(stack)
	return next, rest, skipped
}

// pop removes and returns the last element of the stack, or nil when it is empty.
func pop(stack []*Cell) (*Cell, []*Cell) {
	if len(stack) == 0 {
		return nil, stack
	}
	last := len(stack) - 1
	return stack[last], stack[:last]
}

// Backtrackers lists the available policies by name.
var Backtrackers = map[string]Backtracker{
	"skip": SkipBacktracker{},
	"lifo": LIFOBacktracker{},
}

// Stats summarizes one generation run.
type Stats struct {
	Carved   int // passages opened
	DeadEnds int // times the carve had no unvisited neighbor
	Skipped  int // stack frames discarded by the backtracker
	Resumes  int // restarts from a visited cell after the stack ran out
}

// Option configures a Generator.
type Option func(*Generator)

// WithBacktracker replaces the default SkipBacktracker.
func WithBacktracker(b Backtracker) Option {
	return func(g *Generator) {
		if b != nil {
			g.backtracker = b
		}
	}
}

// WithStart fixes the start cell instead of drawing it at random.
func WithStart(x, y int) Option {
	return func(g *Generator) {
		g.start = &Point{X: x, Y: y}
	}
}

// Generator carves perfect mazes with a randomized depth-first traversal.
type Generator struct {
	rand        Rand
	backtracker Backtracker
	start       *Point
}

// NewGenerator creates a Generator drawing from r.
func NewGenerator(r Rand, opts ...Option) (*Generator, error) {
	if r == nil {
		return nil, ErrNilRand
	}

	g := &Generator{
		rand:        r,
		backtracker: SkipBacktracker{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate carves passages into a fresh grid until every cell is visited.
// When discarded stack frames empty the stack early, it resumes from the first visited
// cell in row-major order that still borders an unvisited cell; Stats.Resumes counts
// these restarts.
func (gen *Generator) Generate(g *Grid) (Stats, error) {
	var stats Stats

	for _, c := range g.cells {
		if c.visited {
			return stats, ErrGridInUse
		}
	}

	var current *Cell
	if gen.start != nil {
		current = g.Cell(gen.start.X, gen.start.Y)
		if current == nil {
			return stats, fmt.Errorf("%w: (%d,%d)", ErrInvalidStart, gen.start.X, gen.start.Y)
		}
	} else {
		x := gen.rand.Intn(g.cols)
		y := gen.rand.Intn(g.rows)
		current = g.Cell(x, y)
	}
	current.visited = true

	var stack []*Cell
	for current != nil {
		neighbors := g.UnvisitedNeighbors(current)
		if len(neighbors) > 0 {
			next := neighbors[gen.rand.Intn(len(neighbors))]
			if err := g.RemoveWallBetween(current, next); err != nil {
				return stats, err
			}
			stack = append(stack, current)
			current = next
			current.visited = true
			stats.Carved++
			continue
		}

		stats.DeadEnds++
		var skipped bool
		current, stack, skipped = gen.backtracker.Backtrack(stack, gen.rand)
		if skipped {
			stats.Skipped++
		}

		// A discarded frame may still border unvisited cells.
		if current == nil {
			if current = g.resumeCell(); current != nil {
				stats.Resumes++
			}
		}
	}

	return stats, nil
}

// resumeCell returns the first visited cell in row-major order that still has an
// unvisited neighbor, or nil when the carve is complete.
func (g *Grid) resumeCell() *Cell {
	for _, c := range g.cells {
		if c.visited && len(g.UnvisitedNeighbors(c)) > 0 {
			return c
		}
	}
	return nil
}
