// Package domain holds the persisted maze record and the errors shared across layers.
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/beka-birhanu/vinom-maze/maze"
)

var (
	ErrMazeNotFound      = errors.New("maze not found")
	ErrDimensionTooLarge = errors.New("maze dimension is too large")
	ErrUnknownPolicy     = errors.New("unknown backtracking policy")
)

// Decoration is a metadata slot filled on one cell.
type Decoration struct {
	X          int    `bson:"x"`
	Y          int    `bson:"y"`
	Emoji      string `bson:"emoji"`
	Background string `bson:"background,omitempty"`
}

// Maze represents the BSON version of a generated maze for database storage.
type Maze struct {
	ID          uuid.UUID    `bson:"_id"`
	Cols        int          `bson:"cols"`
	Rows        int          `bson:"rows"`
	Seed        int64        `bson:"seed"`
	Policy      string       `bson:"policy"`
	Theme       string       `bson:"theme"`
	Density     float64      `bson:"density"`
	Walls       []byte       `bson:"walls"` // row-major wall masks
	Decorations []Decoration `bson:"decorations"`
	CreatedAt   time.Time    `bson:"createdAt"`
}

// MazeConfig holds the generation parameters recorded with a maze.
type MazeConfig struct {
	Seed    int64
	Policy  string
	Theme   string
	Density float64
}

// NewMaze captures a finished grid, including its decorations, as a new record.
func NewMaze(g *maze.Grid, config MazeConfig) *Maze {
	var decorations []Decoration
	g.ForEachCell(func(c *maze.Cell) {
		if c.Emoji == "" && c.Background == "" {
			return
		}
		decorations = append(decorations, Decoration{
			X:          c.X(),
			Y:          c.Y(),
			Emoji:      c.Emoji,
			Background: c.Background,
		})
	})

	return &Maze{
		ID:          uuid.New(),
		Cols:        g.Cols(),
		Rows:        g.Rows(),
		Seed:        config.Seed,
		Policy:      config.Policy,
		Theme:       config.Theme,
		Density:     config.Density,
		Walls:       g.Masks(),
		Decorations: decorations,
		CreatedAt:   time.Now().UTC(),
	}
}

// Grid rebuilds the decorated grid stored in the record.
func (m *Maze) Grid() (*maze.Grid, error) {
	g, err := maze.FromMasks(m.Cols, m.Rows, m.Walls)
	if err != nil {
		return nil, err
	}

	for _, d := range m.Decorations {
		if c := g.Cell(d.X, d.Y); c != nil {
			c.Emoji = d.Emoji
			c.Background = d.Background
		}
	}
	return g, nil
}
