// Package mazeapi provides structures for maze generation requests and responses.
package mazeapi

import (
	"time"

	"github.com/beka-birhanu/vinom-maze/decor"
	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
)

// GenerateRequest represents a request to generate a new maze.
// Omitted fields fall back to the server defaults.
type GenerateRequest struct {
	Cols    int      `json:"cols" binding:"gte=0"`
	Rows    int      `json:"rows" binding:"gte=0"`
	Seed    *int64   `json:"seed"`
	Theme   string   `json:"theme"`
	Density *float64 `json:"density"`
	Policy  string   `json:"policy"`
}

func (r *GenerateRequest) params() i.GenerateParams {
	return i.GenerateParams{
		Cols:    r.Cols,
		Rows:    r.Rows,
		Seed:    r.Seed,
		Theme:   r.Theme,
		Density: r.Density,
		Policy:  r.Policy,
	}
}

// WallsResponse reports which sides of a cell are closed.
type WallsResponse struct {
	North bool `json:"north"`
	East  bool `json:"east"`
	South bool `json:"south"`
	West  bool `json:"west"`
}

// CellResponse represents one cell of a maze.
type CellResponse struct {
	X          int           `json:"x"`
	Y          int           `json:"y"`
	Walls      WallsResponse `json:"walls"`
	Emoji      string        `json:"emoji,omitempty"`
	Background string        `json:"background,omitempty"`
}

// MazeResponse represents a stored maze. Cells are grouped by row.
type MazeResponse struct {
	ID         string           `json:"id"`
	Cols       int              `json:"cols"`
	Rows       int              `json:"rows"`
	Seed       int64            `json:"seed"`
	Policy     string           `json:"policy"`
	Theme      string           `json:"theme"`
	ThemeLabel string           `json:"theme_label"`
	Density    float64          `json:"density"`
	CreatedAt  time.Time        `json:"created_at"`
	Cells      [][]CellResponse `json:"cells"`
}

// ThemeResponse describes one decoration theme.
type ThemeResponse struct {
	Name   string   `json:"name"`
	Label  string   `json:"label"`
	Emojis []string `json:"emojis"`
}

func newMazeResponse(m *domain.Maze, g *maze.Grid, lang string) *MazeResponse {
	cells := make([][]CellResponse, g.Rows())
	g.ForEachCell(func(c *maze.Cell) {
		cells[c.Y()] = append(cells[c.Y()], CellResponse{
			X: c.X(),
			Y: c.Y(),
			Walls: WallsResponse{
				North: c.HasNorthWall(),
				East:  c.HasEastWall(),
				South: c.HasSouthWall(),
				West:  c.HasWestWall(),
			},
			Emoji:      c.Emoji,
			Background: c.Background,
		})
	})

	return &MazeResponse{
		ID:         m.ID.String(),
		Cols:       m.Cols,
		Rows:       m.Rows,
		Seed:       m.Seed,
		Policy:     m.Policy,
		Theme:      m.Theme,
		ThemeLabel: decor.Label(m.Theme, lang),
		Density:    m.Density,
		CreatedAt:  m.CreatedAt,
		Cells:      cells,
	}
}
