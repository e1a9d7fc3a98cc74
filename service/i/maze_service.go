package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// GenerateParams describes a maze to generate. Zero values and nil pointers fall back to
// the service defaults.
type GenerateParams struct {
	Cols    int
	Rows    int
	Seed    *int64
	Theme   string
	Density *float64
	Policy  string
}

// MazeService generates, stores and retrieves mazes.
type MazeService interface {
	Generate(ctx context.Context, params GenerateParams) (*domain.Maze, error)
	ByID(ctx context.Context, id uuid.UUID) (*domain.Maze, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
