package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or replaces a maze in the repository.
	Save(ctx context.Context, m *domain.Maze) error

	// ByID retrieves a maze by its unique ID.
	// Returns domain.ErrMazeNotFound if no such maze exists.
	ByID(ctx context.Context, id uuid.UUID) (*domain.Maze, error)

	// Delete removes a maze by its unique ID.
	// Returns domain.ErrMazeNotFound if no such maze exists.
	Delete(ctx context.Context, id uuid.UUID) error
}
