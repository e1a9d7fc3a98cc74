package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/beka-birhanu/vinom-maze/decor"
	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultPrefix       = "maze"
	defaultCols         = 20
	defaultRows         = 20
	defaultMaxDimension = 100
	defaultPolicy       = "skip"

	// layout key: prefix, cols, rows, seed, policy
	layoutKeyFmt = "%s:layout:%dx%d:seed_%d:%s"

	// decoration draws from its own stream, offset from the carving seed
	decorSeedOffset = 1
)

// MazeOptions configures a MazeService.
type MazeOptions struct {
	Prefix       string
	Cols         int
	Rows         int
	MaxDimension int
	Theme        string
	Density      *float64 // nil means decor.DefaultDensity
	Policy       string
	Seeder       func() int64 // source of seeds for requests without one
}

// MazeService generates mazes, caches their layouts and stores the decorated result.
type MazeService struct {
	repo   i.MazeRepo
	cache  i.LayoutCache
	logger i.Logger
	opts   *MazeOptions
}

var _ i.MazeService = &MazeService{}

// NewMazeService creates a MazeService. cache may be nil to always generate.
func NewMazeService(repo i.MazeRepo, cache i.LayoutCache, logger i.Logger, opts *MazeOptions) (*MazeService, error) {
	if opts == nil {
		opts = &MazeOptions{}
	}

	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}

	if opts.Cols <= 0 {
		opts.Cols = defaultCols
	}

	if opts.Rows <= 0 {
		opts.Rows = defaultRows
	}

	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}

	if opts.Theme == "" {
		opts.Theme = decor.DefaultTheme
	}

	if opts.Density == nil {
		density := decor.DefaultDensity
		opts.Density = &density
	}
	if err := decor.ValidateDensity(*opts.Density); err != nil {
		return nil, err
	}

	if opts.Policy == "" {
		opts.Policy = defaultPolicy
	}
	if _, ok := maze.Backtrackers[opts.Policy]; !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPolicy, opts.Policy)
	}

	if opts.Seeder == nil {
		opts.Seeder = func() int64 { return time.Now().UnixNano() }
	}

	return &MazeService{
		repo:   repo,
		cache:  cache,
		logger: logger,
		opts:   opts,
	}, nil
}

// Generate carves, decorates and stores a new maze.
func (s *MazeService) Generate(ctx context.Context, params i.GenerateParams) (*domain.Maze, error) {
	cols, rows := params.Cols, params.Rows
	if cols == 0 {
		cols = s.opts.Cols
	}
	if rows == 0 {
		rows = s.opts.Rows
	}
	if cols < 0 || rows < 0 {
		return nil, fmt.Errorf("%w: %dx%d", maze.ErrInvalidDimensions, cols, rows)
	}
	if cols > s.opts.MaxDimension || rows > s.opts.MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", domain.ErrDimensionTooLarge, cols, rows, s.opts.MaxDimension)
	}

	policy := params.Policy
	if policy == "" {
		policy = s.opts.Policy
	}
	backtracker, ok := maze.Backtrackers[policy]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPolicy, policy)
	}

	density := *s.opts.Density
	if params.Density != nil {
		density = *params.Density
	}
	if err := decor.ValidateDensity(density); err != nil {
		return nil, err
	}

	seed := s.opts.Seeder()
	if params.Seed != nil {
		seed = *params.Seed
	}

	theme := params.Theme
	if theme == "" {
		theme = s.opts.Theme
	}

	grid, err := s.layout(ctx, cols, rows, seed, policy, backtracker)
	if err != nil {
		return nil, err
	}

	decorRand := rand.New(rand.NewSource(seed + decorSeedOffset))
	theme = decor.ResolveTheme(theme, decorRand)
	placed, err := decor.Decorate(grid, theme, density, decorRand)
	if err != nil {
		return nil, err
	}

	record := domain.NewMaze(grid, domain.MazeConfig{
		Seed:    seed,
		Policy:  policy,
		Theme:   theme,
		Density: density,
	})
	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to save maze: %s", err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Generated maze: ID=%s %dx%d seed=%d policy=%s theme=%s decorations=%d",
		record.ID, cols, rows, seed, policy, theme, placed))
	return record, nil
}

// layout returns the carved grid for the given parameters, from the cache when possible.
func (s *MazeService) layout(ctx context.Context, cols, rows int, seed int64, policy string, bt maze.Backtracker) (*maze.Grid, error) {
	key := fmt.Sprintf(layoutKeyFmt, s.opts.Prefix, cols, rows, seed, policy)

	if s.cache != nil {
		unlock, err := s.cache.Lock(ctx, key)
		if err != nil {
			s.logger.Warning(fmt.Sprintf("Generating without layout lock %s: %s", key, err))
		} else {
			defer unlock()
		}

		masks, found, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			s.logger.Warning(fmt.Sprintf("Layout cache read failed %s: %s", key, err))
		case found:
			grid, err := maze.FromMasks(cols, rows, masks)
			if err == nil {
				return grid, nil
			}
			s.logger.Warning(fmt.Sprintf("Discarding cached layout %s: %s", key, err))
		}
	}

	grid, err := maze.New(cols, rows)
	if err != nil {
		return nil, err
	}

	gen, err := maze.NewGenerator(rand.New(rand.NewSource(seed)), maze.WithBacktracker(bt))
	if err != nil {
		return nil, err
	}

	stats, err := gen.Generate(grid)
	if err != nil {
		return nil, err
	}
	if err := maze.Validate(grid); err != nil {
		s.logger.Error(fmt.Sprintf("Generated layout %s is not a perfect maze: %s", key, err))
		return nil, err
	}
	if stats.Resumes > 0 {
		s.logger.Info(fmt.Sprintf("Layout %s resumed %d times after skipped frames", key, stats.Resumes))
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, grid.Masks()); err != nil {
			s.logger.Warning(fmt.Sprintf("Layout cache write failed %s: %s", key, err))
		}
	}

	return grid, nil
}

// ByID retrieves a stored maze.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*domain.Maze, error) {
	return s.repo.ByID(ctx, id)
}

// Delete removes a stored maze.
func (s *MazeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info(fmt.Sprintf("Deleted maze: ID=%s", id))
	return nil
}
