package ports

import (
	"context"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/validator"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver fills a grid in place. On failure the grid keeps its shape
// and its blank cells are zeroed.
type Solver interface {
	Solve(ctx context.Context, g domain.Grid) (Stats, error)
}

// Generator seeds a blank grid with random consistent values, up to
// the caller-supplied attempt budget. The placement stream is
// deterministic for a given seed.
type Generator interface {
	Fill(ctx context.Context, g domain.Grid, attempts int, seed int64) (Stats, error)
}

// Validator performs the full-grid constraint scan.
type Validator interface {
	Validate(ctx context.Context, g domain.Grid) (validator.Report, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
