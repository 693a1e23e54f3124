package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/validator"
)

// ErrIncomplete reports that at least one placement was abandoned
// because the chosen cell had no digit left that the constraints
// accept. Placements made before that point are kept.
var ErrIncomplete = errors.New("generation incomplete")

// RandomGenerator scatters random constraint-consistent values over a
// grid. The result is only locally consistent; no solvability or
// uniqueness guarantee is made.
type RandomGenerator struct{}

func New() *RandomGenerator { return &RandomGenerator{} }

// Fill makes up to attempts placements, drawing from a stream that is
// deterministic for the seed. Each attempt picks a uniform random
// cell; an occupied cell consumes the attempt. For an empty cell,
// digits are sampled uniformly until one passes the constraint check,
// capped at 8×size draws so a saturated cell cannot spin forever.
func (g *RandomGenerator) Fill(ctx context.Context, grid domain.Grid, attempts int, seed int64) (ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	size := grid.Size()
	retryCap := 8 * size
	nodes := 0
	abandoned := 0

	for a := 0; a < attempts; a++ {
		if err := ctx.Err(); err != nil {
			return ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		r, c := rng.Intn(size), rng.Intn(size)
		if grid[r][c] != 0 {
			continue
		}
		pos := domain.CellCoord{Row: r, Col: c}
		filled := false
		for try := 0; try < retryCap; try++ {
			v := uint8(rng.Intn(size) + 1)
			nodes++
			if validator.Allowed(grid, v, pos) {
				grid[r][c] = v
				filled = true
				break
			}
		}
		if !filled {
			abandoned++
		}
	}

	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if abandoned > 0 {
		return st, ErrIncomplete
	}
	return st, nil
}
