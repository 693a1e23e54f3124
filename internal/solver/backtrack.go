package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/validator"
)

// ErrUnsolvable is returned when a solver proves no filling exists.
var ErrUnsolvable = errors.New("no solution exists")

// BacktrackingSolver is an iterative depth-first search over the blank
// cells, tried in row-major order with candidates ascending.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// Solve fills g in place. The blank positions are collected once up
// front; a cursor walks the list, trying candidates strictly greater
// than the cell's current value so backtracking resumes where a cell
// left off instead of re-enumerating. Backtracking past the first
// blank proves the puzzle unsolvable, in which case every blank is
// reset to 0 before returning.
func (s *BacktrackingSolver) Solve(ctx context.Context, g domain.Grid) (ports.Stats, error) {
	start := time.Now()
	size := g.Size()

	var blanks []domain.CellCoord
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if g[r][c] == 0 {
				blanks = append(blanks, domain.CellCoord{Row: r, Col: c})
			}
		}
	}

	nodes := 0
	i := 0
	for i < len(blanks) {
		if err := ctx.Err(); err != nil {
			return ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		pos := blanks[i]
		placed := false
		for d := int(g[pos.Row][pos.Col]) + 1; d <= size; d++ {
			nodes++
			if validator.Allowed(g, uint8(d), pos) {
				g[pos.Row][pos.Col] = uint8(d)
				i++
				placed = true
				break
			}
		}
		if placed {
			continue
		}
		g[pos.Row][pos.Col] = 0
		if i == 0 {
			// Exhausted the first blank: a contradiction among the
			// givens, or a puzzle with no consistent completion.
			for _, p := range blanks {
				g[p.Row][p.Col] = 0
			}
			return ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrUnsolvable
		}
		i--
	}
	return ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
