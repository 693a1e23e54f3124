package solver

import (
	"context"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/sat"
)

// SATSolver reduces the grid to CNF and delegates to an Engine.
type SATSolver struct {
	Engine sat.Engine
}

func NewSATSolver(e sat.Engine) *SATSolver { return &SATSolver{Engine: e} }

// Solve encodes g, asks the engine for a model, and decodes it back
// into g. On unsatisfiable input the grid is left untouched.
func (s *SATSolver) Solve(ctx context.Context, g domain.Grid) (ports.Stats, error) {
	start := time.Now()
	f := sat.Encode(g)
	// clause count stands in for search nodes; the engine's internal
	// effort is not observable through the capability interface
	st := ports.Stats{Nodes: len(f.Clauses)}
	model, ok, err := s.Engine.Solve(ctx, f)
	st.Duration = time.Since(start)
	if err != nil {
		return st, err
	}
	if !ok {
		return st, ErrUnsolvable
	}
	sat.Decode(model, g)
	st.Duration = time.Since(start)
	return st, nil
}
