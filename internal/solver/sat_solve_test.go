package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/sat"
)

func TestSATSolveClassic(t *testing.T) {
	g := sampleGrid(t)
	st, err := NewSATSolver(sat.NewGiniEngine()).Solve(context.Background(), g)
	require.NoError(t, err)
	requireSolvedAndValid(t, g)
	t.Logf("solved in %v, clauses=%d", st.Duration, st.Nodes)
}

func TestSATSolveFourByFourSingleGiven(t *testing.T) {
	g := domain.NewGrid(2)
	g[0][0] = 1
	_, err := NewSATSolver(sat.NewGiniEngine()).Solve(context.Background(), g)
	require.NoError(t, err)
	requireSolvedAndValid(t, g)
	assert.Equal(t, uint8(1), g[0][0])
}

func TestSATUnsolvableLeavesGridUntouched(t *testing.T) {
	g := domain.NewGrid(2)
	g[1][0] = 3
	g[1][2] = 3
	before := g.Clone()
	_, err := NewSATSolver(sat.NewGiniEngine()).Solve(context.Background(), g)
	require.ErrorIs(t, err, ErrUnsolvable)
	assert.Equal(t, before, g)
}

// Both strategies must agree on solvability; the solutions themselves
// may differ when the puzzle admits more than one.
func TestStrategiesAgree(t *testing.T) {
	bg := sampleGrid(t)
	sg := sampleGrid(t)
	_, err := NewBacktrackingSolver().Solve(context.Background(), bg)
	require.NoError(t, err)
	_, err = NewSATSolver(sat.NewGiniEngine()).Solve(context.Background(), sg)
	require.NoError(t, err)
	requireSolvedAndValid(t, bg)
	requireSolvedAndValid(t, sg)
	// this particular puzzle has a unique solution
	assert.Equal(t, bg, sg)
}
