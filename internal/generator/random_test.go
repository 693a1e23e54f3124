package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/validator"
)

func TestFillIsLocallyConsistent(t *testing.T) {
	g := domain.NewGrid(3)
	size := g.Size()
	_, err := New().Fill(context.Background(), g, 2*size*size, 42)
	if err != nil {
		require.ErrorIs(t, err, ErrIncomplete)
	}
	rep, err := validator.New().Validate(context.Background(), g)
	require.NoError(t, err)
	assert.Empty(t, rep.Conflicts, "generated values must not contradict each other")
	assert.Positive(t, g.FilledCells())
}

func TestFillDeterministicPerSeed(t *testing.T) {
	a := domain.NewGrid(3)
	b := domain.NewGrid(3)
	_, errA := New().Fill(context.Background(), a, 60, 7)
	_, errB := New().Fill(context.Background(), b, 60, 7)
	assert.Equal(t, errA, errB)
	assert.Equal(t, a, b)

	c := domain.NewGrid(3)
	_, _ = New().Fill(context.Background(), c, 60, 8)
	assert.NotEqual(t, a, c, "different seeds should diverge")
}

func TestFillRespectsAttemptBudget(t *testing.T) {
	g := domain.NewGrid(2)
	_, err := New().Fill(context.Background(), g, 5, 1)
	if err != nil {
		require.ErrorIs(t, err, ErrIncomplete)
	}
	assert.LessOrEqual(t, g.FilledCells(), 5)
}

func TestFillTerminatesUnderSaturation(t *testing.T) {
	// The high budget drives cells toward saturation; the per-cell
	// retry cap must keep this from looping forever.
	g := domain.NewGrid(2)
	size := g.Size()
	_, err := New().Fill(context.Background(), g, 10*size*size, 3)
	if err != nil {
		require.ErrorIs(t, err, ErrIncomplete)
	}
	rep, vErr := validator.New().Validate(context.Background(), g)
	require.NoError(t, vErr)
	assert.Empty(t, rep.Conflicts)
}

func TestFillCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := domain.NewGrid(3)
	_, err := New().Fill(ctx, g, 10, 1)
	require.ErrorIs(t, err, context.Canceled)
}
