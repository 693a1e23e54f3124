package sat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
)

var solved4 = [][]uint8{
	{1, 2, 3, 4},
	{3, 4, 1, 2},
	{2, 1, 4, 3},
	{4, 3, 2, 1},
}

func TestEngineRoundTripOnSolvedGrid(t *testing.T) {
	rows := make([][]uint8, len(solved4))
	for i, r := range solved4 {
		rows[i] = append([]uint8(nil), r...)
	}
	g, err := domain.FromRows(rows)
	require.NoError(t, err)
	want := g.Clone()

	model, ok, err := NewGiniEngine().Solve(context.Background(), Encode(g))
	require.NoError(t, err)
	require.True(t, ok, "a consistent solved grid must stay satisfiable")

	// unit clauses pin every cell, so decoding reproduces the input
	Decode(model, g)
	assert.Equal(t, want, g)
}

func TestEngineReportsUnsat(t *testing.T) {
	g := domain.NewGrid(2)
	g[0][0] = 1
	g[0][1] = 1 // same digit twice in a row

	_, ok, err := NewGiniEngine().Solve(context.Background(), Encode(g))
	require.NoError(t, err)
	assert.False(t, ok)
}
