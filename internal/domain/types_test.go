package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridShape(t *testing.T) {
	for _, bs := range []int{1, 2, 3, 4} {
		g := NewGrid(bs)
		assert.Equal(t, bs*bs, g.Size())
		assert.Equal(t, bs, g.BlockSize())
		for _, row := range g {
			assert.Len(t, row, bs*bs)
		}
	}
}

func TestFromRowsRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		rows [][]uint8
	}{
		{"empty", nil},
		{"non-square side", [][]uint8{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}},
		{"ragged", [][]uint8{{0, 0, 0, 0}, {0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}},
		{"value out of range", [][]uint8{{5, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromRows(tc.rows)
			assert.Error(t, err)
		})
	}
}

func TestFromRowsAcceptsTrivialGrid(t *testing.T) {
	g, err := FromRows([][]uint8{{1}})
	require.NoError(t, err)
	assert.Equal(t, 1, g.Size())
	assert.Equal(t, 1, g.BlockSize())
}

func TestCloneIsDeep(t *testing.T) {
	g := NewGrid(2)
	g[1][1] = 3
	c := g.Clone()
	c[1][1] = 4
	assert.Equal(t, uint8(3), g[1][1])
	assert.Equal(t, uint8(4), c[1][1])
}

func TestFilledCells(t *testing.T) {
	g := NewGrid(2)
	assert.Zero(t, g.FilledCells())
	g[0][0], g[2][3] = 1, 2
	assert.Equal(t, 2, g.FilledCells())
}

func TestParseStrategy(t *testing.T) {
	assert.Equal(t, StrategySAT, ParseStrategy("SAT"))
	assert.Equal(t, StrategySAT, ParseStrategy("cnf"))
	assert.Equal(t, StrategyBacktracking, ParseStrategy("backtracking"))
	assert.Equal(t, StrategyBacktracking, ParseStrategy(""))
}
