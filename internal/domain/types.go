package domain

import (
	"fmt"
	"math"
)

// Grid is a size×size puzzle matrix with 0 marking empty cells.
// size is always blockSize² for some positive blockSize, so the grid
// tiles exactly into blockSize×blockSize blocks.
type Grid [][]uint8

// NewGrid returns an all-zero grid with side length blockSize².
func NewGrid(blockSize int) Grid {
	size := blockSize * blockSize
	g := make(Grid, size)
	for r := range g {
		g[r] = make([]uint8, size)
	}
	return g
}

// FromRows validates a caller-supplied matrix and adopts it as a Grid.
// The matrix must be square, its side a perfect square of a positive
// integer, and every value within 0..side. Malformed input is rejected
// here so the solvers never see it.
func FromRows(rows [][]uint8) (Grid, error) {
	size := len(rows)
	if size == 0 {
		return nil, fmt.Errorf("empty grid")
	}
	n := int(math.Sqrt(float64(size)))
	if n*n != size {
		return nil, fmt.Errorf("grid side %d is not a perfect square", size)
	}
	for r, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r, len(row), size)
		}
		for c, v := range row {
			if int(v) > size {
				return nil, fmt.Errorf("cell (%d,%d) holds %d, max is %d", r, c, v, size)
			}
		}
	}
	return Grid(rows), nil
}

// Size returns the side length of the grid.
func (g Grid) Size() int { return len(g) }

// BlockSize returns the block dimension N, with N² == Size.
func (g Grid) BlockSize() int { return int(math.Sqrt(float64(len(g)))) }

// Clone deep-copies the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r := range g {
		out[r] = make([]uint8, len(g[r]))
		copy(out[r], g[r])
	}
	return out
}

// FilledCells counts non-zero cells.
func (g Grid) FilledCells() int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Seed      int64  `json:"seed,omitempty"`
	Size      int    `json:"size"`
	Grid      Grid   `json:"grid"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Size      int    `json:"size"`
	CreatedAt int64  `json:"createdAt"`
}
