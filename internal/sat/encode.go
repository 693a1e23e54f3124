package sat

import "svw.info/sudoku-engine/internal/domain"

// Encode reduces a grid to CNF. Clause families are emitted in a fixed
// order so the output is deterministic:
//
//  1. at-least-one digit per cell
//  2. at-most-one occurrence per row per digit
//  3. at-most-one occurrence per column per digit
//  4. at-most-one occurrence per block per digit
//  5. a unit clause per pre-filled cell
//
// The conjunction of 1 and 2-4 yields the exactly-one semantics of the
// sudoku rules.
func Encode(g domain.Grid) Formula {
	size := g.Size()
	n := g.BlockSize()
	f := Formula{NumVars: size * size * size}

	// 1) every cell holds at least one digit
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			cl := make(Clause, size)
			for d := 0; d < size; d++ {
				cl[d] = Pos(Index(r, c, d, size))
			}
			f.Clauses = append(f.Clauses, cl)
		}
	}

	// 2) each digit at most once per row
	for r := 0; r < size; r++ {
		for d := 0; d < size; d++ {
			for c1 := 0; c1 < size; c1++ {
				for c2 := c1 + 1; c2 < size; c2++ {
					f.add(Neg(Index(r, c1, d, size)), Neg(Index(r, c2, d, size)))
				}
			}
		}
	}

	// 3) each digit at most once per column
	for c := 0; c < size; c++ {
		for d := 0; d < size; d++ {
			for r1 := 0; r1 < size; r1++ {
				for r2 := r1 + 1; r2 < size; r2++ {
					f.add(Neg(Index(r1, c, d, size)), Neg(Index(r2, c, d, size)))
				}
			}
		}
	}

	// 4) each digit at most once per block
	for br := 0; br < n; br++ {
		for bc := 0; bc < n; bc++ {
			for d := 0; d < size; d++ {
				for i := 0; i < size; i++ {
					for j := i + 1; j < size; j++ {
						r1, c1 := br*n+i/n, bc*n+i%n
						r2, c2 := br*n+j/n, bc*n+j%n
						f.add(Neg(Index(r1, c1, d, size)), Neg(Index(r2, c2, d, size)))
					}
				}
			}
		}
	}

	// 5) pin the givens
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if v := g[r][c]; v != 0 {
				f.add(Pos(Index(r, c, int(v)-1, size)))
			}
		}
	}

	return f
}

// Decode writes a satisfying assignment back into the grid: for every
// cell the first asserted digit wins. A cell with no asserted digit is
// left at 0, which cannot happen for a model of an Encode formula.
func Decode(model Assignment, g domain.Grid) {
	size := g.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			g[r][c] = 0
			for d := 0; d < size; d++ {
				if model.True(Index(r, c, d, size)) {
					g[r][c] = uint8(d + 1)
					break
				}
			}
		}
	}
}
