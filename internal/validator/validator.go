package validator

import (
	"context"

	"svw.info/sudoku-engine/internal/domain"
)

// Allowed reports whether value v could legally sit at pos, given the
// rest of the grid. A zero value is never allowed. The cell at pos is
// excluded from every comparison, so a cell may be checked while it
// already holds v.
func Allowed(g domain.Grid, v uint8, pos domain.CellCoord) bool {
	if v == 0 {
		return false
	}
	size := g.Size()
	for i := 0; i < size; i++ {
		if g[pos.Row][i] == v && i != pos.Col {
			return false
		}
		if g[i][pos.Col] == v && i != pos.Row {
			return false
		}
	}
	n := g.BlockSize()
	br, bc := pos.Row-pos.Row%n, pos.Col-pos.Col%n
	for r := br; r < br+n; r++ {
		for c := bc; c < bc+n; c++ {
			if r == pos.Row && c == pos.Col {
				continue
			}
			if g[r][c] == v {
				return false
			}
		}
	}
	return true
}

// Report classifies problem cells found by a full-grid scan. A blank
// cell is not a rule violation, only a sign the puzzle is unfinished;
// callers that want the old merged view use Invalid.
type Report struct {
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Blanks    []domain.CellCoord `json:"blanks,omitempty"`
}

// OK reports a completely filled, contradiction-free grid.
func (r Report) OK() bool { return len(r.Conflicts) == 0 && len(r.Blanks) == 0 }

// Invalid merges blanks and conflicts in row-major order, matching the
// scan that treats every blank as invalid.
func (r Report) Invalid() []domain.CellCoord {
	out := make([]domain.CellCoord, 0, len(r.Conflicts)+len(r.Blanks))
	out = append(out, r.Conflicts...)
	out = append(out, r.Blanks...)
	sortCoords(out)
	return out
}

func sortCoords(cs []domain.CellCoord) {
	// insertion sort; reports are tiny
	for i := 1; i < len(cs); i++ {
		for j := i; j > 0; j-- {
			a, b := cs[j-1], cs[j]
			if a.Row < b.Row || (a.Row == b.Row && a.Col <= b.Col) {
				break
			}
			cs[j-1], cs[j] = b, a
		}
	}
}

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate scans every cell and classifies it: blank, in conflict with
// a row/column/block peer, or fine.
func (v *FastValidator) Validate(ctx context.Context, g domain.Grid) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	var rep Report
	size := g.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			pos := domain.CellCoord{Row: r, Col: c}
			switch {
			case g[r][c] == 0:
				rep.Blanks = append(rep.Blanks, pos)
			case !Allowed(g, g[r][c], pos):
				rep.Conflicts = append(rep.Conflicts, pos)
			}
		}
	}
	return rep, nil
}
