// Package gridio reads and writes grids in a plain text form: one row
// per line, cells separated by whitespace, with 0, "." or "_" marking
// an empty cell.
package gridio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"svw.info/sudoku-engine/internal/domain"
)

// Parse reads a whole grid and validates its shape at the boundary.
func Parse(r io.Reader) (domain.Grid, error) {
	var rows [][]uint8
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]uint8, 0, len(fields))
		for _, f := range fields {
			if f == "." || f == "_" {
				row = append(row, 0)
				continue
			}
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("line %d: bad cell %q", line, f)
			}
			if v > 255 {
				return nil, fmt.Errorf("line %d: cell value %d out of range", line, v)
			}
			row = append(row, uint8(v))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return domain.FromRows(rows)
}

// Write prints the grid in the same form Parse accepts. Empty cells
// come out as "." so sparse puzzles stay readable.
func Write(w io.Writer, g domain.Grid) error {
	bw := bufio.NewWriter(w)
	width := 1
	if g.Size() > 9 {
		width = 2
	}
	for _, row := range g {
		for c, v := range row {
			if c > 0 {
				bw.WriteByte(' ')
			}
			if v == 0 {
				fmt.Fprintf(bw, "%*s", width, ".")
			} else {
				fmt.Fprintf(bw, "%*d", width, v)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
