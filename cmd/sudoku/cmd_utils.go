package main

import (
	"os"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/gridio"
)

// readGrid loads a grid from the first positional argument, or stdin
// when none is given.
func readGrid(args []string) (domain.Grid, error) {
	if len(args) == 0 {
		return gridio.Parse(os.Stdin)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return gridio.Parse(f)
}
