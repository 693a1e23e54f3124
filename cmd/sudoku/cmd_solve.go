package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/gridio"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/sat"
	"svw.info/sudoku-engine/internal/solver"
)

var solveStrategy string

var solveCmd = &cobra.Command{
	Use:   "solve [grid-file]",
	Short: "Solve a puzzle read from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := readGrid(args)
		if err != nil {
			return err
		}
		var s ports.Solver
		if domain.ParseStrategy(solveStrategy) == domain.StrategySAT {
			s = solver.NewSATSolver(sat.NewGiniEngine())
		} else {
			s = solver.NewBacktrackingSolver()
		}
		st, err := s.Solve(cmd.Context(), g)
		if err != nil {
			if errors.Is(err, solver.ErrUnsolvable) {
				return fmt.Errorf("puzzle is unsolvable (checked in %v)", st.Duration)
			}
			return err
		}
		fmt.Fprintf(os.Stderr, "solved in %v (%d nodes)\n", st.Duration, st.Nodes)
		return gridio.Write(os.Stdout, g)
	},
}

func init() {
	solveCmd.Flags().StringVar(&solveStrategy, "strategy", "backtracking", "solving strategy: backtracking|sat")
	rootCmd.AddCommand(solveCmd)
}
