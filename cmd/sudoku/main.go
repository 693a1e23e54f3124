// Command sudoku is a batch front-end for the solving engine: it
// reads grids in the plain text format, runs one operation, and
// prints the result to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "sudoku",
	Short:         "Solve, generate and inspect Sudoku puzzles of any block size",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
