package main

import (
	"os"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/sat"
)

var dimacsCmd = &cobra.Command{
	Use:   "dimacs [grid-file]",
	Short: "Print the puzzle's CNF reduction in DIMACS form",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := readGrid(args)
		if err != nil {
			return err
		}
		return sat.Encode(g).WriteDIMACS(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(dimacsCmd)
}
