package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/generator"
	"svw.info/sudoku-engine/internal/gridio"
)

var (
	genBlockSize int
	genAttempts  int
	genSeed      int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Fill a blank grid with random consistent values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if genBlockSize < 1 {
			return errors.New("block size must be positive")
		}
		seed := genSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g := domain.NewGrid(genBlockSize)
		attempts := genAttempts
		if attempts <= 0 {
			size := g.Size()
			attempts = 2 * size * size
		}
		st, err := generator.New().Fill(cmd.Context(), g, attempts, seed)
		if err != nil && !errors.Is(err, generator.ErrIncomplete) {
			return err
		}
		if errors.Is(err, generator.ErrIncomplete) {
			fmt.Fprintln(os.Stderr, "warning: some placements were abandoned; grid is sparser than requested")
		}
		fmt.Fprintf(os.Stderr, "placed %d values in %v (seed %d)\n", g.FilledCells(), st.Duration, seed)
		return gridio.Write(os.Stdout, g)
	},
}

func init() {
	generateCmd.Flags().IntVar(&genBlockSize, "block-size", 3, "block dimension N; grid side is N²")
	generateCmd.Flags().IntVar(&genAttempts, "attempts", 0, "placement attempts (default 2×side²)")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "RNG seed (default: current time)")
	rootCmd.AddCommand(generateCmd)
}
