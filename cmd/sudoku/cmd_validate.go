package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate [grid-file]",
	Short: "Report conflicting and blank cells",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := readGrid(args)
		if err != nil {
			return err
		}
		rep, err := validator.New().Validate(cmd.Context(), g)
		if err != nil {
			return err
		}
		if rep.OK() {
			fmt.Println("correct solution")
			return nil
		}
		for _, p := range rep.Conflicts {
			fmt.Printf("conflict at (%d, %d)\n", p.Row, p.Col)
		}
		for _, p := range rep.Blanks {
			fmt.Printf("blank at (%d, %d)\n", p.Row, p.Col)
		}
		if len(rep.Conflicts) > 0 {
			return errors.New("grid violates the sudoku constraints")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
