package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/tour"
)

var (
	solveAlgo string
	solveRow  int
	solveCol  int
	solveSize int
	solveSeed int64
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Run one solver attempt and print the board",
		Long: `Run a single solver attempt from the given start square.

Examples:
  knighttour solve --row 0 --col 0
  knighttour solve --algo lasvegas --row 3 --col 4 --seed 42
  knighttour solve --size 6 --row 1 --col 1`,
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&solveAlgo, "algo", "a", "backtracking", "Solver: backtracking or lasvegas")
	solveCmd.Flags().IntVar(&solveRow, "row", 0, "Starting row (0-based)")
	solveCmd.Flags().IntVar(&solveCol, "col", 0, "Starting column (0-based)")
	solveCmd.Flags().IntVarP(&solveSize, "size", "n", board.DefaultSize, "Board dimension N")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "Las Vegas seed (0 = fixed default)")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, _ []string) error {
	algo, err := parseAlgorithm(solveAlgo)
	if err != nil {
		return err
	}

	start := board.Position{Row: solveRow, Col: solveCol}
	logger.Info().
		Str("algorithm", algo.String()).
		Str("start", start.String()).
		Int("size", solveSize).
		Msg("solving")

	res, err := tour.Solve(start,
		tour.WithAlgorithm(algo),
		tour.WithSize(solveSize),
		tour.WithSeed(solveSeed),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if res.Success {
		fmt.Fprintln(out, "SUCCESS! Closed knight's tour found:")
	} else {
		fmt.Fprintln(out, "FAILED! No closed tour found.")
	}
	fmt.Fprint(out, res.Board.String())

	return nil
}
