package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knighttour/tour"
)

var rootCmd = &cobra.Command{
	Use:   "knighttour",
	Short: "Closed Knight's Tour solver",
	Long: `Find closed knight's tours on an N×N board.

A closed tour visits every square exactly once and ends one knight move from
the start. Two strategies are available: a deterministic Warnsdorff-guided
backtracking search and a randomized single-pass Las Vegas walk.`,
}

// logger writes human-readable progress to stderr, keeping stdout clean for
// boards and results.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseAlgorithm maps a CLI flag value onto the solver enum.
func parseAlgorithm(name string) (tour.Algorithm, error) {
	switch name {
	case "backtracking":
		return tour.Backtracking, nil
	case "lasvegas":
		return tour.LasVegas, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q (want backtracking or lasvegas)", name)
	}
}
