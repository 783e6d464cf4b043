// Package stats defines the harness configuration, report shapes, and
// sentinel errors.
package stats

import (
	"errors"
	"time"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/tour"
)

// ErrNoTrials indicates a Config with fewer than one trial.
var ErrNoTrials = errors.New("stats: trials must be positive")

// Config describes one experiment: a fixed algorithm, start, and board size
// run for Trials independent attempts.
type Config struct {
	// Algo selects the solver under measurement.
	Algo tour.Algorithm

	// Start is the fixed starting square shared by every trial.
	Start board.Position

	// Size is the board dimension N. Defaults apply via DefaultConfig.
	Size int

	// Trials is the number of independent attempts (must be ≥ 1).
	Trials int

	// Seed is the base seed; per-trial seeds are derived from it so that
	// trials are decorrelated yet the whole run replays exactly.
	Seed int64

	// LogEvery emits a progress log line every LogEvery trials; 0 disables
	// progress logging.
	LogEvery int

	// RecordTrials keeps a per-trial record in the report (seed, outcome,
	// walk length) for CSV export.
	RecordTrials bool
}

// DefaultConfig returns a Config matching the classic experiment: the
// Las Vegas solver, corner start, standard board, 10000 trials, progress
// every 1000.
func DefaultConfig() Config {
	return Config{
		Algo:     tour.LasVegas,
		Start:    board.Position{Row: 0, Col: 0},
		Size:     board.DefaultSize,
		Trials:   10000,
		Seed:     0,
		LogEvery: 1000,
	}
}

// TrialRecord captures one attempt for offline analysis.
type TrialRecord struct {
	Trial   int   // zero-based trial index
	Seed    int64 // seed handed to the solver for this trial
	Success bool  // closed tour found
	Moves   int   // squares visited before success or dead end
}

// Report aggregates the outcome of a Runner.Run.
type Report struct {
	Algo      tour.Algorithm
	Start     board.Position
	Size      int
	Trials    int
	Successes int
	Rate      float64 // Successes / Trials
	Elapsed   time.Duration

	// Records is populated only when Config.RecordTrials is set.
	Records []TrialRecord
}
