// SPDX-License-Identifier: MIT
// Package: knighttour/tour
//
// types.go — algorithms enum, sentinel errors, Result, and functional options.
//
// Contract (strict):
//   - Options are functional (type Option func(*Options)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     solvers themselves MUST NOT panic on user input.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; randomness never comes from process-global state.
package tour

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/knighttour/board"
)

// Algorithm selects the solving strategy used by Solve.
type Algorithm int

const (
	// Backtracking is the exhaustive Warnsdorff-ordered depth-first search.
	Backtracking Algorithm = iota
	// LasVegas is the randomized single-pass walk without backtracking.
	LasVegas
)

// String returns the human-readable algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Backtracking:
		return "backtracking"
	case LasVegas:
		return "lasvegas"
	default:
		return "unknown"
	}
}

// ErrUnsupportedAlgorithm is returned by Solve when Options.Algo does not
// name a known solver.
var ErrUnsupportedAlgorithm = errors.New("tour: unsupported algorithm")

// Result holds the outcome of one solver invocation.
//
// Success is true iff all N² squares are visited AND the final square is one
// knight move from the start. Board reflects the rollback semantics of the
// algorithm that produced it: all-zero after a failed backtracking search,
// the partial walk after a failed Las Vegas attempt.
type Result struct {
	Success bool
	Board   *board.Board
}

// Path returns the visit sequence recorded on the result board. For a failed
// Las Vegas attempt this is the partial walk; for a failed backtracking
// search it is nil (the board was fully unwound).
func (r Result) Path() []board.Position {
	return r.Board.Path()
}

// Option configures a solver invocation. Use with Solve, SolveBacktracking,
// or SolveLasVegas.
type Option func(*Options)

// Options holds configurable parameters shared by both solvers.
type Options struct {
	// Algo selects the strategy; consulted by Solve only.
	Algo Algorithm

	// Size is the board dimension N. Defaults to board.DefaultSize (8).
	Size int

	// Seed drives the Las Vegas RNG when Rand is nil.
	// Seed 0 selects a fixed internal default, keeping defaults reproducible.
	Seed int64

	// Rand, if non-nil, overrides Seed as the Las Vegas randomness source.
	// A *rand.Rand is not goroutine-safe; do not share one across
	// concurrent invocations.
	Rand *rand.Rand
}

// DefaultOptions returns Options with:
//   - Backtracking algorithm
//   - standard 8×8 board
//   - deterministic default seed (0 policy)
//   - no injected RNG
func DefaultOptions() Options {
	return Options{
		Algo: Backtracking,
		Size: board.DefaultSize,
		Seed: 0,
		Rand: nil,
	}
}

// WithAlgorithm returns an Option that selects the solving strategy.
// Validity is checked by Solve (ErrUnsupportedAlgorithm), not here, so that
// future strategies can be routed without touching option constructors.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algo = a
	}
}

// WithSize returns an Option that sets the board dimension N.
// Range is checked when the board is built (board.ErrBoardSize).
func WithSize(n int) Option {
	return func(o *Options) {
		o.Size = n
	}
}

// WithSeed returns an Option that fixes the Las Vegas seed (deterministic).
// Use this in tests and harnesses to lock outcomes.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand returns an Option that injects an explicit RNG.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("tour: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// resolve applies opts on top of DefaultOptions.
// Complexity: O(len(opts)).
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
