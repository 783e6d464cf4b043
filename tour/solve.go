// SPDX-License-Identifier: MIT
// Package: knighttour/tour
//
// solve.go — unified dispatcher for the tour solvers.
//
// Design principles:
//   - Deterministic: seed routing to the Las Vegas walk; no time-based randomness.
//   - Strict sentinels: only errors from types.go and knighttour/board.
//   - Outcome vs. error: "no tour" is a Result, misconfiguration is an error.
package tour

import "github.com/katalvlaran/knighttour/board"

// Solve routes to the solver selected by Options.Algo and runs it from start.
//
// Contracts:
//   - Options.Algo must be Backtracking or LasVegas (ErrUnsupportedAlgorithm).
//   - Options.Size must be ≥ 1 (board.ErrBoardSize).
//   - start validity is NOT an error: an out-of-bounds start produces an
//     unsuccessful Result with an empty board, per the solver contracts.
//
// Complexity: per chosen algorithm (see backtrack.go, lasvegas.go).
func Solve(start board.Position, opts ...Option) (Result, error) {
	o := resolve(opts)

	// Reject unknown strategies before paying for board construction.
	switch o.Algo {
	case Backtracking, LasVegas:
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}

	b, err := board.New(o.Size)
	if err != nil {
		return Result{}, err
	}

	if o.Algo == LasVegas {
		rng := o.Rand
		if rng == nil {
			rng = rngFromSeed(o.Seed)
		}

		return runLasVegas(b, start, rng), nil
	}

	return runBacktracking(b, start), nil
}
