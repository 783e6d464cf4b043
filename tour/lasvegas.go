// Package tour - randomized single-pass solver (Las Vegas).
//
// The walk draws one legal move uniformly at random at every step and never
// backtracks: it either completes a closed tour or stops at the first dead
// end. Per the Las Vegas contract the result is never wrong — failure is
// reported explicitly, and repeated-trial statistics belong to the caller
// (see knighttour/stats).
package tour

import (
	"math/rand"

	"github.com/katalvlaran/knighttour/board"
)

// SolveLasVegas attempts one randomized walk toward a closed knight's tour
// from start.
//
// Randomness is explicit: WithRand injects an RNG, otherwise WithSeed fixes
// the internal one (seed 0 ⇒ stable default). Same seed ⇒ identical walk.
//
// Contracts:
//   - An out-of-bounds start yields {false, empty board}, not an error.
//   - Unlike the backtracking solver, the board is NOT rolled back: a failed
//     attempt keeps every mark made so far (including the final square of a
//     full but non-closing walk), so callers can inspect where it got stuck.
//
// Errors: only board.ErrBoardSize, from a WithSize value below 1.
//
// Complexity: O(N²) time per attempt, O(1) extra space.
func SolveLasVegas(start board.Position, opts ...Option) (Result, error) {
	o := resolve(opts)
	b, err := board.New(o.Size)
	if err != nil {
		return Result{}, err
	}

	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}

	return runLasVegas(b, start, rng), nil
}

// runLasVegas performs the walk on an already-built board.
// Shared by SolveLasVegas and the Solve dispatcher.
func runLasVegas(b *board.Board, start board.Position, rng *rand.Rand) Result {
	if !b.InBounds(start) {
		return Result{Success: false, Board: b}
	}

	var (
		current = start
		move    = 1
		squares = b.Squares()
	)
	b.Mark(current, move)

	for move < squares {
		cands := b.LegalMoves(current)

		// Stuck: no rollback, the partial walk stays on the board.
		if len(cands) == 0 {
			return Result{Success: false, Board: b}
		}

		// Uniform draw among the legal moves.
		current = cands[rng.Intn(len(cands))]
		move++
		b.Mark(current, move)
	}

	// Full walk: success iff the last square closes back to the start.
	return Result{Success: board.Closes(start, current), Board: b}
}
