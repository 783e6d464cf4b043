// Package tour - exhaustive closed-tour search guided by Warnsdorff's heuristic.
//
// The search is a depth-first walk over knight paths with scoped mutation:
// every frame marks its square on entry and is guaranteed to unmark it on
// every failing exit path, so a failed subtree leaves no stale marks behind.
// The board is therefore all-zero after a total failure, and carries exactly
// the successful path after a success.
//
// Warnsdorff's rule is a pure greedy *ordering*, not a cut: candidates are
// sorted ascending by their onward-move count and all of them are still
// tried. A stable sort keeps equal-degree candidates in KnightMoves table
// order — the canonical tie-break; changing it changes which tour is found
// first on boards with multiple solutions.
package tour

import (
	"sort"

	"github.com/katalvlaran/knighttour/board"
)

// SolveBacktracking searches exhaustively for a closed knight's tour from
// start, trying moves in Warnsdorff order.
//
// Contracts:
//   - An out-of-bounds start yields {false, empty board}, not an error.
//   - On success the board holds each mark 1..N² exactly once and the N²-th
//     square is one knight move from start.
//   - On failure the board is fully reset to zero (unmarking propagates to
//     the root frame).
//
// Errors: only board.ErrBoardSize, from a WithSize value below 1.
//
// Complexity: exponential in N² worst case; recursion depth ≤ N².
func SolveBacktracking(start board.Position, opts ...Option) (Result, error) {
	o := resolve(opts)
	b, err := board.New(o.Size)
	if err != nil {
		return Result{}, err
	}

	return runBacktracking(b, start), nil
}

// runBacktracking drives the walker on an already-built board.
// Shared by SolveBacktracking and the Solve dispatcher.
func runBacktracking(b *board.Board, start board.Position) Result {
	// Precondition-style early exit: bad input shares the failure shape.
	if !b.InBounds(start) {
		return Result{Success: false, Board: b}
	}

	w := &btWalker{board: b, start: start, squares: b.Squares()}

	return Result{Success: w.descend(start, 1), Board: b}
}

// btWalker encapsulates state threaded through the recursive search.
type btWalker struct {
	board   *board.Board   // exclusively owned, mutated in place
	start   board.Position // tour origin, target of the closing move
	squares int            // N², the terminal move count
}

// descend tries to extend the path through pos as the move-th square.
// It reports whether a closed tour was completed in this subtree; on false
// the mark written here has been removed again.
func (w *btWalker) descend(pos board.Position, move int) bool {
	// 1. Mark current position with its visit order.
	w.board.Mark(pos, move)

	// 2. Tour complete: success iff it closes back to the start.
	if move == w.squares {
		if board.Closes(w.start, pos) {
			return true
		}
		// Open but not closed: unmark so the caller's enclosing frame can
		// try alternative orderings against a clean cell.
		w.board.Unmark(pos)

		return false
	}

	// 3. Candidates in KnightMoves table order.
	cands := w.board.LegalMoves(pos)

	// 4. Warnsdorff ordering: fewest onward moves first. The stable sort
	//    preserves table order among equal degrees; the board is constant
	//    during sorting, so comparisons stay consistent.
	sort.SliceStable(cands, func(i, j int) bool {
		return w.board.CountMoves(cands[i]) < w.board.CountMoves(cands[j])
	})

	// 5. Recurse; the first success short-circuits upward.
	for _, next := range cands {
		if w.descend(next, move+1) {
			return true
		}
	}

	// 6. Dead end: roll back this frame's mark before reporting failure.
	w.board.Unmark(pos)

	return false
}
