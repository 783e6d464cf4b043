// Package tour_test — shared helpers for solver tests.
//
// Policy:
//   - Deterministic fixtures only: fixed seeds, fixed starts.
//   - Helpers assert structural invariants (permutation of marks, knight-step
//     adjacency, closure) so individual tests stay focused on behavior.
package tour_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knighttour/board"
)

// seedDet is the fixed seed used wherever a test needs locked randomness.
const seedDet int64 = 42

// cornerStart is the canonical corner start used across tests; closed tours
// from corner squares are known to exist on the 8×8 board.
var cornerStart = board.Position{Row: 0, Col: 0}

// centerStart is a central square with the full 8 exits.
var centerStart = board.Position{Row: 3, Col: 4}

// pathInvariants asserts that the marks on b form one self-avoiding knight
// path starting at start: marks are exactly 1..k each used once, mark 1 sits
// on start, and consecutive marks are one knight move apart. Returns k.
func pathInvariants(t *testing.T, b *board.Board, start board.Position) int {
	t.Helper()

	path := b.Path()
	k := len(path)
	if k == 0 {
		return 0
	}

	require.Equal(t, start, path[0], "mark 1 must sit on the start square")

	// Each mark 1..k exactly once: Path already indexes by mark, so it
	// suffices that every entry was filled and no mark exceeds k.
	seen := make(map[board.Position]bool, k)
	for i, p := range path {
		require.True(t, b.InBounds(p), "path[%d]=%v out of bounds", i, p)
		require.Equal(t, i+1, b.At(p), "mark mismatch at %v", p)
		require.False(t, seen[p], "square %v visited twice", p)
		seen[p] = true
	}

	// Consecutive marks are knight-adjacent (Closes is the geometric
	// one-knight-move predicate).
	for i := 1; i < k; i++ {
		require.True(t, board.Closes(path[i-1], path[i]),
			"marks %d and %d at %v→%v are not one knight move apart", i, i+1, path[i-1], path[i])
	}

	return k
}

// closedTourInvariants asserts a fully successful result: all N² squares
// visited and the last mark one knight move from the start.
func closedTourInvariants(t *testing.T, b *board.Board, start board.Position) {
	t.Helper()

	k := pathInvariants(t, b, start)
	require.Equal(t, b.Squares(), k, "closed tour must cover all squares")

	path := b.Path()
	require.True(t, board.Closes(start, path[k-1]),
		"final square %v does not close back to start %v", path[k-1], start)
}

// requireAllZero asserts the board carries no marks at all.
func requireAllZero(t *testing.T, b *board.Board) {
	t.Helper()

	for _, row := range b.Grid() {
		for _, v := range row {
			require.Zero(t, v, "board must be fully reset")
		}
	}
}
