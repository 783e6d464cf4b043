package board_test

import (
	"testing"

	"github.com/katalvlaran/knighttour/board"
)

//----------------------------------------------------------------------------//
// LegalMoves / CountMoves Tests
//----------------------------------------------------------------------------//

// TestLegalMoves_Degrees checks onward-move counts at characteristic squares
// of an empty 8×8 board.
func TestLegalMoves_Degrees(t *testing.T) {
	b, err := board.New(8)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	cases := []struct {
		name string
		pos  board.Position
		want int
	}{
		{"Corner", board.Position{Row: 0, Col: 0}, 2},
		{"EdgeAdjacentToCorner", board.Position{Row: 0, Col: 1}, 3},
		{"NearCorner", board.Position{Row: 1, Col: 1}, 4},
		{"Center", board.Position{Row: 3, Col: 4}, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			moves := b.LegalMoves(tc.pos)
			if len(moves) != tc.want {
				t.Errorf("LegalMoves%v = %v (%d moves); want %d", tc.pos, moves, len(moves), tc.want)
			}
			if n := b.CountMoves(tc.pos); n != len(moves) {
				t.Errorf("CountMoves%v = %d; want %d (LegalMoves length)", tc.pos, n, len(moves))
			}
		})
	}
}

// TestLegalMoves_TableOrder verifies candidates come back in KnightMoves
// enumeration order — the canonical tie-break for the Warnsdorff sort.
func TestLegalMoves_TableOrder(t *testing.T) {
	b, err := board.New(8)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	p := board.Position{Row: 3, Col: 4}

	moves := b.LegalMoves(p)
	if len(moves) != len(board.KnightMoves) {
		t.Fatalf("LegalMoves%v = %d moves; want %d", p, len(moves), len(board.KnightMoves))
	}
	for i, d := range board.KnightMoves {
		want := board.Position{Row: p.Row + d.DR, Col: p.Col + d.DC}
		if moves[i] != want {
			t.Errorf("moves[%d] = %v; want %v (offset %v)", i, moves[i], want, d)
		}
	}
}

// TestLegalMoves_SkipsVisited ensures occupied squares are excluded.
func TestLegalMoves_SkipsVisited(t *testing.T) {
	b, err := board.New(8)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	p := board.Position{Row: 0, Col: 0}

	// Occupy one of the corner's two exits.
	b.Mark(board.Position{Row: 2, Col: 1}, 5)

	moves := b.LegalMoves(p)
	if len(moves) != 1 {
		t.Fatalf("LegalMoves%v = %v; want exactly 1 move", p, moves)
	}
	if moves[0] != (board.Position{Row: 1, Col: 2}) {
		t.Errorf("remaining move = %v; want (1,2)", moves[0])
	}
}

//----------------------------------------------------------------------------//
// Closes Tests
//----------------------------------------------------------------------------//

// TestCloses exercises the closed-tour predicate on concrete pairs,
// including symmetry.
func TestCloses(t *testing.T) {
	cases := []struct {
		name           string
		start, current board.Position
		want           bool
	}{
		{"KnightMoveApart", board.Position{Row: 0, Col: 0}, board.Position{Row: 1, Col: 2}, true},
		{"Adjacent", board.Position{Row: 0, Col: 0}, board.Position{Row: 0, Col: 1}, false},
		{"SameSquare", board.Position{Row: 4, Col: 4}, board.Position{Row: 4, Col: 4}, false},
		{"Symmetric", board.Position{Row: 1, Col: 2}, board.Position{Row: 0, Col: 0}, true},
		{"Diagonal", board.Position{Row: 2, Col: 2}, board.Position{Row: 4, Col: 4}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := board.Closes(tc.start, tc.current); got != tc.want {
				t.Errorf("Closes(%v, %v) = %v; want %v", tc.start, tc.current, got, tc.want)
			}
		})
	}
}

// TestCloses_IgnoresBoard documents that the predicate is geometric only:
// it holds even though both squares carry marks.
func TestCloses_IgnoresBoard(t *testing.T) {
	b, err := board.New(8)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	start := board.Position{Row: 0, Col: 0}
	last := board.Position{Row: 2, Col: 1}
	b.Mark(start, 1)
	b.Mark(last, 64)

	if !board.Closes(start, last) {
		t.Error("Closes must ignore occupancy; start being marked is the normal case")
	}
}
