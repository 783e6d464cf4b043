package board_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/knighttour/board"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		size int
		err  error
	}{
		{"Zero", 0, board.ErrBoardSize},
		{"Negative", -3, board.ErrBoardSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := board.New(tc.size)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d) error = %v; want %v", tc.size, err, tc.err)
			}
		})
	}
}

// TestNew_Empty checks that a fresh board has the right shape and no marks.
func TestNew_Empty(t *testing.T) {
	b, err := board.New(board.DefaultSize)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if b.Size() != 8 || b.Squares() != 64 {
		t.Errorf("Size=%d Squares=%d; want 8, 64", b.Size(), b.Squares())
	}
	for r := 0; r < b.Size(); r++ {
		for c := 0; c < b.Size(); c++ {
			if b.At(board.Position{Row: r, Col: c}) != 0 {
				t.Errorf("At(%d,%d)=%d; want 0", r, c, b.At(board.Position{Row: r, Col: c}))
			}
		}
	}
}

// TestInBounds checks boundary squares on an 8×8 board.
func TestInBounds(t *testing.T) {
	b, err := board.New(8)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	valid := []board.Position{{Row: 0, Col: 0}, {Row: 7, Col: 7}, {Row: 3, Col: 4}}
	for _, p := range valid {
		if !b.InBounds(p) {
			t.Errorf("InBounds%v=false; want true", p)
		}
	}
	invalid := []board.Position{{Row: -1, Col: 0}, {Row: 8, Col: 0}, {Row: 0, Col: 8}, {Row: 0, Col: -1}}
	for _, p := range invalid {
		if b.InBounds(p) {
			t.Errorf("InBounds%v=true; want false", p)
		}
	}
}

//----------------------------------------------------------------------------//
// Mark / Unmark / Grid / Path Tests
//----------------------------------------------------------------------------//

// TestMarkUnmark verifies visit bookkeeping round-trips.
func TestMarkUnmark(t *testing.T) {
	b, err := board.New(5)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	p := board.Position{Row: 2, Col: 3}

	b.Mark(p, 7)
	if !b.Visited(p) || b.At(p) != 7 {
		t.Errorf("after Mark: Visited=%v At=%d; want true, 7", b.Visited(p), b.At(p))
	}

	b.Unmark(p)
	if b.Visited(p) || b.At(p) != 0 {
		t.Errorf("after Unmark: Visited=%v At=%d; want false, 0", b.Visited(p), b.At(p))
	}
}

// TestGrid_DeepCopy ensures Grid does not alias solver-owned cells.
func TestGrid_DeepCopy(t *testing.T) {
	b, err := board.New(3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	b.Mark(board.Position{Row: 1, Col: 1}, 1)

	g := b.Grid()
	g[1][1] = 99
	if b.At(board.Position{Row: 1, Col: 1}) != 1 {
		t.Error("mutating Grid() copy leaked into the board")
	}
}

// TestPath reconstructs the visit order, including a partial walk.
func TestPath(t *testing.T) {
	b, err := board.New(4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	want := []board.Position{{Row: 0, Col: 0}, {Row: 2, Col: 1}, {Row: 0, Col: 2}}
	for i, p := range want {
		b.Mark(p, i+1)
	}

	got := b.Path()
	if len(got) != len(want) {
		t.Fatalf("Path length = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Path[%d] = %v; want %v", i, got[i], want[i])
		}
	}

	empty, err := board.New(4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if empty.Path() != nil {
		t.Errorf("Path on empty board = %v; want nil", empty.Path())
	}
}
