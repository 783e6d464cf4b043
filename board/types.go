// Package board defines core types and sentinel errors for the board
// subpackage of github.com/katalvlaran/knighttour.
package board

import (
	"errors"
	"fmt"
)

// DefaultSize is the standard chessboard dimension.
const DefaultSize = 8

// ErrBoardSize indicates a requested board dimension smaller than 1.
var ErrBoardSize = errors.New("board: size must be at least 1")

// Position identifies a single square by zero-based (Row, Col) coordinates.
// It is an immutable value type; methods never mutate the receiver.
type Position struct {
	Row, Col int
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Offset is a single knight displacement (ΔRow, ΔCol).
type Offset struct {
	DR, DC int
}

// KnightMoves is the fixed table of the knight's 8 displacement offsets.
// The enumeration order is canonical: LegalMoves yields candidates in this
// order, and the backtracking solver breaks Warnsdorff ties by it. Do not
// reorder — tie-break order changes which tour is found first on boards
// with multiple solutions.
var KnightMoves = [8]Offset{
	{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
	{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
}

// Board is an N×N grid of visit-order marks. Cell value 0 means unvisited;
// a positive value k means the square was the k-th one visited. A Board is
// owned by exactly one solver invocation at a time; it is not safe for
// concurrent use.
type Board struct {
	size  int
	cells [][]int
}
