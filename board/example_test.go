// Package board_test provides runnable, deterministic examples for the
// knight-move primitives. Each example has a stable // Output: block.
package board_test

import (
	"fmt"

	"github.com/katalvlaran/knighttour/board"
)

// ExampleBoard_LegalMoves enumerates the knight's exits from a corner of an
// empty 8×8 board. The corner has exactly two, in KnightMoves table order.
func ExampleBoard_LegalMoves() {
	b, err := board.New(board.DefaultSize)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(b.LegalMoves(board.Position{Row: 0, Col: 0}))
	// Output:
	// [(2,1) (1,2)]
}

// ExampleCloses demonstrates the closed-tour predicate on the two pairs
// every implementation must agree on.
func ExampleCloses() {
	fmt.Println(board.Closes(board.Position{Row: 0, Col: 0}, board.Position{Row: 1, Col: 2}))
	fmt.Println(board.Closes(board.Position{Row: 0, Col: 0}, board.Position{Row: 0, Col: 1}))
	// Output:
	// true
	// false
}
