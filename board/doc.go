// Package board models an N×N chessboard for knight's tour search, enabling
// move generation and visit-order bookkeeping.
//
// What:
//
//   - Board wraps an N×N integer grid; cell 0 means unvisited, a positive
//     value k means the cell was the k-th square visited (1-indexed).
//   - KnightMoves is the fixed table of the knight's 8 displacement offsets.
//   - LegalMoves / CountMoves enumerate and count onward knight moves.
//   - Closes decides whether two squares are one knight move apart
//     (the closed-tour predicate; it never consults occupancy).
//
// Why:
//
//   - Tour search: both the backtracking and the Las Vegas solver in
//     knighttour/tour share these primitives.
//   - Display: Board.String renders the visit order as a formatted table.
//
// Complexity:
//
//   - InBounds, At, Mark, Unmark, Closes, CountMoves: O(1).
//   - LegalMoves: O(1) (at most 8 candidates).
//   - Path, Grid, String: O(N²).
//
// Options:
//
//   - New(size): board dimension N; DefaultSize (8) is the standard board.
//
// Errors:
//
//   - ErrBoardSize: requested dimension is smaller than 1.
package board
