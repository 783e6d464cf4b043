// Package knighttour solves the closed Knight's Tour problem: find a
// sequence of knight moves that visits every square of an N×N board exactly
// once and ends one knight move from where it started, so the path closes
// into a cycle.
//
// 🐴 What is knighttour?
//
//	A small, deterministic-by-default library with two solving strategies:
//		• Backtracking — exhaustive depth-first search ordered by
//		  Warnsdorff's heuristic (fewest onward moves first)
//		• Las Vegas — a randomized single pass that either finds a closed
//		  tour or reports failure, never a wrong answer
//
// ✨ Why choose knighttour?
//
//   - Explicit randomness – seedable, injectable RNG; no hidden global state
//   - Honest failures – "no tour" and "bad input" are results, not panics
//   - Measurable – a statistics harness quantifies Las Vegas success rates
//   - Pure Go core – the solvers have no I/O, no clocks, no goroutines
//
// Everything is organized under four packages:
//
//	board/ — N×N board state, the knight move table, move generation,
//	         and the closed-tour predicate
//	tour/  — both solvers plus a unified dispatcher with functional options
//	stats/ — repeated-trial experiment runner with CSV export
//	cmd/   — the knighttour CLI: solve, compare, play
//
// Quick ASCII example — the knight's 8 exits from a central square:
//
//	. X . X .
//	X . . . X
//	. . N . .
//	X . . . X
//	. X . X .
//
// Closure needs an even number of squares (the knight graph is bipartite),
// which is one reason the standard 8×8 board is the default.
package knighttour
