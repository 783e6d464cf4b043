// Package tour provides closed Knight's Tour solvers on an N×N board.
//
// It includes two algorithms over knighttour/board primitives:
//
//   - SolveBacktracking — exhaustive depth-first search ordered by
//     Warnsdorff's heuristic (fewest onward moves first, stable sort,
//     ties broken by the KnightMoves table order).
//
//   - Worst case: exponential in N² (the heuristic orders, it never cuts).
//
//   - Deterministic: same start ⇒ identical result and board.
//
//   - SolveLasVegas — a single randomized pass with no backtracking:
//     at each step one legal move is drawn uniformly; the walk either
//     completes a closed tour or reports failure where it got stuck.
//
//   - Complexity: O(N²) per attempt.
//
//   - Deterministic under a fixed seed (WithSeed) or injected RNG (WithRand).
//
// A tour is closed when the N²-th square is one knight move from the start,
// so the path can be traversed as a cycle. Both solvers report the outcome
// as an ordinary Result — an out-of-bounds start yields an unsuccessful
// Result, not an error, since "no tour found" and "bad input" share the
// same observable shape.
//
// Rollback semantics differ by design:
//   - Backtracking unwinds every failed branch; on total failure the
//     returned board is fully reset to zero.
//   - Las Vegas never rolls back; on failure the board keeps the partial
//     walk for inspection.
//
// Use Solve with Options.Algo to route between the two, mirroring the
// per-trial dispatch a statistics harness performs (see knighttour/stats).
package tour
