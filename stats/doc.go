// Package stats runs repeated solver trials and aggregates success rates.
//
// What:
//
//   - Runner executes N independent trials of one algorithm from a fixed
//     start and reports Report{Trials, Successes, Rate, Elapsed}.
//   - Each Las Vegas trial gets its own decorrelated seed derived from the
//     base seed (tour.DeriveSeed over an x/exp/rand stream), so no board or
//     RNG state is shared across trials and whole runs replay under the
//     same Config.
//   - Writer persists reports and per-trial records as CSV for offline
//     analysis.
//
// Why:
//
//   - The Las Vegas solver's success rate is only meaningful empirically;
//     the solvers themselves are single-shot by contract.
//   - Comparing rates across starting squares (center vs. corner) and
//     against the deterministic backtracking baseline.
//
// Notes:
//
//   - Backtracking is deterministic: every trial repeats the same search, so
//     its rate is 0 or 1 and repeated trials only measure solve time.
//   - Run takes a context; cancellation between trials returns the partial
//     report with the context error. The solver core itself never blocks.
//
// Errors:
//
//   - ErrNoTrials: Config.Trials < 1.
//   - board.ErrBoardSize, tour.ErrUnsupportedAlgorithm: forwarded from the
//     solver configuration.
package stats
