package stats

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	exprand "golang.org/x/exp/rand"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/tour"
)

// RunnerOption configures optional Runner behavior.
type RunnerOption func(*Runner)

// WithLogger installs a zerolog logger for progress and summary lines.
// The default is a no-op logger, keeping the harness silent in tests.
func WithLogger(l zerolog.Logger) RunnerOption {
	return func(r *Runner) {
		r.log = l
	}
}

// Runner executes the trials described by a Config.
type Runner struct {
	cfg Config
	log zerolog.Logger
}

// New validates cfg and builds a Runner.
// Returns ErrNoTrials, board.ErrBoardSize, or tour.ErrUnsupportedAlgorithm
// on a misconfigured experiment.
func New(cfg Config, opts ...RunnerOption) (*Runner, error) {
	if cfg.Trials < 1 {
		return nil, ErrNoTrials
	}
	if cfg.Size < 1 {
		return nil, board.ErrBoardSize
	}
	switch cfg.Algo {
	case tour.Backtracking, tour.LasVegas:
	default:
		return nil, tour.ErrUnsupportedAlgorithm
	}

	r := &Runner{cfg: cfg, log: zerolog.Nop()}
	for _, fn := range opts {
		fn(r)
	}

	return r, nil
}

// Run executes cfg.Trials independent attempts and aggregates the outcome.
//
// Per-trial seeding: a base stream seeded by cfg.Seed supplies one draw per
// trial, which is mixed with the trial index via tour.DeriveSeed. Trials are
// therefore decorrelated from each other, yet the whole run is a pure
// function of the Config.
//
// Cancellation is checked between trials; on ctx.Done the partial report is
// returned together with the context error. The solver core itself has no
// notion of time.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	rep := Report{
		Algo:   r.cfg.Algo,
		Start:  r.cfg.Start,
		Size:   r.cfg.Size,
		Trials: r.cfg.Trials,
	}
	if r.cfg.RecordTrials {
		rep.Records = make([]TrialRecord, 0, r.cfg.Trials)
	}

	// Base stream for per-trial seed material.
	seeds := exprand.New(exprand.NewSource(uint64(r.cfg.Seed)))

	begin := time.Now()
	for trial := 0; trial < r.cfg.Trials; trial++ {
		select {
		case <-ctx.Done():
			rep.Trials = trial
			rep.Elapsed = time.Since(begin)
			finalizeRate(&rep)

			return rep, ctx.Err()
		default:
		}

		// One draw per trial, mixed with the trial index. The draw advances
		// the base stream so reusing a trial index cannot reuse a seed.
		trialSeed := tour.DeriveSeed(int64(seeds.Uint64()), uint64(trial))

		res, err := tour.Solve(r.cfg.Start,
			tour.WithAlgorithm(r.cfg.Algo),
			tour.WithSize(r.cfg.Size),
			tour.WithSeed(trialSeed),
		)
		if err != nil {
			// Config was validated in New; a solver error here is a defect,
			// surface it with the partial report.
			rep.Trials = trial
			rep.Elapsed = time.Since(begin)
			finalizeRate(&rep)

			return rep, err
		}

		if res.Success {
			rep.Successes++
		}
		if r.cfg.RecordTrials {
			rep.Records = append(rep.Records, TrialRecord{
				Trial:   trial,
				Seed:    trialSeed,
				Success: res.Success,
				Moves:   len(res.Path()),
			})
		}

		if r.cfg.LogEvery > 0 && (trial+1)%r.cfg.LogEvery == 0 {
			r.log.Info().
				Str("algorithm", r.cfg.Algo.String()).
				Int("trial", trial+1).
				Int("trials", r.cfg.Trials).
				Int("successes", rep.Successes).
				Msg("progress")
		}
	}

	rep.Elapsed = time.Since(begin)
	finalizeRate(&rep)

	r.log.Info().
		Str("algorithm", r.cfg.Algo.String()).
		Str("start", r.cfg.Start.String()).
		Int("trials", rep.Trials).
		Int("successes", rep.Successes).
		Float64("rate", rep.Rate).
		Dur("elapsed", rep.Elapsed).
		Msg("experiment finished")

	return rep, nil
}

// finalizeRate computes Rate from the counters, guarding the zero-trial
// partial report produced by immediate cancellation.
func finalizeRate(rep *Report) {
	if rep.Trials > 0 {
		rep.Rate = float64(rep.Successes) / float64(rep.Trials)
	}
}
