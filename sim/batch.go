package sim

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/precinct-sim/precinct-sim/sim/trace"
)

// PrecinctResult is one precinct's simulated day.
type PrecinctResult struct {
	Precinct Precinct
	Voters   []*Voter
	Trace    *trace.SimulationTrace // nil unless tracing was requested
}

// BatchOptions configures SimulatePrecincts.
type BatchOptions struct {
	Seed       int64
	Workers    int              // <= 1 runs precincts one after another
	TraceLevel trace.TraceLevel // per-precinct booth trace
}

// SimulatePrecincts simulates every precinct with the same seed. Precincts share no
// state, so with Workers > 1 they run concurrently; results keep the input order.
// The first failure, or a cancelled ctx, stops outstanding work.
func SimulatePrecincts(ctx context.Context, precincts []Precinct, opts BatchOptions) ([]PrecinctResult, error) {
	for _, p := range precincts {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	results := make([]PrecinctResult, len(precincts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for i, p := range precincts {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var tr *trace.SimulationTrace
			if opts.TraceLevel == trace.TraceLevelDecisions {
				tr = trace.NewSimulationTrace(trace.TraceConfig{Level: opts.TraceLevel})
			}
			voters, err := SimulateTraced(p, opts.Seed, tr)
			if err != nil {
				return fmt.Errorf("precinct %d: %w", i, err)
			}
			results[i] = PrecinctResult{Precinct: p, Voters: voters, Trace: tr}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
