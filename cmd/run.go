package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	sim "github.com/precinct-sim/precinct-sim/sim"
	"github.com/precinct-sim/precinct-sim/sim/trace"
)

type simulateOptions struct {
	Seed        *int64 // nil uses the precincts file seed
	PrintVoters bool
	Workers     int
	TraceLevel  trace.TraceLevel
}

type thresholdOptions struct {
	Seed       *int64 // nil uses the precincts file seed
	TargetWait float64
	Trials     int
	Precinct   string // empty selects the first precinct
}

// runSimulate simulates every precinct in path and reports each day to out.
func runSimulate(ctx context.Context, out io.Writer, path string, opts simulateOptions) error {
	pf, err := sim.LoadPrecincts(path)
	if err != nil {
		return err
	}
	seed := pf.Seed
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	batch := sim.BatchOptions{Seed: seed, Workers: opts.Workers, TraceLevel: opts.TraceLevel}

	logrus.Infof("Simulating %d precincts with seed %d on %d workers", len(pf.Precincts), seed, max(opts.Workers, 1))
	results, err := sim.SimulatePrecincts(ctx, pf.Precincts, batch)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	for _, r := range results {
		if opts.PrintVoters {
			writeVoters(out, r.Precinct, r.Voters)
		} else {
			writePrecinctSummary(out, r.Precinct, r.Voters)
		}
		if r.Trace != nil {
			writeTraceSummary(out, trace.Summarize(r.Trace))
		}
		fmt.Fprintln(out)
	}
	return nil
}

// runThreshold searches one precinct of path and reports the outcome to out.
func runThreshold(out io.Writer, path string, opts thresholdOptions) error {
	pf, err := sim.LoadPrecincts(path)
	if err != nil {
		return err
	}
	seed := pf.Seed
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	p := pf.Precincts[0]
	if opts.Precinct != "" {
		var ok bool
		if p, ok = pf.Find(opts.Precinct); !ok {
			return fmt.Errorf("precinct %q not found in %s", opts.Precinct, path)
		}
	}

	result, err := sim.SearchThreshold(p, opts.TargetWait, opts.Trials, seed)
	if err != nil {
		return err
	}
	writeThresholdResult(out, p, opts.TargetWait, result)
	return nil
}
