package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// TrialSummary reduces the per-trial average waits of a seed sequence.
type TrialSummary struct {
	// AverageWaits holds one average wait per trial, in seed order.
	AverageWaits []float64
	// Median is the element at index n/2 of the sorted averages (lower median for even n).
	Median float64
	Mean   float64
	StdDev float64 // sample standard deviation; 0 for a single trial
	Min    float64
	Max    float64
}

// RunTrials simulates p once per seed in {seed, seed+1, ..., seed+nTrials-1}
// with the given straight-ticket fraction, and summarizes the average waits.
//
// A trial that serves no voters fails the whole run with an error matching both
// ErrNoVotersServed and ErrInvalidConfiguration.
func RunTrials(p Precinct, percentStraightTicket float64, nTrials int, seed int64) (*TrialSummary, error) {
	if nTrials <= 0 {
		return nil, fmt.Errorf("%w: trial count must be positive, got %d", ErrInvalidConfiguration, nTrials)
	}
	p = p.WithPercentStraightTicket(percentStraightTicket)
	if err := p.Validate(); err != nil {
		return nil, err
	}

	averages := make([]float64, 0, nTrials)
	key := NewSimulationKey(seed)
	for i := 0; i < nTrials; i++ {
		sim := NewSimulator(p, key, nil)
		if err := sim.Run(); err != nil {
			return nil, fmt.Errorf("trial %d of precinct %q: %w", i, p.Name, err)
		}
		avg, err := AverageWaitTime(sim.Voters)
		if err != nil {
			logrus.Warnf("precinct %q: trial %d (seed %d) served no voters", p.Name, i, key)
			return nil, fmt.Errorf("%w: precinct %q trial %d (seed %d): %w", ErrInvalidConfiguration, p.Name, i, key, err)
		}
		averages = append(averages, avg)
		key = key.Next()
	}

	return summarizeTrials(averages), nil
}

// MedianWaitTime returns the median of the per-trial average waits; see RunTrials.
func MedianWaitTime(p Precinct, percentStraightTicket float64, nTrials int, seed int64) (float64, error) {
	summary, err := RunTrials(p, percentStraightTicket, nTrials, seed)
	if err != nil {
		return 0, err
	}
	return summary.Median, nil
}

func summarizeTrials(averages []float64) *TrialSummary {
	sorted := make([]float64, len(averages))
	copy(sorted, averages)
	sort.Float64s(sorted)

	summary := &TrialSummary{
		AverageWaits: averages,
		Median:       sorted[len(sorted)/2],
		Mean:         stat.Mean(averages, nil),
		Min:          floats.Min(averages),
		Max:          floats.Max(averages),
	}
	if len(averages) > 1 {
		summary.StdDev = stat.StdDev(averages, nil)
	}
	return summary
}
