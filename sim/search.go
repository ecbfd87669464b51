package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// DefaultSearchTrials is the number of trials run per candidate percentage.
const DefaultSearchTrials = 20

// numSearchSteps splits [0, 1] into 0.0, 0.1, ..., 1.0.
const numSearchSteps = 10

// SearchOutcome tags a SearchResult.
type SearchOutcome string

const (
	// OutcomeThresholdFound means some candidate pushed the median wait above the target.
	OutcomeThresholdFound SearchOutcome = "threshold-found"
	// OutcomeInfeasible means no candidate in [0, 1] did.
	OutcomeInfeasible SearchOutcome = "infeasible"
)

// CandidateWait pairs a split-ticket percentage with the trials run for it.
type CandidateWait struct {
	PercentSplitTicket float64
	MedianWait         float64
	Trials             *TrialSummary
}

// SearchResult is the outcome of SearchThreshold.
// PercentSplitTicket and WaitTime are meaningful only when Outcome is OutcomeThresholdFound;
// an infeasible search is never reported as a threshold of 0.
type SearchResult struct {
	Outcome            SearchOutcome
	PercentSplitTicket float64
	WaitTime           float64
	// Evaluated lists every candidate tried, ascending, ending at the answer.
	Evaluated []CandidateWait
}

// Feasible reports whether a threshold was found.
func (r SearchResult) Feasible() bool {
	return r.Outcome == OutcomeThresholdFound
}

// SearchCandidates returns the split-ticket percentages scanned by SearchThreshold, ascending.
func SearchCandidates() []float64 {
	candidates := make([]float64, 0, numSearchSteps+1)
	for i := 0; i <= numSearchSteps; i++ {
		candidates = append(candidates, float64(i)/numSearchSteps)
	}
	return candidates
}

// SearchThreshold finds the smallest split-ticket percentage whose median wait over
// nTrials trials (seeds seed, seed+1, ...) is strictly greater than targetWait.
func SearchThreshold(p Precinct, targetWait float64, nTrials int, seed int64) (SearchResult, error) {
	if err := p.Validate(); err != nil {
		return SearchResult{}, err
	}
	result := SearchResult{Outcome: OutcomeInfeasible}
	for _, split := range SearchCandidates() {
		summary, err := RunTrials(p, 1-split, nTrials, seed)
		if err != nil {
			return SearchResult{}, fmt.Errorf("search threshold at %.1f split-ticket: %w", split, err)
		}
		median := summary.Median
		result.Evaluated = append(result.Evaluated, CandidateWait{PercentSplitTicket: split, MedianWait: median, Trials: summary})
		logrus.Infof("[precinct %q] split-ticket %.1f: median wait %.3f (target %.3f)", p.Name, split, median, targetWait)

		if median > targetWait {
			result.Outcome = OutcomeThresholdFound
			result.PercentSplitTicket = split
			result.WaitTime = median
			return result, nil
		}
	}
	return result, nil
}
