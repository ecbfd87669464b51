package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalVoters    int
	ImmediateCount int // voters who found a free booth on arrival
	WaitedCount    int
	ContendedCount int // voters who arrived to a full pool, whether or not they waited
	MeanWait       float64
	MaxWait        float64
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil {
		return summary
	}

	summary.TotalVoters = len(st.Booths)
	totalWait := 0.0
	for _, r := range st.Booths {
		if r.Waited {
			summary.WaitedCount++
		} else {
			summary.ImmediateCount++
		}
		if r.BoothWasFull {
			summary.ContendedCount++
		}
		wait := r.Wait()
		totalWait += wait
		if wait > summary.MaxWait {
			summary.MaxWait = wait
		}
	}
	if summary.TotalVoters > 0 {
		summary.MeanWait = totalWait / float64(summary.TotalVoters)
	}

	return summary
}
