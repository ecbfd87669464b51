// Package trace provides decision-trace recording for booth assignments.
// This package has no dependencies on sim/. It stores pure data types.
package trace

// BoothRecord captures how a single voter was assigned a booth.
type BoothRecord struct {
	VoterIndex  int
	ArrivalTime float64
	StartTime   float64
	// FreedAt is the departure evicted to make room for this voter.
	// Meaningful only when BoothWasFull is true.
	FreedAt      float64
	BoothWasFull bool
	Waited       bool // StartTime > ArrivalTime
}

// Wait returns the minutes the voter spent in line.
func (r BoothRecord) Wait() float64 {
	return r.StartTime - r.ArrivalTime
}
