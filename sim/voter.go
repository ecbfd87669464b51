// Defines the Voter struct that models one voter's trip through a precinct.

package sim

// Voter models a single voter in a simulated day.
// All times are minutes since the polls opened.
// StartTime and DepartureTime are set exactly once, when the voter is admitted to a booth.
type Voter struct {
	ArrivalTime    float64 // when the voter joined the line
	VotingDuration float64 // minutes spent in the booth
	StartTime      float64 // when the voter entered a booth (>= ArrivalTime)
	DepartureTime  float64 // StartTime + VotingDuration
}

// newVoter creates a voter that has arrived but not yet been assigned a booth.
func newVoter(arrivalTime, votingDuration float64) *Voter {
	return &Voter{
		ArrivalTime:    arrivalTime,
		VotingDuration: votingDuration,
	}
}

// admit records the booth start time and the departure it implies.
func (v *Voter) admit(startTime float64) {
	v.StartTime = startTime
	v.DepartureTime = startTime + v.VotingDuration
}

// WaitTime returns the minutes the voter spent in line.
func (v *Voter) WaitTime() float64 {
	return v.StartTime - v.ArrivalTime
}

// AverageWaitTime returns the mean wait over voters.
// Returns ErrNoVotersServed for an empty slice.
func AverageWaitTime(voters []*Voter) (float64, error) {
	if len(voters) == 0 {
		return 0, ErrNoVotersServed
	}
	total := 0.0
	for _, v := range voters {
		total += v.WaitTime()
	}
	return total / float64(len(voters)), nil
}
