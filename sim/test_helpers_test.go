package sim

import "math"

// scenarioPrecinct is the reference scenario: every voter straight-ticket at 2 minutes.
func scenarioPrecinct() Precinct {
	return Precinct{
		Name:                   "Scenario",
		HoursOpen:              1,
		MaxNumVoters:           30,
		NumBooths:              2,
		ArrivalRate:            0.5,
		VotingDurationRate:     0.5,
		PercentStraightTicket:  1.0,
		StraightTicketDuration: 2.0,
	}
}

// Recorded outcome of scenarioPrecinct with seed 0 under the math/rand source.
const (
	scenarioSeed0Voters      = 30
	scenarioSeed0AverageWait = 0.32326457382432777
)

// busyPrecinct is overloaded when most voters split their ticket
// (mean 4 min over 3 booths at 1 voter/min) and lightly loaded when they don't.
func busyPrecinct() Precinct {
	return Precinct{
		Name:                   "Busy",
		HoursOpen:              3,
		MaxNumVoters:           500,
		NumBooths:              3,
		ArrivalRate:            1.0,
		VotingDurationRate:     0.25,
		PercentStraightTicket:  0.5,
		StraightTicketDuration: 1.0,
	}
}

// referenceVoter is a voter produced by referenceSimulate.
type referenceVoter struct {
	arrival, duration, start, departure float64
}

// referenceSimulate re-derives a day from the documented sampling order with a
// plain slice of booth departures, independently of BoothPool and VoterStream.
func referenceSimulate(p Precinct, seed int64) []referenceVoter {
	rng := NewVoterStream(NewSimulationKey(seed)).rng
	exp := func(rate float64) float64 { return -math.Log(1-rng.Float64()) / rate }

	var voters []referenceVoter
	var booths []float64
	t := 0.0
	for len(voters) < p.MaxNumVoters {
		gap := exp(p.ArrivalRate)
		var duration float64
		if rng.Float64() < p.PercentStraightTicket {
			duration = p.StraightTicketDuration
		} else {
			duration = exp(p.VotingDurationRate)
		}
		t += gap
		if t >= p.ClosingTime() {
			break
		}
		start := t
		if len(booths) == p.NumBooths {
			earliest := 0
			for i := range booths {
				if booths[i] < booths[earliest] {
					earliest = i
				}
			}
			if booths[earliest] > start {
				start = booths[earliest]
			}
			booths = append(booths[:earliest], booths[earliest+1:]...)
		}
		booths = append(booths, start+duration)
		voters = append(voters, referenceVoter{arrival: t, duration: duration, start: start, departure: start + duration})
	}
	return voters
}
