package sim

import (
	"math"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulated day.
// Two simulations with the same SimulationKey and identical Precinct
// MUST produce bit-for-bit identical voters.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// Next returns the key of the following trial in a seed sequence.
func (k SimulationKey) Next() SimulationKey {
	return k + 1
}

// === VoterStream ===

// VoterStream draws voter parameters from a private, seeded source.
//
// Per voter the draws happen in a fixed order:
//  1. interarrival gap: exponential with the precinct's arrival rate
//  2. ticket selector: one uniform draw, straight ticket when < PercentStraightTicket
//  3. voting duration: exponential with VotingDurationRate, only for split-ticket voters
//
// Exponential draws use inverse-transform sampling, -ln(U)/rate with U = 1 - Float64()
// so that U lies in (0,1].
//
// Thread-safety: NOT thread-safe. Each simulated day owns its stream.
type VoterStream struct {
	key SimulationKey
	rng *rand.Rand
}

// NewVoterStream creates a stream whose state depends only on key.
func NewVoterStream(key SimulationKey) *VoterStream {
	return &VoterStream{
		key: key,
		rng: rand.New(rand.NewSource(int64(key))),
	}
}

// Key returns the SimulationKey used to seed this stream.
func (s *VoterStream) Key() SimulationKey {
	return s.key
}

// Exponential returns -ln(U)/rate. A zero rate yields +Inf.
func (s *VoterStream) Exponential(rate float64) float64 {
	u := 1.0 - s.rng.Float64()
	return -math.Log(u) / rate
}

// NextVoter draws the interarrival gap and voting duration of the next voter of p.
func (s *VoterStream) NextVoter(p Precinct) (gap, duration float64) {
	gap = s.Exponential(p.ArrivalRate)
	if s.rng.Float64() < p.PercentStraightTicket {
		return gap, p.StraightTicketDuration
	}
	return gap, s.Exponential(p.VotingDurationRate)
}
