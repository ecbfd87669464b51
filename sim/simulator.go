// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/precinct-sim/precinct-sim/sim/trace"
)

// Simulator holds simulation time, booth state, and the arrival loop for one precinct
// over one election day.
type Simulator struct {
	Precinct Precinct
	// Clock is the arrival time of the most recent voter.
	Clock float64
	// Horizon is the closing time; voters arriving at or after it are turned away.
	Horizon float64
	Booths  *BoothPool
	// Voters holds every admitted voter ordered by arrival.
	Voters []*Voter

	stream *VoterStream
	trace  *trace.SimulationTrace
}

// NewSimulator prepares a day for p with a fresh stream seeded by key.
// p must already be valid; tr may be nil.
func NewSimulator(p Precinct, key SimulationKey, tr *trace.SimulationTrace) *Simulator {
	return &Simulator{
		Precinct: p,
		Clock:    0,
		Horizon:  p.ClosingTime(),
		Booths:   NewBoothPool(p.NumBooths),
		Voters:   make([]*Voter, 0, min(p.MaxNumVoters, 1024)),
		stream:   NewVoterStream(key),
		trace:    tr,
	}
}

// Run generates arrivals until the polls close or the voter cap is reached.
// Every voter admitted keeps its booth even when it departs after closing.
func (sim *Simulator) Run() error {
	for len(sim.Voters) < sim.Precinct.MaxNumVoters {
		gap, duration := sim.stream.NextVoter(sim.Precinct)
		arrival := sim.Clock + gap
		if arrival >= sim.Horizon {
			break
		}
		sim.Clock = arrival

		voter := newVoter(arrival, duration)
		if err := sim.assignBooth(voter); err != nil {
			return err
		}
		sim.Voters = append(sim.Voters, voter)
		logrus.Debugf("[t=%09.3f] voter %d start=%.3f depart=%.3f",
			voter.ArrivalTime, len(sim.Voters)-1, voter.StartTime, voter.DepartureTime)
	}
	logrus.Infof("[precinct %q seed %d] Simulation ended with %d voters", sim.Precinct.Name, sim.stream.Key(), len(sim.Voters))
	return nil
}

// assignBooth seats v in the booth that frees up first, waiting for it when
// every booth is still busy at v's arrival.
func (sim *Simulator) assignBooth(v *Voter) error {
	idx := len(sim.Voters)
	start := v.ArrivalTime
	wasFull := sim.Booths.IsFull()
	freedAt := 0.0
	if wasFull {
		d, err := sim.Booths.EvictEarliest()
		if err != nil {
			return fmt.Errorf("%w: voter %d: %w", ErrInvariantViolation, idx, err)
		}
		freedAt = d
		if d > start {
			start = d
		}
	}

	v.admit(start)
	if !sim.Booths.TryAdmit(v.DepartureTime) {
		return fmt.Errorf("%w: voter %d departing at %.3f: %w", ErrInvariantViolation, idx, v.DepartureTime, ErrBoothPoolFull)
	}

	if sim.trace.Enabled() {
		sim.trace.RecordBooth(trace.BoothRecord{
			VoterIndex:   idx,
			ArrivalTime:  v.ArrivalTime,
			StartTime:    v.StartTime,
			FreedAt:      freedAt,
			BoothWasFull: wasFull,
			Waited:       v.StartTime > v.ArrivalTime,
		})
	}
	return nil
}

// Simulate runs one election day for p seeded by seed and returns the voters in
// arrival order.
func Simulate(p Precinct, seed int64) ([]*Voter, error) {
	return SimulateTraced(p, seed, nil)
}

// SimulateTraced is Simulate with booth assignments recorded into tr (may be nil).
func SimulateTraced(p Precinct, seed int64, tr *trace.SimulationTrace) ([]*Voter, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	sim := NewSimulator(p, NewSimulationKey(seed), tr)
	if err := sim.Run(); err != nil {
		return nil, fmt.Errorf("simulate precinct %q: %w", p.Name, err)
	}
	return sim.Voters, nil
}
