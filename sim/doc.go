// Package sim provides the discrete-event simulation of voters at a polling precinct.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - voter.go: Voter lifecycle (arrived → admitted to a booth → departed)
//   - booth.go: BoothPool, the bounded min-heap of scheduled departures
//   - simulator.go: the arrival loop and booth assignment
//
// # Architecture
//
// Control flows leaf-ward:
//
//	SearchThreshold → RunTrials/MedianWaitTime → Simulator → BoothPool, VoterStream
//
// Randomness is never global: every simulated day owns a VoterStream seeded from a
// SimulationKey, so a trial is a pure function of its Precinct and seed.
//
// Sub-packages:
//   - sim/trace/: booth-assignment decision trace
//
// # Errors
//
// Invalid precincts fail with ErrInvalidConfiguration before any simulation starts.
// ErrInvariantViolation aborts a run that would otherwise produce corrupted statistics.
// An unreachable wait target is not an error: SearchThreshold reports OutcomeInfeasible.
package sim
