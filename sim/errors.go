package sim

import "errors"

var (
	// ErrInvalidConfiguration is returned before any simulation work starts when a
	// precinct (or a trial/search parameter) cannot describe a valid election day.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNoVotersServed marks a trial in which not a single voter arrived before closing.
	// Errors carrying it also match ErrInvalidConfiguration.
	ErrNoVotersServed = errors.New("no voters served")

	// ErrInvariantViolation signals a logic defect inside the event loop. A run that
	// hits it is aborted; its partial output is never returned.
	ErrInvariantViolation = errors.New("internal invariant violation")

	// ErrBoothPoolEmpty is returned by BoothPool.EvictEarliest on an empty pool.
	ErrBoothPoolEmpty = errors.New("booth pool is empty")

	// ErrBoothPoolFull describes a rejected BoothPool.TryAdmit inside the event loop.
	ErrBoothPoolFull = errors.New("booth pool is full")
)
