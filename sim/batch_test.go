package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/precinct-sim/precinct-sim/sim/trace"
)

func batchPrecincts() []Precinct {
	small := scenarioPrecinct()
	oneBooth := busyPrecinct()
	oneBooth.Name = "OneBooth"
	oneBooth.NumBooths = 1
	return []Precinct{busyPrecinct(), small, oneBooth}
}

func TestSimulatePrecincts_ResultsMatchSequentialSimulate(t *testing.T) {
	precincts := batchPrecincts()

	for _, workers := range []int{0, 1, 4} {
		// WHEN the batch runs with this many workers
		results, err := SimulatePrecincts(context.Background(), precincts, BatchOptions{Seed: 77, Workers: workers})
		require.NoError(t, err)

		// THEN results keep input order and equal one-at-a-time simulation
		require.Len(t, results, len(precincts))
		for i, p := range precincts {
			want, err := Simulate(p, 77)
			require.NoError(t, err)
			assert.Equal(t, p, results[i].Precinct, "workers=%d precinct %d", workers, i)
			assert.Equal(t, want, results[i].Voters, "workers=%d precinct %d", workers, i)
			assert.Nil(t, results[i].Trace)
		}
	}
}

func TestSimulatePrecincts_TraceLevelDecisions_TracePerPrecinct(t *testing.T) {
	results, err := SimulatePrecincts(context.Background(), batchPrecincts(),
		BatchOptions{Seed: 1, Workers: 2, TraceLevel: trace.TraceLevelDecisions})
	require.NoError(t, err)

	for _, r := range results {
		require.NotNil(t, r.Trace, r.Precinct.Name)
		assert.Len(t, r.Trace.Booths, len(r.Voters), r.Precinct.Name)
	}
}

func TestSimulatePrecincts_InvalidPrecinct_NoWorkStarted(t *testing.T) {
	precincts := batchPrecincts()
	precincts[1].NumBooths = 0

	results, err := SimulatePrecincts(context.Background(), precincts, BatchOptions{Workers: 2})

	assert.Nil(t, results)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration), "got %v", err)
}

func TestSimulatePrecincts_CancelledContext_ReturnsContextError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := SimulatePrecincts(ctx, batchPrecincts(), BatchOptions{Workers: 2})

	assert.Nil(t, results)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}
