package sim

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/precinct-sim/precinct-sim/sim/internal/testutil"
)

func TestDecodePrecincts_YAML(t *testing.T) {
	pf, err := DecodePrecincts(strings.NewReader(testutil.ScenarioPrecinctsYAML))

	require.NoError(t, err)
	assert.Equal(t, int64(0), pf.Seed)
	require.Len(t, pf.Precincts, 1)
	assert.Equal(t, scenarioPrecinct(), pf.Precincts[0])
}

func TestDecodePrecincts_JSON(t *testing.T) {
	pf, err := DecodePrecincts(strings.NewReader(testutil.TwoPrecinctsJSON))

	require.NoError(t, err)
	assert.Equal(t, int64(1468604453), pf.Seed)
	require.Len(t, pf.Precincts, 2)
	assert.Equal(t, "Downtown", pf.Precincts[0].Name)
	assert.Equal(t, 13.0, pf.Precincts[0].HoursOpen)
	assert.Equal(t, 500, pf.Precincts[0].MaxNumVoters)
	assert.Equal(t, 3, pf.Precincts[0].NumBooths)
	assert.Equal(t, 0.6, pf.Precincts[0].ArrivalRate)
	assert.Equal(t, 0.1, pf.Precincts[0].VotingDurationRate)
	assert.Equal(t, 0.5, pf.Precincts[0].PercentStraightTicket)
	assert.Equal(t, 2.0, pf.Precincts[0].StraightTicketDuration)
	assert.Equal(t, "Hyde Park", pf.Precincts[1].Name)
}

func TestDecodePrecincts_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		wantConfig bool // error must match ErrInvalidConfiguration
		contains   string
	}{
		{"empty document", "", true, "empty"},
		{"no precincts", "seed: 3\n", true, "at least one precinct"},
		{"unknown field", strings.Replace(testutil.ScenarioPrecinctsYAML, "num_booths", "booths", 1), false, "booths"},
		{"invalid precinct", strings.Replace(testutil.ScenarioPrecinctsYAML, "num_booths: 2", "num_booths: 0", 1), true, "NumBooths"},
		{"infinite arrival rate", strings.Replace(testutil.ScenarioPrecinctsYAML, "arrival_rate: 0.5", "arrival_rate: .inf", 1), true, "ArrivalRate"},
		{"infinite straight duration", strings.Replace(testutil.ScenarioPrecinctsYAML, "straight_ticket_duration: 2.0", "straight_ticket_duration: .inf", 1), true, "StraightTicketDuration"},
		{"duplicate names", strings.Replace(testutil.TwoPrecinctsJSON, "Hyde Park", "Downtown", 1), true, "duplicate"},
		{"malformed", "precincts: [", false, "parsing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePrecincts(strings.NewReader(tt.doc))

			require.Error(t, err)
			assert.Equal(t, tt.wantConfig, errors.Is(err, ErrInvalidConfiguration), "got %v", err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoadPrecincts_FromFile(t *testing.T) {
	path := testutil.WriteFile(t, "precincts.json", testutil.TwoPrecinctsJSON)

	pf, err := LoadPrecincts(path)

	require.NoError(t, err)
	assert.Len(t, pf.Precincts, 2)
}

func TestLoadPrecincts_MissingFile_Error(t *testing.T) {
	_, err := LoadPrecincts("does/not/exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading precincts file")
}

func TestPrecinctsFile_Find(t *testing.T) {
	pf, err := DecodePrecincts(strings.NewReader(testutil.TwoPrecinctsJSON))
	require.NoError(t, err)

	p, ok := pf.Find("Hyde Park")
	assert.True(t, ok)
	assert.Equal(t, 1, p.NumBooths)

	_, ok = pf.Find("Nowhere")
	assert.False(t, ok)
}
