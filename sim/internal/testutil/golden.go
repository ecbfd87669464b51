// Package testutil provides shared test infrastructure for the precinct simulator.
// It consolidates precinct fixtures and assertion helpers used across
// sim/ test files. It must not import sim, so fixtures are raw file contents.
package testutil

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

// ScenarioPrecinctsYAML is the reference scenario: 0.5 voters/min, mean split-ticket
// duration 2 min, 2 booths, 1 hour, 30 voters, every voter straight-ticket at 2 min.
const ScenarioPrecinctsYAML = `seed: 0
precincts:
  - name: Scenario
    hours_open: 1
    num_voters: 30
    num_booths: 2
    arrival_rate: 0.5
    voting_duration_rate: 0.5
    percent_straight_ticket: 1.0
    straight_ticket_duration: 2.0
`

// TwoPrecinctsJSON describes two precincts in the JSON form of the precincts file.
const TwoPrecinctsJSON = `{
  "seed": 1468604453,
  "precincts": [
    {
      "name": "Downtown",
      "hours_open": 13,
      "num_voters": 500,
      "num_booths": 3,
      "arrival_rate": 0.6,
      "voting_duration_rate": 0.1,
      "percent_straight_ticket": 0.5,
      "straight_ticket_duration": 2
    },
    {
      "name": "Hyde Park",
      "hours_open": 2,
      "num_voters": 40,
      "num_booths": 1,
      "arrival_rate": 0.3,
      "voting_duration_rate": 0.2,
      "percent_straight_ticket": 0.25,
      "straight_ticket_duration": 3
    }
  ]
}
`

// WriteFile writes contents into a fresh temp dir and returns the file path.
func WriteFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
