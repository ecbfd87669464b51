package sim

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// PrecinctsFile is the top-level precinct description file.
// JSON files are accepted too, since JSON is valid YAML.
type PrecinctsFile struct {
	Seed      int64      `yaml:"seed"`
	Precincts []Precinct `yaml:"precincts"`
}

// LoadPrecincts reads and validates a precinct description file.
func LoadPrecincts(path string) (*PrecinctsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading precincts file: %w", err)
	}
	pf, err := DecodePrecincts(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pf, nil
}

// DecodePrecincts parses a precinct description with strict field checking
// (typos in field names are errors) and validates every precinct.
func DecodePrecincts(r io.Reader) (*PrecinctsFile, error) {
	var pf PrecinctsFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&pf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty precincts file", ErrInvalidConfiguration)
		}
		return nil, fmt.Errorf("parsing precincts file: %w", err)
	}
	if err := pf.Validate(); err != nil {
		return nil, err
	}
	return &pf, nil
}

// Validate checks that at least one precinct is present, that names are unique,
// and that every precinct is valid.
func (pf *PrecinctsFile) Validate() error {
	if len(pf.Precincts) == 0 {
		return fmt.Errorf("%w: at least one precinct required", ErrInvalidConfiguration)
	}
	seen := make(map[string]bool, len(pf.Precincts))
	for i, p := range pf.Precincts {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("precincts[%d]: %w", i, err)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: precincts[%d]: duplicate precinct name %q", ErrInvalidConfiguration, i, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

// Find returns the precinct named name.
func (pf *PrecinctsFile) Find(name string) (Precinct, bool) {
	for _, p := range pf.Precincts {
		if p.Name == name {
			return p, true
		}
	}
	return Precinct{}, false
}
