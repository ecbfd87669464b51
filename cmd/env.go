package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envSettings holds defaults that flags may override.
type envSettings struct {
	LogLevel string `env:"PRECINCT_SIM_LOG" envDefault:"warn"`
	Workers  int    `env:"PRECINCT_SIM_WORKERS" envDefault:"1"`
	Trials   int    `env:"PRECINCT_SIM_TRIALS" envDefault:"20"`
}

// loadEnvSettings loads path into the process environment (a missing file is fine;
// variables already set win) and parses the PRECINCT_SIM_* settings.
func loadEnvSettings(path string) (envSettings, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return envSettings{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	var settings envSettings
	if err := env.Parse(&settings); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			// the first error keeps the log readable
			return envSettings{}, aggErr.Errors[0]
		}
		return envSettings{}, err
	}
	return settings, nil
}
