package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/precinct-sim/precinct-sim/sim/trace"
)

var (
	// CLI flags shared by every command
	logLevel string // Log verbosity level
	envFile  string // Optional dotenv file with PRECINCT_SIM_* settings
	seed     int64  // Overrides the precincts file seed when set

	// simulate flags
	printVoters bool   // Print every voter instead of the per-precinct summary
	workers     int    // Precincts simulated concurrently
	traceLevel  string // Booth decision trace level (none, decisions)

	// threshold flags
	targetWaitTime float64 // Median wait the search must exceed
	numTrials      int     // Trials per candidate percentage
	precinctName   string  // Precinct to search (default: first in file)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "precinct-sim",
	Short: "Discrete-event simulator for voters at polling precincts",
	Long: `precinct-sim simulates an election day at one or more polling precincts.

Environment Variables:
  PRECINCT_SIM_LOG      Default log level (default: warn)
  PRECINCT_SIM_WORKERS  Default number of precincts simulated concurrently (default: 1)
  PRECINCT_SIM_TRIALS   Default number of trials per threshold candidate (default: 20)`,
}

// simulateCmd runs one election day per precinct
var simulateCmd = &cobra.Command{
	Use:   "simulate <precincts-file>",
	Short: "Simulate one election day for every precinct in the file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		settings := setup(cmd)

		opts := simulateOptions{
			PrintVoters: printVoters,
			Workers:     settings.Workers,
			TraceLevel:  trace.TraceLevel(traceLevel),
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid --trace-level: %s (valid: none, decisions)", traceLevel)
		}
		if cmd.Flags().Changed("workers") {
			opts.Workers = workers
		}
		if cmd.Flags().Changed("seed") {
			opts.Seed = &seed
		}

		if err := runSimulate(cmd.Context(), cmd.OutOrStdout(), args[0], opts); err != nil {
			logrus.Fatalf("simulate: %v", err)
		}
	},
}

// thresholdCmd searches for the split-ticket percentage that pushes waits above a target
var thresholdCmd = &cobra.Command{
	Use:   "threshold <precincts-file>",
	Short: "Find the split-ticket percentage at which the median wait exceeds a target",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		settings := setup(cmd)

		opts := thresholdOptions{
			TargetWait: targetWaitTime,
			Trials:     settings.Trials,
			Precinct:   precinctName,
		}
		if cmd.Flags().Changed("trials") {
			opts.Trials = numTrials
		}
		if cmd.Flags().Changed("seed") {
			opts.Seed = &seed
		}

		if err := runThreshold(cmd.OutOrStdout(), args[0], opts); err != nil {
			logrus.Fatalf("threshold: %v", err)
		}
	},
}

// setup loads environment settings and configures logging; failures are fatal.
func setup(cmd *cobra.Command) envSettings {
	settings, err := loadEnvSettings(envFile)
	if err != nil {
		logrus.Fatalf("Invalid environment settings: %v", err)
	}
	level := settings.LogLevel
	if cmd.Flags().Changed("log") {
		level = logLevel
	}
	if err := configureLogging(level); err != nil {
		logrus.Fatalf("%v", err)
	}
	return settings
}

// configureLogging sets the global logrus level.
func configureLogging(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", level)
	}
	logrus.SetLevel(parsed)
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file with PRECINCT_SIM_* settings (ignored if missing)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed overriding the one in the precincts file")

	simulateCmd.Flags().BoolVar(&printVoters, "print-voters", false, "Print every voter of every precinct")
	simulateCmd.Flags().IntVar(&workers, "workers", 1, "Number of precincts simulated concurrently")
	simulateCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Booth decision trace level (none, decisions); decisions adds a contention summary per precinct")

	thresholdCmd.Flags().Float64Var(&targetWaitTime, "target-wait-time", 0, "Median wait time (minutes) to exceed")
	thresholdCmd.Flags().IntVar(&numTrials, "trials", 20, "Trials per split-ticket percentage")
	thresholdCmd.Flags().StringVar(&precinctName, "precinct", "", "Precinct to search (default: first in file)")
	_ = thresholdCmd.MarkFlagRequired("target-wait-time")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(thresholdCmd)
}
