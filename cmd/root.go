package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/denismorozov/OS-Simulator/sim"
	"github.com/denismorozov/OS-Simulator/sim/trace"
)

var (
	logLevel string // Log verbosity level for diagnostic output
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "os-simulator",
	Short: "Batch operating-system scheduling simulator",
}

// runCmd executes one simulation batch from a configuration file
var runCmd = &cobra.Command{
	Use:   "run <config-file>",
	Short: "Run the simulation described by a configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		// Load the configuration (classic or YAML, by extension) and the
		// meta-data file it points at. Any load failure aborts the run
		// after a single diagnostic.
		cfg, err := LoadConfig(args[0])
		if err != nil {
			logrus.Fatalf("Error: %v", err)
		}
		programs, err := LoadMetaData(cfg.MetaDataPath, cfg.CycleTimes)
		if err != nil {
			logrus.Fatalf("Error: %v", err)
		}
		logrus.Infof("loaded %d program(s), scheduling code %s", len(programs), cfg.SchedulingCode)

		clock := sim.NewWallClock()
		eventLog, err := trace.New(clock, cfg.LogDestination, cfg.LogFilePath)
		if err != nil {
			logrus.Fatalf("Error: %v", err)
		}
		defer eventLog.Close()

		// Initialize and run the simulator
		s, err := sim.NewSimulator(*cfg, programs, sim.NewSimulationContext(clock, eventLog))
		if err != nil {
			logrus.Fatalf("Error: %v", err)
		}
		s.Run()
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
