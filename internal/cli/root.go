// Package cli implements the command-line interface for the kociemba
// two-phase solver.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	dbPath  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "kociemba",
	Short: "Kociemba two-phase Rubik's cube solver",
	Long: `kociemba solves a 3x3x3 Rubik's cube scramble using Kociemba's
two-phase algorithm, streaming each improving solution as the search
deepens.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "solve-history database path (default: ~/.kociemba/kociemba.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

func logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Str("cmd", "solve").Logger()
}

func getDBPath() string {
	return dbPath
}
