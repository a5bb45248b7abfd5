package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kociemba/twophase"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage solver tables",
}

var tablesBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Force a fresh table build and report timing",
	Long: `build constructs the move-transition and pruning tables from
scratch and reports how long it took. The tables are not saved;
every solve builds its own.`,
	RunE: runTablesBuild,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.AddCommand(tablesBuildCmd)
}

func runTablesBuild(cmd *cobra.Command, args []string) error {
	start := time.Now()
	if _, err := twophase.NewTables(); err != nil {
		return fmt.Errorf("build tables: %w", err)
	}
	fmt.Printf("tables built in %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}
