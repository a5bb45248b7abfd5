package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kociemba/twophase/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect past solve runs",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent solve runs",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show details of a solve run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of rows to display")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := store.NewSolveRepository(db)
	solves, err := repo.List(historyLimit)
	if err != nil {
		return err
	}
	if len(solves) == 0 {
		fmt.Println("no solves recorded yet")
		return nil
	}

	fmt.Printf("%-36s  %-20s  %-6s  %s\n", "ID", "Started", "Moves", "Scramble")
	for _, s := range solves {
		moves := "-"
		if s.BestLength != nil {
			moves = fmt.Sprintf("%d", *s.BestLength)
		}
		fmt.Printf("%-36s  %-20s  %-6s  %s\n",
			s.SolveID, s.StartedAt.Format("2006-01-02 15:04:05"), moves, s.ScrambleText)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := store.NewSolveRepository(db)
	s, err := repo.Get(args[0])
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("solve not found: %s", args[0])
	}

	fmt.Printf("ID:       %s\n", s.SolveID)
	fmt.Printf("Scramble: %s\n", s.ScrambleText)
	fmt.Printf("Started:  %s\n", s.StartedAt.Format("2006-01-02 15:04:05"))
	if s.EndedAt != nil {
		fmt.Printf("Ended:    %s\n", s.EndedAt.Format("2006-01-02 15:04:05"))
	}
	if s.DurationMs != nil {
		fmt.Printf("Duration: %s\n", time.Duration(*s.DurationMs)*time.Millisecond)
	}
	if s.SolutionText != nil {
		fmt.Printf("Solution: %s (%d moves)\n", *s.SolutionText, *s.BestLength)
	}
	if s.Notes != nil && *s.Notes != "" {
		fmt.Printf("Notes:    %s\n", *s.Notes)
	}
	return nil
}
