package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kociemba/twophase"
	"github.com/kociemba/twophase/internal/notation"
	"github.com/kociemba/twophase/internal/store"
	"github.com/kociemba/twophase/internal/tui"
)

var (
	solveNoTUI   bool
	solveNoStore bool
	solveMaxMove int
	solveNotes   string
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble...]",
	Short: "Solve a scramble",
	Long: `Solve parses a scramble in standard cube notation, builds the
solver tables, and runs the two-phase search. By default it shows a
live TUI of improving solutions; pass --no-tui to print each improving
solution as a line of text instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().BoolVar(&solveNoTUI, "no-tui", false, "print solutions as lines instead of the live view")
	solveCmd.Flags().BoolVar(&solveNoStore, "no-store", false, "do not persist this run to the solve-history database")
	solveCmd.Flags().IntVar(&solveMaxMove, "max-moves", 24, "maximum phase-1 search depth")
	solveCmd.Flags().StringVar(&solveNotes, "notes", "", "notes to attach to the persisted solve-history row")
}

func runSolve(cmd *cobra.Command, args []string) error {
	log := logger()
	scrambleText := strings.Join(args, " ")
	scramble, err := notation.ParseScramble(scrambleText)
	if err != nil {
		return err
	}

	var repo *store.SolveRepository
	var solveID string
	if !solveNoStore {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		repo = store.NewSolveRepository(db)
		solveID, err = repo.Create(scramble, solveNotes)
		if err != nil {
			return fmt.Errorf("record solve start: %w", err)
		}
	}

	buildStart := time.Now()
	tables, err := twophase.NewTables()
	if err != nil {
		return fmt.Errorf("build tables: %w", err)
	}
	log.Info().Dur("elapsed", time.Since(buildStart)).Msg("tables built")

	cube := twophase.NewSolvedCube().ApplyMoves(scramble)

	if solveNoTUI {
		found := false
		err = twophase.Solve(context.Background(), tables, cube, func(s twophase.Solution) {
			found = true
			fmt.Printf("%d moves: %s\n", s.Len(), notation.Sequence(s.Moves))
			if repo != nil {
				if err := repo.RecordSolution(solveID, s); err != nil {
					log.Warn().Err(err).Msg("record solution")
				}
			}
		}, twophase.WithMaxDepth(solveMaxMove))
		if err != nil {
			return err
		}
		if !found {
			return twophase.ErrNoSolutionFound
		}
	} else {
		best, found, err := tui.Run(tables, cube, solveMaxMove)
		if err != nil {
			return err
		}
		if found && repo != nil {
			if err := repo.RecordSolution(solveID, best); err != nil {
				log.Warn().Err(err).Msg("record solution")
			}
		}
		if !found {
			return twophase.ErrNoSolutionFound
		}
	}

	if repo != nil {
		if err := repo.End(solveID); err != nil {
			log.Warn().Err(err).Msg("end solve")
		}
	}
	return nil
}

func openDB() (*store.DB, error) {
	if getDBPath() == "" {
		return store.OpenDefault()
	}
	return store.Open(getDBPath())
}
