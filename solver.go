// Package twophase implements Kociemba's two-phase algorithm for
// solving the 3x3x3 Rubik's cube.
//
// # Quick Start
//
// Build the move-transition and pruning tables once, then solve as
// many cubes as needed against them:
//
//	tables, err := twophase.NewTables()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cube := twophase.NewSolvedCube().ApplyMoves(scramble)
//
//	err = twophase.Solve(context.Background(), tables, cube, func(sol twophase.Solution) {
//	    fmt.Println(sol.Len(), sol.Moves)
//	}, twophase.WithMaxDepth(24))
//
// Solve streams every strictly shorter solution it finds to the
// callback as the search deepens; the last callback invocation before
// Solve returns holds the best solution found.
//
// # Cube State
//
// A Cube is a cubie-level permutation/orientation pair, built either
// from the solved state or from explicit vectors via NewCube. Moves
// are applied with ApplyMove/ApplyMoves; IsSolved reports completion.
//
// # Tables
//
// NewTables builds the nine move-transition tables and five pruning
// tables the search needs. Building is CPU-bound and takes a few
// seconds; a Tables value is immutable once
// built and safe to share across concurrent Solve calls.
package twophase

// Tables bundles every precomputed table the two-phase search needs:
// move transitions (phases.go), pruning distances (pruning.go), and
// the allowed-move adjacency lists (movefilter.go). Build once with
// NewTables and reuse across Solve calls.
type Tables struct {
	trans   *Transitions
	pruning *Pruning
	allowed *AllowedMoves
}

// NewTables builds a complete set of solver tables. It takes no
// options today; the parameter exists so table-build configuration
// (e.g. a future parallel-build toggle) can be added without breaking
// callers, following the same functional-options shape SearchOption
// uses.
func NewTables(opts ...Option) (*Tables, error) {
	cfg := defaultTablesConfig()
	for _, o := range opts {
		o(&cfg)
	}

	trans := buildTransitions()
	return &Tables{
		trans:   trans,
		pruning: buildPruning(trans),
		allowed: buildAllowedMoves(),
	}, nil
}
