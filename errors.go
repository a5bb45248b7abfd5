package twophase

import "errors"

// Sentinel errors for the twophase package.
var (
	// ErrInvalidState is returned by NewCube when the supplied
	// permutation/orientation vectors fail the shape check: not a
	// permutation, an orientation out of range, or an orientation-sum
	// parity violation.
	ErrInvalidState = errors.New("twophase: invalid cube state")

	// ErrInvalidNotation is returned by notation parsing when a token
	// does not match the move grammar.
	ErrInvalidNotation = errors.New("twophase: invalid move notation")

	// ErrNoSolutionFound is returned by the solver facade when the
	// search exhausts its configured depth cap without ever finding a
	// solution.
	ErrNoSolutionFound = errors.New("twophase: no solution found within depth limit")

	// ErrTablesNotBuilt is returned when a Tables value is used before
	// NewTables has populated it (the zero value of Tables is not
	// usable).
	ErrTablesNotBuilt = errors.New("twophase: tables not built")
)
