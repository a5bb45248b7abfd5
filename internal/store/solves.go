package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kociemba/twophase"
	"github.com/kociemba/twophase/internal/notation"
)

// Solve is one persisted solver run: a scramble, and the best solution
// found for it by the time the run ended.
type Solve struct {
	SolveID      string
	ScrambleText string
	StartedAt    time.Time
	EndedAt      *time.Time
	DurationMs   *int64
	BestLength   *int
	SolutionText *string
	Notes        *string
}

// SolveRepository provides CRUD access to the solves table.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository returns a repository bound to db.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records the start of a new solver run for the given scramble
// and returns its generated id.
func (r *SolveRepository) Create(scramble []twophase.Move, notes string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, scramble_text, started_at, notes)
		VALUES (?, ?, ?, ?)
	`, id, notation.Sequence(scramble), startedAt.Format(time.RFC3339), notesPtr)
	if err != nil {
		return "", fmt.Errorf("store: create solve: %w", err)
	}
	return id, nil
}

// RecordSolution updates a solve with its best solution found so far.
// Called once per improving solution; the last call before End wins.
func (r *SolveRepository) RecordSolution(solveID string, sol twophase.Solution) error {
	_, err := r.db.Exec(`
		UPDATE solves SET best_length = ?, solution_text = ?
		WHERE solve_id = ?
	`, sol.Len(), notation.Sequence(sol.Moves), solveID)
	if err != nil {
		return fmt.Errorf("store: record solution: %w", err)
	}
	return nil
}

// End marks a solve run as finished and computes its duration.
func (r *SolveRepository) End(solveID string) error {
	var startedAtStr string
	if err := r.db.QueryRow("SELECT started_at FROM solves WHERE solve_id = ?", solveID).Scan(&startedAtStr); err != nil {
		return fmt.Errorf("store: end solve: %w", err)
	}
	startedAt, err := time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return fmt.Errorf("store: parse start time: %w", err)
	}

	endedAt := time.Now().UTC()
	durationMs := endedAt.Sub(startedAt).Milliseconds()

	_, err = r.db.Exec(`
		UPDATE solves SET ended_at = ?, duration_ms = ?
		WHERE solve_id = ?
	`, endedAt.Format(time.RFC3339), durationMs, solveID)
	if err != nil {
		return fmt.Errorf("store: end solve: %w", err)
	}
	return nil
}

// Get retrieves a solve by id. It returns (nil, nil) if not found.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	var s Solve
	var startedAtStr string
	var endedAtStr sql.NullString

	err := r.db.QueryRow(`
		SELECT solve_id, scramble_text, started_at, ended_at, duration_ms, best_length, solution_text, notes
		FROM solves WHERE solve_id = ?
	`, solveID).Scan(
		&s.SolveID, &s.ScrambleText, &startedAtStr, &endedAtStr,
		&s.DurationMs, &s.BestLength, &s.SolutionText, &s.Notes,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: get solve: %w", err)
	}

	s.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(time.RFC3339, endedAtStr.String)
		s.EndedAt = &t
	}
	return &s, nil
}

// List returns the most recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, scramble_text, started_at, ended_at, duration_ms, best_length, solution_text, notes
		FROM solves ORDER BY started_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list solves: %w", err)
	}
	defer rows.Close()

	var out []Solve
	for rows.Next() {
		var s Solve
		var startedAtStr string
		var endedAtStr sql.NullString
		if err := rows.Scan(
			&s.SolveID, &s.ScrambleText, &startedAtStr, &endedAtStr,
			&s.DurationMs, &s.BestLength, &s.SolutionText, &s.Notes,
		); err != nil {
			return nil, fmt.Errorf("store: scan solve: %w", err)
		}
		s.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
		if endedAtStr.Valid {
			t, _ := time.Parse(time.RFC3339, endedAtStr.String)
			s.EndedAt = &t
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
