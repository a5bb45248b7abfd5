package store

import (
	"path/filepath"
	"testing"

	"github.com/kociemba/twophase"
)

func TestSolveRepositoryCreateGetRoundTrip(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "kociemba.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	repo := NewSolveRepository(db)
	scramble := []twophase.Move{twophase.R, twophase.U, twophase.RPrime, twophase.UPrime}

	id, err := repo.Create(scramble, "test run")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil for just-created solve")
	}
	if got.ScrambleText != "R U R' U'" {
		t.Errorf("ScrambleText = %q", got.ScrambleText)
	}
	if got.Notes == nil || *got.Notes != "test run" {
		t.Errorf("Notes = %v", got.Notes)
	}
}

func TestSolveRepositoryRecordSolutionThenEnd(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "kociemba.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	repo := NewSolveRepository(db)
	id, err := repo.Create([]twophase.Move{twophase.R}, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	sol := twophase.Solution{Moves: []twophase.Move{twophase.RPrime}}
	if err := repo.RecordSolution(id, sol); err != nil {
		t.Fatalf("RecordSolution: %v", err)
	}
	if err := repo.End(id); err != nil {
		t.Fatalf("End: %v", err)
	}

	got, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.BestLength == nil || *got.BestLength != 1 {
		t.Errorf("BestLength = %v", got.BestLength)
	}
	if got.SolutionText == nil || *got.SolutionText != "R'" {
		t.Errorf("SolutionText = %v", got.SolutionText)
	}
	if got.EndedAt == nil {
		t.Error("EndedAt should be set after End")
	}
}

func TestSolveRepositoryListRespectsLimit(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "kociemba.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	repo := NewSolveRepository(db)
	for i := 0; i < 3; i++ {
		if _, err := repo.Create([]twophase.Move{twophase.R}, ""); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	solves, err := repo.List(2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(solves) != 2 {
		t.Errorf("List(2) returned %d rows, want 2", len(solves))
	}
}
