package notation

import (
	"testing"

	"github.com/kociemba/twophase"
)

func TestParseRoundTripsAllMoves(t *testing.T) {
	for _, m := range twophase.AllMoves {
		got, err := Parse(m.String())
		if err != nil {
			t.Fatalf("Parse(%s): %v", m.String(), err)
		}
		if got != m {
			t.Errorf("Parse(%s) = %v, want %v", m.String(), got, m)
		}
	}
}

func TestParseRejectsUnknownFace(t *testing.T) {
	if _, err := Parse("X"); err == nil {
		t.Error("expected error for unknown face X")
	}
}

func TestParseRejectsBadSuffix(t *testing.T) {
	if _, err := Parse("R3"); err == nil {
		t.Error("expected error for bad suffix R3")
	}
}

func TestParseScrambleStopsAtFirstError(t *testing.T) {
	if _, err := ParseScramble("R U X F"); err == nil {
		t.Error("expected error from scramble containing an invalid token")
	}
}

func TestSequenceFormatsSpaceSeparated(t *testing.T) {
	moves := []twophase.Move{twophase.R, twophase.U, twophase.RPrime, twophase.UPrime}
	got := Sequence(moves)
	want := "R U R' U'"
	if got != want {
		t.Errorf("Sequence() = %q, want %q", got, want)
	}
}
