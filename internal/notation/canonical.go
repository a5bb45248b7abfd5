// Package notation converts between standard cube notation text and
// the twophase package's dense Move ids.
package notation

import (
	"fmt"
	"strings"

	"github.com/kociemba/twophase"
)

// Parse parses a single standard-notation token ("R", "U'", "F2") into
// a Move. The face letter is case-insensitive; a trailing "'" or "`"
// denotes a counter-clockwise quarter turn and a trailing "2" a half
// turn.
func Parse(s string) (twophase.Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return 0, fmt.Errorf("notation: %w: empty token", twophase.ErrInvalidNotation)
	}

	var face twophase.Face
	switch s[0] {
	case 'U', 'u':
		face = twophase.FaceU
	case 'L', 'l':
		face = twophase.FaceL
	case 'F', 'f':
		face = twophase.FaceF
	case 'R', 'r':
		face = twophase.FaceR
	case 'B', 'b':
		face = twophase.FaceB
	case 'D', 'd':
		face = twophase.FaceD
	default:
		return 0, fmt.Errorf("notation: %w: unknown face %q", twophase.ErrInvalidNotation, s[:1])
	}

	turn := twophase.Quarter
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = twophase.ThreeQuarter
		case "2":
			turn = twophase.Half
		default:
			return 0, fmt.Errorf("notation: %w: unknown suffix %q", twophase.ErrInvalidNotation, s[1:])
		}
	}

	return twophase.MoveID(face, turn), nil
}

// ParseScramble parses a space-separated sequence of notation tokens.
// It stops at the first invalid token and returns the error, rather
// than silently skipping it — a scramble with a typo in it should not
// silently solve a different cube.
func ParseScramble(s string) ([]twophase.Move, error) {
	fields := strings.Fields(s)
	moves := make([]twophase.Move, 0, len(fields))
	for _, f := range fields {
		m, err := Parse(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// String formats a single move back into standard notation.
func String(m twophase.Move) string {
	return m.String()
}

// Sequence formats a slice of moves as a space-separated string.
func Sequence(moves []twophase.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
