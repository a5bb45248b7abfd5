package twophase

// This file builds the allowed-move filter: for each phase and each
// previous move (including the sentinel NoMove), the list of moves
// permitted to follow it.

// AllowedMoves holds one adjacency list array per phase, indexed by
// the previous move: index m is move id m, index NumMoves is the
// sentinel NoMove.
type AllowedMoves struct {
	phase1 [NumMoves + 1][]Move
	phase2 [NumMoves + 1][]Move
}

// buildAllowedMoves applies two pruning rules: no move may repeat the
// face of the immediately preceding move, and of the three commuting
// opposite-face pairs only one direction may follow the other (after D
// no U; after R no L; after B no F). Phase 2 further intersects with
// the 10-move phase-2 alphabet.
func buildAllowedMoves() *AllowedMoves {
	a := &AllowedMoves{}
	for prev := 0; prev <= NumMoves; prev++ {
		m := Move(prev)
		if prev == NumMoves {
			m = NoMove
		}
		a.phase1[prev] = allowedAfter(m, AllMoves[:])
		a.phase2[prev] = allowedAfter(m, Phase2Moves)
	}
	return a
}

// forbiddenFollower reports whether `next` may not follow `prev`
// under the opposite-face-ordering rule: after D no U, after R no L,
// after B no F.
func forbiddenFollower(prev, next Face) bool {
	switch prev {
	case FaceD:
		return next == FaceU
	case FaceR:
		return next == FaceL
	case FaceB:
		return next == FaceF
	}
	return false
}

func allowedAfter(prev Move, alphabet []Move) []Move {
	var out []Move
	for _, next := range alphabet {
		if prev == NoMove {
			out = append(out, next)
			continue
		}
		if next.Face() == prev.Face() {
			continue // same face forbidden
		}
		if forbiddenFollower(prev.Face(), next.Face()) {
			continue
		}
		out = append(out, next)
	}
	return out
}

// Phase1 returns the moves allowed to follow prev in phase 1 (prev
// may be NoMove).
func (a *AllowedMoves) Phase1(prev Move) []Move {
	if prev == NoMove {
		return a.phase1[NumMoves]
	}
	return a.phase1[prev]
}

// Phase2 returns the moves allowed to follow prev in phase 2 (prev
// may be NoMove).
func (a *AllowedMoves) Phase2(prev Move) []Move {
	if prev == NoMove {
		return a.phase2[NumMoves]
	}
	return a.phase2[prev]
}
