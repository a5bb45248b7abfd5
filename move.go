package twophase

import "fmt"

// Face identifies one of the six faces of the cube.
type Face int

// The six faces, in the fixed order used throughout the move tables.
const (
	FaceU Face = iota
	FaceL
	FaceF
	FaceR
	FaceB
	FaceD
)

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceL:
		return "L"
	case FaceF:
		return "F"
	case FaceR:
		return "R"
	case FaceB:
		return "B"
	case FaceD:
		return "D"
	default:
		return "?"
	}
}

// Turn is how many clockwise quarter turns a move applies.
type Turn int

const (
	Quarter      Turn = 1 // e.g. U
	Half         Turn = 2 // e.g. U2
	ThreeQuarter Turn = 3 // e.g. U' (CCW quarter turn)
)

func (t Turn) suffix() string {
	switch t {
	case Half:
		return "2"
	case ThreeQuarter:
		return "'"
	default:
		return ""
	}
}

// NumMoves is the size of the 18-move alphabet.
const NumMoves = 18

// NoMove is the sentinel "no previous move" id, used at the root of search.
const NoMove = 18

// Move is a dense id 0..17 into the fixed move alphabet
// {U, U2, U', L, L2, L', F, F2, F', R, R2, R', B, B2, B', D, D2, D'}.
type Move int

// faceOrder fixes the face ordering of the move alphabet.
var faceOrder = [6]Face{FaceU, FaceL, FaceF, FaceR, FaceB, FaceD}

// MoveID returns the dense id for a (face, turn) pair.
func MoveID(face Face, turn Turn) Move {
	faceIndex := 0
	for i, f := range faceOrder {
		if f == face {
			faceIndex = i
			break
		}
	}
	return Move(faceIndex*3 + int(turn) - 1)
}

// Face returns the face this move turns.
func (m Move) Face() Face {
	if m == NoMove {
		return -1
	}
	return faceOrder[int(m)/3]
}

// Turn returns the quarter-turn count (1, 2 or 3) of this move.
func (m Move) Turn() Turn {
	if m == NoMove {
		return 0
	}
	return Turn(int(m)%3 + 1)
}

// String renders a move in standard cube notation: U, U2, U'.
func (m Move) String() string {
	if m == NoMove {
		return "-"
	}
	if m < 0 || int(m) >= NumMoves {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return m.Face().String() + m.Turn().suffix()
}

// Inverse returns the move that undoes m: U<->U', U2 stays U2.
func (m Move) Inverse() Move {
	switch m.Turn() {
	case Quarter:
		return MoveID(m.Face(), ThreeQuarter)
	case ThreeQuarter:
		return MoveID(m.Face(), Quarter)
	default:
		return m
	}
}

// AllMoves is the full 18-move alphabet in dense-id order.
var AllMoves = func() [NumMoves]Move {
	var moves [NumMoves]Move
	for i := range moves {
		moves[i] = Move(i)
	}
	return moves
}()

// Phase2Moves is the 10-move alphabet phase 2 is restricted to:
// {U, U2, U', L2, F2, R2, B2, D, D2, D'}.
var Phase2Moves = []Move{
	MoveID(FaceU, Quarter), MoveID(FaceU, Half), MoveID(FaceU, ThreeQuarter),
	MoveID(FaceL, Half),
	MoveID(FaceF, Half),
	MoveID(FaceR, Half),
	MoveID(FaceB, Half),
	MoveID(FaceD, Quarter), MoveID(FaceD, Half), MoveID(FaceD, ThreeQuarter),
}

// IsPhase2Move reports whether m belongs to the phase-2 alphabet.
func IsPhase2Move(m Move) bool {
	for _, p := range Phase2Moves {
		if p == m {
			return true
		}
	}
	return false
}
