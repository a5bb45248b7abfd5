package twophase

// Named moves, for convenience and for tests. Each is a dense Move id.
var (
	U, U2, UPrime = MoveID(FaceU, Quarter), MoveID(FaceU, Half), MoveID(FaceU, ThreeQuarter)
	L, L2, LPrime = MoveID(FaceL, Quarter), MoveID(FaceL, Half), MoveID(FaceL, ThreeQuarter)
	F, F2, FPrime = MoveID(FaceF, Quarter), MoveID(FaceF, Half), MoveID(FaceF, ThreeQuarter)
	R, R2, RPrime = MoveID(FaceR, Quarter), MoveID(FaceR, Half), MoveID(FaceR, ThreeQuarter)
	B, B2, BPrime = MoveID(FaceB, Quarter), MoveID(FaceB, Half), MoveID(FaceB, ThreeQuarter)
	D, D2, DPrime = MoveID(FaceD, Quarter), MoveID(FaceD, Half), MoveID(FaceD, ThreeQuarter)
)

// SexyMove: R U R' U' - one of the most common algorithms, used by
// the end-to-end tests.
var SexyMove = []Move{R, U, RPrime, UPrime}

// InverseSexyMove: U R U' R'.
var InverseSexyMove = []Move{U, R, UPrime, RPrime}

// faceMoveDef describes one face's effect on cubie slots: a 4-cycle
// of corner slots and of edge slots (both listed in CW order around
// the face), a twist pattern added mod 3 to the cycled corners, and a
// flip pattern added mod 2 to the cycled edges, all indexed in cycle
// order.
type faceMoveDef struct {
	corners [4]int
	edges   [4]int
	twist   [4]int
	flip    [4]int
}

// faceMoves holds the concrete cycle/twist/flip definition for each
// of the six faces.
var faceMoves = [6]faceMoveDef{
	FaceU: {
		corners: [4]int{CornerURF, CornerUFL, CornerULB, CornerUBR},
		edges:   [4]int{EdgeUF, EdgeUL, EdgeUB, EdgeUR},
		twist:   [4]int{0, 0, 0, 0},
		flip:    [4]int{0, 0, 0, 0},
	},
	FaceD: {
		corners: [4]int{CornerDFR, CornerDRB, CornerDBL, CornerDLF},
		edges:   [4]int{EdgeDF, EdgeDR, EdgeDB, EdgeDL},
		twist:   [4]int{0, 0, 0, 0},
		flip:    [4]int{0, 0, 0, 0},
	},
	FaceR: {
		corners: [4]int{CornerURF, CornerUBR, CornerDRB, CornerDFR},
		edges:   [4]int{EdgeUR, EdgeBR, EdgeDR, EdgeFR},
		twist:   [4]int{1, 2, 1, 2}, // +1,-1,+1,-1 mod 3
		flip:    [4]int{0, 0, 0, 0},
	},
	FaceL: {
		corners: [4]int{CornerUFL, CornerDLF, CornerDBL, CornerULB},
		edges:   [4]int{EdgeUL, EdgeFL, EdgeDL, EdgeBL},
		twist:   [4]int{2, 1, 2, 1}, // -1,+1,-1,+1 mod 3
		flip:    [4]int{0, 0, 0, 0},
	},
	FaceF: {
		corners: [4]int{CornerURF, CornerDFR, CornerDLF, CornerUFL},
		edges:   [4]int{EdgeUF, EdgeFR, EdgeDF, EdgeFL},
		twist:   [4]int{2, 1, 2, 1}, // -1,+1,-1,+1 mod 3
		flip:    [4]int{1, 1, 1, 1},
	},
	FaceB: {
		corners: [4]int{CornerUBR, CornerULB, CornerDBL, CornerDRB},
		edges:   [4]int{EdgeUB, EdgeBL, EdgeDB, EdgeBR},
		twist:   [4]int{1, 2, 1, 2}, // +1,-1,+1,-1 mod 3
		flip:    [4]int{1, 1, 1, 1},
	},
}
