package twophase

// Coordinate range sizes.
const (
	NumCO      = 2187  // 3^7
	NumEO      = 2048  // 2^11
	NumCP      = 40320 // 8!
	NumSlice   = 11880 // 495 * 24
	NumUDPos   = 495   // C(12,4)
	NumUDPerm  = 24    // 4!
	NumEP      = 40320 // 24 * (40320/24), same range as CP
)

// binomial holds C(n,k) for n,k in 0..12, used by the slice-sorted
// position-part encoder.
var binomial [13][13]int

func init() {
	for n := 0; n <= 12; n++ {
		binomial[n][0] = 1
		for k := 1; k <= n; k++ {
			binomial[n][k] = binomial[n-1][k-1] + binomialPrev(n, k)
		}
	}
}

func binomialPrev(n, k int) int {
	if k > n-1 {
		return 0
	}
	return binomial[n-1][k]
}

// CornerOrientation encodes CornerOrient[0..6] as a base-3 numeral
// (entry 7 is determined by the sum-mod-3 invariant and is not read).
func (c *Cube) CornerOrientation() int {
	v := 0
	for i := 0; i < 7; i++ {
		v = v*3 + c.CornerOrient[i]
	}
	return v
}

// EdgeOrientation encodes EdgeOrient[0..10] as a base-2 numeral (entry
// 11 is determined by the sum-mod-2 invariant and is not read).
func (c *Cube) EdgeOrientation() int {
	v := 0
	for i := 0; i < 11; i++ {
		v = v*2 + c.EdgeOrient[i]
	}
	return v
}

// CornerPermutation returns the Lehmer-code / lexicographic rank of
// CornerPerm among the 8! permutations of {0..7}.
func (c *Cube) CornerPermutation() int {
	v := 0
	for i := 0; i < 7; i++ {
		count := 0
		for j := i + 1; j < 8; j++ {
			if c.CornerPerm[j] < c.CornerPerm[i] {
				count++
			}
		}
		v = v*(8-i) + count
	}
	return v
}

// sliceSorted ranks the arrangement of a 4-edge set S (identified by
// membership predicate inSet over edge ids) among the twelve edge
// slots, as a position part X combined with an order part Y:
// 24*X + Y. Scans slots from high index 11 down to 0; X (0..494) ranks
// the chosen-positions 4-subset, with slots 8..11 ranking 0 and slots
// 0..3 ranking 494. Y is the lex rank (via a high-to-low,
// "count greater" convention) of the order the 4 edges of S were
// encountered in.
func sliceSorted(edgePerm [12]int, inSet func(edgeID int) bool) int {
	var members [4]int
	m := 0
	x := 0
	k := 3 // one less than how many of S remain at or below the current slot
	for slot := 11; slot >= 0; slot-- {
		if inSet(edgePerm[slot]) {
			members[m] = edgePerm[slot]
			m++
			k--
		} else if k >= 0 {
			x += binomial[slot][k]
		}
	}

	// Y: rank of the 4-permutation `members` (in encounter order,
	// high-to-low scan) among the 24 orderings of S, using a
	// "count how many later entries are greater" convention.
	y := 0
	for i := 0; i < 4; i++ {
		count := 0
		for j := i + 1; j < 4; j++ {
			if members[j] > members[i] {
				count++
			}
		}
		y += count * factorial(3-i)
	}

	return 24*x + y
}

func factorial(n int) int {
	v := 1
	for i := 2; i <= n; i++ {
		v *= i
	}
	return v
}

// udSliceEdges are the four edges of the UD slice (the middle layer
// perpendicular to the U-D axis).
var udSliceEdges = map[int]bool{EdgeFR: true, EdgeFL: true, EdgeBL: true, EdgeBR: true}

// rlSliceEdges are the four edges of the RL slice.
var rlSliceEdges = map[int]bool{EdgeUF: true, EdgeUB: true, EdgeDB: true, EdgeDF: true}

// fbSliceEdges are the four edges of the FB slice.
var fbSliceEdges = map[int]bool{EdgeUR: true, EdgeUL: true, EdgeDL: true, EdgeDR: true}

// UDSorted returns the SliceSorted coordinate for the UD slice.
func (c *Cube) UDSorted() int {
	return sliceSorted(c.EdgePerm, func(id int) bool { return udSliceEdges[id] })
}

// RLSorted returns the SliceSorted coordinate for the RL slice.
func (c *Cube) RLSorted() int {
	return sliceSorted(c.EdgePerm, func(id int) bool { return rlSliceEdges[id] })
}

// FBSorted returns the SliceSorted coordinate for the FB slice.
func (c *Cube) FBSorted() int {
	return sliceSorted(c.EdgePerm, func(id int) bool { return fbSliceEdges[id] })
}

// UDPos returns the position-only part of UDSorted (UDSorted / 24).
func (c *Cube) UDPos() int {
	return c.UDSorted() / 24
}

// solvedUDPos is UDPos of the solved cube. The UD-slice edges then sit
// in slots 4..7, so the four D-layer slots 8..11 are passed first:
// C(11,3)+C(10,3)+C(9,3)+C(8,3) = 425.
const solvedUDPos = 425

// UDPerm returns the order-only part of UDSorted (UDSorted mod 24),
// meaningful only when all four UD-slice edges are already in the UD
// slice.
func (c *Cube) UDPerm() int {
	return c.UDSorted() % 24
}

// nonSliceEdgeSlots are the 8 edge slots not occupied by the UD slice
// once phase 1 has been reached: the U-layer and D-layer edges other
// than FR/FL/BL/BR.
var nonSliceEdgeSlots = [8]int{EdgeUF, EdgeUL, EdgeUB, EdgeUR, EdgeDF, EdgeDL, EdgeDB, EdgeDR}

// EP returns the phase-2 edge-permutation coordinate: the
// lexicographic rank, among the 8! relative orderings of 8 values, of
// the edges currently occupying the 8 non-slice slots. Meaningful
// only once phase 1 has been reached (the UD-slice edges are then
// fixed in their 4 slots and these 8 values are a genuine permutation
// of each other). Computed as a direct rank of those 8 values rather
// than combined from the RL/FB slice coordinates, which keeps it
// always well-defined and in range.
func (c *Cube) EP() int {
	var vals [8]int
	for i, slot := range nonSliceEdgeSlots {
		vals[i] = c.EdgePerm[slot]
	}
	v := 0
	for i := 0; i < 7; i++ {
		count := 0
		for j := i + 1; j < 8; j++ {
			if vals[j] < vals[i] {
				count++
			}
		}
		v = v*(8-i) + count
	}
	return v
}
