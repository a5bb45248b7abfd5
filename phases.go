package twophase

// This file builds the dense move-transition tables: for each
// coordinate, a [range][18]int table such that
// Transitions.CO[encode(s)][m] == encode(apply_move(s, m)).
//
// Strategy A (explicit state reconstruction) is used for CO, EO, CP,
// EP and the sorted-slice family: for each coordinate value, some
// cube state encoding to that value is built (other fields held
// solved), all 18 moves are applied to it, and the result is
// re-encoded.
//
// Strategy B (derivation from an already-built table) is used for
// UDPos and UDPerm: they are quotient/remainder views of the
// sorted-slice table already built by strategy A.

// Transitions holds every move-transition table, immutable once built.
type Transitions struct {
	CO       [NumCO][NumMoves]int16
	EO       [NumEO][NumMoves]int16
	CP       [NumCP][NumMoves]int32
	UDSorted [NumSlice][NumMoves]int16
	RLSorted [NumSlice][NumMoves]int16
	FBSorted [NumSlice][NumMoves]int16
	UDPos    [NumUDPos][NumMoves]int16
	UDPerm   [NumUDPerm][NumMoves]int8
	EP       [NumEP][NumMoves]int32
}

// buildTransitions constructs every transition table in dependency
// order: strategy-A tables (CO, EO, CP, EP, sorted-slice) first, since
// strategy-B tables (UDPos, UDPerm) are derived from the sorted-slice
// table.
func buildTransitions() *Transitions {
	t := &Transitions{}
	t.buildCO()
	t.buildEO()
	t.buildCP()
	t.buildEP()
	buildSortedSliceInto(&t.UDSorted, udSliceEdges)
	buildSortedSliceInto(&t.RLSorted, rlSliceEdges)
	buildSortedSliceInto(&t.FBSorted, fbSliceEdges)
	t.buildUDPos()
	t.buildUDPerm()
	return t
}

// buildCO builds the corner-orientation transition table. For each of
// the 2187 CO values, a representative cube is built by decoding the
// base-3 numeral back into CornerOrient[0..6] (entry 7 from the
// invariant), holding every other field solved.
func (t *Transitions) buildCO() {
	for v := 0; v < NumCO; v++ {
		c := NewSolvedCube()
		decodeCornerOrientation(v, &c.CornerOrient)
		for _, m := range AllMoves {
			t.CO[v][m] = int16(c.ApplyMove(m).CornerOrientation())
		}
	}
}

func decodeCornerOrientation(v int, orient *[8]int) {
	sum := 0
	for i := 6; i >= 0; i-- {
		orient[i] = v % 3
		sum += orient[i]
		v /= 3
	}
	orient[7] = (3 - sum%3) % 3
}

// buildEO mirrors buildCO for edge orientation.
func (t *Transitions) buildEO() {
	for v := 0; v < NumEO; v++ {
		c := NewSolvedCube()
		decodeEdgeOrientation(v, &c.EdgeOrient)
		for _, m := range AllMoves {
			t.EO[v][m] = int16(c.ApplyMove(m).EdgeOrientation())
		}
	}
}

func decodeEdgeOrientation(v int, orient *[12]int) {
	sum := 0
	for i := 10; i >= 0; i-- {
		orient[i] = v % 2
		sum += orient[i]
		v /= 2
	}
	orient[11] = sum % 2
}

// buildCP builds the corner-permutation transition table by walking
// all 8! permutations of {0..7} in lexicographic order (a classic
// next-permutation walk) and applying each move to the corresponding
// cube.
func (t *Transitions) buildCP() {
	perm := [8]int{0, 1, 2, 3, 4, 5, 6, 7}
	for {
		c := NewSolvedCube()
		c.CornerPerm = perm
		v := c.CornerPermutation()
		for _, m := range AllMoves {
			t.CP[v][m] = int32(c.ApplyMove(m).CornerPermutation())
		}
		if !nextPermutation(perm[:]) {
			break
		}
	}
}

// buildEP builds the phase-2 edge-permutation transition table by the
// same next-permutation walk as buildCP, applied to the 8 non-slice
// edge slots while the 4 UD-slice slots hold their solved occupants.
func (t *Transitions) buildEP() {
	perm := [8]int{0, 1, 2, 3, 4, 5, 6, 7}
	for {
		c := NewSolvedCube()
		for i, slot := range nonSliceEdgeSlots {
			c.EdgePerm[slot] = nonSliceEdgeSlots[perm[i]]
		}
		v := c.EP()
		for _, m := range AllMoves {
			t.EP[v][m] = int32(c.ApplyMove(m).EP())
		}
		if !nextPermutation(perm[:]) {
			break
		}
	}
}

// nextPermutation advances a in place to the next lexicographic
// permutation, returning false once the sequence is exhausted (a left
// in descending order).
func nextPermutation(a []int) bool {
	n := len(a)
	i := n - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := n - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}
	return true
}

// buildSortedSliceInto builds a sorted-slice transition table for the
// 4-edge set identified by `inSet`. The table is independent of which
// slice it addresses (the underlying "4 distinguished edges among 12
// slots" problem is identical for UD/RL/FB), so the same builder
// serves all three tables: walk all C(12,4) position subsets and, for
// each, all 4! orderings of the set's members across those positions,
// with the remaining 8 slots holding the complementary edges in a
// fixed order.
func buildSortedSliceInto(table *[NumSlice][NumMoves]int16, inSet map[int]bool) {
	members := make([]int, 0, 4)
	others := make([]int, 0, 8)
	for id := 0; id < 12; id++ {
		if inSet[id] {
			members = append(members, id)
		} else {
			others = append(others, id)
		}
	}

	positions := make([]int, 4)
	var chooseAndFill func(start, chosen int)
	chooseAndFill = func(start, chosen int) {
		if chosen == 4 {
			fillOrderings(table, positions, members, others, inSet)
			return
		}
		for p := start; p <= 12-(4-chosen); p++ {
			positions[chosen] = p
			chooseAndFill(p+1, chosen+1)
		}
	}
	chooseAndFill(0, 0)
}

func fillOrderings(table *[NumSlice][NumMoves]int16, positions []int, members, others []int, inSet map[int]bool) {
	order := append([]int(nil), members...)
	for {
		var perm [12]int
		pi, oi := 0, 0
		for slot := 0; slot < 12; slot++ {
			if pi < 4 && positions[pi] == slot {
				perm[slot] = order[pi]
				pi++
			} else {
				perm[slot] = others[oi]
				oi++
			}
		}
		v := sliceSorted(perm, func(id int) bool { return inSet[id] })
		c := NewSolvedCube()
		c.EdgePerm = perm
		for _, m := range AllMoves {
			next := c.ApplyMove(m)
			table[v][m] = int16(sliceSorted(next.EdgePerm, func(id int) bool { return inSet[id] }))
		}
		if !nextPermutation(order) {
			break
		}
	}
}

// buildUDPos derives the UDPos table (Strategy B) from the already
// built UDSorted table: UDPos = UDSorted / 24. This commutes with
// move application because every move permutes the position-subset
// identically for all 24 members of an order-coset (a move carries
// the whole coset of "same 4 positions, any of the 24 orderings" to
// another coset as a block), so any representative order within the
// class yields the correct resulting position class.
func (t *Transitions) buildUDPos() {
	for v := 0; v < NumUDPos; v++ {
		rep := v * 24 // canonical representative: order 0 within the position class
		for _, m := range AllMoves {
			t.UDPos[v][m] = t.UDSorted[rep][m] / 24
		}
	}
}

// buildUDPerm derives the UDPerm table (Strategy B) the same way,
// taking the remainder instead of the quotient, using representatives
// already in the UD slice (position part solvedUDPos) so the remainder
// is meaningful (UDPerm is only ever queried once phase 1 holds, i.e.
// once the position part is already solvedUDPos).
func (t *Transitions) buildUDPerm() {
	for v := 0; v < NumUDPerm; v++ {
		rep := solvedUDPos*24 + v // UD-slice edges in slots 4..7, order part v
		for _, m := range AllMoves {
			t.UDPerm[v][m] = int8(t.UDSorted[rep][m] % 24)
		}
	}
}
