package twophase

import "context"

// Solution is one streamed result from Solve: the move sequence that
// solves the input cube, and how many moves it contains.
type Solution struct {
	Moves []Move
}

// Len returns the number of moves in the solution.
func (s Solution) Len() int { return len(s.Moves) }

// searchState carries the mutable frame of one Solve call: the moves
// chosen so far and the best (shortest) total length found so far.
// bestLen always holds the true length of the best solution recorded,
// not a decremented value — a candidate is only accepted when its
// length is strictly less than bestLen.
type searchState struct {
	tables   *Tables
	ctx      context.Context
	onSolve  func(Solution)
	path     []Move
	bestLen  int
	maxDepth int
}

const infDepth = 1 << 30

// Solve runs the two-phase IDA* search against cube, invoking
// onSolution for every strictly shorter solution found. It tries
// phase-1 depths 0, 1, 2, ... and returns once the first depth at
// which any solution was found has been searched in full, once the
// phase-1 depth would exceed the configured cap, or once ctx is
// canceled. Callers that want a time budget supply it via ctx.
func Solve(ctx context.Context, tables *Tables, cube *Cube, onSolution func(Solution), opts ...SearchOption) error {
	if tables == nil || tables.trans == nil {
		return ErrTablesNotBuilt
	}
	cfg := defaultSearchConfig()
	for _, o := range opts {
		o(&cfg)
	}

	found := false
	st := &searchState{
		tables:   tables,
		ctx:      ctx,
		onSolve:  func(s Solution) { found = true; onSolution(s) },
		bestLen:  infDepth,
		maxDepth: cfg.maxDepth,
	}

	for d1 := 0; d1 <= cfg.maxDepth && !found; d1++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		st.phase1DFS(cube.CornerOrientation(), cube.EdgeOrientation(), cube.UDPos(),
			cube.UDSorted(), cube.RLSorted(), cube.FBSorted(), cube.CornerPermutation(),
			d1, NoMove)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !found {
		return ErrNoSolutionFound
	}
	return nil
}

// phase1DFS searches for a sequence that reaches the phase-1 subgroup
// (corners and edges oriented, UD-slice edges in the slice). co/eo/udPos are the
// current phase-1 coordinates; udSorted/rlSorted/fbSorted/cp are
// carried forward, untouched by phase-1 pruning, so phase 2 can be
// entered without ever reconstructing a Cube.
func (st *searchState) phase1DFS(co, eo, udPos, udSorted, rlSorted, fbSorted, cp int, r int, last Move) {
	if st.ctx.Err() != nil {
		return
	}
	if r == 0 {
		if co == 0 && eo == 0 && udPos == solvedUDPos && !IsPhase2Move(last) {
			st.enterPhase2(udSorted, rlSorted, fbSorted, cp)
		}
		return
	}
	if st.tables.pruning.heuristic1(co, eo, udPos) > r {
		return
	}
	for _, m := range st.tables.allowed.Phase1(last) {
		st.path = append(st.path, m)
		st.phase1DFS(
			int(st.tables.trans.CO[co][m]),
			int(st.tables.trans.EO[eo][m]),
			int(st.tables.trans.UDPos[udPos][m]),
			int(st.tables.trans.UDSorted[udSorted][m]),
			int(st.tables.trans.RLSorted[rlSorted][m]),
			int(st.tables.trans.FBSorted[fbSorted][m]),
			int(st.tables.trans.CP[cp][m]),
			r-1, m,
		)
		st.path = st.path[:len(st.path)-1]
	}
}

// enterPhase2 computes the phase-2 entry coordinates from the phase-1
// exit state (CP carried forward unchanged; EP and UDPerm read off the
// carried sorted-slice/CP coordinates) and runs the phase-2 IDA* for
// increasing d2 while there is still room to beat bestLen.
func (st *searchState) enterPhase2(udSorted, rlSorted, fbSorted, cp int) {
	phase1Len := len(st.path)
	udPerm := udSorted % 24
	ep := epFromSorted(rlSorted, fbSorted)

	for d2 := 0; phase1Len+d2 < st.bestLen; d2++ {
		if st.ctx.Err() != nil {
			return
		}
		st.phase2DFS(cp, ep, udPerm, d2, NoMove)
	}
}

// epFromSorted reconstructs the EP coordinate from the carried
// rlSorted/fbSorted values: once phase 1 holds, the RL and FB slice
// edges together fill the 8 non-slice slots, so a cube with the
// UD-slice edges solved and the RL/FB edges placed as rlSorted and
// fbSorted describe (position part and order part) has the same EP.
func epFromSorted(rlSorted, fbSorted int) int {
	c := NewSolvedCube()
	decodeSliceOrder(&c.EdgePerm, rlSliceEdges, rlSorted)
	decodeSliceOrder(&c.EdgePerm, fbSliceEdges, fbSorted)
	return c.EP()
}

// decodeSliceOrder is the inverse of sliceSorted: it places the members
// of `set` into the slots given by the position part of sorted, in the
// relative order given by its order part. Slots outside those four are
// left as they are.
func decodeSliceOrder(edgePerm *[12]int, set map[int]bool, sorted int) {
	var members []int
	for id := 0; id < 12; id++ {
		if set[id] {
			members = append(members, id)
		}
	}
	// Position part: undo sliceSorted's high-to-low binomial scan,
	// collecting the chosen slots in ascending order.
	var slots [4]int
	x, k := sorted/24, 3
	for slot := 11; slot >= 0 && k >= 0; slot-- {
		if x >= binomial[slot][k] {
			x -= binomial[slot][k]
		} else {
			slots[k] = slot
			k--
		}
	}
	order := unrankOrder(members, sorted%24)
	for i, slot := range slots {
		edgePerm[slot] = order[i]
	}
}

// unrankOrder inverts sliceSorted's "count how many later entries are
// greater" ranking for a 4-element set, returning the permutation of
// `members` with that rank, listed in ascending slot order (the reverse
// of sliceSorted's high-to-low encounter order).
func unrankOrder(members []int, rank int) []int {
	remaining := append([]int(nil), members...)
	// sort remaining ascending to have a stable domain to pick from
	for i := 0; i < len(remaining); i++ {
		for j := i + 1; j < len(remaining); j++ {
			if remaining[j] < remaining[i] {
				remaining[i], remaining[j] = remaining[j], remaining[i]
			}
		}
	}
	n := len(remaining)
	out := make([]int, n)
	for i := 0; i < n; i++ {
		f := factorial(n - 1 - i)
		// Pick i is the i-th edge sliceSorted meets in its high-to-low
		// scan. count = rank / f gives how many later picks are greater
		// than it; since remaining is sorted ascending, the element
		// whose "count of greater remaining elements" equals `count` is
		// remaining[len-1-count]. Picks are stored from the end of out,
		// so the first pick lands in the highest slot.
		count := rank / f
		rank %= f
		idx := len(remaining) - 1 - count
		out[n-1-i] = remaining[idx]
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return out
}

// phase2DFS searches for a sequence of phase-2 moves that brings the
// carried CP/EP/UDPerm coordinates to their solved values, the mirror
// of phase1DFS over that coordinate triple.
func (st *searchState) phase2DFS(cp, ep, udPerm int, r int, last Move) {
	if st.ctx.Err() != nil {
		return
	}
	totalSoFar := len(st.path)
	if totalSoFar+r >= st.bestLen {
		return
	}
	if r == 0 {
		if cp == 0 && ep == 0 && udPerm == 0 {
			st.bestLen = totalSoFar
			solved := make([]Move, len(st.path))
			copy(solved, st.path)
			st.onSolve(Solution{Moves: solved})
		}
		return
	}
	if st.tables.pruning.heuristic2(cp, ep, udPerm) > r {
		return
	}
	for _, m := range st.tables.allowed.Phase2(last) {
		st.path = append(st.path, m)
		st.phase2DFS(
			int(st.tables.trans.CP[cp][m]),
			int(st.tables.trans.EP[ep][m]),
			int(st.tables.trans.UDPerm[udPerm][m]),
			r-1, m,
		)
		st.path = st.path[:len(st.path)-1]
	}
}
