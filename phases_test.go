package twophase

import "testing"

// TestTransitionTablesMatchDirectApplication checks, for a handful of
// representative coordinate values per table, that every transition
// table entry agrees with building a cube at that coordinate,
// applying the move directly, and re-encoding: the defining property
// of a transition table.
func TestTransitionTablesMatchDirectApplication(t *testing.T) {
	trans := buildTransitions()

	t.Run("CO", func(t *testing.T) {
		for _, v := range []int{0, 1, 7, 1093, 2186} {
			c := NewSolvedCube()
			decodeCornerOrientation(v, &c.CornerOrient)
			for _, m := range AllMoves {
				want := c.ApplyMove(m).CornerOrientation()
				if got := int(trans.CO[v][m]); got != want {
					t.Errorf("CO[%d][%s] = %d, want %d", v, m, got, want)
				}
			}
		}
	})

	t.Run("EO", func(t *testing.T) {
		for _, v := range []int{0, 1, 11, 1023, 2047} {
			c := NewSolvedCube()
			decodeEdgeOrientation(v, &c.EdgeOrient)
			for _, m := range AllMoves {
				want := c.ApplyMove(m).EdgeOrientation()
				if got := int(trans.EO[v][m]); got != want {
					t.Errorf("EO[%d][%s] = %d, want %d", v, m, got, want)
				}
			}
		}
	})

	t.Run("CP", func(t *testing.T) {
		perms := [][8]int{
			{0, 1, 2, 3, 4, 5, 6, 7},
			{1, 0, 2, 3, 4, 5, 6, 7},
			{7, 6, 5, 4, 3, 2, 1, 0},
			{2, 3, 0, 1, 6, 7, 4, 5},
		}
		for _, perm := range perms {
			c := NewSolvedCube()
			c.CornerPerm = perm
			v := c.CornerPermutation()
			for _, m := range AllMoves {
				want := c.ApplyMove(m).CornerPermutation()
				if got := int(trans.CP[v][m]); got != want {
					t.Errorf("CP[%d][%s] = %d, want %d", v, m, got, want)
				}
			}
		}
	})

	t.Run("EP", func(t *testing.T) {
		orders := [][8]int{
			{0, 1, 2, 3, 4, 5, 6, 7},
			{1, 0, 2, 3, 4, 5, 6, 7},
			{7, 6, 5, 4, 3, 2, 1, 0},
		}
		for _, order := range orders {
			c := NewSolvedCube()
			for i, slot := range nonSliceEdgeSlots {
				c.EdgePerm[slot] = nonSliceEdgeSlots[order[i]]
			}
			v := c.EP()
			for _, m := range AllMoves {
				want := c.ApplyMove(m).EP()
				if got := int(trans.EP[v][m]); got != want {
					t.Errorf("EP[%d][%s] = %d, want %d", v, m, got, want)
				}
			}
		}
	})

	t.Run("SortedSlice", func(t *testing.T) {
		cases := []struct {
			name  string
			inSet map[int]bool
			table *[NumSlice][NumMoves]int16
		}{
			{"UD", udSliceEdges, &trans.UDSorted},
			{"RL", rlSliceEdges, &trans.RLSorted},
			{"FB", fbSliceEdges, &trans.FBSorted},
		}
		for _, tc := range cases {
			c := NewSolvedCube()
			inSet := tc.inSet
			v := sliceSorted(c.EdgePerm, func(id int) bool { return inSet[id] })
			for _, m := range AllMoves {
				next := c.ApplyMove(m)
				want := sliceSorted(next.EdgePerm, func(id int) bool { return inSet[id] })
				if got := int(tc.table[v][m]); got != want {
					t.Errorf("%sSorted[%d][%s] = %d, want %d", tc.name, v, m, got, want)
				}
			}
		}
	})

	t.Run("UDPosAndUDPerm", func(t *testing.T) {
		// UDPos/UDPerm are derived from UDSorted, so check them
		// against coordinates read straight off real cube states
		// rather than re-deriving by hand, which would be circular.
		c := NewSolvedCube()
		pos := c.UDPos()
		perm := c.UDPerm()
		for _, m := range AllMoves {
			next := c.ApplyMove(m)
			if got := int(trans.UDPos[pos][m]); got != next.UDPos() {
				t.Errorf("UDPos[%d][%s] = %d, want %d", pos, m, got, next.UDPos())
			}
			if got := int(trans.UDPerm[perm][m]); got != next.UDPerm() {
				t.Errorf("UDPerm[%d][%s] = %d, want %d", perm, m, got, next.UDPerm())
			}
		}
	})
}

// TestCoordEncodersAreInjective checks that each coordinate encoder
// assigns a distinct value to every distinct state it observes, over
// either an exhaustive walk of the coordinate's domain (CO, EO,
// SliceSorted, cheap enough to do in full) or a long walk of
// permutations (CornerPermutation, EP).
func TestCoordEncodersAreInjective(t *testing.T) {
	t.Run("CornerOrientation", func(t *testing.T) {
		seen := make([]bool, NumCO)
		for v := 0; v < NumCO; v++ {
			c := NewSolvedCube()
			decodeCornerOrientation(v, &c.CornerOrient)
			got := c.CornerOrientation()
			if seen[got] {
				t.Fatalf("CornerOrientation collision: value %d produced twice", got)
			}
			seen[got] = true
		}
	})

	t.Run("EdgeOrientation", func(t *testing.T) {
		seen := make([]bool, NumEO)
		for v := 0; v < NumEO; v++ {
			c := NewSolvedCube()
			decodeEdgeOrientation(v, &c.EdgeOrient)
			got := c.EdgeOrientation()
			if seen[got] {
				t.Fatalf("EdgeOrientation collision: value %d produced twice", got)
			}
			seen[got] = true
		}
	})

	t.Run("CornerPermutation", func(t *testing.T) {
		seen := make(map[int]bool)
		perm := [8]int{0, 1, 2, 3, 4, 5, 6, 7}
		for i := 0; i < 500; i++ {
			c := NewSolvedCube()
			c.CornerPerm = perm
			v := c.CornerPermutation()
			if seen[v] {
				t.Fatalf("CornerPermutation collision at permutation %d, value %d", i, v)
			}
			seen[v] = true
			if !nextPermutation(perm[:]) {
				break
			}
		}
	})

	t.Run("EP", func(t *testing.T) {
		seen := make(map[int]bool)
		order := [8]int{0, 1, 2, 3, 4, 5, 6, 7}
		for i := 0; i < 500; i++ {
			c := NewSolvedCube()
			for j, slot := range nonSliceEdgeSlots {
				c.EdgePerm[slot] = nonSliceEdgeSlots[order[j]]
			}
			v := c.EP()
			if seen[v] {
				t.Fatalf("EP collision at permutation %d, value %d", i, v)
			}
			seen[v] = true
			if !nextPermutation(order[:]) {
				break
			}
		}
	})

	t.Run("SliceSorted", func(t *testing.T) {
		seen := make([]bool, NumSlice)
		members := []int{EdgeFR, EdgeFL, EdgeBL, EdgeBR}
		others := []int{EdgeUF, EdgeUL, EdgeUB, EdgeUR, EdgeDF, EdgeDL, EdgeDB, EdgeDR}
		positions := make([]int, 4)
		inSet := func(id int) bool { return udSliceEdges[id] }

		var choosePositions func(start, chosen int)
		choosePositions = func(start, chosen int) {
			if chosen == 4 {
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
					v := sliceSorted(perm, inSet)
					if seen[v] {
						t.Fatalf("SliceSorted collision: value %d produced twice", v)
					}
					seen[v] = true
					if !nextPermutation(order) {
						break
					}
				}
				return
			}
			for p := start; p <= 12-(4-chosen); p++ {
				positions[chosen] = p
				choosePositions(p+1, chosen+1)
			}
		}
		choosePositions(0, 0)
	})
}

// TestNewTablesIsIdempotent checks that building the full table set
// twice produces structurally identical results: NewTables has no
// hidden dependency on build order or uninitialized state.
func TestNewTablesIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping double table build in short mode")
	}
	t1, err := NewTables()
	if err != nil {
		t.Fatalf("first NewTables: %v", err)
	}
	t2, err := NewTables()
	if err != nil {
		t.Fatalf("second NewTables: %v", err)
	}
	if *t1.trans != *t2.trans {
		t.Error("Transitions differ between two NewTables calls")
	}
	if *t1.pruning != *t2.pruning {
		t.Error("Pruning tables differ between two NewTables calls")
	}
	for prev := 0; prev <= NumMoves; prev++ {
		if !equalMoveSlices(t1.allowed.phase1[prev], t2.allowed.phase1[prev]) {
			t.Errorf("AllowedMoves.phase1[%d] differs between two NewTables calls", prev)
		}
		if !equalMoveSlices(t1.allowed.phase2[prev], t2.allowed.phase2[prev]) {
			t.Errorf("AllowedMoves.phase2[%d] differs between two NewTables calls", prev)
		}
	}
}

func equalMoveSlices(a, b []Move) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
