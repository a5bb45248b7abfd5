package twophase

// applyMove computes the cube resulting from turning one face by the
// quarter-turn count m.Turn() a number of times clockwise. It never
// mutates c: the updates are computed from c into a fresh copy before
// anything is written back.
func applyMove(c *Cube, m Move) *Cube {
	def := faceMoves[m.Face()]
	qturn := int(m.Turn())

	next := c.Clone()

	for i := 0; i < 4; i++ {
		dst := (i + qturn) % 4

		srcCorner := def.corners[i]
		dstCorner := def.corners[dst]
		next.CornerPerm[dstCorner] = c.CornerPerm[srcCorner]

		twist := 0
		for j := 0; j < qturn; j++ {
			twist += def.twist[(i+j)%4]
		}
		next.CornerOrient[dstCorner] = (c.CornerOrient[srcCorner] + twist) % 3

		srcEdge := def.edges[i]
		dstEdge := def.edges[dst]
		next.EdgePerm[dstEdge] = c.EdgePerm[srcEdge]

		flip := 0
		for j := 0; j < qturn; j++ {
			flip += def.flip[(i+j)%4]
		}
		next.EdgeOrient[dstEdge] = (c.EdgeOrient[srcEdge] + flip) % 2
	}

	return next
}
