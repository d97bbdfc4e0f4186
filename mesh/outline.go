package mesh

// calculateMeshOutlines traces every boundary loop of the floor mesh. Loops
// start at the lowest unvisited vertex that is not interior and end by
// repeating their first vertex.
func (g *Generator) calculateMeshOutlines() {
	for v := 0; v < len(g.vertices); v++ {
		if g.interior.Has(v) || g.visited.Has(v) {
			continue
		}

		next := g.connectedOutlineVertex(v)
		if next == -1 {
			continue
		}

		g.visited.Put(v)
		outline := []int{v}
		for next != -1 {
			outline = append(outline, next)
			g.visited.Put(next)
			next = g.connectedOutlineVertex(next)
		}
		outline = append(outline, v)

		g.outlines = append(g.outlines, outline)
	}
}

// connectedOutlineVertex returns the first unvisited vertex joined to v by a
// boundary edge, scanning v's triangles in creation order, or -1
func (g *Generator) connectedOutlineVertex(v int) int {
	for _, t := range g.triangleDictionary[v] {
		for _, b := range t.Vertices() {
			if b == v || g.visited.Has(b) {
				continue
			}
			if g.isOutlineEdge(v, b) {
				return b
			}
		}
	}
	return -1
}

// isOutlineEdge reports whether exactly one triangle uses the edge a-b
func (g *Generator) isOutlineEdge(a, b int) bool {
	shared := 0
	for _, t := range g.triangleDictionary[a] {
		if t.Contains(b) {
			shared++
			if shared > 1 {
				return false
			}
		}
	}
	return shared == 1
}
