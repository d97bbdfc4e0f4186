package mesh

// caseTable lists the polygon for each square configuration. Points are in
// winding order and fanned from the first one.
var caseTable = [16][]SquarePoint{
	0: nil,

	// 1 point
	1: {MidLeft, MidBottom, BottomLeft},
	2: {BottomRight, MidBottom, MidRight},
	4: {TopRight, MidRight, MidTop},
	8: {TopLeft, MidTop, MidLeft},

	// 2 points
	3:  {MidRight, BottomRight, BottomLeft, MidLeft},
	6:  {MidTop, TopRight, BottomRight, MidBottom},
	9:  {TopLeft, MidTop, MidBottom, BottomLeft},
	12: {TopLeft, TopRight, MidRight, MidLeft},
	5:  {MidTop, TopRight, MidRight, MidBottom, BottomLeft, MidLeft},
	10: {TopLeft, MidTop, MidRight, BottomRight, MidBottom, MidLeft},

	// 3 points
	7:  {MidTop, TopRight, BottomRight, BottomLeft, MidLeft},
	11: {TopLeft, MidTop, MidRight, BottomRight, BottomLeft},
	13: {TopLeft, TopRight, MidRight, MidBottom, BottomLeft},
	14: {TopLeft, TopRight, BottomRight, MidBottom, MidLeft},

	// 4 points
	15: {TopLeft, TopRight, BottomRight, BottomLeft},
}

// CasePoints returns the polygon emitted for a configuration
func CasePoints(configuration int) []SquarePoint {
	return caseTable[configuration]
}

// Triangle holds three vertex indices in winding order
type Triangle struct {
	A, B, C int
}

// Contains reports whether v is one of the triangle's vertices
func (t Triangle) Contains(v int) bool {
	return t.A == v || t.B == v || t.C == v
}

// Vertices returns the indices as an array
func (t Triangle) Vertices() [3]int {
	return [3]int{t.A, t.B, t.C}
}

// triangulateSquare emits the polygon for one square
func (g *Generator) triangulateSquare(s *Square) {
	points := caseTable[s.Configuration]
	if len(points) == 0 {
		return
	}

	nodes := make([]int, len(points))
	for i, p := range points {
		nodes[i] = s.Points[p]
	}
	g.meshFromPoints(nodes)

	// A fully solid square has no boundary, so its corners never start an outline
	if s.Configuration == 15 {
		for _, p := range []SquarePoint{TopLeft, TopRight, BottomRight, BottomLeft} {
			g.interior.Put(g.grid.Node(s, p).VertexIndex)
		}
	}
}

// meshFromPoints emits any new vertices and fans triangles from the first node
func (g *Generator) meshFromPoints(nodes []int) {
	for _, n := range nodes {
		g.assignVertex(n)
	}

	for i := 2; i < len(nodes); i++ {
		g.createTriangle(nodes[0], nodes[i-1], nodes[i])
	}
}

// assignVertex gives a node a vertex index the first time it is used
func (g *Generator) assignVertex(n int) {
	node := &g.grid.Nodes[n]
	if node.VertexIndex != -1 {
		return
	}
	node.VertexIndex = len(g.vertices)
	g.vertices = append(g.vertices, node.Position)
}

func (g *Generator) createTriangle(a, b, c int) {
	t := Triangle{
		A: g.grid.Nodes[a].VertexIndex,
		B: g.grid.Nodes[b].VertexIndex,
		C: g.grid.Nodes[c].VertexIndex,
	}
	g.indices = append(g.indices, t.A, t.B, t.C)

	g.addTriangleToDictionary(t.A, t)
	g.addTriangleToDictionary(t.B, t)
	g.addTriangleToDictionary(t.C, t)
}

func (g *Generator) addTriangleToDictionary(vertex int, t Triangle) {
	g.triangleDictionary[vertex] = append(g.triangleDictionary[vertex], t)
}
