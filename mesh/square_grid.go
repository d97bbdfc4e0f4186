package mesh

import (
	"ebiten-caves/components"
)

// Node kinds stored per control point
const (
	kindControl = iota
	kindAbove   // Midpoint half a square towards +Z
	kindRight   // Midpoint half a square towards +X
	nodeKinds
)

// Node is a potential mesh vertex. Control nodes sit on grid cells, the other
// nodes sit on the midpoints of square edges.
type Node struct {
	Position    components.Vec3
	VertexIndex int  // -1 until the node is emitted
	Active      bool // Control nodes only: the cell is solid
}

// SquarePoint names one of the eight nodes of a square
type SquarePoint int

const (
	TopLeft SquarePoint = iota
	TopRight
	BottomRight
	BottomLeft
	MidTop
	MidRight
	MidBottom
	MidLeft
)

// Square is one cell of the dual grid. Points holds node indices into the grid arena.
type Square struct {
	Points        [8]int
	Configuration int // 8*TL + 4*TR + 2*BR + 1*BL
}

// SquareGrid owns every node of a map. Each control point has three nodes
// (itself, above, right) at index (y*Width+x)*3 + kind.
type SquareGrid struct {
	Width, Height int // Control points
	Nodes         []Node
	squares       []Square // Column-major: x*(Height-1) + y
}

// NewSquareGrid builds the node arena and squares for a map. Cell (0,0) is
// placed so the whole map is centred on the origin.
func NewSquareGrid(mapComp *components.MapComponent, squareSize float64) *SquareGrid {
	w, h := mapComp.Width, mapComp.Height
	g := &SquareGrid{
		Width:  w,
		Height: h,
		Nodes:  make([]Node, w*h*nodeKinds),
	}

	mapWidth := float64(w) * squareSize
	mapHeight := float64(h) * squareSize
	half := squareSize / 2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pos := components.Vec3{
				X: -mapWidth/2 + float64(x)*squareSize + half,
				Z: -mapHeight/2 + float64(y)*squareSize + half,
			}
			g.Nodes[g.nodeIndex(x, y, kindControl)] = Node{
				Position:    pos,
				VertexIndex: -1,
				Active:      mapComp.Tiles[y][x] == components.TileWall,
			}
			g.Nodes[g.nodeIndex(x, y, kindAbove)] = Node{
				Position:    pos.Add(components.Vec3{Z: half}),
				VertexIndex: -1,
			}
			g.Nodes[g.nodeIndex(x, y, kindRight)] = Node{
				Position:    pos.Add(components.Vec3{X: half}),
				VertexIndex: -1,
			}
		}
	}

	if w < 2 || h < 2 {
		return g
	}

	g.squares = make([]Square, (w-1)*(h-1))
	for x := 0; x < w-1; x++ {
		for y := 0; y < h-1; y++ {
			g.squares[x*(h-1)+y] = g.newSquare(x, y)
		}
	}

	return g
}

func (g *SquareGrid) nodeIndex(x, y, kind int) int {
	return (y*g.Width+x)*nodeKinds + kind
}

// newSquare wires the square whose bottom-left control node is (x, y)
func (g *SquareGrid) newSquare(x, y int) Square {
	var s Square
	s.Points[TopLeft] = g.nodeIndex(x, y+1, kindControl)
	s.Points[TopRight] = g.nodeIndex(x+1, y+1, kindControl)
	s.Points[BottomRight] = g.nodeIndex(x+1, y, kindControl)
	s.Points[BottomLeft] = g.nodeIndex(x, y, kindControl)
	s.Points[MidTop] = g.nodeIndex(x, y+1, kindRight)
	s.Points[MidRight] = g.nodeIndex(x+1, y, kindAbove)
	s.Points[MidBottom] = g.nodeIndex(x, y, kindRight)
	s.Points[MidLeft] = g.nodeIndex(x, y, kindAbove)

	if g.Nodes[s.Points[TopLeft]].Active {
		s.Configuration += 8
	}
	if g.Nodes[s.Points[TopRight]].Active {
		s.Configuration += 4
	}
	if g.Nodes[s.Points[BottomRight]].Active {
		s.Configuration += 2
	}
	if g.Nodes[s.Points[BottomLeft]].Active {
		s.Configuration++
	}
	return s
}

// SquaresX returns the number of square columns
func (g *SquareGrid) SquaresX() int {
	if g.Width < 2 || g.Height < 2 {
		return 0
	}
	return g.Width - 1
}

// SquaresY returns the number of square rows
func (g *SquareGrid) SquaresY() int {
	if g.Width < 2 || g.Height < 2 {
		return 0
	}
	return g.Height - 1
}

// Square returns the square whose bottom-left control node is (x, y)
func (g *SquareGrid) Square(x, y int) *Square {
	return &g.squares[x*(g.Height-1)+y]
}

// Node returns the node a square point refers to
func (g *SquareGrid) Node(s *Square, p SquarePoint) *Node {
	return &g.Nodes[s.Points[p]]
}
