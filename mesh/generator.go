package mesh

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"ebiten-caves/components"
)

// Generator turns a solid/open grid into a floor mesh, its outlines and a wall
// mesh. A Generator may be reused; each call starts from a clean state.
type Generator struct {
	grid               *SquareGrid
	vertices           []components.Vec3
	indices            []int
	triangleDictionary map[int][]Triangle // Triangles touching each vertex, in creation order
	outlines           [][]int
	interior           mapset.Set[int] // Corners of fully solid squares
	visited            mapset.Set[int] // Vertices already placed on an outline
}

// Result is everything produced from one grid
type Result struct {
	Grid     *SquareGrid
	Floor    *components.MeshComponent
	Walls    *components.MeshComponent
	Outlines [][]int
	Interior []int // Ascending
}

// NewGenerator creates an empty generator
func NewGenerator() *Generator {
	g := &Generator{}
	g.Reset()
	return g
}

// Reset discards all state from the previous run
func (g *Generator) Reset() {
	g.grid = nil
	g.vertices = nil
	g.indices = nil
	g.triangleDictionary = make(map[int][]Triangle)
	g.outlines = nil
	g.interior = mapset.New[int]()
	g.visited = mapset.New[int]()
}

// Generate builds the meshes for a map. Squares are triangulated column by
// column, which fixes the vertex numbering.
func (g *Generator) Generate(mapComp *components.MapComponent, squareSize, wallHeight float64) *Result {
	g.Reset()
	g.grid = NewSquareGrid(mapComp, squareSize)

	for x := 0; x < g.grid.SquaresX(); x++ {
		for y := 0; y < g.grid.SquaresY(); y++ {
			g.triangulateSquare(g.grid.Square(x, y))
		}
	}

	g.calculateMeshOutlines()

	interior := make([]int, 0, g.interior.Size())
	g.interior.Each(func(v int) {
		interior = append(interior, v)
	})
	sort.Ints(interior)

	floor := &components.MeshComponent{
		Vertices: g.vertices,
		Indices:  g.indices,
	}

	return &Result{
		Grid:     g.grid,
		Floor:    floor,
		Walls:    BuildWallMesh(g.vertices, g.outlines, wallHeight),
		Outlines: g.outlines,
		Interior: interior,
	}
}
