package mesh

import (
	"ebiten-caves/components"
)

// BuildWallMesh extrudes each outline edge downward into a quad of two
// triangles. Every edge gets its own four vertices.
func BuildWallMesh(vertices []components.Vec3, outlines [][]int, wallHeight float64) *components.MeshComponent {
	walls := &components.MeshComponent{}
	drop := components.Up.Scale(wallHeight)

	for _, outline := range outlines {
		for i := 0; i+1 < len(outline); i++ {
			start := len(walls.Vertices)
			a := vertices[outline[i]]
			b := vertices[outline[i+1]]

			walls.Vertices = append(walls.Vertices,
				a,           // left
				b,           // right
				a.Sub(drop), // bottom left
				b.Sub(drop), // bottom right
			)

			walls.Indices = append(walls.Indices,
				start+0, start+2, start+3,
				start+3, start+1, start+0,
			)
		}
	}

	return walls
}
