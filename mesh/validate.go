package mesh

import (
	"github.com/pkg/errors"

	"ebiten-caves/components"
)

// ErrOpenOutline means an outline is not a closed loop of boundary edges
var ErrOpenOutline = errors.New("open outline")

type edge struct{ a, b int }

func newEdge(a, b int) edge {
	if a > b {
		a, b = b, a
	}
	return edge{a, b}
}

// ValidateOutlines checks every outline against the floor mesh's index buffer.
// Each outline must repeat its first vertex at the end, hold at least three
// distinct vertices, and step only along edges used by exactly one triangle.
func ValidateOutlines(floor *components.MeshComponent, outlines [][]int) error {
	counts := make(map[edge]int)
	for i := 0; i+2 < len(floor.Indices); i += 3 {
		a, b, c := floor.Indices[i], floor.Indices[i+1], floor.Indices[i+2]
		counts[newEdge(a, b)]++
		counts[newEdge(b, c)]++
		counts[newEdge(c, a)]++
	}

	for i, outline := range outlines {
		if len(outline) < 4 {
			return errors.Wrapf(ErrOpenOutline, "outline %d has %d entries", i, len(outline))
		}
		if outline[0] != outline[len(outline)-1] {
			return errors.Wrapf(ErrOpenOutline, "outline %d starts at %d but ends at %d", i, outline[0], outline[len(outline)-1])
		}
		for j := 0; j+1 < len(outline); j++ {
			if n := counts[newEdge(outline[j], outline[j+1])]; n != 1 {
				return errors.Wrapf(ErrOpenOutline, "outline %d edge %d-%d is shared by %d triangles", i, outline[j], outline[j+1], n)
			}
		}
	}

	return nil
}
