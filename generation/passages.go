package generation

import (
	"ebiten-caves/components"
)

// createPassage connects the pair's rooms and carves floor along the line
// between their edge tiles
func createPassage(mapComp *components.MapComponent, pair roomPair, radius int) {
	ConnectRooms(pair.roomA, pair.roomB)

	for _, c := range GetLine(pair.tileA, pair.tileB) {
		carveCircle(mapComp, c, radius)
	}
}

// GetLine returns the cells from `from` to `to` inclusive. Consecutive cells share
// a side, so the path stays open even with a zero carve radius.
func GetLine(from, to Coord) []Coord {
	nx, ny := abs(to.X-from.X), abs(to.Y-from.Y)
	sx, sy := sign(to.X-from.X), sign(to.Y-from.Y)

	line := make([]Coord, 0, nx+ny+1)
	p := from
	line = append(line, p)

	for ix, iy := 0, 0; ix < nx || iy < ny; {
		// Step along whichever axis is further behind the ideal line
		if (1+2*ix)*ny < (1+2*iy)*nx {
			p.X += sx
			ix++
		} else {
			p.Y += sy
			iy++
		}
		line = append(line, p)
	}

	return line
}

// carveCircle clears every in-bounds cell within radius of c
func carveCircle(mapComp *components.MapComponent, c Coord, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				mapComp.SetTile(c.X+dx, c.Y+dy, components.TileFloor)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
