package generation

import (
	"ebiten-caves/components"
)

// GetRegions returns every maximal 4-connected region of tileType, discovered in
// row-major order. Each matching cell appears in exactly one region.
func GetRegions(mapComp *components.MapComponent, tileType int) [][]Coord {
	var regions [][]Coord
	visited := make([]bool, mapComp.Width*mapComp.Height)

	for y := 0; y < mapComp.Height; y++ {
		for x := 0; x < mapComp.Width; x++ {
			if visited[y*mapComp.Width+x] || mapComp.Tiles[y][x] != tileType {
				continue
			}
			regions = append(regions, floodFill(mapComp, x, y, visited))
		}
	}

	return regions
}

// floodFill collects the region containing (startX, startY) breadth first
func floodFill(mapComp *components.MapComponent, startX, startY int, visited []bool) []Coord {
	w := mapComp.Width
	tileType := mapComp.Tiles[startY][startX]

	queue := []Coord{{X: startX, Y: startY}}
	visited[startY*w+startX] = true

	for head := 0; head < len(queue); head++ {
		tile := queue[head]
		for _, d := range orthogonal {
			nx, ny := tile.X+d.X, tile.Y+d.Y
			if !mapComp.InBounds(nx, ny) {
				continue
			}
			if visited[ny*w+nx] || mapComp.Tiles[ny][nx] != tileType {
				continue
			}
			visited[ny*w+nx] = true
			queue = append(queue, Coord{X: nx, Y: ny})
		}
	}

	// The queue holds every tile exactly once, in discovery order
	return queue
}

var orthogonal = []Coord{{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1}}
