package generation

import (
	"ebiten-caves/components"
)

// SmoothMap runs the majority rule over the map the given number of times.
// A cell with more than 4 wall neighbours becomes a wall, fewer than 4 becomes
// floor, exactly 4 keeps its value.
func SmoothMap(mapComp *components.MapComponent, iterations int) {
	for i := 0; i < iterations; i++ {
		smoothOnce(mapComp)
	}
}

// smoothOnce evaluates every cell against the state at the start of the pass
func smoothOnce(mapComp *components.MapComponent) {
	// Create a copy of the current state
	newMap := make([][]int, mapComp.Height)
	for y := range newMap {
		newMap[y] = make([]int, mapComp.Width)
		copy(newMap[y], mapComp.Tiles[y])
	}

	for y := 0; y < mapComp.Height; y++ {
		for x := 0; x < mapComp.Width; x++ {
			walls := CountSurroundingWalls(mapComp, x, y)

			if walls > 4 {
				newMap[y][x] = components.TileWall
			} else if walls < 4 {
				newMap[y][x] = components.TileFloor
			}
		}
	}

	for y := 0; y < mapComp.Height; y++ {
		copy(mapComp.Tiles[y], newMap[y])
	}
}

// CountSurroundingWalls counts walls among the 8 neighbours of (x, y)
func CountSurroundingWalls(mapComp *components.MapComponent, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}

			// Count edges as walls
			if mapComp.IsWall(x+dx, y+dy) {
				count++
			}
		}
	}
	return count
}
