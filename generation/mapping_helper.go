package generation

import (
	"ebiten-caves/components"
)

// Wall connection bits used to pick a box drawing glyph
const (
	WallConnectTop    = 1
	WallConnectRight  = 2
	WallConnectBottom = 4
	WallConnectLeft   = 8
)

// Glyphs for rendering a cave as text
const (
	GlyphFloor = ' '
	GlyphSolid = '░' // Wall with no open neighbour
)

// WallGlyphLookup maps a connection mask to its box drawing rune
var WallGlyphLookup = [16]rune{
	0:  '■', // Isolated
	1:  '│', // Top only
	2:  '─', // Right only
	3:  '└', // Top and right
	4:  '│', // Bottom only
	5:  '│', // Top and bottom
	6:  '┌', // Right and bottom
	7:  '├', // Missing left
	8:  '─', // Left only
	9:  '┘', // Top and left
	10: '─', // Left and right
	11: '┴', // Missing bottom
	12: '┐', // Left and bottom
	13: '┤', // Missing right
	14: '┬', // Missing top
	15: '┼', // All four
}

// GlyphAt returns the rune used to draw (x, y). Walls touching floor are drawn
// with box glyphs joined to the neighbouring walls that also touch floor.
func GlyphAt(mapComp *components.MapComponent, x, y int) rune {
	if !mapComp.IsWall(x, y) {
		return GlyphFloor
	}
	if !HasAdjacentFloor(mapComp, x, y) {
		return GlyphSolid
	}
	return WallGlyphLookup[CalculateWallMask(mapComp, x, y)]
}

// HasAdjacentFloor checks if a position has at least one adjacent floor tile
func HasAdjacentFloor(mapComp *components.MapComponent, x, y int) bool {
	for _, d := range orthogonal {
		if !mapComp.IsWall(x+d.X, y+d.Y) {
			return true
		}
	}
	return false
}

// CalculateWallMask calculates the bitmask value for a wall tile based on which
// adjacent tiles are perimeter walls. Row y-1 is drawn above row y.
func CalculateWallMask(mapComp *components.MapComponent, x, y int) int {
	mask := 0

	if isPerimeterWall(mapComp, x, y-1) { // Top
		mask |= WallConnectTop
	}
	if isPerimeterWall(mapComp, x+1, y) { // Right
		mask |= WallConnectRight
	}
	if isPerimeterWall(mapComp, x, y+1) { // Bottom
		mask |= WallConnectBottom
	}
	if isPerimeterWall(mapComp, x-1, y) { // Left
		mask |= WallConnectLeft
	}

	return mask
}

// isPerimeterWall reports an in-bounds wall with at least one floor neighbour
func isPerimeterWall(mapComp *components.MapComponent, x, y int) bool {
	return mapComp.InBounds(x, y) && mapComp.IsWall(x, y) && HasAdjacentFloor(mapComp, x, y)
}

// RenderRows draws the whole map as text, one string per row
func RenderRows(mapComp *components.MapComponent) []string {
	rows := make([]string, mapComp.Height)
	for y := 0; y < mapComp.Height; y++ {
		line := make([]rune, mapComp.Width)
		for x := 0; x < mapComp.Width; x++ {
			line[x] = GlyphAt(mapComp, x, y)
		}
		rows[y] = string(line)
	}
	return rows
}
