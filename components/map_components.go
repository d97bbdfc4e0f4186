package components

import (
	"strings"
)

// MapComponent stores the cave occupancy grid
type MapComponent struct {
	Width  int
	Height int
	Tiles  [][]int // indexed [y][x]
}

// Tile types
const (
	TileFloor = iota
	TileWall
)

// NewMapComponent creates a new map with the given dimensions
func NewMapComponent(width, height int) *MapComponent {
	m := &MapComponent{
		Width:  width,
		Height: height,
		Tiles:  make([][]int, height),
	}

	// Start with walls everywhere
	for y := 0; y < height; y++ {
		m.Tiles[y] = make([]int, width)
		for x := 0; x < width; x++ {
			m.Tiles[y][x] = TileWall
		}
	}

	return m
}

// NewMapComponentFromRows builds a map from text rows where '#' or '1' is a wall
// and anything else is floor. Handy for fixtures.
func NewMapComponentFromRows(rows ...string) *MapComponent {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}

	m := NewMapComponent(width, height)
	for y, row := range rows {
		for x := 0; x < width && x < len(row); x++ {
			if row[x] == '#' || row[x] == '1' {
				m.Tiles[y][x] = TileWall
			} else {
				m.Tiles[y][x] = TileFloor
			}
		}
	}
	return m
}

// InBounds reports whether (x, y) lies on the map
func (m *MapComponent) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// IsWall returns true if the tile at (x, y) is a wall
func (m *MapComponent) IsWall(x, y int) bool {
	if !m.InBounds(x, y) {
		return true // Out of bounds is considered a wall
	}
	return m.Tiles[y][x] == TileWall
}

// GetTile returns the tile at (x, y); out of bounds reads as wall
func (m *MapComponent) GetTile(x, y int) int {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[y][x]
}

// SetTile sets the tile at the given position
func (m *MapComponent) SetTile(x, y, tileType int) {
	if m.InBounds(x, y) {
		m.Tiles[y][x] = tileType
	}
}

// Clone returns a deep copy of the map
func (m *MapComponent) Clone() *MapComponent {
	c := &MapComponent{
		Width:  m.Width,
		Height: m.Height,
		Tiles:  make([][]int, m.Height),
	}
	for y := range m.Tiles {
		c.Tiles[y] = make([]int, m.Width)
		copy(c.Tiles[y], m.Tiles[y])
	}
	return c
}

// Equal reports whether two maps have the same size and tiles
func (m *MapComponent) Equal(other *MapComponent) bool {
	if other == nil || m.Width != other.Width || m.Height != other.Height {
		return false
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x] != other.Tiles[y][x] {
				return false
			}
		}
	}
	return true
}

// CountTiles returns how many tiles hold the given type
func (m *MapComponent) CountTiles(tileType int) int {
	count := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x] == tileType {
				count++
			}
		}
	}
	return count
}

// String renders the map top row first, '#' for walls and '.' for floor
func (m *MapComponent) String() string {
	var b strings.Builder
	b.Grow((m.Width + 1) * m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x] == TileWall {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
