package components

// Coord identifies a grid cell
type Coord struct {
	X, Y int
}

// CameraComponent stores the viewer's pan offset (world units) and zoom (pixels per world unit)
type CameraComponent struct {
	X, Z float64
	Zoom float64
}

// NewCameraComponent creates a camera centred on the world origin
func NewCameraComponent(zoom float64) *CameraComponent {
	return &CameraComponent{Zoom: zoom}
}

// CaveInfoComponent carries the diagnostics produced alongside the meshes
type CaveInfoComponent struct {
	Seed          string
	SeedAlgorithm string
	BorderSize    int       // Room tiles are in unpadded coordinates; add this to reach the map
	Rooms         [][]Coord // Tiles of every room, main room first
	Outlines      [][]int   // Closed loops of floor vertex indices
}

// WorldToScreen projects a point on the map plane into a viewport of the given
// size. World +Z points up the screen.
func (c *CameraComponent) WorldToScreen(x, z float64, width, height int) (float32, float32) {
	sx := (x-c.X)*c.Zoom + float64(width)/2
	sy := float64(height)/2 - (z-c.Z)*c.Zoom
	return float32(sx), float32(sy)
}

// ScreenToWorld is the inverse of WorldToScreen
func (c *CameraComponent) ScreenToWorld(sx, sy float32, width, height int) (x, z float64) {
	x = (float64(sx)-float64(width)/2)/c.Zoom + c.X
	z = (float64(height)/2-float64(sy))/c.Zoom + c.Z
	return x, z
}

// CellCentre returns the world position of grid cell (x, y) in a map of the
// given size, matching the mesh's control node placement
func CellCentre(x, y, mapWidth, mapHeight int, squareSize float64) Vec3 {
	return Vec3{
		X: -float64(mapWidth)*squareSize/2 + float64(x)*squareSize + squareSize/2,
		Z: -float64(mapHeight)*squareSize/2 + float64(y)*squareSize + squareSize/2,
	}
}
