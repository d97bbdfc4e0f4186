package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-caves/components"
	"ebiten-caves/ecs"
	"ebiten-caves/systems"
)

// Colours used by the viewer
var (
	backgroundColor = color.RGBA{18, 16, 24, 255}
	rockColor       = color.RGBA{92, 88, 104, 255}
	wallColor       = color.RGBA{230, 210, 150, 255}
)

// Triangles per DrawTriangles call; indices are 16-bit
const maxBatchTriangles = 65535 / 3

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// RenderSystem draws the cave entity top down: the solid mesh, its outlines
// and optionally one coloured marker per room tile
type RenderSystem struct {
	squareSize float64
	showRooms  bool
	showWalls  bool

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(squareSize float64) *RenderSystem {
	return &RenderSystem{
		squareSize: squareSize,
		showWalls:  true,
	}
}

// ToggleRooms switches the room overlay
func (s *RenderSystem) ToggleRooms() {
	s.showRooms = !s.showRooms
}

// ToggleWalls switches outline drawing
func (s *RenderSystem) ToggleWalls() {
	s.showWalls = !s.showWalls
}

// Update satisfies ecs.System; drawing happens in Draw
func (s *RenderSystem) Update(world *ecs.World, dt float64) {}

// Draw renders the current cave
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	_, camera := systems.GetCamera(world)
	caveEntity := world.FirstWithTag(systems.TagCave)
	if camera == nil || caveEntity == nil {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	if comp, ok := world.GetComponent(caveEntity.ID, components.FloorMeshID); ok {
		s.drawMesh(screen, comp.(*components.MeshComponent), camera, w, h)
	}

	info := systems.GetCaveInfo(world)
	if info == nil {
		return
	}

	if s.showRooms {
		if mapComp := systems.GetCaveMap(world); mapComp != nil {
			s.drawRooms(screen, mapComp, info, camera, w, h)
		}
	}

	if s.showWalls {
		if comp, ok := world.GetComponent(caveEntity.ID, components.FloorMeshID); ok {
			s.drawOutlines(screen, comp.(*components.MeshComponent), info.Outlines, camera, w, h)
		}
	}
}

// drawMesh fills every triangle of the mesh, batching to fit 16-bit indices
func (s *RenderSystem) drawMesh(screen *ebiten.Image, mesh *components.MeshComponent, camera *components.CameraComponent, w, h int) {
	r, g, b, a := float32(rockColor.R)/255, float32(rockColor.G)/255, float32(rockColor.B)/255, float32(rockColor.A)/255

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]

	flush := func() {
		if len(s.indices) == 0 {
			return
		}
		screen.DrawTriangles(s.vertices, s.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
			AntiAlias: true,
		})
		s.vertices = s.vertices[:0]
		s.indices = s.indices[:0]
	}

	for t := 0; t < mesh.TriangleCount(); t++ {
		if len(s.vertices)/3 >= maxBatchTriangles {
			flush()
		}
		for k := 0; k < 3; k++ {
			v := mesh.Vertices[mesh.Indices[t*3+k]]
			sx, sy := camera.WorldToScreen(v.X, v.Z, w, h)
			s.indices = append(s.indices, uint16(len(s.vertices)))
			s.vertices = append(s.vertices, ebiten.Vertex{
				DstX: sx, DstY: sy,
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			})
		}
	}
	flush()
}

// drawOutlines strokes each outline; these are the tops of the wall mesh
func (s *RenderSystem) drawOutlines(screen *ebiten.Image, floor *components.MeshComponent, outlines [][]int, camera *components.CameraComponent, w, h int) {
	width := float32(camera.Zoom / 6)
	if width < 1 {
		width = 1
	}

	for _, outline := range outlines {
		for i := 0; i+1 < len(outline); i++ {
			a := floor.Vertices[outline[i]]
			b := floor.Vertices[outline[i+1]]
			x0, y0 := camera.WorldToScreen(a.X, a.Z, w, h)
			x1, y1 := camera.WorldToScreen(b.X, b.Z, w, h)
			vector.StrokeLine(screen, x0, y0, x1, y1, width, wallColor, true)
		}
	}
}

// drawRooms marks each room tile with its room's colour
func (s *RenderSystem) drawRooms(screen *ebiten.Image, mapComp *components.MapComponent, info *components.CaveInfoComponent, camera *components.CameraComponent, w, h int) {
	palette := systems.RoomPalette(len(info.Rooms))
	size := float32(s.squareSize * camera.Zoom * 0.5)

	for i, room := range info.Rooms {
		clr := palette[i]
		clr.A = 160
		for _, tile := range room {
			centre := components.CellCentre(tile.X+info.BorderSize, tile.Y+info.BorderSize, mapComp.Width, mapComp.Height, s.squareSize)
			sx, sy := camera.WorldToScreen(centre.X, centre.Z, w, h)
			vector.DrawFilledRect(screen, sx-size/2, sy-size/2, size, size, clr, false)
		}
	}
}
