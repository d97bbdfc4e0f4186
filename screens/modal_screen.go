package screens

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-caves/components"
	"ebiten-caves/ecs"
	"ebiten-caves/systems"
)

// ModalScreen represents a popup window that appears on top of other screens
type ModalScreen struct {
	*BaseScreen
	title      string
	content    string
	width      int
	height     int
	background color.Color
	textColor  color.Color
}

// NewModalScreen creates a new modal screen
func NewModalScreen(title, content string, width, height int) *ModalScreen {
	return &ModalScreen{
		BaseScreen: NewBaseScreen(),
		title:      title,
		content:    content,
		width:      width,
		height:     height,
		background: color.RGBA{0, 0, 0, 200}, // Semi-transparent black
		textColor:  color.White,
	}
}

// NewCaveInfoScreen builds a modal describing the current cave
func NewCaveInfoScreen(world *ecs.World) *ModalScreen {
	return NewModalScreen("CAVE INFO", CaveInfoText(world), 420, 300)
}

// CaveInfoText summarises the cave entity: seed, rooms, outlines and the
// components it carries
func CaveInfoText(world *ecs.World) string {
	entity := world.FirstWithTag(systems.TagCave)
	info := systems.GetCaveInfo(world)
	if entity == nil || info == nil {
		return "No cave generated yet"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Seed:      %s\n", info.Seed)
	fmt.Fprintf(&b, "Algorithm: %s\n", info.SeedAlgorithm)
	if mapComp := systems.GetCaveMap(world); mapComp != nil {
		fmt.Fprintf(&b, "Grid:      %dx%d (border %d)\n", mapComp.Width, mapComp.Height, info.BorderSize)
	}
	fmt.Fprintf(&b, "Rooms:     %d\n", len(info.Rooms))
	for i, room := range info.Rooms {
		if i == 5 {
			fmt.Fprintf(&b, "  ... %d more\n", len(info.Rooms)-i)
			break
		}
		fmt.Fprintf(&b, "  #%d: %d tiles\n", i+1, len(room))
	}
	fmt.Fprintf(&b, "Outlines:  %d\n", len(info.Outlines))

	if comp, ok := world.GetComponent(entity.ID, components.FloorMeshID); ok {
		floor := comp.(*components.MeshComponent)
		fmt.Fprintf(&b, "Floor:     %d vertices, %d triangles\n", floor.VertexCount(), floor.TriangleCount())
	}
	if comp, ok := world.GetComponent(entity.ID, components.WallMeshID); ok {
		walls := comp.(*components.MeshComponent)
		fmt.Fprintf(&b, "Walls:     %d vertices, %d triangles\n", walls.VertexCount(), walls.TriangleCount())
	}

	var names []string
	for _, id := range components.AllComponentIDs() {
		if world.HasComponent(entity.ID, id) {
			names = append(names, components.GetComponentName(id))
		}
	}
	sort.Strings(names)
	fmt.Fprintf(&b, "Components: %s", strings.Join(names, ", "))

	return b.String()
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	// Calculate center position
	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := (screenWidth - s.width) / 2
	y := (screenHeight - s.height) / 2

	// Draw semi-transparent background
	modal := ebiten.NewImage(s.width, s.height)
	modal.Fill(s.background)

	// Draw border
	vector.StrokeRect(modal, 1, 1, float32(s.width-2), float32(s.height-2), 2, s.textColor, false)

	// Draw title
	titleX := (s.width - len(s.title)*6) / 2 // Approximate text width
	ebitenutil.DebugPrintAt(modal, s.title, titleX, 10)

	// Draw content
	ebitenutil.DebugPrintAt(modal, s.content, 10, 30)

	// Draw the modal to the screen
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(modal, op)
}

// Update closes the modal on Escape or Tab
func (s *ModalScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		return ErrCloseScreen
	}
	return nil
}

// Layout implements the Screen interface
func (s *ModalScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
