package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"ebiten-caves/ecs"
	"ebiten-caves/systems"
)

const (
	lineHeight   = 16
	hudMessages  = 6
	hudTextWidth = 640
)

// DrawHUD prints the current seed, the key help and the latest messages
func DrawHUD(world *ecs.World, screen *ebiten.Image) {
	if info := systems.GetCaveInfo(world); info != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Seed: %s (%s)  Rooms: %d", info.Seed, info.SeedAlgorithm, len(info.Rooms)), 10, 10)
	}
	ebitenutil.DebugPrintAt(screen, "SPACE: new  ENTER: replay  S: seed  [ ]: history  R: rooms  W: walls  M: mute  TAB: info  L: log  Arrows/+/-: camera", 10, 26)

	h := screen.Bounds().Dy()
	messages := systems.GetMessageLog().RecentMessages(hudMessages)
	for i, msg := range messages {
		DrawColoredText(screen, msg.Text, msg.GetColor(), 10, h-(i+1)*lineHeight-6, hudTextWidth)
	}
}

// Scratch image for tinted lines, regrown when a wider line is requested
var lineImg *ebiten.Image

// DrawColoredText prints text tinted with clr. The debug font is always white,
// so the line is drawn to a scratch image and scaled.
func DrawColoredText(dst *ebiten.Image, text string, clr color.Color, x, y, width int) {
	if lineImg == nil || lineImg.Bounds().Dx() < width {
		if lineImg != nil {
			lineImg.Deallocate()
		}
		lineImg = ebiten.NewImage(width, lineHeight)
	}
	lineImg.Clear()
	ebitenutil.DebugPrintAt(lineImg, text, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(clr)
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(lineImg, op)
}
