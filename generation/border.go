package generation

import (
	"ebiten-caves/components"
)

// PadBorder returns a new map with the given map in its centre and a solid ring
// of the given thickness around it
func PadBorder(mapComp *components.MapComponent, border int) *components.MapComponent {
	padded := components.NewMapComponent(mapComp.Width+border*2, mapComp.Height+border*2)
	for y := 0; y < mapComp.Height; y++ {
		copy(padded.Tiles[y+border][border:border+mapComp.Width], mapComp.Tiles[y])
	}
	return padded
}
