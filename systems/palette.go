package systems

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Golden angle in degrees; consecutive hues stay far apart
const hueStep = 137.508

// RoomPalette returns n distinct colours for a room overlay. The main room
// (index 0) always gets the same hue.
func RoomPalette(n int) []color.RGBA {
	palette := make([]color.RGBA, n)
	for i := 0; i < n; i++ {
		hue := 200 + float64(i)*hueStep
		for hue >= 360 {
			hue -= 360
		}
		c := colorful.Hsv(hue, 0.55, 0.9)
		r, g, b := c.RGB255()
		palette[i] = color.RGBA{r, g, b, 255}
	}
	return palette
}
