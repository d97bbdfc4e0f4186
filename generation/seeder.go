package generation

import (
	"math/rand/v2"

	"github.com/aquilax/go-perlin"

	"ebiten-caves/components"
	"ebiten-caves/config"
)

// Perlin parameters: persistence 1/alpha, frequency multiplier beta, octave count
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// RandomFillMap builds a grid whose outer ring is wall and whose interior cells are
// wall with probability fillPercent/100. Cells are drawn in row-major order.
func RandomFillMap(width, height, fillPercent int, rng *rand.Rand) *components.MapComponent {
	m := components.NewMapComponent(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if isEdge(m, x, y) {
				m.Tiles[y][x] = components.TileWall
				continue
			}
			if rng.IntN(100) < fillPercent {
				m.Tiles[y][x] = components.TileWall
			} else {
				m.Tiles[y][x] = components.TileFloor
			}
		}
	}
	return m
}

// NoiseFillMap is RandomFillMap with Perlin noise in place of independent draws.
// A cell is wall when its noise value, rescaled to [0,100), is below fillPercent.
func NoiseFillMap(width, height, fillPercent int, scale float64, seed int64) *components.MapComponent {
	p := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)
	m := components.NewMapComponent(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if isEdge(m, x, y) {
				m.Tiles[y][x] = components.TileWall
				continue
			}
			// Offset by half a cell; Perlin is zero on every lattice point
			n := p.Noise2D((float64(x)+0.5)*scale, (float64(y)+0.5)*scale)
			if noisePercent(n) < float64(fillPercent) {
				m.Tiles[y][x] = components.TileWall
			} else {
				m.Tiles[y][x] = components.TileFloor
			}
		}
	}
	return m
}

// noisePercent maps noise in [-1,1] to [0,100)
func noisePercent(n float64) float64 {
	v := (n + 1) / 2 * 100
	if v < 0 {
		return 0
	}
	if v >= 100 {
		return 99.999
	}
	return v
}

func isEdge(m *components.MapComponent, x, y int) bool {
	return x == 0 || x == m.Width-1 || y == 0 || y == m.Height-1
}

// fillMap seeds a grid according to the configured fill mode
func (g *CaveGenerator) fillMap() *components.MapComponent {
	if g.cfg.FillMode == config.FillPerlin {
		return NoiseFillMap(g.cfg.Width, g.cfg.Height, g.cfg.FillPercent, g.cfg.NoiseScale, int64(g.hash))
	}
	return RandomFillMap(g.cfg.Width, g.cfg.Height, g.cfg.FillPercent, g.rng)
}
