package generation

import (
	"testing"

	"ebiten-caves/components"
)

func TestHashSeed(t *testing.T) {
	if HashSeed("cave") != HashSeed("cave") {
		t.Errorf("Expected equal hashes for equal seeds")
	}
	if HashSeed("cave") == HashSeed("Cave") {
		t.Errorf("Expected different hashes for different seeds")
	}
	// FNV-1a 64 offset basis
	if got := HashSeed(""); got != 0xcbf29ce484222325 {
		t.Errorf("Expected offset basis for empty seed, got %#x", got)
	}
}

func TestRandomFillMapIsDeterministic(t *testing.T) {
	a := RandomFillMap(30, 20, 45, NewRNG(HashSeed("seed")))
	b := RandomFillMap(30, 20, 45, NewRNG(HashSeed("seed")))
	c := RandomFillMap(30, 20, 45, NewRNG(HashSeed("other")))

	if !a.Equal(b) {
		t.Errorf("Expected equal grids for equal seeds")
	}
	if a.Equal(c) {
		t.Errorf("Expected different grids for different seeds")
	}
}

func TestFillMapExtremes(t *testing.T) {
	tests := []struct {
		name string
		fill func(fill int) *components.MapComponent
	}{
		{"Random", func(fill int) *components.MapComponent {
			return RandomFillMap(12, 9, fill, NewRNG(HashSeed("x")))
		}},
		{"Perlin", func(fill int) *components.MapComponent {
			return NoiseFillMap(12, 9, fill, 0.1, int64(HashSeed("x")))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			full := tt.fill(100)
			if got := full.CountTiles(components.TileWall); got != 12*9 {
				t.Errorf("Expected all %d cells solid at fill 100, got %d", 12*9, got)
			}

			empty := tt.fill(0)
			for y := 0; y < empty.Height; y++ {
				for x := 0; x < empty.Width; x++ {
					edge := x == 0 || y == 0 || x == empty.Width-1 || y == empty.Height-1
					if edge != empty.IsWall(x, y) {
						t.Fatalf("Expected only the outer ring solid at fill 0, cell (%d,%d) wall=%v", x, y, empty.IsWall(x, y))
					}
				}
			}
		})
	}
}

func TestNoiseFillMapIsDeterministic(t *testing.T) {
	a := NoiseFillMap(40, 30, 50, 0.15, 42)
	b := NoiseFillMap(40, 30, 50, 0.15, 42)
	if !a.Equal(b) {
		t.Errorf("Expected equal grids for equal noise seeds")
	}
}

func TestNoisePercentRange(t *testing.T) {
	tests := []struct {
		noise    float64
		expected float64
	}{
		{-1, 0},
		{-3, 0},
		{0, 50},
		{1, 99.999},
		{2, 99.999},
	}

	for _, tt := range tests {
		if got := noisePercent(tt.noise); got != tt.expected {
			t.Errorf("noisePercent(%v): expected %v, got %v", tt.noise, tt.expected, got)
		}
	}
}
