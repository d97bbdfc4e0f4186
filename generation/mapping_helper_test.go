package generation

import (
	"testing"

	"ebiten-caves/components"
)

func TestGlyphAt(t *testing.T) {
	mapComp := components.NewMapComponentFromRows(
		"#####",
		"#...#",
		"#####",
	)

	tests := []struct {
		name     string
		x, y     int
		expected rune
	}{
		{"Floor", 1, 1, GlyphFloor},
		{"Solid corner", 0, 0, GlyphSolid},
		{"Top wall end", 1, 0, '─'},
		{"Top wall middle", 2, 0, '─'},
		{"Side wall", 0, 1, '■'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GlyphAt(mapComp, tt.x, tt.y); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCalculateWallMask(t *testing.T) {
	mapComp := components.NewMapComponentFromRows(
		".#.",
		"###",
		".#.",
	)
	expected := WallConnectTop | WallConnectRight | WallConnectBottom | WallConnectLeft
	if got := CalculateWallMask(mapComp, 1, 1); got != expected {
		t.Errorf("Expected mask %d, got %d", expected, got)
	}
	if WallGlyphLookup[expected] != '┼' {
		t.Errorf("Expected cross glyph for full mask, got %q", WallGlyphLookup[expected])
	}
}

func TestRenderRows(t *testing.T) {
	rows := RenderRows(components.NewMapComponent(4, 3))
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if row != "░░░░" {
			t.Errorf("Row %d: expected solid row, got %q", i, row)
		}
	}
}
