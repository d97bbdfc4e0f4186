package generation

import (
	"log"

	"ebiten-caves/components"
	"ebiten-caves/mesh"
)

// Cave is the result of one generation run
type Cave struct {
	Seed          string
	SeedAlgorithm string
	Map           *components.MapComponent // Final grid including the border
	BorderSize    int
	Rooms         []*Room // Largest first; tiles are in unbordered coordinates
	Floor         *components.MeshComponent
	Walls         *components.MeshComponent
	Outlines      [][]int // Closed loops of Floor vertex indices
}

// Generate runs the whole pipeline: seed, smooth, process regions, pad the
// border and build the meshes
func (g *CaveGenerator) Generate() (*Cave, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}

	g.resolveSeed()

	mapComp := g.fillMap()
	SmoothMap(mapComp, g.cfg.SmoothIterations)

	rooms := ProcessMap(mapComp, RoomOptions{
		WallThreshold: g.cfg.WallThreshold,
		RoomThreshold: g.cfg.RoomThreshold,
		PassageRadius: g.cfg.PassageRadius,
		ConnectAll:    g.cfg.ConnectAll,
	})

	bordered := PadBorder(mapComp, g.cfg.BorderSize)
	result := g.mesher.Generate(bordered, g.cfg.SquareSize, g.cfg.WallHeight)

	log.Printf("Generated %dx%d cave from seed %q: %d rooms, %d triangles, %d outlines",
		g.cfg.Width, g.cfg.Height, g.seed, len(rooms), result.Floor.TriangleCount(), len(result.Outlines))

	return &Cave{
		Seed:          g.seed,
		SeedAlgorithm: SeedAlgorithm,
		Map:           bordered,
		BorderSize:    g.cfg.BorderSize,
		Rooms:         rooms,
		Floor:         result.Floor,
		Walls:         result.Walls,
		Outlines:      result.Outlines,
	}, nil
}

// RoomTiles returns the tiles of every room, main room first
func (c *Cave) RoomTiles() [][]Coord {
	tiles := make([][]Coord, len(c.Rooms))
	for i, r := range c.Rooms {
		tiles[i] = r.Tiles
	}
	return tiles
}

// Info packs the cave diagnostics into a component
func (c *Cave) Info() *components.CaveInfoComponent {
	return &components.CaveInfoComponent{
		Seed:          c.Seed,
		SeedAlgorithm: c.SeedAlgorithm,
		BorderSize:    c.BorderSize,
		Rooms:         c.RoomTiles(),
		Outlines:      c.Outlines,
	}
}

// ValidateOutlines checks that every outline is a closed loop of boundary edges
func (c *Cave) ValidateOutlines() error {
	return mesh.ValidateOutlines(c.Floor, c.Outlines)
}
