package generation

import (
	"testing"

	"ebiten-caves/components"
)

// threeRooms has two 3x3 rooms, a 6-tile corridor room and a single-tile pocket at (1,5)
func threeRooms() *components.MapComponent {
	return components.NewMapComponentFromRows(
		"##########",
		"#...##...#",
		"#...##...#",
		"#...##...#",
		"##########",
		"#.#......#",
		"##########",
	)
}

func TestGetRegions(t *testing.T) {
	mapComp := threeRooms()

	floors := GetRegions(mapComp, components.TileFloor)
	expectedSizes := []int{9, 9, 1, 6}
	if len(floors) != len(expectedSizes) {
		t.Fatalf("Expected %d floor regions, got %d", len(expectedSizes), len(floors))
	}
	for i, size := range expectedSizes {
		if len(floors[i]) != size {
			t.Errorf("Region %d: expected %d tiles, got %d", i, size, len(floors[i]))
		}
	}
	if floors[0][0] != (Coord{X: 1, Y: 1}) {
		t.Errorf("Expected first region to start at (1,1), got %v", floors[0][0])
	}

	walls := GetRegions(mapComp, components.TileWall)
	if len(walls) != 1 {
		t.Errorf("Expected 1 wall region, got %d", len(walls))
	}

	total := 0
	for _, r := range append(floors, walls...) {
		total += len(r)
	}
	if total != mapComp.Width*mapComp.Height {
		t.Errorf("Expected regions to cover %d cells, got %d", mapComp.Width*mapComp.Height, total)
	}
}

func TestGetRegionsUsesOrthogonalNeighbours(t *testing.T) {
	mapComp := components.NewMapComponentFromRows(
		"#.",
		".#",
	)
	if got := len(GetRegions(mapComp, components.TileFloor)); got != 2 {
		t.Errorf("Expected diagonal floor tiles to form 2 regions, got %d", got)
	}
}

func TestProcessMapConnectsEveryRoom(t *testing.T) {
	mapComp := threeRooms()
	rooms := ProcessMap(mapComp, RoomOptions{
		WallThreshold: 1,
		RoomThreshold: 2,
		PassageRadius: 0,
		ConnectAll:    true,
	})

	if len(rooms) != 3 {
		t.Fatalf("Expected 3 rooms, got %d", len(rooms))
	}
	if !mapComp.IsWall(1, 5) {
		t.Errorf("Expected single-tile pocket to be sealed")
	}

	expectedSizes := []int{9, 9, 6}
	for i, size := range expectedSizes {
		if rooms[i].Size != size {
			t.Errorf("Room %d: expected size %d, got %d", i, size, rooms[i].Size)
		}
	}
	if rooms[0].Tiles[0] != (Coord{X: 1, Y: 1}) {
		t.Errorf("Expected the first discovered of equal rooms to stay first, got %v", rooms[0].Tiles[0])
	}
	if !rooms[0].IsMainRoom {
		t.Errorf("Expected largest room to be the main room")
	}
	for i, r := range rooms {
		if !r.IsAccessibleFromMainRoom {
			t.Errorf("Room %d: expected accessible from main room", i)
		}
		if i > 0 && r.IsMainRoom {
			t.Errorf("Room %d: expected only one main room", i)
		}
	}

	if got := len(GetRegions(mapComp, components.TileFloor)); got != 1 {
		t.Errorf("Expected one open region after connecting, got %d\n%s", got, mapComp)
	}
}

func TestProcessMapPrunesSmallWalls(t *testing.T) {
	mapComp := components.NewMapComponentFromRows(
		"#######",
		"#.....#",
		"#.#...#",
		"#.....#",
		"#######",
	)
	rooms := ProcessMap(mapComp, RoomOptions{WallThreshold: 2})

	if mapComp.IsWall(2, 2) {
		t.Errorf("Expected single wall tile to be removed")
	}
	if len(rooms) != 1 {
		t.Fatalf("Expected 1 room, got %d", len(rooms))
	}
	if rooms[0].Size != 15 {
		t.Errorf("Expected room of 15 tiles, got %d", rooms[0].Size)
	}
	if len(rooms[0].EdgeTiles) != 12 {
		t.Errorf("Expected 12 edge tiles, got %d", len(rooms[0].EdgeTiles))
	}
}

func TestProcessMapLeavesNoSmallRegions(t *testing.T) {
	for _, connectAll := range []bool{false, true} {
		mapComp := RandomFillMap(60, 45, 47, NewRNG(HashSeed("regions")))
		SmoothMap(mapComp, 5)

		opts := RoomOptions{WallThreshold: 20, RoomThreshold: 20, PassageRadius: 1, ConnectAll: connectAll}
		rooms := ProcessMap(mapComp, opts)

		for _, r := range GetRegions(mapComp, components.TileWall) {
			if len(r) < opts.WallThreshold {
				t.Errorf("connectAll=%v: expected no wall region below %d, got %d", connectAll, opts.WallThreshold, len(r))
			}
		}
		floors := GetRegions(mapComp, components.TileFloor)
		for _, r := range floors {
			if len(r) < opts.RoomThreshold {
				t.Errorf("connectAll=%v: expected no floor region below %d, got %d", connectAll, opts.RoomThreshold, len(r))
			}
		}
		for i := 1; i < len(rooms); i++ {
			if rooms[i].Size > rooms[i-1].Size {
				t.Errorf("connectAll=%v: expected rooms sorted by size, %d before %d", connectAll, rooms[i-1].Size, rooms[i].Size)
			}
		}
		if connectAll && len(rooms) > 0 && len(floors) != 1 {
			t.Errorf("Expected one open region, got %d", len(floors))
		}
	}
}

func TestProcessMapSinglePassConnectsNearest(t *testing.T) {
	// Four rooms in a row with gaps of 2, 4 and 6 walls
	mapComp := components.NewMapComponentFromRows(
		"##########################",
		"#...##...####...######...#",
		"#...##...####...######...#",
		"#...##...####...######...#",
		"##########################",
	)
	rooms := ProcessMap(mapComp, RoomOptions{WallThreshold: 1, RoomThreshold: 1})

	if len(rooms) != 4 {
		t.Fatalf("Expected 4 rooms, got %d", len(rooms))
	}
	a, b, c, d := rooms[0], rooms[1], rooms[2], rooms[3]
	if a.Tiles[0].X != 1 || b.Tiles[0].X != 6 || c.Tiles[0].X != 13 || d.Tiles[0].X != 22 {
		t.Fatalf("Expected equal-size rooms to keep left-to-right order")
	}

	// a takes b; b skips a and takes c; c skips b and takes d; d skips c and takes b
	tests := []struct {
		name      string
		x, y      *Room
		connected bool
	}{
		{"a-b", a, b, true},
		{"b-c", b, c, true},
		{"c-d", c, d, true},
		{"d-b", d, b, true},
		{"a-c", a, c, false},
		{"a-d", a, d, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.x.IsConnected(tt.y); got != tt.connected {
				t.Errorf("Expected connected=%v, got %v", tt.connected, got)
			}
			if tt.x.IsConnected(tt.y) != tt.y.IsConnected(tt.x) {
				t.Errorf("Expected connections to be symmetric")
			}
		})
	}

	counts := []int{1, 3, 2, 2}
	for i, want := range counts {
		if got := rooms[i].ConnectionCount(); got != want {
			t.Errorf("Room %d: expected %d connections, got %d", i, want, got)
		}
	}
	if got := len(GetRegions(mapComp, components.TileFloor)); got != 1 {
		t.Errorf("Expected the passages to join every room, got %d open regions\n%s", got, mapComp)
	}
}

func TestProcessMapSkipsRoomsWithoutEdgeTiles(t *testing.T) {
	for _, connectAll := range []bool{false, true} {
		// The ring is too small to survive wall pruning, leaving a room with no walls around it
		mapComp := components.NewMapComponentFromRows(
			"#####",
			"#...#",
			"#####",
		)
		rooms := ProcessMap(mapComp, RoomOptions{WallThreshold: 20, RoomThreshold: 1, ConnectAll: connectAll})

		if len(rooms) != 1 {
			t.Fatalf("connectAll=%v: expected 1 room, got %d", connectAll, len(rooms))
		}
		if rooms[0].Size != 15 {
			t.Errorf("connectAll=%v: expected room of 15 tiles, got %d", connectAll, rooms[0].Size)
		}
		if len(rooms[0].EdgeTiles) != 0 {
			t.Errorf("connectAll=%v: expected no edge tiles, got %d", connectAll, len(rooms[0].EdgeTiles))
		}
		if rooms[0].ConnectionCount() != 0 {
			t.Errorf("connectAll=%v: expected no connections, got %d", connectAll, rooms[0].ConnectionCount())
		}
	}
}

func TestConnectClosestRoomsSkipsRoomWithoutEdges(t *testing.T) {
	open := components.NewMapComponentFromRows(
		"...",
		"...",
	)
	isolated := NewRoom(GetRegions(open, components.TileFloor)[0], open)

	mapComp := threeRooms()
	regions := GetRegions(mapComp, components.TileFloor)
	walled := NewRoom(regions[0], mapComp)
	before := mapComp.Clone()

	ConnectClosestRooms(mapComp, []*Room{isolated, walled}, 1)

	if isolated.ConnectionCount() != 0 || walled.ConnectionCount() != 0 {
		t.Errorf("Expected no connection to a room without edge tiles, got %d and %d",
			isolated.ConnectionCount(), walled.ConnectionCount())
	}
	if !mapComp.Equal(before) {
		t.Errorf("Expected nothing carved, got\n%s", mapComp)
	}
}

func TestConnectRoomsPropagatesAccess(t *testing.T) {
	mapComp := threeRooms()
	a := NewRoom([]Coord{{X: 1, Y: 1}}, mapComp)
	b := NewRoom([]Coord{{X: 6, Y: 1}}, mapComp)
	c := NewRoom([]Coord{{X: 3, Y: 5}}, mapComp)

	ConnectRooms(b, c)
	if b.IsAccessibleFromMainRoom || c.IsAccessibleFromMainRoom {
		t.Fatalf("Expected rooms inaccessible before touching the main room")
	}

	a.IsMainRoom = true
	a.IsAccessibleFromMainRoom = true
	ConnectRooms(b, a)

	if !b.IsAccessibleFromMainRoom || !c.IsAccessibleFromMainRoom {
		t.Errorf("Expected access to spread through existing connections")
	}
	if !a.IsConnected(b) || !b.IsConnected(a) {
		t.Errorf("Expected connection to be symmetric")
	}
	if a.IsConnected(c) {
		t.Errorf("Expected no direct connection between a and c")
	}
	if b.ConnectionCount() != 2 {
		t.Errorf("Expected b to have 2 connections, got %d", b.ConnectionCount())
	}
}

func TestGetLine(t *testing.T) {
	tests := []struct {
		name     string
		from, to Coord
	}{
		{"Same point", Coord{X: 2, Y: 2}, Coord{X: 2, Y: 2}},
		{"Horizontal", Coord{X: 0, Y: 0}, Coord{X: 5, Y: 0}},
		{"Vertical up", Coord{X: 3, Y: 7}, Coord{X: 3, Y: 1}},
		{"Shallow", Coord{X: 0, Y: 0}, Coord{X: 7, Y: 2}},
		{"Steep backwards", Coord{X: 6, Y: 9}, Coord{X: 1, Y: 0}},
		{"Diagonal", Coord{X: 0, Y: 0}, Coord{X: 4, Y: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := GetLine(tt.from, tt.to)

			expectedLen := abs(tt.to.X-tt.from.X) + abs(tt.to.Y-tt.from.Y) + 1
			if len(line) != expectedLen {
				t.Fatalf("Expected %d cells, got %d", expectedLen, len(line))
			}
			if line[0] != tt.from || line[len(line)-1] != tt.to {
				t.Errorf("Expected line from %v to %v, got %v to %v", tt.from, tt.to, line[0], line[len(line)-1])
			}
			for i := 1; i < len(line); i++ {
				if abs(line[i].X-line[i-1].X)+abs(line[i].Y-line[i-1].Y) != 1 {
					t.Errorf("Expected cells %v and %v to share a side", line[i-1], line[i])
				}
			}
		})
	}
}

func TestCarveCircle(t *testing.T) {
	tests := []struct {
		radius   int
		expected int
	}{
		{0, 1},
		{1, 5},
		{2, 13},
	}

	for _, tt := range tests {
		mapComp := components.NewMapComponent(9, 9)
		carveCircle(mapComp, Coord{X: 4, Y: 4}, tt.radius)
		if got := mapComp.CountTiles(components.TileFloor); got != tt.expected {
			t.Errorf("Radius %d: expected %d floor tiles, got %d", tt.radius, tt.expected, got)
		}
	}

	// Cells off the map are skipped
	mapComp := components.NewMapComponent(3, 3)
	carveCircle(mapComp, Coord{X: 0, Y: 0}, 1)
	if got := mapComp.CountTiles(components.TileFloor); got != 3 {
		t.Errorf("Expected 3 floor tiles at the corner, got %d", got)
	}
}

func TestPadBorder(t *testing.T) {
	mapComp := components.NewMapComponentFromRows(
		"...",
		".#.",
	)

	padded := PadBorder(mapComp, 2)
	if padded.Width != 7 || padded.Height != 6 {
		t.Fatalf("Expected 7x6 map, got %dx%d", padded.Width, padded.Height)
	}
	for y := 0; y < padded.Height; y++ {
		for x := 0; x < padded.Width; x++ {
			inside := x >= 2 && x < 5 && y >= 2 && y < 4
			expected := components.TileWall
			if inside {
				expected = mapComp.Tiles[y-2][x-2]
			}
			if padded.Tiles[y][x] != expected {
				t.Errorf("Cell (%d,%d): expected %d, got %d", x, y, expected, padded.Tiles[y][x])
			}
		}
	}

	copied := PadBorder(mapComp, 0)
	if !copied.Equal(mapComp) {
		t.Errorf("Expected zero border to copy the map")
	}
	copied.Tiles[0][0] = components.TileWall
	if mapComp.Tiles[0][0] != components.TileFloor {
		t.Errorf("Expected the copy not to share tiles with the input")
	}
}
