package generation

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"ebiten-caves/components"
)

// Room is a floor region that survived the room threshold
type Room struct {
	Tiles                    []Coord
	EdgeTiles                []Coord // Tiles with a wall directly above, below, left or right
	Size                     int
	IsMainRoom               bool
	IsAccessibleFromMainRoom bool

	connected mapset.Set[*Room]
}

// NewRoom builds a room from its tiles and records which of them touch a wall
func NewRoom(tiles []Coord, mapComp *components.MapComponent) *Room {
	r := &Room{
		Tiles:     tiles,
		Size:      len(tiles),
		connected: mapset.New[*Room](),
	}

	for _, tile := range tiles {
		for _, d := range orthogonal {
			nx, ny := tile.X+d.X, tile.Y+d.Y
			if mapComp.InBounds(nx, ny) && mapComp.Tiles[ny][nx] == components.TileWall {
				r.EdgeTiles = append(r.EdgeTiles, tile)
				break
			}
		}
	}

	return r
}

// IsConnected reports whether a passage joins r and other directly
func (r *Room) IsConnected(other *Room) bool {
	return r.connected.Has(other)
}

// ConnectionCount returns the number of rooms joined directly to r
func (r *Room) ConnectionCount() int {
	return r.connected.Size()
}

// SetAccessibleFromMainRoom marks r and everything reachable through its
// connections as accessible
func (r *Room) SetAccessibleFromMainRoom() {
	if r.IsAccessibleFromMainRoom {
		return
	}
	r.IsAccessibleFromMainRoom = true

	stack := []*Room{r}
	for len(stack) > 0 {
		room := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		room.connected.Each(func(other *Room) {
			if !other.IsAccessibleFromMainRoom {
				other.IsAccessibleFromMainRoom = true
				stack = append(stack, other)
			}
		})
	}
}

// ConnectRooms records a passage between a and b in both directions
func ConnectRooms(a, b *Room) {
	if a.IsAccessibleFromMainRoom {
		b.SetAccessibleFromMainRoom()
	} else if b.IsAccessibleFromMainRoom {
		a.SetAccessibleFromMainRoom()
	}
	a.connected.Put(b)
	b.connected.Put(a)
}

// RoomOptions controls region pruning and passage carving
type RoomOptions struct {
	WallThreshold int
	RoomThreshold int
	PassageRadius int
	ConnectAll    bool
}

// ProcessMap removes small wall and floor regions, turns the remaining floor
// regions into rooms and carves passages between them. The returned rooms are
// sorted largest first and the first one is the main room. Room tiles describe
// the rooms before carving; passages are not part of any room.
func ProcessMap(mapComp *components.MapComponent, opts RoomOptions) []*Room {
	pruneRegions(mapComp, components.TileWall, opts.WallThreshold, components.TileFloor)

	var rooms []*Room
	for _, region := range GetRegions(mapComp, components.TileFloor) {
		if len(region) < opts.RoomThreshold {
			for _, tile := range region {
				mapComp.Tiles[tile.Y][tile.X] = components.TileWall
			}
			continue
		}
		rooms = append(rooms, NewRoom(region, mapComp))
	}

	if len(rooms) == 0 {
		return rooms
	}

	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].Size > rooms[j].Size
	})
	rooms[0].IsMainRoom = true
	rooms[0].IsAccessibleFromMainRoom = true

	ConnectClosestRooms(mapComp, rooms, opts.PassageRadius)
	if opts.ConnectAll {
		ConnectToMainRoom(mapComp, rooms, opts.PassageRadius)
	}

	// Carving can split wall regions into slivers
	pruneRegions(mapComp, components.TileWall, opts.WallThreshold, components.TileFloor)

	return rooms
}

// pruneRegions turns every region of tileType smaller than threshold into replacement
func pruneRegions(mapComp *components.MapComponent, tileType, threshold, replacement int) {
	for _, region := range GetRegions(mapComp, tileType) {
		if len(region) >= threshold {
			continue
		}
		for _, tile := range region {
			mapComp.Tiles[tile.Y][tile.X] = replacement
		}
	}
}

// ConnectClosestRooms joins every room to its nearest room it is not already
// connected to. Distance is measured between edge tiles; ties keep the first pair found.
func ConnectClosestRooms(mapComp *components.MapComponent, rooms []*Room, radius int) {
	for _, roomA := range rooms {
		best, found := closestPair(roomA, rooms)
		if found {
			createPassage(mapComp, best, radius)
		}
	}
}

// ConnectToMainRoom keeps joining the closest pair of inaccessible and
// accessible rooms until every room can reach the main room
func ConnectToMainRoom(mapComp *components.MapComponent, rooms []*Room, radius int) {
	for {
		var best roomPair
		found := false

		for _, roomA := range rooms {
			if roomA.IsAccessibleFromMainRoom {
				continue
			}
			for _, roomB := range rooms {
				if !roomB.IsAccessibleFromMainRoom {
					continue
				}
				if pair, ok := closestTiles(roomA, roomB); ok && (!found || pair.distance < best.distance) {
					best = pair
					found = true
				}
			}
		}

		if !found {
			return
		}
		createPassage(mapComp, best, radius)
	}
}

// roomPair is a candidate passage between two rooms
type roomPair struct {
	roomA, roomB *Room
	tileA, tileB Coord
	distance     int // Squared
}

// closestPair finds the nearest room to roomA that it is not yet connected to
func closestPair(roomA *Room, rooms []*Room) (roomPair, bool) {
	var best roomPair
	found := false

	for _, roomB := range rooms {
		if roomA == roomB || roomA.IsConnected(roomB) {
			continue
		}
		if pair, ok := closestTiles(roomA, roomB); ok && (!found || pair.distance < best.distance) {
			best = pair
			found = true
		}
	}

	return best, found
}

// closestTiles finds the nearest pair of edge tiles between two rooms
func closestTiles(roomA, roomB *Room) (roomPair, bool) {
	var best roomPair
	found := false

	for _, tileA := range roomA.EdgeTiles {
		for _, tileB := range roomB.EdgeTiles {
			dx := tileA.X - tileB.X
			dy := tileA.Y - tileB.Y
			d := dx*dx + dy*dy
			if !found || d < best.distance {
				best = roomPair{roomA: roomA, roomB: roomB, tileA: tileA, tileB: tileB, distance: d}
				found = true
			}
		}
	}

	return best, found
}
