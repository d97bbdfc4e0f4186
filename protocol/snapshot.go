package protocol

import (
	"encoding/json"
	"strings"

	"ebiten-caves/components"
	"ebiten-caves/generation"
)

// Envelope wraps every message on the stream. Payload is decoded according to Type.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Message types
const (
	TypeSnapshot   = "CaveSnapshot"
	TypeError      = "Error"
	TypeRegenerate = "Regenerate"
	TypeSet        = "Set"
)

// Vertex is a mesh vertex on the wire
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Mesh is a vertex buffer plus an index buffer of triangle triples
type Mesh struct {
	Vertices []Vertex `json:"vertices"`
	Indices  []int    `json:"indices"`
}

// CaveSnapshot is everything a client needs to draw one cave
type CaveSnapshot struct {
	Seed          string   `json:"seed"`
	SeedAlgorithm string   `json:"seedAlgorithm"`
	Width         int      `json:"width"`
	Height        int      `json:"height"`
	BorderSize    int      `json:"borderSize"`
	Rows          []string `json:"rows"` // '#' wall, '.' floor, row y=0 first
	RoomCount     int      `json:"roomCount"`
	RoomSizes     []int    `json:"roomSizes"`
	Floor         Mesh     `json:"floor"`
	Walls         Mesh     `json:"walls"`
	Outlines      [][]int  `json:"outlines"`
}

// RequestRegenerate asks for a new cave. An empty Seed means a random one.
type RequestRegenerate struct {
	Seed string `json:"seed,omitempty"`
}

// RequestSet changes one configuration field before regenerating
type RequestSet struct {
	Field string      `json:"field"`
	Value interface{} `json:"value"`
}

// ErrorMessage reports a rejected request back to the client
type ErrorMessage struct {
	Message string `json:"message"`
}

// NewCaveSnapshot flattens a generated cave for the wire
func NewCaveSnapshot(cave *generation.Cave) CaveSnapshot {
	snap := CaveSnapshot{
		Seed:          cave.Seed,
		SeedAlgorithm: cave.SeedAlgorithm,
		BorderSize:    cave.BorderSize,
		RoomCount:     len(cave.Rooms),
		RoomSizes:     make([]int, len(cave.Rooms)),
		Floor:         meshToWire(cave.Floor),
		Walls:         meshToWire(cave.Walls),
		Outlines:      cave.Outlines,
	}
	if cave.Map != nil {
		snap.Width = cave.Map.Width
		snap.Height = cave.Map.Height
		snap.Rows = gridRows(cave.Map)
	}
	for i, room := range cave.Rooms {
		snap.RoomSizes[i] = room.Size
	}
	if snap.Outlines == nil {
		snap.Outlines = [][]int{}
	}
	return snap
}

func gridRows(m *components.MapComponent) []string {
	if m.Height == 0 {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(m.String(), "\n"), "\n")
}

func meshToWire(m *components.MeshComponent) Mesh {
	out := Mesh{Vertices: []Vertex{}, Indices: []int{}}
	if m == nil {
		return out
	}
	out.Vertices = make([]Vertex, len(m.Vertices))
	for i, v := range m.Vertices {
		out.Vertices[i] = Vertex{X: v.X, Y: v.Y, Z: v.Z}
	}
	out.Indices = append(out.Indices, m.Indices...)
	return out
}

// Encode wraps payload in an envelope of the given type
func Encode(msgType string, payload interface{}) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: msgType, Payload: raw})
}
