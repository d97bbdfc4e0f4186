package components

// Vec3 is a world-space position. X and Z span the map plane, Y is height.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Up is the unit height axis
var Up = Vec3{0, 1, 0}

// Scale returns v * s
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// MeshComponent is a triangle mesh: a vertex buffer and an index buffer
// holding one triple per triangle.
type MeshComponent struct {
	Vertices []Vec3
	Indices  []int
}

// VertexCount returns the number of vertices
func (m *MeshComponent) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles
func (m *MeshComponent) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry
func (m *MeshComponent) IsEmpty() bool {
	return len(m.Indices) == 0
}

// Bounds returns the min and max corners of the vertex buffer
func (m *MeshComponent) Bounds() (min, max Vec3) {
	if len(m.Vertices) == 0 {
		return Vec3{}, Vec3{}
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.Z < min.Z {
			min.Z = v.Z
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
		if v.Z > max.Z {
			max.Z = v.Z
		}
	}
	return min, max
}
