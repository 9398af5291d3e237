package quarkgl

// NewBoxMesh returns an axis-aligned box centered on the origin with the given
// full extents. Faces wind counter-clockwise when seen from outside.
func NewBoxMesh(sx, sy, sz Scalar) Mesh {
	hx, hy, hz := sx/2, sy/2, sz/2
	corners := [8]Vec3{
		V3(-hx, -hy, -hz), V3(hx, -hy, -hz), V3(hx, hy, -hz), V3(-hx, hy, -hz),
		V3(-hx, -hy, hz), V3(hx, -hy, hz), V3(hx, hy, hz), V3(-hx, hy, hz),
	}
	faces := [6][4]int{
		{4, 5, 6, 7}, // +z
		{1, 0, 3, 2}, // -z
		{5, 1, 2, 6}, // +x
		{0, 4, 7, 3}, // -x
		{7, 6, 2, 3}, // +y
		{0, 1, 5, 4}, // -y
	}

	// Four vertices per face keep flat normals exact per triangle.
	m := Mesh{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint16, 0, 36),
	}
	for _, f := range faces {
		base := uint16(len(m.Vertices))
		for _, c := range f {
			m.Vertices = append(m.Vertices, Vertex{Pos: corners[c]})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}
