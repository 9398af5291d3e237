package quarkgl

// Material is a minimal surface description.
type Material struct {
	BaseColor Color
}

// LightMode defines minimal lighting options.
type LightMode uint8

const (
	LightOff LightMode = iota
	LightAmbientDirectional
)

// Light is a minimal light setup.
type Light struct {
	Mode      LightMode
	Ambient   Scalar // 0..1
	Dir       Vec3   // direction *towards* the scene
	DirAmount Scalar // 0..1
}

// Camera is a perspective camera.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3

	FOVYRad Scalar
	Near    Scalar
	Far     Scalar
}

// View returns the camera view matrix.
func (c Camera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return Mat4LookAt(c.Position, c.Target, up)
}

// Projection returns the projection matrix for a target aspect.
func (c Camera) Projection(aspect Scalar) Mat4 {
	fov := c.FOVYRad
	if fov == 0 {
		fov = 1
	}
	return Mat4Perspective(fov, aspect, c.Near, c.Far)
}

// Vertex is a mesh vertex.
type Vertex struct {
	Pos Vec3
}

// Mesh is a triangle mesh with an object transform.
type Mesh struct {
	Enabled bool

	Vertices []Vertex
	Indices  []uint16 // triangle list

	Transform Mat4
	Material  Material
}

// Scene is a collection of meshes plus the camera and light used to draw them.
//
// Mesh ids are stable for the lifetime of the scene; removed slots are reused.
type Scene struct {
	Camera Camera
	Light  Light

	meshes []Mesh
	alive  []bool
}

// CreateScene allocates a scene with room for capacity meshes. The scene grows
// past that when needed.
func CreateScene(capacity int) *Scene {
	if capacity < 0 {
		capacity = 0
	}
	return &Scene{
		Camera: Camera{
			Position: V3(0, 0, 3),
			Target:   V3(0, 0, 0),
			Up:       V3(0, 1, 0),
			FOVYRad:  1,
			Near:     0.05,
			Far:      100,
		},
		Light: Light{
			Mode:      LightAmbientDirectional,
			Ambient:   0.25,
			Dir:       Normalize(V3(1, 1, 1)),
			DirAmount: 0.75,
		},
		meshes: make([]Mesh, 0, capacity),
		alive:  make([]bool, 0, capacity),
	}
}

// AddMesh adds a mesh to the scene and returns its id.
func (s *Scene) AddMesh(m Mesh) int {
	if s == nil {
		return -1
	}
	if m.Transform == (Mat4{}) {
		m.Transform = Mat4Identity()
	}
	if m.Material.BaseColor == (Color{}) {
		m.Material.BaseColor = RGB(0xCC, 0xCC, 0xCC)
	}
	m.Enabled = true

	for i := range s.meshes {
		if s.alive[i] {
			continue
		}
		s.meshes[i] = m
		s.alive[i] = true
		return i
	}
	s.meshes = append(s.meshes, m)
	s.alive = append(s.alive, true)
	return len(s.meshes) - 1
}

// RemoveMesh removes a mesh by id.
func (s *Scene) RemoveMesh(id int) {
	if !s.has(id) {
		return
	}
	s.alive[id] = false
	s.meshes[id] = Mesh{}
}

// MeshCount returns the number of live meshes.
func (s *Scene) MeshCount() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, ok := range s.alive {
		if ok {
			n++
		}
	}
	return n
}

// SetMeshEnabled enables/disables a mesh by id.
func (s *Scene) SetMeshEnabled(id int, enabled bool) {
	if !s.has(id) {
		return
	}
	s.meshes[id].Enabled = enabled
}

// UpdateMeshTransform updates a mesh transform by id.
func (s *Scene) UpdateMeshTransform(id int, m Mat4) {
	if !s.has(id) {
		return
	}
	s.meshes[id].Transform = m
}

// SetMeshColor replaces the base color of a mesh.
func (s *Scene) SetMeshColor(id int, c Color) {
	if !s.has(id) {
		return
	}
	s.meshes[id].Material.BaseColor = c
}

// MeshColor returns the base color of a mesh.
func (s *Scene) MeshColor(id int) (Color, bool) {
	if !s.has(id) {
		return Color{}, false
	}
	return s.meshes[id].Material.BaseColor, true
}

// Project maps a world-space point to target pixel coordinates. ok is false
// when the point is behind the camera.
func (s *Scene) Project(p Vec3, w, h int) (x, y int, ok bool) {
	if s == nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	vp := Mat4Mul(s.Camera.Projection(Scalar(w)/Scalar(h)), s.Camera.View())
	c := Mat4MulV4(vp, Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1})
	if c.W <= 0 {
		return 0, 0, false
	}
	ndc, ok := clipToNDC(c)
	if !ok {
		return 0, 0, false
	}
	x, y = ndcToScreen(ndc, w, h)
	return x, y, true
}

func (s *Scene) has(id int) bool {
	return s != nil && id >= 0 && id < len(s.meshes) && s.alive[id]
}

func (s *Scene) eachMesh(fn func(id int, m *Mesh)) {
	for i := range s.meshes {
		if !s.alive[i] {
			continue
		}
		fn(i, &s.meshes[i])
	}
}
