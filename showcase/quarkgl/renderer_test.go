package quarkgl

import "testing"

func newTestTarget(w, h int) *RGB565Target {
	return &RGB565Target{Buf: make([]byte, w*h*2), Stride: w * 2, W: w, H: h}
}

func newTestScene() *Scene {
	s := CreateScene(2)
	s.Camera.Position = V3(0, 0, 6)
	s.Camera.Target = V3(0, 0, 0)
	return s
}

func TestRenderPickCenter(t *testing.T) {
	const w, h = 64, 48
	s := newTestScene()
	box := NewBoxMesh(1, 1, 1)
	box.Material.BaseColor = RGB(0xFF, 0xFF, 0xFF)
	id := s.AddMesh(box)

	r := NewRenderer(w, h, true)
	tgt := newTestTarget(w, h)
	r.Render(tgt, s)

	cx, cy, ok := s.Project(V3(0, 0, 0), w, h)
	if !ok {
		t.Fatal("origin should project")
	}
	if got := r.PickAt(cx, cy); got != id {
		t.Fatalf("PickAt center = %d, want %d", got, id)
	}
	if got := r.PickAt(0, 0); got != -1 {
		t.Fatalf("PickAt corner = %d, want -1", got)
	}
	if got := r.PickAt(-1, 5); got != -1 {
		t.Fatalf("PickAt out of range = %d, want -1", got)
	}
}

func TestRenderPickNearestWins(t *testing.T) {
	const w, h = 64, 48
	s := newTestScene()

	far := NewBoxMesh(2, 2, 2)
	far.Transform = Mat4Translate(V3(0, 0, -2))
	farID := s.AddMesh(far)

	near := NewBoxMesh(1, 1, 1)
	near.Transform = Mat4Translate(V3(0, 0, 1))
	nearID := s.AddMesh(near)

	r := NewRenderer(w, h, true)
	r.Render(newTestTarget(w, h), s)

	cx, cy, _ := s.Project(V3(0, 0, 1), w, h)
	if got := r.PickAt(cx, cy); got != nearID {
		t.Fatalf("expected near box %d, got %d (far %d)", nearID, got, farID)
	}
}

func TestRenderDisabledMeshNotPicked(t *testing.T) {
	const w, h = 32, 32
	s := newTestScene()
	id := s.AddMesh(NewBoxMesh(1, 1, 1))
	s.SetMeshEnabled(id, false)

	r := NewRenderer(w, h, true)
	r.Render(newTestTarget(w, h), s)
	cx, cy, _ := s.Project(V3(0, 0, 0), w, h)
	if got := r.PickAt(cx, cy); got != -1 {
		t.Fatalf("disabled mesh picked: %d", got)
	}
}

func TestSceneReusesSlotsAndGrows(t *testing.T) {
	s := CreateScene(1)
	a := s.AddMesh(NewBoxMesh(1, 1, 1))
	b := s.AddMesh(NewBoxMesh(1, 1, 1))
	if a != 0 || b != 1 {
		t.Fatalf("unexpected ids %d %d", a, b)
	}
	s.RemoveMesh(a)
	if s.MeshCount() != 1 {
		t.Fatalf("expected 1 mesh, got %d", s.MeshCount())
	}
	if c := s.AddMesh(NewBoxMesh(1, 1, 1)); c != a {
		t.Fatalf("expected slot reuse, got %d", c)
	}

	s.SetMeshColor(b, RGB(1, 2, 3))
	if c, ok := s.MeshColor(b); !ok || c != RGB(1, 2, 3) {
		t.Fatalf("MeshColor = %+v %v", c, ok)
	}
	if _, ok := s.MeshColor(99); ok {
		t.Fatal("expected unknown id")
	}
}

func TestProjectBehindCamera(t *testing.T) {
	s := newTestScene()
	if _, _, ok := s.Project(V3(0, 0, 10), 32, 32); ok {
		t.Fatal("point behind camera should not project")
	}
	x, y, ok := s.Project(V3(0, 0, 0), 33, 33)
	if !ok || x != 16 || y != 16 {
		t.Fatalf("origin projected to %d,%d ok=%v", x, y, ok)
	}
}
