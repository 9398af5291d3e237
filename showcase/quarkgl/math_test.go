package quarkgl

import (
	"math"
	"testing"
)

func TestMat4MulIdentity(t *testing.T) {
	a := Mat4Identity()
	b := Mat4Translate(V3(1, 2, 3))
	if got := Mat4Mul(a, b); got != b {
		t.Fatalf("identity*a mismatch")
	}
	if got := Mat4Mul(b, a); got != b {
		t.Fatalf("a*identity mismatch")
	}
}

func TestLookAtNotIdentity(t *testing.T) {
	m := Mat4LookAt(V3(0, 0, 3), V3(0, 0, 0), V3(0, 1, 0))
	if m == Mat4Identity() {
		t.Fatalf("lookAt unexpectedly identity")
	}
}

func TestHSVPrimaries(t *testing.T) {
	cases := []struct {
		h    Scalar
		want Color
	}{
		{0, RGB(0xFF, 0, 0)},
		{1.0 / 3, RGB(0, 0xFF, 0)},
		{2.0 / 3, RGB(0, 0, 0xFF)},
		{1, RGB(0xFF, 0, 0)},
	}
	for _, c := range cases {
		if got := HSV(c.h, 1, 1); got != c.want {
			t.Fatalf("HSV(%v) = %+v, want %+v", c.h, got, c.want)
		}
	}
	if got := HSV(0.5, 0, 0.5); got.R != got.G || got.G != got.B {
		t.Fatalf("zero saturation should be gray, got %+v", got)
	}
}

func TestOrbitRotateClampsPitch(t *testing.T) {
	c := OrbitController{MaxPitch: 1}
	c.Rotate(0.5, 3)
	if c.Pitch != 1 || c.Yaw != 0.5 {
		t.Fatalf("unexpected yaw/pitch %v/%v", c.Yaw, c.Pitch)
	}
	c.Rotate(0, -5)
	if c.Pitch != -1 {
		t.Fatalf("expected pitch -1, got %v", c.Pitch)
	}
}

func TestOrbitFitGrowsWithWidth(t *testing.T) {
	var a, b OrbitController
	a.Fit(2, 1, 16.0/9)
	b.Fit(20, 1, 16.0/9)
	if !(b.Radius > a.Radius) {
		t.Fatalf("expected wider row to need a larger radius: %v vs %v", a.Radius, b.Radius)
	}
}

func TestRotateYTurnsZTowardX(t *testing.T) {
	p := Mat4MulV4(Mat4RotateY(math.Pi/2), Vec4{Z: 1, W: 1})
	if !near(p.X, 1) || !near(p.Z, 0) {
		t.Fatalf("unexpected rotated point %+v", p)
	}
	p = Mat4MulV4(Mat4RotateX(math.Pi/2), Vec4{Y: 1, W: 1})
	if !near(p.Z, 1) || !near(p.Y, 0) {
		t.Fatalf("unexpected rotated point %+v", p)
	}
}

func TestCameraProjectsTargetToCenter(t *testing.T) {
	s := CreateScene(0)
	x, y, ok := s.Project(s.Camera.Target, 320, 240)
	if !ok {
		t.Fatalf("target not visible")
	}
	if x < 159 || x > 160 || y < 119 || y > 120 {
		t.Fatalf("target projected to %d,%d", x, y)
	}
	s.Camera.Position = V3(0, 0, -3)
	if _, _, ok := s.Project(V3(0, 0, -6), 320, 240); ok {
		t.Fatalf("point behind the camera should not project")
	}
}

func near(a, b Scalar) bool {
	d := a - b
	return d < 1e-5 && d > -1e-5
}
