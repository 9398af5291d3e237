package quarkgl

import "math"

// OrbitController orbits a camera around a target point.
//
// It does not depend on any input system; callers translate keys or wheel
// deltas into Rotate and Zoom.
type OrbitController struct {
	Target Vec3
	Yaw    Scalar
	Pitch  Scalar
	Radius Scalar

	MinRadius Scalar
	MaxRadius Scalar
	MaxPitch  Scalar
}

func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	r := c.Radius
	if r == 0 {
		r = 3
	}
	if c.MinRadius != 0 && r < c.MinRadius {
		r = c.MinRadius
	}
	if c.MaxRadius != 0 && r > c.MaxRadius {
		r = c.MaxRadius
	}

	m := Mat4Mul(Mat4RotateY(c.Yaw), Mat4RotateX(c.Pitch))
	p := Mat4MulV4(m, Vec4{X: 0, Y: 0, Z: r, W: 1})

	cam.Position = c.Target.Add(V3(p.X, p.Y, p.Z))
	cam.Target = c.Target
	if cam.Up == (Vec3{}) {
		cam.Up = V3(0, 1, 0)
	}
}

func (c *OrbitController) Rotate(deltaYaw, deltaPitch Scalar) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
	if c.MaxPitch != 0 {
		c.Pitch = max(-c.MaxPitch, min(c.Pitch, c.MaxPitch))
	}
}

func (c *OrbitController) Zoom(delta Scalar) {
	c.Radius += delta
	if c.MinRadius != 0 && c.Radius < c.MinRadius {
		c.Radius = c.MinRadius
	}
	if c.MaxRadius != 0 && c.Radius > c.MaxRadius {
		c.Radius = c.MaxRadius
	}
}

// Fit picks a radius that keeps a row of the given width in view for a
// perspective camera with vertical field of view fovY and the given aspect.
func (c *OrbitController) Fit(width, fovY, aspect Scalar) {
	if aspect <= 0 {
		aspect = 1
	}
	if fovY <= 0 {
		fovY = 1
	}
	halfFovX := Scalar(math.Atan(math.Tan(float64(fovY)/2) * float64(aspect)))
	r := (width / 2) / Scalar(math.Tan(float64(halfFovX)))
	r *= 1.25
	if c.MinRadius != 0 && r < c.MinRadius {
		r = c.MinRadius
	}
	if c.MaxRadius != 0 && r > c.MaxRadius {
		c.MaxRadius = r
	}
	c.Radius = r
}
