package quarkgl

import "math"

// Scalar is the numeric type used by all quarkgl math.
type Scalar = float32

// Vec3 is a point or direction in world space.
type Vec3 struct {
	X, Y, Z Scalar
}

// Vec4 is a homogeneous clip-space coordinate.
type Vec4 struct {
	X, Y, Z, W Scalar
}

// Mat4 is a column-major 4x4 matrix: element (row, col) lives at m[col*4+row].
type Mat4 [16]Scalar

func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3   { return V3(v.X+o.X, v.Y+o.Y, v.Z+o.Z) }
func (v Vec3) Sub(o Vec3) Vec3   { return V3(v.X-o.X, v.Y-o.Y, v.Z-o.Z) }
func (v Vec3) Mul(s Scalar) Vec3 { return V3(v.X*s, v.Y*s, v.Z*s) }

func Dot(a, b Vec3) Scalar { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Cross(a, b Vec3) Vec3 {
	return V3(a.Y*b.Z-a.Z*b.Y, a.Z*b.X-a.X*b.Z, a.X*b.Y-a.Y*b.X)
}

// Normalize returns v scaled to unit length; the zero vector stays zero.
func Normalize(v Vec3) Vec3 {
	n := Dot(v, v)
	if n == 0 {
		return Vec3{}
	}
	return v.Mul(Scalar(1 / math.Sqrt(float64(n))))
}

func Clamp01(v Scalar) Scalar {
	return min(max(v, 0), 1)
}

func Mat4Identity() Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m[i*5] = 1
	}
	return m
}

// Mat4Mul returns a*b, so b is applied to a vector first.
func Mat4Mul(a, b Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		col := b[c*4 : c*4+4]
		for r := 0; r < 4; r++ {
			var sum Scalar
			for k, bk := range col {
				sum += a[k*4+r] * bk
			}
			out[c*4+r] = sum
		}
	}
	return out
}

func Mat4MulV4(m Mat4, v Vec4) Vec4 {
	in := [4]Scalar{v.X, v.Y, v.Z, v.W}
	var out [4]Scalar
	for k, vk := range in {
		for r := 0; r < 4; r++ {
			out[r] += m[k*4+r] * vk
		}
	}
	return Vec4{X: out[0], Y: out[1], Z: out[2], W: out[3]}
}

func Mat4Translate(v Vec3) Mat4 {
	m := Mat4Identity()
	m[12], m[13], m[14] = v.X, v.Y, v.Z
	return m
}

func sincos(rad Scalar) (s, c Scalar) {
	sf, cf := math.Sincos(float64(rad))
	return Scalar(sf), Scalar(cf)
}

// Mat4RotateX rotates about the X axis; positive angles tilt +Y toward +Z.
func Mat4RotateX(rad Scalar) Mat4 {
	s, c := sincos(rad)
	m := Mat4Identity()
	m[5], m[6] = c, s
	m[9], m[10] = -s, c
	return m
}

// Mat4RotateY rotates about the Y axis; positive angles turn +Z toward +X.
func Mat4RotateY(rad Scalar) Mat4 {
	s, c := sincos(rad)
	m := Mat4Identity()
	m[0], m[2] = c, -s
	m[8], m[10] = s, c
	return m
}

// Mat4LookAt builds a right-handed view matrix looking from eye at target.
func Mat4LookAt(eye, target, up Vec3) Mat4 {
	fwd := Normalize(target.Sub(eye))
	side := Normalize(Cross(fwd, up))
	camUp := Cross(side, fwd)

	m := Mat4Identity()
	for i, axis := range [3]Vec3{side, camUp, fwd.Mul(-1)} {
		m[0*4+i] = axis.X
		m[1*4+i] = axis.Y
		m[2*4+i] = axis.Z
		m[12+i] = -Dot(axis, eye)
	}
	return m
}

// Mat4Perspective maps the view frustum to OpenGL clip space.
func Mat4Perspective(fovY, aspect, near, far Scalar) Mat4 {
	if aspect == 0 {
		aspect = 1
	}
	f := Scalar(1 / math.Tan(float64(fovY)/2))
	depth := 1 / (near - far)

	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) * depth
	m[11] = -1
	m[14] = 2 * far * near * depth
	return m
}
