package scene

import "vitrine/showcase/quarkgl"

// Layout places n items along X, spacing apart and centered on origin.
func Layout(n int, spacing float32, origin quarkgl.Vec3) []quarkgl.Vec3 {
	if n <= 0 {
		return nil
	}
	out := make([]quarkgl.Vec3, n)
	start := origin.X - float32(n-1)*spacing/2
	for i := range out {
		out[i] = quarkgl.V3(start+float32(i)*spacing, origin.Y, origin.Z)
	}
	return out
}
