package quarkgl

import "image/color"

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xFF} }

// MulScalar scales the RGB channels by s, clamped to 0..1.
func (c Color) MulScalar(s Scalar) Color {
	t := uint32(Clamp01(s) * 255)
	mul := func(ch uint8) uint8 {
		return uint8((uint32(ch) * t) / 255)
	}
	return Color{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}

// RGBA converts to the image/color type used by font renderers.
func (c Color) RGBA() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A} }

// HSV builds an opaque color from hue (0..1, wraps), saturation and value (0..1).
func HSV(h, s, v Scalar) Color {
	h -= Scalar(int(h))
	if h < 0 {
		h++
	}
	s = Clamp01(s)
	v = Clamp01(v)

	h6 := h * 6
	sector := int(h6) % 6
	f := h6 - Scalar(int(h6))
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b Scalar
	switch sector {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return RGB(uint8(r*255+0.5), uint8(g*255+0.5), uint8(b*255+0.5))
}
