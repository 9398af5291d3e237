package ui

import (
	"image/color"

	"vitrine/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Font is the face used for all showcase text.
var Font = &proggy.TinySZ8pt7b

var _ drivers.Displayer = (*Canvas)(nil)

// Canvas draws rectangles and text into an RGB565 framebuffer.
//
// It satisfies drivers.Displayer so tinyfont can render into it directly.
type Canvas struct {
	fb hal.Framebuffer
}

func NewCanvas(fb hal.Framebuffer) *Canvas {
	return &Canvas{fb: fb}
}

func (d *Canvas) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *Canvas) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

// Display is a no-op; the frame loop presents the framebuffer once per frame.
func (d *Canvas) Display() error { return nil }

func (d *Canvas) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return nil
	}

	w := d.fb.Width()
	h := d.fb.Height()
	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

// Fill paints r with c.
func (d *Canvas) Fill(r Rect, c color.RGBA) {
	_ = d.FillRectangle(int16(r.X), int16(r.Y), int16(r.W), int16(r.H), c)
}

// Frame draws a one pixel border around r.
func (d *Canvas) Frame(r Rect, c color.RGBA) {
	d.Fill(Rect{X: r.X, Y: r.Y, W: r.W, H: 1}, c)
	d.Fill(Rect{X: r.X, Y: r.Y + r.H - 1, W: r.W, H: 1}, c)
	d.Fill(Rect{X: r.X, Y: r.Y, W: 1, H: r.H}, c)
	d.Fill(Rect{X: r.X + r.W - 1, Y: r.Y, W: 1, H: r.H}, c)
}

// Text writes s with its top-left corner at (x, y), clipped to maxW pixels
// when maxW > 0.
func (d *Canvas) Text(x, y int, s string, c color.RGBA, maxW int) {
	if maxW > 0 {
		s = fitText(s, maxW)
	}
	tinyfont.WriteLine(d, Font, int16(x), int16(y+baseline), s, c)
}

// TextWidth returns the rendered width of s in pixels.
func TextWidth(s string) int {
	_, w := tinyfont.LineWidth(Font, s)
	return int(w)
}

func advance(r rune) int {
	return int(Font.GetGlyph(r).Info().XAdvance)
}

// fitText cuts s so it renders within maxW, marking the cut with "~".
func fitText(s string, maxW int) string {
	tilde := advance('~')
	w, cut := 0, -1
	for i, r := range s {
		if w+tilde <= maxW {
			cut = i
		}
		w += advance(r)
		if w > maxW {
			if cut < 0 {
				return ""
			}
			return s[:cut] + "~"
		}
	}
	return s
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
