package ui

// Rect is a screen rectangle in framebuffer pixels.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

const (
	lineHeight = 12
	baseline   = 9
	padding    = 6
	margin     = 8
	buttonW    = 56
	panelMaxW  = 260
	labelW     = 40
)

// Layout is the panel geometry for one framebuffer size.
type Layout struct {
	Panel  Rect
	Title  Rect
	Fields [fieldCount]Rect
	Status Rect

	// Edit is shown outside edit mode and Save/Cancel inside it. Exit is
	// always shown.
	Edit, Exit   Rect
	Save, Cancel Rect
}

// NewLayout anchors the panel to the right edge of a w x h framebuffer.
func NewLayout(w, h int) Layout {
	pw := min(panelMaxW, w-2*margin)
	ph := padding*2 + lineHeight*6 + 4
	px := w - margin - pw
	py := min(margin+lineHeight+4, max(h-ph-margin, 0))

	var l Layout
	l.Panel = Rect{X: px, Y: py, W: pw, H: ph}

	inner := px + padding
	innerW := pw - 2*padding
	y := py + padding
	l.Title = Rect{X: inner, Y: y, W: innerW, H: lineHeight}
	y += lineHeight + 2
	for i := range l.Fields {
		l.Fields[i] = Rect{X: inner + labelW, Y: y, W: innerW - labelW, H: lineHeight}
		y += lineHeight
	}
	l.Status = Rect{X: inner, Y: y, W: innerW, H: lineHeight}
	y += lineHeight + 2

	slot := func(i int) Rect {
		return Rect{X: inner + i*(buttonW+padding), Y: y, W: buttonW, H: lineHeight + 2}
	}
	l.Edit, l.Save = slot(0), slot(0)
	l.Cancel = slot(1)
	l.Exit = slot(2)
	return l
}
