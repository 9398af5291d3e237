package ui

import "image/color"

var (
	colorPanelBG   = color.RGBA{R: 0x18, G: 0x1C, B: 0x24, A: 0xFF}
	colorBorder    = color.RGBA{R: 0x50, G: 0x58, B: 0x68, A: 0xFF}
	colorFG        = color.RGBA{R: 0xE8, G: 0xE8, B: 0xE8, A: 0xFF}
	colorDim       = color.RGBA{R: 0x90, G: 0x98, B: 0xA8, A: 0xFF}
	colorFieldBG   = color.RGBA{R: 0x28, G: 0x2E, B: 0x3A, A: 0xFF}
	colorFocusBG   = color.RGBA{R: 0x00, G: 0x48, B: 0xA0, A: 0xFF}
	colorButtonBG  = color.RGBA{R: 0x34, G: 0x3C, B: 0x4C, A: 0xFF}
	colorError     = color.RGBA{R: 0xFF, G: 0x50, B: 0x50, A: 0xFF}
	colorConfirmed = color.RGBA{R: 0x60, G: 0xE0, B: 0x70, A: 0xFF}
)

var fieldLabels = [fieldCount]string{"Name", "Desc", "Price"}

// Draw renders the open panel, if any.
func (m *Manager) Draw(d *Canvas) {
	p := m.current
	if d == nil || p == nil || !p.Visible() {
		return
	}
	l := m.layout

	d.Fill(l.Panel, colorPanelBG)
	d.Frame(l.Panel, colorBorder)

	title := p.Displayed(FieldName)
	if p.Editing() {
		title = "Editing: " + title
	}
	d.Text(l.Title.X, l.Title.Y, title, colorFG, l.Title.W)

	for i, r := range l.Fields {
		f := Field(i)
		d.Text(r.X-labelW, r.Y, fieldLabels[f], colorDim, labelW-2)
		if !p.Editing() {
			d.Text(r.X, r.Y, p.Displayed(f), colorFG, r.W)
			continue
		}

		bg := colorFieldBG
		s := p.Input(f)
		fg := colorFG
		if s == "" {
			s = p.Displayed(f)
			fg = colorDim
		}
		if p.Focus() == f {
			bg = colorFocusBG
			s = p.Input(f) + "_"
			fg = colorFG
		}
		d.Fill(r, bg)
		d.Text(r.X+2, r.Y, s, fg, r.W-4)
	}

	switch {
	case p.InvalidPriceVisible():
		d.Text(l.Status.X, l.Status.Y, "Invalid price", colorError, l.Status.W)
	case p.SavedVisible():
		d.Text(l.Status.X, l.Status.Y, "Changes saved", colorConfirmed, l.Status.W)
	}

	if p.Editing() {
		drawButton(d, l.Save, "Save")
		drawButton(d, l.Cancel, "Cancel")
	} else {
		drawButton(d, l.Edit, "Edit")
	}
	drawButton(d, l.Exit, "Exit")
}

func drawButton(d *Canvas, r Rect, label string) {
	d.Fill(r, colorButtonBG)
	d.Frame(r, colorBorder)
	x := r.X + (r.W-TextWidth(label))/2
	d.Text(x, r.Y+1, label, colorFG, r.W)
}
