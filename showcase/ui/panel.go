// Package ui implements the product details panel and the manager that keeps
// at most one of them on screen.
package ui

import (
	"log/slog"
	"unicode/utf8"

	"vitrine/showcase/catalog"
	"vitrine/showcase/sched"
)

// Field identifies an editable panel field.
type Field uint8

const (
	FieldName Field = iota
	FieldDescription
	FieldPrice

	fieldCount
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldDescription:
		return "description"
	case FieldPrice:
		return "price"
	default:
		return "unknown"
	}
}

// Panel shows one product and lets the user edit it.
//
// The displayed texts are the panel's notion of the current product; edits
// are merged against them on save. Panels are driven from the frame loop only.
type Panel struct {
	sched    *sched.Scheduler
	log      *slog.Logger
	savedFor uint64

	shown [fieldCount]string
	edit  [fieldCount]string

	editing bool
	focus   Field
	visible bool

	invalidPrice bool
	saved        bool
	savedTimer   *sched.Timer

	onSave func(catalog.Product)
}

func newPanel(s *sched.Scheduler, log *slog.Logger, savedFor uint64) *Panel {
	return &Panel{sched: s, log: log, savedFor: savedFor}
}

// Initialize binds the panel to a product and the callback that receives
// saved edits.
func (p *Panel) Initialize(product catalog.Product, onSave func(catalog.Product)) {
	p.onSave = onSave
	p.UpdateText(product)
}

// UpdateText replaces the displayed product.
func (p *Panel) UpdateText(product catalog.Product) {
	p.shown[FieldName] = product.Name()
	p.shown[FieldDescription] = product.Description()
	p.shown[FieldPrice] = product.PriceText()
}

// Displayed returns the text currently shown for f.
func (p *Panel) Displayed(f Field) string {
	if f >= fieldCount {
		return ""
	}
	return p.shown[f]
}

// Input returns the edit buffer of f.
func (p *Panel) Input(f Field) string {
	if f >= fieldCount {
		return ""
	}
	return p.edit[f]
}

// SetInput replaces the edit buffer of f.
func (p *Panel) SetInput(f Field, s string) {
	if f >= fieldCount {
		return
	}
	p.edit[f] = s
}

// Edit clears the edit buffers and enters edit mode with the name focused.
func (p *Panel) Edit() {
	for i := range p.edit {
		p.edit[i] = ""
	}
	p.editing = true
	p.focus = FieldName
	p.invalidPrice = false
}

// Cancel leaves edit mode without saving. The edit buffers keep their
// contents until the next Edit.
func (p *Panel) Cancel() {
	p.editing = false
	p.invalidPrice = false
}

// Save merges the edit buffers over the displayed values and hands the result
// to the save callback.
//
// A non-empty buffer wins over the displayed text. It reports false, and shows
// the invalid price notice, when the merged price does not parse.
func (p *Panel) Save() bool {
	if !p.editing {
		return false
	}

	var merged [fieldCount]string
	edited := false
	for i := range merged {
		if p.edit[i] != "" {
			merged[i] = p.edit[i]
			edited = true
			continue
		}
		merged[i] = p.shown[i]
	}

	price, err := catalog.ParsePrice(merged[FieldPrice])
	if err != nil {
		p.invalidPrice = true
		p.log.Warn("invalid_price", "input", merged[FieldPrice], "err", err)
		return false
	}
	p.invalidPrice = false
	p.editing = false

	product := catalog.NewProduct(merged[FieldName], merged[FieldDescription], price)
	if p.onSave != nil {
		p.onSave(product)
	}
	if edited {
		p.showSaved()
	}
	return true
}

func (p *Panel) showSaved() {
	p.saved = true
	p.savedTimer.Cancel()
	if p.sched == nil {
		return
	}
	p.savedTimer = p.sched.After(p.savedFor, func() {
		p.saved = false
		p.savedTimer = nil
	})
}

// Show makes the panel visible.
func (p *Panel) Show() { p.visible = true }

// Hide makes the panel invisible, clears both notices and drops a pending
// saved-message timer.
func (p *Panel) Hide() {
	p.visible = false
	p.invalidPrice = false
	p.saved = false
	p.savedTimer.Cancel()
	p.savedTimer = nil
}

func (p *Panel) Visible() bool             { return p.visible }
func (p *Panel) Editing() bool             { return p.editing }
func (p *Panel) Focus() Field              { return p.focus }
func (p *Panel) InvalidPriceVisible() bool { return p.invalidPrice }
func (p *Panel) SavedVisible() bool        { return p.saved }

// SetFocus moves keyboard input to f.
func (p *Panel) SetFocus(f Field) {
	if f < fieldCount {
		p.focus = f
	}
}

// FocusNext cycles the focus through the fields.
func (p *Panel) FocusNext() {
	p.focus = (p.focus + 1) % fieldCount
}

// TypeRune appends r to the focused edit buffer.
func (p *Panel) TypeRune(r rune) {
	if !p.editing {
		return
	}
	p.edit[p.focus] += string(r)
}

// Backspace removes the last rune of the focused edit buffer.
func (p *Panel) Backspace() {
	if !p.editing {
		return
	}
	s := p.edit[p.focus]
	if s == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s)
	p.edit[p.focus] = s[:len(s)-size]
}
