// Package input routes pointer activity to scene objects.
//
// Objects opt in by implementing Hoverable and/or Clickable. A Dispatcher is
// fed once per frame with whatever object sits under the pointer.
package input

// Hoverable receives pointer enter/exit notifications.
type Hoverable interface {
	PointerEnter()
	PointerExit()
}

// Clickable receives primary button presses.
type Clickable interface {
	Click()
}

// Dispatcher tracks the object under the pointer between frames.
type Dispatcher struct {
	hovered any
}

// Update reports the object currently under the pointer (nil for none) and
// whether the primary button went down this frame.
//
// Exit is delivered to the previous target before Enter reaches the new one.
func (d *Dispatcher) Update(target any, pressed bool) {
	if target != d.hovered {
		if h, ok := d.hovered.(Hoverable); ok {
			h.PointerExit()
		}
		d.hovered = target
		if h, ok := target.(Hoverable); ok {
			h.PointerEnter()
		}
	}
	if !pressed || target == nil {
		return
	}
	if c, ok := target.(Clickable); ok {
		c.Click()
	}
}

// Hovered returns the object under the pointer as of the last Update.
func (d *Dispatcher) Hovered() any { return d.hovered }

// Reset exits the hovered object, if any.
func (d *Dispatcher) Reset() {
	if h, ok := d.hovered.(Hoverable); ok {
		h.PointerExit()
	}
	d.hovered = nil
}
