package hal

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

type hostPointer struct {
	ch chan PointerEvent

	lastX, lastY int
	seen         bool
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 64)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) emit(ev PointerEvent) {
	select {
	case p.ch <- ev:
	default:
	}
}

// moveTo emits a PointerMove only when the position changed.
func (p *hostPointer) moveTo(x, y int) {
	if p.seen && x == p.lastX && y == p.lastY {
		return
	}
	p.seen = true
	p.lastX, p.lastY = x, y
	p.emit(PointerEvent{Kind: PointerMove, X: x, Y: y})
}
