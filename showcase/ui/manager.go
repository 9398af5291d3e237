package ui

import (
	"io"
	"log/slog"
	"time"
	"unicode"

	"vitrine/hal"
	"vitrine/showcase/sched"
)

// Manager owns the single reference to the open panel.
type Manager struct {
	sched    *sched.Scheduler
	log      *slog.Logger
	savedFor uint64
	layout   Layout

	panels  []*Panel
	current *Panel
}

// NewManager creates a manager for a w x h framebuffer. savedFor is how long
// the changes-saved notice stays up.
func NewManager(s *sched.Scheduler, log *slog.Logger, w, h int, savedFor time.Duration) *Manager {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if savedFor <= 0 {
		savedFor = time.Second
	}
	return &Manager{
		sched:    s,
		log:      log,
		savedFor: uint64(savedFor / time.Millisecond),
		layout:   NewLayout(w, h),
	}
}

// NewPanel creates a hidden panel managed by m.
func (m *Manager) NewPanel() *Panel {
	p := newPanel(m.sched, m.log, m.savedFor)
	m.panels = append(m.panels, p)
	return p
}

// Panels returns the number of panels created through m.
func (m *Manager) Panels() int { return len(m.panels) }

func (m *Manager) Layout() Layout { return m.layout }

// Open hides the currently open panel, if it is a different one, and shows p.
func (m *Manager) Open(p *Panel) {
	if p == nil {
		return
	}
	if m.current != nil && m.current != p {
		m.current.Hide()
	}
	m.current = p
	p.Show()
}

// Close hides the open panel.
func (m *Manager) Close() {
	if m.current == nil {
		return
	}
	m.current.Hide()
	m.current = nil
}

// Current returns the open panel or nil.
func (m *Manager) Current() *Panel { return m.current }

// Covers reports whether (x, y) falls on the open panel.
func (m *Manager) Covers(x, y int) bool {
	return m.current != nil && m.current.Visible() && m.layout.Panel.Contains(x, y)
}

// HandleClick routes a click to the open panel. It reports whether the click
// landed on the panel and must not reach the scene.
func (m *Manager) HandleClick(x, y int) bool {
	if !m.Covers(x, y) {
		return false
	}
	p := m.current
	l := m.layout
	if p.Editing() {
		switch {
		case l.Save.Contains(x, y):
			p.Save()
		case l.Cancel.Contains(x, y):
			p.Cancel()
		case l.Exit.Contains(x, y):
			m.Close()
		default:
			for i, r := range l.Fields {
				if r.Contains(x, y) {
					p.SetFocus(Field(i))
					break
				}
			}
		}
		return true
	}
	switch {
	case l.Edit.Contains(x, y):
		p.Edit()
	case l.Exit.Contains(x, y):
		m.Close()
	}
	return true
}

// HandleKey routes a key press to the open panel. It reports whether the key
// was consumed.
func (m *Manager) HandleKey(ev hal.KeyEvent) bool {
	p := m.current
	if p == nil || !p.Visible() || !ev.Press {
		return false
	}

	if p.Editing() {
		switch ev.Code {
		case hal.KeyBackspace:
			p.Backspace()
		case hal.KeyTab:
			p.FocusNext()
		case hal.KeyEnter:
			p.Save()
		case hal.KeyEscape:
			p.Cancel()
		case hal.KeyUnknown:
			if ev.Rune == 0 || !unicode.IsPrint(ev.Rune) {
				return false
			}
			p.TypeRune(ev.Rune)
		default:
			return false
		}
		return true
	}

	switch {
	case ev.Code == hal.KeyEscape:
		m.Close()
	case ev.Code == hal.KeyUnknown && (ev.Rune == 'e' || ev.Rune == 'E'):
		p.Edit()
	default:
		return false
	}
	return true
}
