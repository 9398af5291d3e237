package hal

import (
	"bytes"
	"strings"
	"sync"
	"sync/atomic"
)

// Memory is a scripted HAL with an in-memory framebuffer and a manual clock.
//
// Input is injected with PushKey/PushPointer and time advances only through
// Advance, which makes frame-by-frame behaviour reproducible.
type Memory struct {
	fb  *hostFramebuffer
	kbd *hostKeyboard
	ptr *hostPointer
	clk *manualTime
	log *memoryLogger
}

// NewMemory returns a Memory HAL with a width x height framebuffer.
func NewMemory(width, height int) *Memory {
	return &Memory{
		fb:  newHostFramebuffer(width, height),
		kbd: newHostKeyboard(),
		ptr: newHostPointer(),
		clk: &manualTime{},
		log: &memoryLogger{},
	}
}

func (m *Memory) Logger() Logger   { return m.log }
func (m *Memory) Display() Display { return hostDisplay{fb: m.fb} }
func (m *Memory) Input() Input     { return hostInput{kbd: m.kbd, ptr: m.ptr} }
func (m *Memory) Time() Time       { return m.clk }

// PushKey queues a keyboard event.
func (m *Memory) PushKey(ev KeyEvent) { m.kbd.emit(ev) }

// TypeText queues one text-input event per rune.
func (m *Memory) TypeText(s string) {
	for _, r := range s {
		m.kbd.emit(KeyEvent{Press: true, Rune: r})
	}
}

// PushPointer queues a pointer event.
func (m *Memory) PushPointer(ev PointerEvent) { m.ptr.emit(ev) }

// Click queues a move, press and release at (x, y).
func (m *Memory) Click(x, y int) {
	m.ptr.emit(PointerEvent{Kind: PointerMove, X: x, Y: y})
	m.ptr.emit(PointerEvent{Kind: PointerDown, X: x, Y: y})
	m.ptr.emit(PointerEvent{Kind: PointerUp, X: x, Y: y})
}

// Advance moves the clock forward by ms milliseconds.
func (m *Memory) Advance(ms uint64) { m.clk.now.Add(ms) }

// Presented reports how many frames have been presented.
func (m *Memory) Presented() uint64 { return m.fb.presented() }

// Log returns everything written to the logger so far.
func (m *Memory) Log() string { return m.log.String() }

type manualTime struct {
	now atomic.Uint64
}

func (t *manualTime) NowTick() uint64 { return t.now.Load() }

type memoryLogger struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (l *memoryLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buf.WriteString(s)
	if !strings.HasSuffix(s, "\n") {
		l.buf.WriteByte('\n')
	}
}

func (l *memoryLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *memoryLogger) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.String()
}
