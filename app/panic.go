package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"

	"github.com/go-faster/errors"

	"vitrine/showcase/ui"
)

var (
	colorPanicBG = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorPanicFG = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// recoverPanic turns a panic in the frame step into an error, after logging
// the stack and painting it on screen.
func (s *system) recoverPanic(err *error) {
	v := recover()
	if v == nil {
		return
	}
	stack := debug.Stack()
	s.log.Error("step_panic", "panic", fmt.Sprint(v), "frame", s.frames)
	if l := s.h.Logger(); l != nil {
		for _, line := range strings.Split(string(stack), "\n") {
			if line != "" {
				l.WriteLineString(line)
			}
		}
	}
	s.paintPanic(v, stack)
	*err = errors.Errorf("showcase panic: %v", v)
}

func (s *system) paintPanic(v any, stack []byte) {
	if s.fb == nil {
		return
	}
	w, h := s.fb.Width(), s.fb.Height()
	s.canvas.Fill(ui.Rect{W: w, H: h}, colorPanicBG)

	lines := []string{
		"Vitrine panic:",
		fmt.Sprintf("frame: %d", s.frames),
		fmt.Sprintf("panic: %v", v),
		"stack:",
	}
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	}

	const lineH = 12
	y := 2
	for _, line := range lines {
		if y+lineH > h {
			break
		}
		s.canvas.Text(2, y, line, colorPanicFG, w-4)
		y += lineH
	}
	_ = s.fb.Present()
}
