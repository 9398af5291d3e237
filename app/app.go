// Package app wires the showcase together and exposes the per-frame step.
package app

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"

	"vitrine/hal"
	"vitrine/internal/buildinfo"
	"vitrine/internal/config"
	"vitrine/showcase/catalog"
	"vitrine/showcase/input"
	"vitrine/showcase/loader"
	"vitrine/showcase/quarkgl"
	"vitrine/showcase/scene"
	"vitrine/showcase/sched"
	"vitrine/showcase/ui"
)

const (
	headerH    = 14
	rotateStep = 0.08
	zoomStep   = 0.5
	maxPitch   = 1.2
)

var (
	colorHeaderBG = color.RGBA{R: 0x10, G: 0x12, B: 0x18, A: 0xFF}
	colorHeaderFG = color.RGBA{R: 0xD0, G: 0xD4, B: 0xDC, A: 0xFF}
	colorHeaderOK = color.RGBA{R: 0x60, G: 0xE0, B: 0x70, A: 0xFF}
	colorHeaderNG = color.RGBA{R: 0xFF, G: 0x50, B: 0x50, A: 0xFF}
)

type system struct {
	h   hal.HAL
	cfg config.Config
	log *slog.Logger

	fb     hal.Framebuffer
	canvas *ui.Canvas

	sched    *sched.Scheduler
	scene    *quarkgl.Scene
	renderer *quarkgl.Renderer
	target   quarkgl.RGB565Target
	orbit    quarkgl.OrbitController

	manager  *ui.Manager
	world    *scene.World
	loader   *loader.Loader
	dispatch input.Dispatcher

	pointerX, pointerY int
	pointerIn          bool
	frames             uint64
}

// NewWithConfig builds the showcase on h, starts the product fetch and
// returns the per-frame step.
func NewWithConfig(h hal.HAL, cfg config.Config, log *slog.Logger) func() error {
	return NewWithContext(context.Background(), h, cfg, log)
}

// NewWithContext is NewWithConfig with a context that bounds the fetch.
func NewWithContext(ctx context.Context, h hal.HAL, cfg config.Config, log *slog.Logger) func() error {
	s := newSystem(h, cfg, log)
	s.start(ctx)
	return s.step
}

func newSystem(h hal.HAL, cfg config.Config, log *slog.Logger) *system {
	if log == nil {
		log = slog.Default()
	}
	s := &system{h: h, cfg: cfg, log: log}

	w, hh := cfg.Width, cfg.Height
	if d := h.Display(); d != nil {
		if fb := d.Framebuffer(); fb != nil {
			s.fb = fb
			w, hh = fb.Width(), fb.Height()
			s.canvas = ui.NewCanvas(fb)
			s.target = quarkgl.RGB565Target{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: w, H: hh}
		}
	}

	s.sched = sched.New()
	s.scene = quarkgl.CreateScene(16)
	s.scene.Camera.Position = quarkgl.V3(0, 0, 6)
	s.renderer = quarkgl.NewRenderer(w, hh, true)
	s.renderer.ClearColor = quarkgl.RGB(0x20, 0x24, 0x2C)

	s.orbit = quarkgl.OrbitController{
		Yaw:       0,
		Pitch:     -0.25,
		Radius:    6,
		MinRadius: 1.5,
		MaxRadius: 60,
		MaxPitch:  maxPitch,
	}
	s.orbit.Apply(&s.scene.Camera)

	s.manager = ui.NewManager(s.sched, log, w, hh, cfg.SavedMessage)

	aspect := float32(16) / 9
	if w > 0 && hh > 0 {
		aspect = float32(w) / float32(hh)
	}
	s.world = scene.NewWorld(s.scene, s.manager, log, scene.Options{
		Spacing: cfg.ItemSpacing,
		Size:    cfg.ItemSize,
		Seed:    cfg.Seed,
		Orbit:   &s.orbit,
		Aspect:  aspect,
	})

	client := loader.NewClient(cfg.ProductsURL, cfg.FetchTimeout)
	s.loader = loader.New(client, s.sched, log, func(products []catalog.Product) {
		s.world.Spawn(products)
	})
	return s
}

func (s *system) start(ctx context.Context) {
	s.log.Info("showcase_started", buildinfo.Attrs()...)
	s.loader.Start(ctx)
}

func (s *system) step() (err error) {
	defer s.recoverPanic(&err)

	if t := s.h.Time(); t != nil {
		s.sched.Tick(t.NowTick())
	}

	s.drainKeys()
	pressed := s.drainPointer()

	var target any
	if s.pointerIn && !s.manager.Covers(s.pointerX, s.pointerY) {
		if it := s.world.ItemAt(s.renderer.PickAt(s.pointerX, s.pointerY)); it != nil {
			target = it
		}
	}
	s.dispatch.Update(target, pressed)

	s.orbit.Apply(&s.scene.Camera)
	s.frames++
	if s.fb == nil {
		return nil
	}
	s.renderer.Render(&s.target, s.scene)
	s.drawHeader()
	s.manager.Draw(s.canvas)
	return s.fb.Present()
}

func (s *system) drainKeys() {
	in := s.h.Input()
	if in == nil || in.Keyboard() == nil {
		return
	}
	ch := in.Keyboard().Events()
	for {
		select {
		case ev := <-ch:
			s.handleKey(ev)
		default:
			return
		}
	}
}

func (s *system) handleKey(ev hal.KeyEvent) {
	if s.manager.HandleKey(ev) || !ev.Press {
		return
	}
	switch ev.Code {
	case hal.KeyLeft:
		s.orbit.Rotate(-rotateStep, 0)
	case hal.KeyRight:
		s.orbit.Rotate(rotateStep, 0)
	case hal.KeyUp:
		s.orbit.Rotate(0, -rotateStep)
	case hal.KeyDown:
		s.orbit.Rotate(0, rotateStep)
	case hal.KeyUnknown:
		switch ev.Rune {
		case '+', '=':
			s.orbit.Zoom(-zoomStep)
		case '-', '_':
			s.orbit.Zoom(zoomStep)
		}
	}
}

// drainPointer consumes pending pointer events and reports whether the
// primary button went down over the scene.
func (s *system) drainPointer() bool {
	in := s.h.Input()
	if in == nil || in.Pointer() == nil {
		return false
	}
	pressed := false
	ch := in.Pointer().Events()
	for {
		select {
		case ev := <-ch:
			s.pointerX, s.pointerY = ev.X, ev.Y
			s.pointerIn = true
			switch ev.Kind {
			case hal.PointerDown:
				if !s.manager.HandleClick(ev.X, ev.Y) {
					pressed = true
				}
			case hal.PointerWheel:
				s.orbit.Zoom(float32(-ev.WheelY) * zoomStep)
			}
		default:
			return pressed
		}
	}
}

func (s *system) drawHeader() {
	w := s.fb.Width()
	s.canvas.Fill(ui.Rect{W: w, H: headerH}, colorHeaderBG)

	status, fg := "loading products...", colorHeaderFG
	switch {
	case s.loader.Done() && s.loader.Err() != nil:
		status, fg = "failed to load products", colorHeaderNG
	case s.loader.Done() && s.world.Len() == 0:
		status = "no products"
	case s.loader.Done():
		status, fg = fmt.Sprintf("%d products", s.world.Len()), colorHeaderOK
	}
	s.canvas.Text(4, 2, "Vitrine "+buildinfo.Short(), colorHeaderFG, 0)
	x := 4 + ui.TextWidth("Vitrine "+buildinfo.Short()) + 12
	s.canvas.Text(x, 2, status, fg, 0)

	hint := "arrows orbit  +/- zoom  click details"
	s.canvas.Text(w-ui.TextWidth(hint)-4, 2, hint, colorHeaderFG, 0)
}
