package scene

import (
	"bytes"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"vitrine/showcase/catalog"
	"vitrine/showcase/input"
	"vitrine/showcase/quarkgl"
	"vitrine/showcase/sched"
	"vitrine/showcase/ui"
)

func products(n int) []catalog.Product {
	out := make([]catalog.Product, n)
	for i := range out {
		out[i] = catalog.NewProduct(string(rune('A'+i)), "desc", decimal.NewFromInt(int64(i)))
	}
	return out
}

func newTestWorld(opts Options) (*World, *quarkgl.Scene, *ui.Manager, *bytes.Buffer) {
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))
	s := quarkgl.CreateScene(4)
	m := ui.NewManager(sched.New(), log, 640, 360, time.Second)
	if opts.Seed == 0 {
		opts.Seed = 7
	}
	return NewWorld(s, m, log, opts), s, m, &logs
}

func TestLayoutCentersAboutOrigin(t *testing.T) {
	for n := 1; n <= 6; n++ {
		pos := Layout(n, 2, quarkgl.V3(0, 0, 0))
		if len(pos) != n {
			t.Fatalf("Layout(%d): got %d positions", n, len(pos))
		}
		var sum float32
		for i, p := range pos {
			sum += p.X
			if i > 0 && math.Abs(float64(p.X-pos[i-1].X-2)) > 1e-5 {
				t.Fatalf("Layout(%d): spacing broken at %d: %v", n, i, pos)
			}
			if p.Y != 0 || p.Z != 0 {
				t.Fatalf("Layout(%d): off axis %v", n, p)
			}
		}
		if math.Abs(float64(sum)) > 1e-4 {
			t.Fatalf("Layout(%d): not centered, sum=%v", n, sum)
		}
	}
	if Layout(0, 2, quarkgl.Vec3{}) != nil {
		t.Fatal("Layout(0) should be empty")
	}
	if got := Layout(3, 1.5, quarkgl.V3(10, 1, -2)); got[0] != quarkgl.V3(8.5, 1, -2) || got[2] != quarkgl.V3(11.5, 1, -2) {
		t.Fatalf("Layout with origin: %v", got)
	}
}

func TestSpawnCreatesOneEntityPerProduct(t *testing.T) {
	w, s, m, logs := newTestWorld(Options{Spacing: 2})
	ps := products(4)
	items := w.Spawn(ps)

	if len(items) != 4 || w.Len() != 4 || s.MeshCount() != 4 || m.Panels() != 4 {
		t.Fatalf("items=%d entities=%d meshes=%d panels=%d", len(items), w.Len(), s.MeshCount(), m.Panels())
	}
	want := Layout(4, 2, quarkgl.Vec3{})
	for i, it := range items {
		if !it.Product().Equal(ps[i]) {
			t.Fatalf("item %d holds %v", i, it.Product().Name())
		}
		v := it.Visual()
		if v.Position != want[i] {
			t.Fatalf("item %d at %v, want %v", i, v.Position, want[i])
		}
		if w.ItemAt(v.MeshID) != it {
			t.Fatalf("ItemAt(%d) mismatch", v.MeshID)
		}
		if c, _ := s.MeshColor(v.MeshID); c != v.Base {
			t.Fatalf("item %d mesh color %v, want %v", i, c, v.Base)
		}
		if it.Panel().Visible() {
			t.Fatalf("item %d panel should start hidden", i)
		}
		if it.Panel().Displayed(ui.FieldName) != ps[i].Name() {
			t.Fatalf("item %d panel shows %q", i, it.Panel().Displayed(ui.FieldName))
		}
	}
	if items[0].ID() == items[1].ID() {
		t.Fatal("item ids should be unique")
	}
	if !bytes.Contains(logs.Bytes(), []byte("msg=products_spawned count=4")) {
		t.Fatalf("missing spawn log: %s", logs.String())
	}
}

func TestSpawnNothing(t *testing.T) {
	w, s, _, _ := newTestWorld(Options{})
	if items := w.Spawn(nil); len(items) != 0 {
		t.Fatalf("got %d items", len(items))
	}
	if w.Len() != 0 || s.MeshCount() != 0 || len(w.Items()) != 0 {
		t.Fatal("expected an empty world")
	}
	if w.ItemAt(0) != nil {
		t.Fatal("ItemAt on empty world should be nil")
	}
}

func TestSpawnColorsAreSeeded(t *testing.T) {
	a, _, _, _ := newTestWorld(Options{Seed: 42})
	b, _, _, _ := newTestWorld(Options{Seed: 42})
	ia := a.Spawn(products(3))
	ib := b.Spawn(products(3))
	for i := range ia {
		if ia[i].Visual().Base != ib[i].Visual().Base {
			t.Fatalf("item %d colors differ for the same seed", i)
		}
		if ia[i].Visual().Base == ia[i].Visual().Hover {
			t.Fatalf("item %d hover color equals base", i)
		}
	}
}

func TestHoverSwapsColor(t *testing.T) {
	w, s, _, _ := newTestWorld(Options{})
	items := w.Spawn(products(2))
	var d input.Dispatcher

	a, b := items[0], items[1]
	d.Update(a, false)
	if c, _ := s.MeshColor(a.Visual().MeshID); c != a.Visual().Hover || !a.Visual().Hovered {
		t.Fatal("hovered item should use the hover color")
	}
	d.Update(b, false)
	if c, _ := s.MeshColor(a.Visual().MeshID); c != a.Visual().Base {
		t.Fatal("exited item should restore the base color")
	}
	if c, _ := s.MeshColor(b.Visual().MeshID); c != b.Visual().Hover {
		t.Fatal("newly hovered item should use the hover color")
	}
	d.Reset()
	if c, _ := s.MeshColor(b.Visual().MeshID); c != b.Visual().Base {
		t.Fatal("reset should restore the base color")
	}
}

func TestClickOpensSinglePanel(t *testing.T) {
	w, _, m, _ := newTestWorld(Options{})
	items := w.Spawn(products(3))

	items[0].Click()
	if m.Current() != items[0].Panel() || !items[0].Panel().Visible() {
		t.Fatal("click should open the item panel")
	}
	items[2].Click()
	if items[0].Panel().Visible() || !items[2].Panel().Visible() || m.Current() != items[2].Panel() {
		t.Fatal("second click should close the first panel")
	}
	visible := 0
	for _, it := range items {
		if it.Panel().Visible() {
			visible++
		}
	}
	if visible != 1 {
		t.Fatalf("visible panels = %d", visible)
	}
}

func TestSaveReplacesProduct(t *testing.T) {
	w, _, _, logs := newTestWorld(Options{})
	items := w.Spawn(products(2))
	it := items[1]

	it.Click()
	p := it.Panel()
	p.Edit()
	p.SetInput(ui.FieldName, "Renamed")
	p.SetInput(ui.FieldPrice, "12.30")
	if !p.Save() {
		t.Fatal("Save failed")
	}

	got := it.Product()
	want := catalog.NewProduct("Renamed", "desc", decimal.RequireFromString("12.3"))
	if !got.Equal(want) {
		t.Fatalf("product = %v/%v/%v", got.Name(), got.Description(), got.PriceText())
	}
	if p.Displayed(ui.FieldName) != "Renamed" {
		t.Fatal("panel text should follow the saved product")
	}
	if !items[0].Product().Equal(products(2)[0]) {
		t.Fatal("other items must not change")
	}
	if ps := w.Products(); !ps[1].Equal(want) {
		t.Fatal("Products should reflect the save")
	}
	if !bytes.Contains(logs.Bytes(), []byte("msg=product_saved")) {
		t.Fatal("missing save log")
	}
}

func TestSpawnFitsOrbit(t *testing.T) {
	var small, wide quarkgl.OrbitController
	ws, _, _, _ := newTestWorld(Options{Orbit: &small})
	ww, s, _, _ := newTestWorld(Options{Orbit: &wide})
	ws.Spawn(products(1))
	ww.Spawn(products(8))
	if !(wide.Radius > small.Radius) {
		t.Fatalf("wide row radius %v should exceed %v", wide.Radius, small.Radius)
	}
	if s.Camera.Position.Z <= 0 {
		t.Fatalf("camera should sit in front of the row, got %v", s.Camera.Position)
	}
}
