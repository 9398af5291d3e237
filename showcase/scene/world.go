// Package scene owns the spawned product entities.
//
// Each product becomes a donburi entity carrying the product value, its mesh
// and an id, plus an Item handle that the input dispatcher talks to.
package scene

import (
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"

	"vitrine/showcase/catalog"
	"vitrine/showcase/quarkgl"
	"vitrine/showcase/ui"
)

// Options control spawning.
type Options struct {
	Spacing float32
	Size    float32
	Origin  quarkgl.Vec3

	// Seed fixes the item colors. Zero picks a random seed.
	Seed uint64

	// Orbit, when set, is refitted to the row after each spawn. Aspect is
	// the viewport width over height.
	Orbit  *quarkgl.OrbitController
	Aspect float32
}

// World is the set of spawned items.
type World struct {
	ecs     donburi.World
	scene   *quarkgl.Scene
	manager *ui.Manager
	log     *slog.Logger
	opts    Options
	rng     *rand.Rand

	items  []*Item
	byMesh map[int]*Item
	query  *query.Query
}

func NewWorld(s *quarkgl.Scene, m *ui.Manager, log *slog.Logger, opts Options) *World {
	if log == nil {
		log = slog.Default()
	}
	if opts.Spacing <= 0 {
		opts.Spacing = 2
	}
	if opts.Size <= 0 {
		opts.Size = 1
	}
	if opts.Aspect <= 0 {
		opts.Aspect = 16.0 / 9
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &World{
		ecs:     donburi.NewWorld(),
		scene:   s,
		manager: m,
		log:     log,
		opts:    opts,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
		byMesh:  make(map[int]*Item),
		query:   query.NewQuery(filter.Contains(ProductComponent, VisualComponent)),
	}
}

// Spawn creates one item per product, in order, laid out along X.
func (w *World) Spawn(products []catalog.Product) []*Item {
	if len(products) == 0 {
		return nil
	}

	positions := Layout(len(products), w.opts.Spacing, w.opts.Origin)
	out := make([]*Item, 0, len(products))
	for i, p := range products {
		out = append(out, w.spawnOne(p, positions[i]))
	}
	w.items = append(w.items, out...)
	w.fit()

	w.log.Info("products_spawned", "count", len(out), "total", len(w.items))
	return out
}

func (w *World) spawnOne(p catalog.Product, pos quarkgl.Vec3) *Item {
	hue := w.rng.Float32()
	sat := 0.55 + 0.3*w.rng.Float32()
	base := quarkgl.HSV(hue, sat, 0.9)
	hover := quarkgl.HSV(hue, sat*0.35, 1)

	size := w.opts.Size
	mesh := quarkgl.NewBoxMesh(size, size, size)
	mesh.Transform = quarkgl.Mat4Translate(pos)
	mesh.Material.BaseColor = base
	meshID := w.scene.AddMesh(mesh)

	id := uuid.New()
	entity := w.ecs.Create(ProductComponent, VisualComponent, IdentityComponent)
	entry := w.ecs.Entry(entity)
	*ProductComponent.Get(entry) = p
	*VisualComponent.Get(entry) = Visual{MeshID: meshID, Position: pos, Base: base, Hover: hover}
	*IdentityComponent.Get(entry) = id

	it := &Item{world: w, entity: entity, id: id, panel: w.manager.NewPanel()}
	it.panel.Initialize(p, it.UpdateProduct)
	w.byMesh[meshID] = it

	w.log.Debug("item_spawned", "item", id, "name", p.Name(), "x", pos.X)
	return it
}

func (w *World) fit() {
	o := w.opts.Orbit
	if o == nil || len(w.items) == 0 {
		return
	}
	first := w.items[0].Visual().Position
	last := w.items[len(w.items)-1].Visual().Position
	width := last.X - first.X + w.opts.Size
	o.Target = w.opts.Origin
	o.Fit(width, w.scene.Camera.FOVYRad, w.opts.Aspect)
	o.Apply(&w.scene.Camera)
}

// ItemAt returns the item drawn with meshID, or nil.
func (w *World) ItemAt(meshID int) *Item {
	return w.byMesh[meshID]
}

// Len returns the number of spawned entities.
func (w *World) Len() int {
	return w.query.Count(w.ecs)
}

// Items returns the spawned items in spawn order.
func (w *World) Items() []*Item {
	return w.items
}

// Products returns the current product of every item, in spawn order.
func (w *World) Products() []catalog.Product {
	out := make([]catalog.Product, 0, len(w.items))
	for _, it := range w.items {
		out = append(out, it.Product())
	}
	return out
}
