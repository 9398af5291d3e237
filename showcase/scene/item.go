package scene

import (
	"github.com/google/uuid"
	"github.com/yohamta/donburi"

	"vitrine/showcase/catalog"
	"vitrine/showcase/input"
	"vitrine/showcase/ui"
)

var (
	_ input.Hoverable = (*Item)(nil)
	_ input.Clickable = (*Item)(nil)
)

// Item is the handle of one spawned product entity.
type Item struct {
	world  *World
	entity donburi.Entity
	id     uuid.UUID
	panel  *ui.Panel
}

func (it *Item) entry() *donburi.Entry { return it.world.ecs.Entry(it.entity) }

func (it *Item) ID() uuid.UUID            { return it.id }
func (it *Item) Panel() *ui.Panel         { return it.panel }
func (it *Item) Product() catalog.Product { return *ProductComponent.Get(it.entry()) }
func (it *Item) Visual() Visual           { return *VisualComponent.Get(it.entry()) }

// PointerEnter switches the mesh to its hover color.
func (it *Item) PointerEnter() { it.setHovered(true) }

// PointerExit restores the default color.
func (it *Item) PointerExit() { it.setHovered(false) }

func (it *Item) setHovered(on bool) {
	v := VisualComponent.Get(it.entry())
	v.Hovered = on
	c := v.Base
	if on {
		c = v.Hover
	}
	it.world.scene.SetMeshColor(v.MeshID, c)
}

// Click opens the item's details panel.
func (it *Item) Click() {
	it.world.manager.Open(it.panel)
	it.world.log.Debug("panel_opened", "item", it.id, "name", it.Product().Name())
}

// UpdateProduct replaces the item's product and refreshes its panel. It is the
// panel's save callback.
func (it *Item) UpdateProduct(p catalog.Product) {
	*ProductComponent.Get(it.entry()) = p
	it.panel.UpdateText(p)
	it.world.log.Info("product_saved", "item", it.id, "name", p.Name(), "price", p.PriceText())
}
