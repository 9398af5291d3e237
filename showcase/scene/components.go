package scene

import (
	"github.com/google/uuid"
	"github.com/yohamta/donburi"

	"vitrine/showcase/catalog"
	"vitrine/showcase/quarkgl"
)

// Visual links an entity to its mesh.
type Visual struct {
	MeshID   int
	Position quarkgl.Vec3
	Base     quarkgl.Color
	Hover    quarkgl.Color
	Hovered  bool
}

var (
	ProductComponent  = donburi.NewComponentType[catalog.Product]()
	VisualComponent   = donburi.NewComponentType[Visual]()
	IdentityComponent = donburi.NewComponentType[uuid.UUID]()
)
