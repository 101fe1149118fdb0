package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData embeds the entity's collision box. Factories point the object's
// Data field back at the owning entry, so a resolv hit resolves straight to
// the entity it belongs to.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
