package systems

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gridvale/components"
	"github.com/automoto/gridvale/tags"
)

// UpdateMovement applies movement intent and knockback to every physical
// entity, resolving each axis against solid walls independently so sliding
// along a wall works.
func UpdateMovement(e *ecs.ECS) {
	components.Physics.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Object) {
			return
		}
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		dx := physics.VelX + physics.KnockX
		dy := physics.VelY + physics.KnockY

		moveWithCollision(obj.Object, dx, dy)

		// Knockback decays with friction until it is negligible.
		physics.KnockX *= physics.Friction
		physics.KnockY *= physics.Friction
		if math.Abs(physics.KnockX) < 0.05 {
			physics.KnockX = 0
		}
		if math.Abs(physics.KnockY) < 0.05 {
			physics.KnockY = 0
		}
	})
}

// moveWithCollision moves obj by (dx, dy), stopping each axis at the first
// solid contact.
func moveWithCollision(obj *resolv.Object, dx, dy float64) {
	if dx != 0 {
		if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
			}
		}
		obj.X += dx
		obj.Update()
	}
	if dy != 0 {
		if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dy = check.ContactWithObject(solids[0]).Y()
			}
		}
		obj.Y += dy
		obj.Update()
	}
}

// UpdateObjects keeps every collision object in sync with the space.
func UpdateObjects(e *ecs.ECS) {
	for entry := range components.Object.Iter(e.World) {
		obj := components.Object.Get(entry)
		obj.Update()
	}
}
