package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gridvale/archetypes"
	"github.com/automoto/gridvale/components"
	"github.com/automoto/gridvale/tags"
)

// CreateHitbox spawns a short-lived melee hitbox owned by attacker.
func CreateHitbox(ecs *ecs.ECS, attacker *donburi.Entry, x, y, w, h float64, damage int, knockback float64, lifetime int) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvHitbox)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = hitbox
	components.Object.SetValue(hitbox, components.ObjectData{Object: obj})

	components.Hitbox.SetValue(hitbox, components.HitboxData{
		OwnerEntity:    attacker,
		Damage:         damage,
		KnockbackForce: knockback,
		LifeTime:       lifetime,
		HitEntities:    map[*donburi.Entry]bool{},
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return hitbox
}
