package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gridvale/components"
	cfg "github.com/automoto/gridvale/config"
	"github.com/automoto/gridvale/sprites"
	"github.com/automoto/gridvale/systems/factory"
	"github.com/automoto/gridvale/tags"
)

// UpdateSwings spawns and expires melee hitboxes for every swinging entity,
// then applies hits to anything the active hitboxes overlap.
func UpdateSwings(e *ecs.ECS) {
	components.Swing.Each(e.World, func(entry *donburi.Entry) {
		swing := components.Swing.Get(entry)
		if !swing.IsSwinging {
			return
		}

		if !swing.HasSpawnedHitbox {
			swing.ActiveHitbox = spawnSwingHitbox(e, entry)
			swing.HasSpawnedHitbox = true
		}

		swing.FramesLeft--
		if swing.FramesLeft <= 0 {
			swing.IsSwinging = false
			if swing.ActiveHitbox != nil && swing.ActiveHitbox.Valid() {
				removeHitbox(e, swing.ActiveHitbox)
			}
			swing.ActiveHitbox = nil
		}
	})

	resolveHitboxHits(e)
}

// spawnSwingHitbox creates the hitbox rectangle in front of the attacker,
// oriented by the facing the sprite currently shows.
func spawnSwingHitbox(e *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	obj := components.Object.Get(owner)
	sprite := components.PixelSprite.Get(owner)

	reach := cfg.Combat.SwingReach
	width := cfg.Combat.SwingWidth

	cx := obj.X + obj.W/2
	cy := obj.Y + obj.H/2

	var x, y, w, h float64
	switch sprite.Animator.Facing() {
	case sprites.Up:
		w, h = width, reach
		x, y = cx-w/2, obj.Y-h
	case sprites.Down:
		w, h = width, reach
		x, y = cx-w/2, obj.Y+obj.H
	case sprites.Left:
		w, h = reach, width
		x, y = obj.X-w, cy-h/2
	default: // sprites.Right
		w, h = reach, width
		x, y = obj.X+obj.W, cy-h/2
	}

	return factory.CreateHitbox(e, owner, x, y, w, h,
		cfg.Combat.SwingDamage, cfg.Combat.SwingKnockback, cfg.Combat.SwingActive)
}

// resolveHitboxHits damages every creep an active hitbox touches, once per
// hitbox lifetime.
func resolveHitboxHits(e *ecs.ECS) {
	components.Hitbox.Each(e.World, func(entry *donburi.Entry) {
		hitbox := components.Hitbox.Get(entry)
		obj := components.Object.Get(entry)

		hitbox.LifeTime--
		if hitbox.LifeTime <= 0 {
			removeHitbox(e, entry)
			return
		}

		check := obj.Check(0, 0, tags.ResolvCreep)
		if check == nil {
			return
		}
		for _, hit := range check.ObjectsByTags(tags.ResolvCreep) {
			target, ok := hit.Data.(*donburi.Entry)
			if !ok || !target.Valid() || hitbox.HitEntities[target] {
				continue
			}
			hitbox.HitEntities[target] = true

			kx, ky := knockbackFrom(components.Object.Get(hitbox.OwnerEntity).Object, hit, hitbox.KnockbackForce)
			applyDamage(e, target, hitbox.Damage, kx, ky)
		}
	})
}

func removeHitbox(e *ecs.ECS, entry *donburi.Entry) {
	obj := components.Object.Get(entry)
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Remove(obj.Object)
	}
	entry.Remove()
}
