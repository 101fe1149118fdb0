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

// UpdateBolts flies every bolt along its straight line, fizzling on walls,
// creep hits, or timeout.
func UpdateBolts(e *ecs.ECS) {
	components.Bolt.Each(e.World, func(entry *donburi.Entry) {
		bolt := components.Bolt.Get(entry)
		obj := components.Object.Get(entry)

		bolt.FramesLeft--
		if bolt.FramesLeft <= 0 {
			removeBolt(e, entry)
			return
		}

		if check := obj.Check(bolt.VelX, bolt.VelY, tags.ResolvSolid, tags.ResolvCreep); check != nil {
			for _, hit := range check.ObjectsByTags(tags.ResolvCreep) {
				target, ok := hit.Data.(*donburi.Entry)
				if !ok || !target.Valid() {
					continue
				}
				kx, ky := normalize(bolt.VelX, bolt.VelY)
				applyDamage(e, target, bolt.Damage, kx*2, ky*2)
				removeBolt(e, entry)
				return
			}
			if len(check.ObjectsByTags(tags.ResolvSolid)) > 0 {
				removeBolt(e, entry)
				return
			}
		}

		obj.X += bolt.VelX
		obj.Y += bolt.VelY
		obj.Update()
	})
}

// spawnPlayerBolt fires a bolt from the player's center along the current
// facing.
func spawnPlayerBolt(e *ecs.ECS, playerEntry *donburi.Entry) {
	obj := components.Object.Get(playerEntry)
	sprite := components.PixelSprite.Get(playerEntry)

	var vx, vy float64
	switch sprite.Animator.Facing() {
	case sprites.Up:
		vy = -cfg.Bolt.Speed
	case sprites.Down:
		vy = cfg.Bolt.Speed
	case sprites.Left:
		vx = -cfg.Bolt.Speed
	default:
		vx = cfg.Bolt.Speed
	}

	x := obj.X + obj.W/2 - cfg.Bolt.Width/2
	y := obj.Y + obj.H/2 - cfg.Bolt.Height/2
	factory.CreateBolt(e, playerEntry, x, y, vx, vy)
}

func removeBolt(e *ecs.ECS, entry *donburi.Entry) {
	obj := components.Object.Get(entry)
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Remove(obj.Object)
	}
	entry.Remove()
}
