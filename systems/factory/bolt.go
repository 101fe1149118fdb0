package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gridvale/archetypes"
	"github.com/automoto/gridvale/components"
	cfg "github.com/automoto/gridvale/config"
	"github.com/automoto/gridvale/tags"
)

// CreateBolt spawns a ranged bolt flying along (vx, vy).
func CreateBolt(ecs *ecs.ECS, owner *donburi.Entry, x, y, vx, vy float64) *donburi.Entry {
	bolt := archetypes.Bolt.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Bolt.Width, cfg.Bolt.Height, tags.ResolvBolt)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Bolt.Width, cfg.Bolt.Height))
	obj.Data = bolt
	components.Object.SetValue(bolt, components.ObjectData{Object: obj})

	components.Bolt.SetValue(bolt, components.BoltData{
		OwnerEntity: owner,
		VelX:        vx,
		VelY:        vy,
		Damage:      cfg.Bolt.Damage,
		FramesLeft:  cfg.Bolt.Lifetime,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return bolt
}
