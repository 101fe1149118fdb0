package factory

import (
	"fmt"
	"math/rand"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gridvale/archetypes"
	"github.com/automoto/gridvale/catalog"
	"github.com/automoto/gridvale/components"
	cfg "github.com/automoto/gridvale/config"
	"github.com/automoto/gridvale/sprites"
	"github.com/automoto/gridvale/tags"
)

// CreateCreep spawns a wandering training dummy at (x, y). Dummies use the
// front-only catalog template, so they never turn away from the camera no
// matter which way they wander.
func CreateCreep(ecs *ecs.ECS, x, y float64, seed int64) *donburi.Entry {
	creep := archetypes.Creep.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Creep.CollisionWidth, cfg.Creep.CollisionHeight)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Creep.CollisionWidth, cfg.Creep.CollisionHeight))
	obj.AddTags("character", tags.ResolvCreep)
	obj.Data = creep
	components.Object.SetValue(creep, components.ObjectData{Object: obj})

	components.Creep.SetValue(creep, components.CreepData{
		SpawnX:      x,
		SpawnY:      y,
		PauseFrames: cfg.Creep.PauseFrames,
		Rng:         rand.New(rand.NewSource(seed)),
	})
	components.State.SetValue(creep, components.StateData{
		CurrentState:  cfg.StatePause,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(creep, components.PhysicsData{
		MoveSpeed:  cfg.Creep.WanderSpeed,
		Friction:   0.8,
		SpeedScale: 1.0,
	})
	components.Health.SetValue(creep, components.HealthData{
		Current: cfg.Creep.Health,
		Max:     cfg.Creep.Health,
	})
	components.HealthBar.SetValue(creep, components.HealthBarData{})
	components.Flash.SetValue(creep, components.FlashData{R: 1, G: 1, B: 1})

	tpl, palette := catalog.Dummy()
	set, err := sprites.Build(tpl)
	if err != nil {
		panic(fmt.Sprintf("build animation set for dummy: %v", err))
	}
	sprite := components.PixelSprite.Get(creep)
	sprite.Animator.Assign(set)
	sprite.Palette = palette
	sprite.Scale = cfg.Creep.SpriteScale

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return creep
}
