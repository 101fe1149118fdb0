package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gridvale/components"
	cfg "github.com/automoto/gridvale/config"
	"github.com/automoto/gridvale/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.PixelSprite,
		components.Physics,
		components.State,
		components.Swing,
		components.Roll,
		components.Flash,
	)
	Creep = newArchetype(
		tags.Creep,
		components.Creep,
		components.Object,
		components.Health,
		components.HealthBar,
		components.PixelSprite,
		components.Physics,
		components.State,
		components.Flash,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Hitbox,
		components.Object,
	)
	Bolt = newArchetype(
		tags.Bolt,
		components.Bolt,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	ArenaInfo = newArchetype(
		components.ArenaInfo,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
