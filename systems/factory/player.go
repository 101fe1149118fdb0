package factory

import (
	"fmt"

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

// CreatePlayer spawns the hero at (x, y) with the chosen catalog character.
// The collision box covers the feet; the sprite hangs above it so the head
// can overlap wall tiles behind the character.
func CreatePlayer(ecs *ecs.ECS, x, y float64, character catalog.Character, playerName string) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight))
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Name: playerName,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.StateIdle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		MoveSpeed:  cfg.Player.MoveSpeed,
		Friction:   0.8,
		SpeedScale: 1.0,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Roll.SetValue(player, components.RollData{})
	components.Swing.SetValue(player, components.SwingData{})
	components.Flash.SetValue(player, components.FlashData{R: 1, G: 1, B: 1})

	set, err := sprites.Build(character.Template)
	if err != nil {
		// Catalog templates are validated at roster build; a failure here is
		// a programming error.
		panic(fmt.Sprintf("build animation set for %s: %v", character.Name, err))
	}
	sprite := components.PixelSprite.Get(player)
	sprite.Animator.Assign(set)
	sprite.Palette = character.Palette
	sprite.Scale = cfg.Player.SpriteScale

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
