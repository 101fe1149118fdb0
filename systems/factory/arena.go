package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gridvale/archetypes"
	"github.com/automoto/gridvale/arena"
	"github.com/automoto/gridvale/components"
)

// CreateArena registers the playfield singleton and spawns a wall entity per
// solid rectangle.
func CreateArena(ecs *ecs.ECS, a *arena.Arena) *donburi.Entry {
	entry := archetypes.ArenaInfo.Spawn(ecs)
	components.ArenaInfo.SetValue(entry, components.ArenaInfoData{Arena: a})

	for _, w := range a.Walls {
		CreateWall(ecs, w.X, w.Y, w.W, w.H)
	}

	return entry
}
