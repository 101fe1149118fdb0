package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gridvale/components"
)

// UpdateFlashes decrements active sprite flashes.
func UpdateFlashes(e *ecs.ECS) {
	components.Flash.Each(e.World, func(entry *donburi.Entry) {
		flash := components.Flash.Get(entry)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// startFlash arms the entity's flash tint for a few frames. Flash components
// are permanently attached to avoid archetype thrashing.
func startFlash(entry *donburi.Entry, frames int, r, g, b float32) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(entry)
	flash.Duration = frames
	flash.R, flash.G, flash.B = r, g, b
}
