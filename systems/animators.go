package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gridvale/components"
)

// tickSeconds is the fixed simulation step (ebiten runs Update at 60 TPS).
const tickSeconds = 1.0 / 60.0

// UpdateAnimators advances every sprite animator by one simulation tick. The
// animator carries its own fractional-time remainder, so the walk cadence
// stays exact no matter how the tick rate divides the frame duration.
func UpdateAnimators(e *ecs.ECS) {
	components.PixelSprite.Each(e.World, func(entry *donburi.Entry) {
		sprite := components.PixelSprite.Get(entry)
		sprite.Animator.Tick(tickSeconds)
	})
}
