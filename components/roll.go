package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// RollData tracks the roll-dash. Boost tweens the speed multiplier from its
// peak back down to 1.0 over the roll duration.
type RollData struct {
	Active       bool
	Boost        *gween.Tween
	DirX, DirY   float64 // locked movement direction for the whole roll
	Cooldown     int
	InvulnFrames int
}

var Roll = donburi.NewComponentType[RollData]()
