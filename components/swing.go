package components

import "github.com/yohamta/donburi"

// SwingData tracks an in-progress melee swing on the attacker.
type SwingData struct {
	IsSwinging       bool
	FramesLeft       int
	HasSpawnedHitbox bool // Prevents multiple hitboxes per swing
	ActiveHitbox     *donburi.Entry
}

var Swing = donburi.NewComponentType[SwingData]()
