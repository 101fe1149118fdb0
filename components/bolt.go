package components

import "github.com/yohamta/donburi"

// BoltData is a ranged projectile in flight.
type BoltData struct {
	OwnerEntity *donburi.Entry
	VelX        float64
	VelY        float64
	Damage      int
	FramesLeft  int
}

var Bolt = donburi.NewComponentType[BoltData]()
