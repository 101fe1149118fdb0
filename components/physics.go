package components

import "github.com/yohamta/donburi"

// PhysicsData is top-down movement state. VelX/VelY are the per-tick
// displacement the movement system resolves against walls; knockback decays
// with Friction.
type PhysicsData struct {
	VelX       float64
	VelY       float64
	KnockX     float64
	KnockY     float64
	Friction   float64
	MoveSpeed  float64
	SpeedScale float64 // roll boost multiplier, 1.0 at rest
}

var Physics = donburi.NewComponentType[PhysicsData]()
