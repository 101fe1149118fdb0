package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// CreepData drives the wandering training dummies. Each creep carries its own
// RNG so respawns and wander legs stay independent of each other.
type CreepData struct {
	SpawnX, SpawnY float64
	DirX, DirY     float64
	LegFrames      int // frames left in the current wander leg
	PauseFrames    int // frames left standing between legs
	InvulnFrames   int
	RespawnFrames  int // counting down while knocked out
	Rng            *rand.Rand
}

var Creep = donburi.NewComponentType[CreepData]()
