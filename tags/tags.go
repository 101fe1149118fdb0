package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
	Creep  = donburi.NewTag().SetName("Creep")
	Hitbox = donburi.NewTag().SetName("Hitbox")
	Bolt   = donburi.NewTag().SetName("Bolt")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvCreep  = "Creep"
	ResolvBolt   = "Bolt"
	ResolvHitbox = "Hitbox"
)
