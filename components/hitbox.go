package components

import "github.com/yohamta/donburi"

type HitboxData struct {
	OwnerEntity    *donburi.Entry          // The entity that created this hitbox
	Damage         int                     // Damage this hitbox deals
	KnockbackForce float64                 // Knockback strength
	LifeTime       int                     // Frames this hitbox lasts
	HitEntities    map[*donburi.Entry]bool // Entities already hit (prevent multiple hits)
}

var Hitbox = donburi.NewComponentType[HitboxData]()
