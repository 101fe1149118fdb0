package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	Name          string
	InvulnFrames  int // Invulnerability frames timer
	SwingCooldown int
	BoltCooldown  int
	Score         int // creeps knocked out this session
}

var Player = donburi.NewComponentType[PlayerData]()
