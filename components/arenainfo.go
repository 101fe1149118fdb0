package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/gridvale/arena"
)

// ArenaInfoData is the world-level singleton carrying the loaded playfield.
type ArenaInfoData struct {
	Arena *arena.Arena
}

var ArenaInfo = donburi.NewComponentType[ArenaInfoData]()
