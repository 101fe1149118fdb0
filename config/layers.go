package config

import "github.com/yohamta/donburi/ecs"

// ECS layers. Everything draws on the default layer; the pause overlay sits
// above it.
const (
	Default ecs.LayerID = iota
	Overlay
)
