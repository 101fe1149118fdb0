package factory

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gridvale/archetypes"
	"github.com/automoto/gridvale/components"
)

func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	data := &components.CameraData{}
	data.Position.X = x
	data.Position.Y = y
	components.Camera.Set(camera, data)
}
