package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gridvale/components"
	"github.com/automoto/gridvale/config"
	"github.com/automoto/gridvale/tags"
)

// UpdateCamera smoothly follows the player, clamped so the arena always fills
// the screen, and applies any active screen shake on top.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, camera)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	arenaEntry, ok := components.ArenaInfo.First(e.World)
	if !ok {
		return
	}
	info := components.ArenaInfo.Get(arenaEntry)

	targetX := playerObject.X + playerObject.W/2
	targetY := playerObject.Y + playerObject.H/2

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	arenaWidth := float64(info.Arena.Width)
	arenaHeight := float64(info.Arena.Height)

	// Clamp so the view never leaves the playfield. An arena smaller than the
	// screen just centers.
	if arenaWidth > screenWidth {
		targetX = math.Max(screenWidth/2, math.Min(arenaWidth-screenWidth/2, targetX))
	} else {
		targetX = arenaWidth / 2
	}
	if arenaHeight > screenHeight {
		targetY = math.Max(screenHeight/2, math.Min(arenaHeight-screenHeight/2, targetY))
	} else {
		targetY = arenaHeight / 2
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
	if math.Abs(targetX-camera.Position.X) < config.Camera.SnapDistance {
		camera.Position.X = targetX
	}
	if math.Abs(targetY-camera.Position.Y) < config.Camera.SnapDistance {
		camera.Position.Y = targetY
	}
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(e *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Elapsed:   0,
		})
	}
}
