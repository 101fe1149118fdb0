package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gridvale/components"
	cfg "github.com/automoto/gridvale/config"
	"github.com/automoto/gridvale/sprites"
	"github.com/automoto/gridvale/tags"
)

// UpdatePlayer reads input and drives the player's movement intent, facing,
// roll, and attack triggers. Runs after UpdateInput and before UpdateMovement.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}

	input := getOrCreateInput(e)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	sprite := components.PixelSprite.Get(playerEntry)
	roll := components.Roll.Get(playerEntry)
	state := components.State.Get(playerEntry)

	// Timers
	if player.InvulnFrames > 0 {
		player.InvulnFrames--
	}
	if player.SwingCooldown > 0 {
		player.SwingCooldown--
	}
	if player.BoltCooldown > 0 {
		player.BoltCooldown--
	}
	if roll.Cooldown > 0 {
		roll.Cooldown--
	}

	dx, dy := movementVector(input)

	// An active roll locks the direction and tweens the boost back to 1.
	if roll.Active {
		boost, done := roll.Boost.Update(1)
		physics.SpeedScale = float64(boost)
		dx, dy = roll.DirX, roll.DirY
		if roll.InvulnFrames > 0 {
			roll.InvulnFrames--
		}
		if done {
			roll.Active = false
			physics.SpeedScale = 1.0
			setState(state, cfg.StateIdle)
		}
	} else if GetAction(input, cfg.ActionRoll).JustPressed && roll.Cooldown == 0 && (dx != 0 || dy != 0) {
		roll.Active = true
		roll.Boost = gween.New(float32(cfg.Roll.Boost), 1.0, float32(cfg.Roll.Duration), ease.OutQuad)
		roll.DirX, roll.DirY = dx, dy
		roll.Cooldown = cfg.Roll.Duration + cfg.Roll.Cooldown
		roll.InvulnFrames = cfg.Roll.InvulnFrames
		physics.SpeedScale = cfg.Roll.Boost
		setState(state, cfg.StateRoll)
	}

	physics.VelX = dx * physics.MoveSpeed * physics.SpeedScale
	physics.VelY = dy * physics.MoveSpeed * physics.SpeedScale

	// Facing follows the movement vector; the animator ignores directions the
	// character has no poses for, and a stationary frame keeps the old facing.
	moving := dx != 0 || dy != 0
	if f, ok := sprites.FromVector(dx, dy); ok {
		sprite.Animator.SetFacing(f)
	}
	sprite.Animator.SetWalking(moving)
	if !roll.Active {
		if moving {
			setState(state, cfg.StateWalk)
		} else {
			setState(state, cfg.StateIdle)
		}
	}

	// Attack triggers. Swings and bolts share the facing the sprite shows.
	swing := components.Swing.Get(playerEntry)
	if GetAction(input, cfg.ActionSwing).JustPressed && player.SwingCooldown == 0 && !swing.IsSwinging {
		swing.IsSwinging = true
		swing.FramesLeft = cfg.Combat.SwingActive
		swing.HasSpawnedHitbox = false
		player.SwingCooldown = cfg.Combat.SwingCooldown
	}

	if GetAction(input, cfg.ActionBolt).JustPressed && player.BoltCooldown == 0 {
		spawnPlayerBolt(e, playerEntry)
		player.BoltCooldown = cfg.Bolt.Cooldown
	}

	state.StateTimer++
}

// movementVector converts held directional actions into a unit-length vector.
func movementVector(input *components.InputData) (dx, dy float64) {
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		dx -= 1
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		dx += 1
	}
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		dy -= 1
	}
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		dy += 1
	}
	if dx != 0 && dy != 0 {
		// Normalize diagonals: 1/sqrt(2)
		dx *= 0.7071
		dy *= 0.7071
	}
	return dx, dy
}

func setState(state *components.StateData, next cfg.StateID) {
	if state.CurrentState == next {
		return
	}
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.StateTimer = 0
}
