package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gridvale/components"
	cfg "github.com/automoto/gridvale/config"
	"github.com/automoto/gridvale/sprites"
	"github.com/automoto/gridvale/tags"
)

// UpdateCreeps drives the wandering training dummies: alternate wander legs
// and pauses, with a respawn countdown after a knockout. Dummies only have
// front-facing poses, so turning them toward their wander direction is a
// no-op for every direction but down and they keep facing the camera.
func UpdateCreeps(e *ecs.ECS) {
	components.Creep.Each(e.World, func(entry *donburi.Entry) {
		creep := components.Creep.Get(entry)
		physics := components.Physics.Get(entry)
		sprite := components.PixelSprite.Get(entry)
		state := components.State.Get(entry)

		if creep.InvulnFrames > 0 {
			creep.InvulnFrames--
		}

		if state.CurrentState == cfg.StateRespawning {
			creep.RespawnFrames--
			if creep.RespawnFrames <= 0 {
				respawnCreep(e, entry)
			}
			return
		}

		bumpPlayer(e, entry)

		if creep.PauseFrames > 0 {
			creep.PauseFrames--
			physics.VelX, physics.VelY = 0, 0
			sprite.Animator.SetWalking(false)
			setState(state, cfg.StatePause)
			if creep.PauseFrames == 0 {
				startWanderLeg(creep)
			}
			return
		}

		creep.LegFrames--
		if creep.LegFrames <= 0 {
			creep.PauseFrames = cfg.Creep.PauseFrames
			physics.VelX, physics.VelY = 0, 0
			sprite.Animator.SetWalking(false)
			setState(state, cfg.StatePause)
			return
		}

		physics.VelX = creep.DirX * physics.MoveSpeed
		physics.VelY = creep.DirY * physics.MoveSpeed
		if f, ok := sprites.FromVector(creep.DirX, creep.DirY); ok {
			sprite.Animator.SetFacing(f)
		}
		sprite.Animator.SetWalking(true)
		setState(state, cfg.StateWander)
	})
}

// bumpPlayer deals contact damage when a dummy overlaps the hero. Roll
// i-frames and regular post-hit i-frames both absorb the bump; the combat
// system checks those when it processes the event.
func bumpPlayer(e *ecs.ECS, entry *donburi.Entry) {
	obj := components.Object.Get(entry)
	check := obj.Check(0, 0, tags.ResolvPlayer)
	if check == nil {
		return
	}
	for _, hit := range check.ObjectsByTags(tags.ResolvPlayer) {
		target, ok := hit.Data.(*donburi.Entry)
		if !ok || !target.Valid() {
			continue
		}
		kx, ky := knockbackFrom(obj.Object, hit, cfg.Creep.ContactKnockback)
		applyDamage(e, target, cfg.Creep.ContactDamage, kx, ky)
	}
}

// startWanderLeg rolls a fresh direction and duration for the next leg.
func startWanderLeg(creep *components.CreepData) {
	angle := creep.Rng.Float64() * 2 * math.Pi
	creep.DirX = math.Cos(angle)
	creep.DirY = math.Sin(angle)
	creep.LegFrames = cfg.Creep.WanderFrames/2 + creep.Rng.Intn(cfg.Creep.WanderFrames)
}

// knockOutCreep takes a creep off the field and starts its respawn timer.
// The collision object leaves the space so nothing hits a ghost.
func knockOutCreep(e *ecs.ECS, entry *donburi.Entry) {
	creep := components.Creep.Get(entry)
	state := components.State.Get(entry)
	obj := components.Object.Get(entry)

	creep.RespawnFrames = cfg.Creep.RespawnDelay
	setState(state, cfg.StateRespawning)

	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Remove(obj.Object)
	}
}

// respawnCreep puts a knocked-out creep back at its spawn marker.
func respawnCreep(e *ecs.ECS, entry *donburi.Entry) {
	creep := components.Creep.Get(entry)
	state := components.State.Get(entry)
	obj := components.Object.Get(entry)
	health := components.Health.Get(entry)

	obj.X = creep.SpawnX
	obj.Y = creep.SpawnY
	obj.Update()
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj.Object)
	}

	health.Current = health.Max
	creep.InvulnFrames = cfg.Creep.InvulnFrames
	creep.PauseFrames = cfg.Creep.PauseFrames
	setState(state, cfg.StatePause)
}
