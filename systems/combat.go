package systems

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gridvale/components"
	cfg "github.com/automoto/gridvale/config"
	"github.com/automoto/gridvale/tags"
)

// UpdateCombat processes queued damage events: health, knockback, flashes,
// screen shake, and knockouts.
func UpdateCombat(e *ecs.ECS) {
	for entry := range components.DamageEvent.Iter(e.World) {
		dmg := components.DamageEvent.Get(entry)

		if invulnerable(entry) {
			donburi.Remove[components.DamageEventData](entry, components.DamageEvent)
			continue
		}

		hp := components.Health.Get(entry)
		hp.Current -= dmg.Amount
		if hp.Current < 0 {
			hp.Current = 0
		}

		if entry.HasComponent(components.Physics) {
			physics := components.Physics.Get(entry)
			physics.KnockX = dmg.KnockbackX
			physics.KnockY = dmg.KnockbackY
		}

		if entry.HasComponent(tags.Creep) {
			creep := components.Creep.Get(entry)
			creep.InvulnFrames = cfg.Creep.InvulnFrames
			components.HealthBar.Get(entry).TimeToLive = 120
			startFlash(entry, cfg.Combat.HitFlashFrames, 1, 1, 1)
			TriggerScreenShake(e, cfg.ScreenShake.HitIntensity, cfg.ScreenShake.HitDuration)

			if hp.Current == 0 {
				knockOutCreep(e, entry)
				creditKnockout(e)
			}
		} else if entry.HasComponent(components.Player) {
			player := components.Player.Get(entry)
			player.InvulnFrames = cfg.Player.InvulnFrames
			startFlash(entry, cfg.Combat.DamageFlashFrames, 1, 0.3, 0.3)
			TriggerScreenShake(e, cfg.ScreenShake.DamageIntensity, cfg.ScreenShake.DamageDuration)
		}

		donburi.Remove[components.DamageEventData](entry, components.DamageEvent)
	}

	tickHealthBars(e)
}

// applyDamage queues a damage event on the target. Events are coalesced:
// a second hit in the same tick just takes the larger amount.
func applyDamage(e *ecs.ECS, target *donburi.Entry, amount int, kx, ky float64) {
	if !target.HasComponent(components.Health) {
		return
	}
	if target.HasComponent(components.DamageEvent) {
		existing := components.DamageEvent.Get(target)
		if amount > existing.Amount {
			existing.Amount = amount
			existing.KnockbackX = kx
			existing.KnockbackY = ky
		}
		return
	}
	donburi.Add(target, components.DamageEvent, &components.DamageEventData{
		Amount:     amount,
		KnockbackX: kx,
		KnockbackY: ky,
	})
}

func invulnerable(entry *donburi.Entry) bool {
	if entry.HasComponent(components.Player) {
		player := components.Player.Get(entry)
		roll := components.Roll.Get(entry)
		return player.InvulnFrames > 0 || (roll.Active && roll.InvulnFrames > 0)
	}
	if entry.HasComponent(tags.Creep) {
		return components.Creep.Get(entry).InvulnFrames > 0
	}
	return false
}

// knockbackFrom points from the attacker's center through the target's
// center, scaled to force.
func knockbackFrom(attacker, target *resolv.Object, force float64) (kx, ky float64) {
	ax := attacker.X + attacker.W/2
	ay := attacker.Y + attacker.H/2
	tx := target.X + target.W/2
	ty := target.Y + target.H/2
	nx, ny := normalize(tx-ax, ty-ay)
	return nx * force, ny * force
}

func normalize(x, y float64) (float64, float64) {
	length := math.Hypot(x, y)
	if length == 0 {
		return 0, 0
	}
	return x / length, y / length
}

func creditKnockout(e *ecs.ECS) {
	if playerEntry, ok := tags.Player.First(e.World); ok {
		components.Player.Get(playerEntry).Score++
	}
}

func tickHealthBars(e *ecs.ECS) {
	components.HealthBar.Each(e.World, func(entry *donburi.Entry) {
		bar := components.HealthBar.Get(entry)
		if bar.TimeToLive > 0 {
			bar.TimeToLive--
		}
	})
}
