package systems

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gridvale/catalog"
	"github.com/automoto/gridvale/components"
	cfg "github.com/automoto/gridvale/config"
	"github.com/automoto/gridvale/systems/factory"
)

// newContactWorld builds a minimal arena with the hero and one dummy
// standing on top of each other.
func newContactWorld(t *testing.T) (*ecs.ECS, *donburi.Entry, *donburi.Entry) {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 480, 16, 16)
	player := factory.CreatePlayer(e, 100, 100, catalog.Characters()[0], "Tester")
	creep := factory.CreateCreep(e, 104, 102, 7)
	return e, player, creep
}

func TestCreepContactDamagesPlayer(t *testing.T) {
	e, player, _ := newContactWorld(t)

	UpdateCreeps(e)
	UpdateCombat(e)

	hp := components.Health.Get(player)
	want := cfg.Player.Health - cfg.Creep.ContactDamage
	if hp.Current != want {
		t.Fatalf("player health = %d, want %d", hp.Current, want)
	}
	if got := components.Player.Get(player).InvulnFrames; got != cfg.Player.InvulnFrames {
		t.Errorf("InvulnFrames = %d, want %d", got, cfg.Player.InvulnFrames)
	}
	physics := components.Physics.Get(player)
	if physics.KnockX == 0 && physics.KnockY == 0 {
		t.Error("expected knockback away from the dummy")
	}
	if flash := components.Flash.Get(player); flash.Duration != cfg.Combat.DamageFlashFrames {
		t.Errorf("flash duration = %d, want %d", flash.Duration, cfg.Combat.DamageFlashFrames)
	}
}

func TestContactDamageRespectsInvulnFrames(t *testing.T) {
	e, player, _ := newContactWorld(t)

	UpdateCreeps(e)
	UpdateCombat(e)
	after := components.Health.Get(player).Current

	// Still overlapping on the next tick; i-frames absorb the bump.
	UpdateCreeps(e)
	UpdateCombat(e)

	if got := components.Health.Get(player).Current; got != after {
		t.Errorf("player health = %d, want %d (hit during i-frames)", got, after)
	}
}

func TestRollGrantsContactImmunity(t *testing.T) {
	e, player, _ := newContactWorld(t)

	roll := components.Roll.Get(player)
	roll.Active = true
	roll.InvulnFrames = cfg.Roll.InvulnFrames

	UpdateCreeps(e)
	UpdateCombat(e)

	hp := components.Health.Get(player)
	if hp.Current != hp.Max {
		t.Errorf("player health = %d, want %d (rolling through a dummy)", hp.Current, hp.Max)
	}
}

func TestRespawningCreepDoesNotBump(t *testing.T) {
	e, player, creep := newContactWorld(t)

	components.Health.Get(creep).Current = 0
	knockOutCreep(e, creep)

	UpdateCreeps(e)
	UpdateCombat(e)

	hp := components.Health.Get(player)
	if hp.Current != hp.Max {
		t.Errorf("player health = %d, want %d (dummy is off the field)", hp.Current, hp.Max)
	}
}
