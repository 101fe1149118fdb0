package config

// StateID identifies a character behavior state.
type StateID int

const (
	StateNone StateID = iota

	StateIdle
	StateWalk
	StateSwing
	StateRoll
	StateHit
	StateDead

	// Creep-only states
	StateWander
	StatePause
	StateRespawning
)

func (s StateID) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalk:
		return "walk"
	case StateSwing:
		return "swing"
	case StateRoll:
		return "roll"
	case StateHit:
		return "hit"
	case StateDead:
		return "dead"
	case StateWander:
		return "wander"
	case StatePause:
		return "pause"
	case StateRespawning:
		return "respawning"
	}
	return "none"
}
