// Package sprites derives full 4-direction walk animations from the three
// hand-authored poses in a body template, and drives them through a small
// per-sprite state machine.
package sprites

// Facing is one of the four discrete directions a character can look in.
type Facing int

const (
	Down Facing = iota
	Up
	Left
	Right

	FacingCount
)

func (f Facing) String() string {
	switch f {
	case Down:
		return "down"
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// FromVector picks a facing from a movement vector. Horizontal movement wins
// ties, matching how strafing reads on screen. ok is false for a zero
// vector.
func FromVector(dx, dy float64) (f Facing, ok bool) {
	if dx == 0 && dy == 0 {
		return Down, false
	}
	ax, ay := dx, dy
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	if ax >= ay {
		if dx < 0 {
			return Left, true
		}
		return Right, true
	}
	if dy < 0 {
		return Up, true
	}
	return Down, true
}
