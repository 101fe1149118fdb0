package sprites

import "github.com/automoto/gridvale/pixelgrid"

// FrameDuration is the walk cycle frame time: 6 fps.
const FrameDuration = 1.0 / 6.0

// Animator is the per-sprite facing and walk-cycle state machine. It owns no
// grids — current always aliases a grid inside the assigned AnimationSet.
// Every mutating method reports whether the displayed grid changed, so the
// caller can request a repaint only when something is actually different.
type Animator struct {
	set    *AnimationSet
	facing Facing
	idle   pixelgrid.Grid
	cycle  []pixelgrid.Grid

	walking bool
	timer   float64
	frame   int
	current pixelgrid.Grid
}

// Assign replaces the animation set and resets the machine: facing down,
// standing still, frame and timer zeroed. A set without a down entry leaves
// the animator with nothing to show (caller error; Current reports it).
func (a *Animator) Assign(set *AnimationSet) {
	a.set = set
	a.facing = Down
	a.walking = false
	a.timer = 0
	a.frame = 0
	a.idle = nil
	a.cycle = nil
	a.current = nil
	if set != nil {
		if d := set.Direction(Down); d != nil {
			a.idle = d.Idle
			a.cycle = d.Cycle
			a.current = d.Idle
		}
	}
}

// Facing returns the direction the sprite currently looks in.
func (a *Animator) Facing() Facing { return a.facing }

// Walking reports whether the walk cycle is running.
func (a *Animator) Walking() bool { return a.walking }

// Frame returns the current walk-cycle frame index (0-3).
func (a *Animator) Frame() int { return a.frame }

// Current returns the grid to draw. ok is false when no character with a
// usable pose has been assigned yet.
func (a *Animator) Current() (pixelgrid.Grid, bool) {
	if a.current == nil {
		return nil, false
	}
	return a.current, true
}

// SetFacing turns the sprite. A request for the current facing, or for a
// direction the set has no data for, is silently ignored and the sprite
// keeps its previous facing. Mid-walk turns carry the cycle frame and timer
// over unchanged so the stride never hiccups. Returns whether the displayed
// grid changed.
func (a *Animator) SetFacing(f Facing) bool {
	if a.set == nil || f == a.facing {
		return false
	}
	d := a.set.Direction(f)
	if d == nil {
		return false
	}

	a.facing = f
	a.idle = d.Idle
	a.cycle = d.Cycle

	prev := a.current
	if a.walking && len(a.cycle) > 0 {
		a.current = a.cycle[a.frame]
	} else {
		a.current = a.idle
	}
	return !sameGrid(prev, a.current)
}

// SetWalking starts or stops the walk cycle. Stopping snaps immediately to
// the idle pose and rewinds frame and timer, so the sprite never freezes
// mid-stride. Starting changes nothing until the next Tick. Returns whether
// the displayed grid changed.
func (a *Animator) SetWalking(walking bool) bool {
	if walking == a.walking {
		return false
	}
	a.walking = walking
	if !walking {
		a.timer = 0
		a.frame = 0
		prev := a.current
		a.current = a.idle
		return !sameGrid(prev, a.current)
	}
	return false
}

// Tick advances the walk cycle by dt seconds. The timer keeps its remainder
// across frame advances, so uneven delta times never drift the cycle.
// Returns true only when the frame index actually changed (the repaint
// signal).
func (a *Animator) Tick(dt float64) bool {
	if !a.walking || len(a.cycle) == 0 {
		return false
	}
	a.timer += dt
	advanced := false
	for a.timer >= FrameDuration {
		a.timer -= FrameDuration
		a.frame = (a.frame + 1) % WalkFrames
		a.current = a.cycle[a.frame]
		advanced = true
	}
	return advanced
}

// sameGrid is identity, not content, comparison: cycle frames 0/2 alias the
// idle grid, so identity captures "nothing new to paint".
func sameGrid(a, b pixelgrid.Grid) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) == 0 && len(b) == 0
	}
	return &a[0] == &b[0]
}
