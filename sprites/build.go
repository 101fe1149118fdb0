package sprites

import (
	"fmt"

	"github.com/automoto/gridvale/catalog"
	"github.com/automoto/gridvale/pixelgrid"
)

// WalkFrames is the length of every walk cycle: idle, step, idle, alternate
// step.
const WalkFrames = 4

// DirectionAnim is one facing's worth of derived animation. Cycle is nil for
// poses whose step frame was not authored; frames 0 and 2 alias Idle (shared
// immutable grids, never copied).
type DirectionAnim struct {
	Idle  pixelgrid.Grid
	Cycle []pixelgrid.Grid
}

// AnimationSet holds the derived animation for up to four facings, indexed
// by Facing. Facings absent from the source template are nil — never a grid
// of zeros.
type AnimationSet struct {
	dirs [FacingCount]*DirectionAnim
}

// Direction returns the animation for f, or nil if the template did not
// support it.
func (s *AnimationSet) Direction(f Facing) *DirectionAnim {
	if f < 0 || f >= FacingCount {
		return nil
	}
	return s.dirs[f]
}

// Grids returns every distinct grid in the set, for callers that
// pre-rasterize frames.
func (s *AnimationSet) Grids() []pixelgrid.Grid {
	var out []pixelgrid.Grid
	for _, d := range s.dirs {
		if d == nil {
			continue
		}
		out = append(out, d.Idle)
		if d.Cycle != nil {
			// Frames 0 and 2 are the idle grid again.
			out = append(out, d.Cycle[1], d.Cycle[3])
		}
	}
	return out
}

// Build derives the full animation set for a body template.
//
// Down and up cycles use a plain mirror for the alternate step: flipping the
// whole body is the correct way to swap which leg is forward when the pose
// is (near) symmetric. Profile poses are not symmetric — mirroring the step
// also flips the head to the wrong facing, and mirroring twice just restores
// the original — so the alternate step for left and right is spliced: the
// facing's own idle head over the mirrored (or original) step legs.
func Build(t *catalog.BodyTemplate) (*AnimationSet, error) {
	set := &AnimationSet{}

	if t.DownIdle == nil {
		return nil, fmt.Errorf("sprites: template %q has no front idle", t.Name)
	}
	down := &DirectionAnim{Idle: t.DownIdle}
	if t.DownStep != nil {
		down.Cycle = []pixelgrid.Grid{t.DownIdle, t.DownStep, t.DownIdle, pixelgrid.MirrorH(t.DownStep)}
	}
	set.dirs[Down] = down

	if t.UpIdle != nil {
		up := &DirectionAnim{Idle: t.UpIdle}
		if t.UpStep != nil {
			up.Cycle = []pixelgrid.Grid{t.UpIdle, t.UpStep, t.UpIdle, pixelgrid.MirrorH(t.UpStep)}
		}
		set.dirs[Up] = up
	}

	if t.LeftIdle != nil {
		left := &DirectionAnim{Idle: t.LeftIdle}
		rightIdle := pixelgrid.MirrorH(t.LeftIdle)
		right := &DirectionAnim{Idle: rightIdle}

		if t.LeftStep != nil {
			mirroredStep := pixelgrid.MirrorH(t.LeftStep)

			leftAlt, err := pixelgrid.CompositeRows(t.LeftIdle, mirroredStep, pixelgrid.HeadSplit)
			if err != nil {
				return nil, fmt.Errorf("sprites: template %q left cycle: %w", t.Name, err)
			}
			left.Cycle = []pixelgrid.Grid{t.LeftIdle, t.LeftStep, t.LeftIdle, leftAlt}

			// The right step is the mirrored left step. Its alternate frame
			// needs the original left-step leg positions under the
			// right-facing head; mirroring the right step again would bring
			// the left-facing head back.
			rightAlt, err := pixelgrid.CompositeRows(rightIdle, t.LeftStep, pixelgrid.HeadSplit)
			if err != nil {
				return nil, fmt.Errorf("sprites: template %q right cycle: %w", t.Name, err)
			}
			right.Cycle = []pixelgrid.Grid{rightIdle, mirroredStep, rightIdle, rightAlt}
		}

		set.dirs[Left] = left
		set.dirs[Right] = right
	}

	return set, nil
}
