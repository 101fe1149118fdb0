package sprites

import (
	"testing"

	"github.com/automoto/gridvale/catalog"
)

func fullSet(t *testing.T) *AnimationSet {
	t.Helper()
	set, err := Build(fullCharacter(t).Template)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return set
}

func downOnlySet(t *testing.T) *AnimationSet {
	t.Helper()
	tpl, _ := catalog.Dummy()
	set, err := Build(tpl)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return set
}

func TestAssignResetsToFrontIdle(t *testing.T) {
	set := fullSet(t)
	var a Animator

	if _, ok := a.Current(); ok {
		t.Fatal("fresh animator should have nothing to draw")
	}

	a.Assign(set)
	if a.Facing() != Down || a.Walking() || a.Frame() != 0 {
		t.Fatalf("after Assign: facing=%v walking=%v frame=%d", a.Facing(), a.Walking(), a.Frame())
	}
	cur, ok := a.Current()
	if !ok || !aliases(cur, set.Direction(Down).Idle) {
		t.Fatal("after Assign the displayed grid must be the front idle")
	}
}

func TestTurnCarriesFrameAndTimer(t *testing.T) {
	set := fullSet(t)
	var a Animator
	a.Assign(set)
	a.SetWalking(true)

	// Land on frame 1 with some leftover time on the clock.
	a.Tick(FrameDuration + 0.02)
	if a.Frame() != 1 {
		t.Fatalf("frame = %d, want 1", a.Frame())
	}

	if changed := a.SetFacing(Left); !changed {
		t.Fatal("turning mid-walk should change the displayed grid")
	}
	if a.Frame() != 1 {
		t.Fatalf("turn reset the frame to %d; it must carry over", a.Frame())
	}
	cur, _ := a.Current()
	if !aliases(cur, set.Direction(Left).Cycle[1]) {
		t.Fatal("after turning, the displayed grid must be the new facing at the carried frame")
	}

	// The leftover 0.02s still counts toward the next advance.
	if a.Tick(FrameDuration - 0.02 - 1e-9) {
		t.Fatal("advanced before the carried timer filled a full frame")
	}
	if !a.Tick(1e-8) {
		t.Fatal("carried timer was discarded by the turn")
	}
	if a.Frame() != 2 {
		t.Fatalf("frame = %d, want 2", a.Frame())
	}
}

func TestSetFacingIgnoresMissingDirection(t *testing.T) {
	set := downOnlySet(t)
	var a Animator
	a.Assign(set)
	a.SetWalking(true)
	a.Tick(FrameDuration)
	before, _ := a.Current()

	for _, f := range []Facing{Up, Left, Right} {
		if changed := a.SetFacing(f); changed {
			t.Fatalf("turn to missing facing %v reported a change", f)
		}
		if a.Facing() != Down {
			t.Fatalf("turn to missing facing %v changed the facing", f)
		}
	}
	after, _ := a.Current()
	if !aliases(before, after) || a.Frame() != 1 {
		t.Fatal("turn to a missing facing must leave the walk state untouched")
	}
}

func TestSetFacingSameDirectionIsNoop(t *testing.T) {
	var a Animator
	a.Assign(fullSet(t))
	if a.SetFacing(Down) {
		t.Fatal("re-facing the current direction reported a change")
	}
}

func TestStopSnapsToIdle(t *testing.T) {
	set := fullSet(t)
	var a Animator
	a.Assign(set)

	if a.SetWalking(true) {
		t.Fatal("starting a walk must not change the grid before the first tick")
	}
	a.Tick(2 * FrameDuration)
	if a.Frame() != 2 {
		t.Fatalf("frame = %d, want 2", a.Frame())
	}

	// Frame 2 aliases the idle grid, so stopping from here repaints nothing.
	if a.SetWalking(false) {
		t.Fatal("stopping on an idle-aliased frame reported a change")
	}
	if a.Frame() != 0 || a.Walking() {
		t.Fatalf("after stop: frame=%d walking=%v", a.Frame(), a.Walking())
	}

	// Stopping from a step frame does repaint.
	a.SetWalking(true)
	a.Tick(FrameDuration)
	if !a.SetWalking(false) {
		t.Fatal("stopping on a step frame must report a change")
	}
	cur, _ := a.Current()
	if !aliases(cur, set.Direction(Down).Idle) {
		t.Fatal("stop must snap to the idle pose")
	}
}

func TestTickIsDriftFree(t *testing.T) {
	var a Animator
	a.Assign(fullSet(t))
	a.SetWalking(true)

	// 600 ticks of 1/60s is exactly 10s = 60 frame advances, regardless of
	// how the remainder falls across ticks.
	advances := 0
	for i := 0; i < 600; i++ {
		if a.Tick(1.0 / 60.0) {
			advances++
		}
	}
	if advances != 60 {
		t.Fatalf("advanced %d frames over 10s, want 60", advances)
	}
	if a.Frame() != 0 {
		t.Fatalf("frame = %d after a whole number of cycles, want 0", a.Frame())
	}

	// One oversized tick crossing several frame boundaries catches up in a
	// single call.
	a2 := Animator{}
	a2.Assign(fullSet(t))
	a2.SetWalking(true)
	if !a2.Tick(3*FrameDuration + 0.001) {
		t.Fatal("oversized tick did not advance")
	}
	if a2.Frame() != 3 {
		t.Fatalf("frame = %d after 3-frame tick, want 3", a2.Frame())
	}
}

func TestTickWhileStandingDoesNothing(t *testing.T) {
	var a Animator
	a.Assign(fullSet(t))
	for i := 0; i < 10; i++ {
		if a.Tick(FrameDuration) {
			t.Fatal("tick advanced a standing animator")
		}
	}
	if a.Frame() != 0 {
		t.Fatal("standing animator accumulated frames")
	}
}

func TestWalkScenario(t *testing.T) {
	set := fullSet(t)
	var a Animator
	a.Assign(set)

	if !a.SetFacing(Left) {
		t.Fatal("turning a standing sprite must repaint")
	}
	a.SetWalking(true)

	left := set.Direction(Left)
	want := []struct {
		frame int
		grid  int
	}{
		{1, 1}, {2, 2}, {3, 3},
	}
	for _, w := range want {
		if !a.Tick(FrameDuration) {
			t.Fatalf("tick to frame %d did not advance", w.frame)
		}
		if a.Frame() != w.frame {
			t.Fatalf("frame = %d, want %d", a.Frame(), w.frame)
		}
		cur, _ := a.Current()
		if !aliases(cur, left.Cycle[w.grid]) {
			t.Fatalf("frame %d shows the wrong grid", w.frame)
		}
	}

	// Full loop back to the idle-aliased frame 0.
	a.Tick(FrameDuration)
	cur, _ := a.Current()
	if a.Frame() != 0 || !aliases(cur, left.Idle) {
		t.Fatal("cycle did not wrap back to the idle-aliased frame")
	}
}
