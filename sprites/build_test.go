package sprites

import (
	"testing"

	"github.com/automoto/gridvale/catalog"
	"github.com/automoto/gridvale/pixelgrid"
)

// aliases reports whether two grids share backing storage (frames 0/2 of a
// cycle must alias the idle grid rather than copy it).
func aliases(a, b pixelgrid.Grid) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

func fullCharacter(t *testing.T) catalog.Character {
	t.Helper()
	for _, c := range catalog.Characters() {
		if c.Template.LeftIdle != nil && c.Template.LeftStep != nil &&
			c.Template.UpIdle != nil && c.Template.UpStep != nil {
			return c
		}
	}
	t.Fatal("no fully-authored character in the catalog")
	return catalog.Character{}
}

func TestBuildProducesAllFourFacings(t *testing.T) {
	c := fullCharacter(t)
	set, err := Build(c.Template)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for f := Down; f < FacingCount; f++ {
		d := set.Direction(f)
		if d == nil {
			t.Fatalf("facing %v missing from the built set", f)
		}
		if len(d.Cycle) != WalkFrames {
			t.Fatalf("facing %v cycle has %d frames, want %d", f, len(d.Cycle), WalkFrames)
		}
		if !aliases(d.Cycle[0], d.Idle) || !aliases(d.Cycle[2], d.Idle) {
			t.Fatalf("facing %v: cycle frames 0/2 must alias the idle grid", f)
		}
	}
}

func TestRightIdleIsMirroredLeftIdle(t *testing.T) {
	c := fullCharacter(t)
	set, err := Build(c.Template)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := pixelgrid.MirrorH(c.Template.LeftIdle)
	if !pixelgrid.Equal(set.Direction(Right).Idle, want) {
		t.Fatal("right idle is not the mirrored left idle")
	}
	if !pixelgrid.Equal(set.Direction(Right).Cycle[1], pixelgrid.MirrorH(c.Template.LeftStep)) {
		t.Fatal("right step is not the mirrored left step")
	}
}

func TestProfileAlternateStepsKeepTheirHeads(t *testing.T) {
	c := fullCharacter(t)
	set, err := Build(c.Template)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	left := set.Direction(Left)
	right := set.Direction(Right)
	split := pixelgrid.HeadSplit
	mirroredStep := pixelgrid.MirrorH(c.Template.LeftStep)

	for r := 0; r < pixelgrid.Rows; r++ {
		for col := 0; col < pixelgrid.Cols; col++ {
			// Left alternate step: own idle head, mirrored step legs.
			wantL := left.Idle[r][col]
			if r >= split {
				wantL = mirroredStep[r][col]
			}
			if left.Cycle[3][r][col] != wantL {
				t.Fatalf("left alt frame differs at [%d][%d]", r, col)
			}

			// Right alternate step: right-facing head, the original
			// (un-mirrored) left-step legs.
			wantR := right.Idle[r][col]
			if r >= split {
				wantR = c.Template.LeftStep[r][col]
			}
			if right.Cycle[3][r][col] != wantR {
				t.Fatalf("right alt frame differs at [%d][%d]", r, col)
			}
		}
	}
}

func TestBuildDownOnlyTemplate(t *testing.T) {
	tpl, _ := catalog.Dummy()
	set, err := Build(tpl)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if set.Direction(Down) == nil {
		t.Fatal("down entry missing")
	}
	if len(set.Direction(Down).Cycle) != WalkFrames {
		t.Fatal("down cycle missing or wrong length")
	}
	for _, f := range []Facing{Up, Left, Right} {
		if set.Direction(f) != nil {
			t.Fatalf("facing %v should be absent for a down-only template", f)
		}
	}
}

func TestBuildIdleOnlyDirectionHasNoCycle(t *testing.T) {
	tpl := &catalog.BodyTemplate{
		Name:     "statue",
		DownIdle: pixelgrid.MirrorH(mustDummyIdle()),
	}
	set, err := Build(tpl)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	d := set.Direction(Down)
	if d == nil || d.Cycle != nil {
		t.Fatal("idle-only direction should have an idle grid and no walk cycle")
	}
}

func TestBuildRejectsMalformedTemplate(t *testing.T) {
	tpl := &catalog.BodyTemplate{
		Name:     "broken",
		DownIdle: mustDummyIdle(),
		DownStep: mustDummyIdle(),
		LeftIdle: mustDummyIdle(),
		LeftStep: pixelgrid.Grid{{1, 2}, {3, 4}}, // wrong dimensions
	}
	if _, err := Build(tpl); err == nil {
		t.Fatal("expected Build to fail on mismatched pose dimensions")
	}
}

func mustDummyIdle() pixelgrid.Grid {
	tpl, _ := catalog.Dummy()
	return tpl.DownIdle
}
