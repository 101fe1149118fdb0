package catalog

import (
	"testing"

	"github.com/automoto/gridvale/pixelgrid"
)

func TestRosterIsStableAndCached(t *testing.T) {
	first := Characters()
	second := Characters()

	if len(first) != 20 {
		t.Fatalf("roster has %d characters, want 20", len(first))
	}
	if &first[0] != &second[0] {
		t.Fatal("roster rebuilt on second call; expected the cached slice")
	}
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Fatalf("roster order unstable at %d: %q vs %q", i, first[i].Name, second[i].Name)
		}
	}
}

func TestTemplatesAreShared(t *testing.T) {
	roster := Characters()
	seen := map[*BodyTemplate][]string{}
	for _, c := range roster {
		seen[c.Template] = append(seen[c.Template], c.Name)
	}
	if len(seen) != 4 {
		t.Fatalf("roster uses %d templates, want 4 shared archetypes", len(seen))
	}
	for tpl, names := range seen {
		if len(names) != 5 {
			t.Fatalf("template %q used by %d characters, want 5", tpl.Name, len(names))
		}
	}
}

func TestAllPosesMatchConvention(t *testing.T) {
	roster := Characters()
	for _, c := range roster {
		for _, g := range c.Template.Grids() {
			r, cols := pixelgrid.Size(g)
			if r != pixelgrid.Rows || cols != pixelgrid.Cols {
				t.Fatalf("%s: pose is %dx%d, want %dx%d", c.Name, r, cols, pixelgrid.Rows, pixelgrid.Cols)
			}
		}
	}
}

func TestDummyIsDownOnly(t *testing.T) {
	tpl, _ := Dummy()
	if tpl.DownIdle == nil || tpl.DownStep == nil {
		t.Fatal("dummy template missing front poses")
	}
	if tpl.UpIdle != nil || tpl.UpStep != nil || tpl.LeftIdle != nil || tpl.LeftStep != nil {
		t.Fatal("dummy template should only author the front poses")
	}
}

func TestPosesUseOnlyPaletteSlots(t *testing.T) {
	roster := Characters()
	for _, c := range roster {
		for _, g := range c.Template.Grids() {
			for r, row := range g {
				for col, v := range row {
					if int(v) >= len(c.Palette) {
						t.Fatalf("%s: cell [%d][%d] = %d exceeds palette", c.Name, r, col, v)
					}
				}
			}
		}
	}
}
