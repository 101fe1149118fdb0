package arena

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadEmbeddedArena(t *testing.T) {
	a, err := Load(levelFS, "levels/arena.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if a.Width != 640 || a.Height != 480 {
		t.Fatalf("arena is %dx%d, want 640x480", a.Width, a.Height)
	}
	if len(a.Walls) == 0 {
		t.Fatal("arena has no walls")
	}
	if a.PlayerSpawn.X == 0 && a.PlayerSpawn.Y == 0 {
		t.Fatal("player spawn missing")
	}
	for i, s := range a.CreepSpawns {
		if s.Index != i {
			t.Fatalf("creep spawns not sorted by index: got %d at position %d", s.Index, i)
		}
	}

	// Everything must sit inside the playfield.
	for _, w := range a.Walls {
		if w.X < 0 || w.Y < 0 || w.X+w.W > float64(a.Width) || w.Y+w.H > float64(a.Height) {
			t.Fatalf("wall %+v leaves the playfield", w)
		}
	}
}

func TestLoadRejectsMapWithoutPlayerSpawn(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/empty.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16">
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="64" height="16"/>
 </objectgroup>
</map>`)},
	}

	if _, err := Load(fsys, "levels/empty.tmx"); err == nil {
		t.Fatal("expected an error for a map without a player spawn")
	} else if !strings.Contains(err.Error(), "player spawn") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(levelFS, "levels/nope.tmx"); err == nil {
		t.Fatal("expected an error for a missing map file")
	}
}

func TestMustLoadDefault(t *testing.T) {
	a := MustLoadDefault()
	if len(a.CreepSpawns) != 4 {
		t.Fatalf("default arena has %d creep spawns, want 4", len(a.CreepSpawns))
	}
}
