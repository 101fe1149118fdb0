// Package arena loads the playfield layout from Tiled TMX files: wall
// rectangles and spawn markers, authored as plain object groups. All visuals
// are drawn procedurally, so the maps carry no tilesets or images.
package arena

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

//go:embed levels
var levelFS embed.FS

// Wall is a solid axis-aligned rectangle in world pixels.
type Wall struct {
	X, Y, W, H float64
}

// Spawn is a named spawn marker. Index orders creep spawns; the player spawn
// ignores it.
type Spawn struct {
	X, Y  float64
	Index int
}

// Arena is one parsed playfield.
type Arena struct {
	Name        string
	Width       int // world pixels
	Height      int
	Walls       []Wall
	PlayerSpawn Spawn
	CreepSpawns []Spawn
}

// Load parses a TMX file from fsys. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS for maps under development.
func Load(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	a := &Arena{
		Name:   tmxPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	playerSpawnSeen := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					return nil, fmt.Errorf("%s: wall object %d has no area", tmxPath, o.ID)
				}
				a.Walls = append(a.Walls, Wall{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "Spawns":
			for _, o := range og.Objects {
				kind := o.Class
				if kind == "" {
					kind = o.Type //nolint:staticcheck // TMX uses type= attribute
				}
				switch kind {
				case "player":
					a.PlayerSpawn = Spawn{X: o.X, Y: o.Y}
					playerSpawnSeen = true
				case "creep":
					a.CreepSpawns = append(a.CreepSpawns, Spawn{
						X:     o.X,
						Y:     o.Y,
						Index: o.Properties.GetInt("spawnIndex"),
					})
				}
			}
		}
	}

	if !playerSpawnSeen {
		return nil, fmt.Errorf("%s: no player spawn object", tmxPath)
	}

	// Sort creep spawns by index for a consistent spawn order.
	sort.Slice(a.CreepSpawns, func(i, j int) bool {
		return a.CreepSpawns[i].Index < a.CreepSpawns[j].Index
	})

	return a, nil
}

// MustLoadDefault loads the embedded arena map, panicking on parse failure.
// A broken embedded map is a build defect, not a runtime condition.
func MustLoadDefault() *Arena {
	a, err := Load(levelFS, "levels/arena.tmx")
	if err != nil {
		panic(fmt.Sprintf("embedded arena map: %v", err))
	}
	return a
}
