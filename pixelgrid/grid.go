// Package pixelgrid provides the integer grids that every sprite in the game
// is painted from, plus the two transforms the animation builder is based on:
// horizontal mirroring and row-range compositing.
package pixelgrid

import (
	"fmt"
	"image/color"
)

// Character sprite grid convention. All grids that participate in the same
// animation set must share these dimensions; mirroring and compositing
// require it.
const (
	Rows = 20
	Cols = 14

	// HeadSplit is the first leg row: rows [0, HeadSplit) are the head and
	// torso, rows [HeadSplit, Rows) are the legs.
	HeadSplit = 12
)

// Grid is a rectangular block of palette indices. Index 0 means transparent;
// indices 1-7 select a palette slot. The animation code treats the values
// opaquely.
type Grid [][]uint8

// Palette maps grid values to colors. Slot 0 is never drawn.
type Palette [8]color.RGBA

// Palette slot conventions used by the catalog data. Nothing in the
// transform or animation code depends on them.
const (
	SlotTransparent = 0

	SlotOutline    = 1
	SlotPrimary    = 2
	SlotHighlight  = 3
	SlotSkin       = 4
	SlotSkinShadow = 5
	SlotSecondary  = 6
	SlotAccent     = 7
)

// Size returns the row and column counts of g. A nil grid is 0x0.
func Size(g Grid) (rows, cols int) {
	if len(g) == 0 {
		return 0, 0
	}
	return len(g), len(g[0])
}

// Validate checks that g is rectangular and non-empty.
func Validate(g Grid) error {
	if len(g) == 0 || len(g[0]) == 0 {
		return fmt.Errorf("pixelgrid: empty grid")
	}
	w := len(g[0])
	for r, row := range g {
		if len(row) != w {
			return fmt.Errorf("pixelgrid: ragged grid: row %d has %d cells, want %d", r, len(row), w)
		}
	}
	return nil
}

// MirrorH returns a new grid with the column order of every row reversed.
// Mirroring twice returns the original content.
func MirrorH(g Grid) Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		w := len(row)
		mirrored := make([]uint8, w)
		for c, v := range row {
			mirrored[w-1-c] = v
		}
		out[r] = mirrored
	}
	return out
}

// CompositeRows builds a new grid whose rows [0, split) come from head and
// rows [split, H) come from legs. Both sources must have identical
// dimensions and split must be inside (0, H). A violation is a catalog data
// bug, not a runtime condition, so it is reported as an error for the caller
// to fail fast on.
func CompositeRows(head, legs Grid, split int) (Grid, error) {
	hr, hc := Size(head)
	lr, lc := Size(legs)
	if hr != lr || hc != lc {
		return nil, fmt.Errorf("pixelgrid: composite sources differ: %dx%d vs %dx%d", hr, hc, lr, lc)
	}
	if split <= 0 || split >= hr {
		return nil, fmt.Errorf("pixelgrid: split row %d outside (0, %d)", split, hr)
	}
	out := make(Grid, hr)
	for r := 0; r < split; r++ {
		out[r] = cloneRow(head[r])
	}
	for r := split; r < hr; r++ {
		out[r] = cloneRow(legs[r])
	}
	return out, nil
}

// Equal reports whether two grids hold identical cell values.
func Equal(a, b Grid) bool {
	if len(a) != len(b) {
		return false
	}
	for r := range a {
		if len(a[r]) != len(b[r]) {
			return false
		}
		for c := range a[r] {
			if a[r][c] != b[r][c] {
				return false
			}
		}
	}
	return true
}

func cloneRow(row []uint8) []uint8 {
	out := make([]uint8, len(row))
	copy(out, row)
	return out
}
