package catalog

import "github.com/automoto/gridvale/pixelgrid"

// BodyTemplate is the set of hand-authored poses for one body archetype.
// DownIdle and DownStep are always present. Up and left poses are optional;
// a template without them simply yields fewer facings (the arena dummies use
// a down-only template). Templates are shared read-only between every
// character built on them.
type BodyTemplate struct {
	Name string

	DownIdle pixelgrid.Grid
	DownStep pixelgrid.Grid
	UpIdle   pixelgrid.Grid
	UpStep   pixelgrid.Grid
	LeftIdle pixelgrid.Grid
	LeftStep pixelgrid.Grid
}

// Grids returns the non-nil poses for validation.
func (t *BodyTemplate) Grids() []pixelgrid.Grid {
	all := []pixelgrid.Grid{t.DownIdle, t.DownStep, t.UpIdle, t.UpStep, t.LeftIdle, t.LeftStep}
	var out []pixelgrid.Grid
	for _, g := range all {
		if g != nil {
			out = append(out, g)
		}
	}
	return out
}

// The pose grids below follow the 20x14 convention: rows 0-11 are head and
// torso, rows 12-19 are legs (pixelgrid.HeadSplit). Values are palette
// slots; 0 is transparent.
//
// Only three facings are authored per body. Right-facing poses and the
// second stride frame are derived by the sprite builder.

var knightTemplate = &BodyTemplate{
	Name: "knight",
	DownIdle: pixelgrid.Grid{
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 3, 2, 2, 3, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 4, 4, 4, 4, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 1, 4, 4, 1, 4, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 5, 5, 4, 4, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 4, 4, 4, 4, 1, 0, 0, 0, 0},
		{0, 0, 1, 1, 2, 2, 2, 2, 2, 2, 1, 1, 0, 0},
		{0, 1, 2, 1, 2, 6, 2, 2, 6, 2, 1, 2, 1, 0},
		{0, 1, 2, 1, 2, 2, 7, 7, 2, 2, 1, 2, 1, 0},
		{0, 1, 4, 1, 2, 2, 2, 2, 2, 2, 1, 4, 1, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 5, 5, 1, 1, 5, 5, 1, 0, 0, 0},
		{0, 0, 0, 1, 5, 5, 1, 1, 5, 5, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 0, 0},
	},
	DownStep: pixelgrid.Grid{
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 3, 2, 2, 3, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 4, 4, 4, 4, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 1, 4, 4, 1, 4, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 5, 5, 4, 4, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 4, 4, 4, 4, 1, 0, 0, 0, 0},
		{0, 0, 1, 1, 2, 2, 2, 2, 2, 2, 1, 1, 0, 0},
		{0, 1, 2, 1, 2, 6, 2, 2, 6, 2, 1, 2, 1, 0},
		{0, 0, 1, 1, 2, 2, 7, 7, 2, 2, 1, 1, 0, 0},
		{0, 0, 1, 4, 2, 2, 2, 2, 2, 2, 4, 1, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 1, 2, 2, 1, 0, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 1, 2, 2, 1, 0, 0, 1, 2, 2, 1, 0, 0},
		{0, 0, 1, 2, 2, 1, 0, 0, 1, 2, 2, 1, 0, 0},
		{0, 0, 1, 5, 5, 1, 0, 0, 0, 1, 5, 5, 1, 0},
		{0, 0, 1, 5, 5, 1, 0, 0, 0, 1, 5, 5, 1, 0},
		{0, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 0},
		{0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 1, 1, 1, 0},
	},
	UpIdle: pixelgrid.Grid{
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 3, 3, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 4, 4, 4, 4, 1, 0, 0, 0, 0},
		{0, 0, 1, 1, 2, 2, 2, 2, 2, 2, 1, 1, 0, 0},
		{0, 1, 2, 1, 2, 2, 2, 2, 2, 2, 1, 2, 1, 0},
		{0, 1, 2, 1, 2, 2, 2, 2, 2, 2, 1, 2, 1, 0},
		{0, 1, 4, 1, 2, 2, 2, 2, 2, 2, 1, 4, 1, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 5, 5, 1, 1, 5, 5, 1, 0, 0, 0},
		{0, 0, 0, 1, 5, 5, 1, 1, 5, 5, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 0, 0},
	},
	UpStep: pixelgrid.Grid{
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 3, 3, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 4, 4, 4, 4, 1, 0, 0, 0, 0},
		{0, 0, 1, 1, 2, 2, 2, 2, 2, 2, 1, 1, 0, 0},
		{0, 1, 2, 1, 2, 2, 2, 2, 2, 2, 1, 2, 1, 0},
		{0, 0, 1, 1, 2, 2, 2, 2, 2, 2, 1, 1, 0, 0},
		{0, 0, 1, 4, 2, 2, 2, 2, 2, 2, 4, 1, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 1, 2, 2, 1, 0, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 1, 2, 2, 1, 0, 0, 1, 2, 2, 1, 0, 0},
		{0, 0, 1, 2, 2, 1, 0, 0, 1, 2, 2, 1, 0, 0},
		{0, 0, 1, 5, 5, 1, 0, 0, 0, 1, 5, 5, 1, 0},
		{0, 0, 1, 5, 5, 1, 0, 0, 0, 1, 5, 5, 1, 0},
		{0, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 0},
		{0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 1, 1, 1, 0},
	},
	LeftIdle: pixelgrid.Grid{
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 3, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 1, 4, 4, 4, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 1, 4, 1, 4, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 1, 4, 4, 4, 4, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 4, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 6, 2, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 1, 2, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 1, 4, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 5, 5, 5, 5, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 5, 5, 5, 5, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
	},
	LeftStep: pixelgrid.Grid{
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 3, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 1, 4, 4, 4, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 1, 4, 1, 4, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 1, 4, 4, 4, 4, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 4, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 6, 2, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 1, 2, 2, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 1, 4, 1, 0, 1, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 2, 2, 1, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 1, 2, 2, 1, 0, 1, 2, 2, 2, 1, 0, 0, 0},
		{0, 1, 2, 2, 1, 0, 0, 1, 2, 2, 1, 0, 0, 0},
		{1, 5, 5, 1, 0, 0, 0, 1, 5, 5, 1, 0, 0, 0},
		{1, 5, 5, 1, 0, 0, 0, 0, 1, 5, 5, 1, 0, 0},
		{1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0},
		{1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 0},
	},
}

var rangerTemplate = &BodyTemplate{
	Name: "ranger",
	DownIdle: pixelgrid.Grid{
		{0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 6, 6, 6, 6, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 6, 4, 4, 4, 4, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 6, 1, 4, 4, 1, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 5, 5, 4, 4, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 4, 4, 4, 4, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 1, 1, 2, 7, 2, 2, 7, 2, 1, 1, 0, 0},
		{0, 0, 1, 1, 2, 2, 2, 2, 2, 2, 1, 1, 0, 0},
		{0, 0, 1, 4, 2, 2, 2, 2, 2, 2, 4, 1, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 5, 5, 1, 1, 5, 5, 1, 0, 0, 0},
		{0, 0, 0, 1, 5, 5, 1, 1, 5, 5, 1, 0, 0, 0},
		{0, 0, 0, 1, 5, 5, 1, 1, 5, 5, 1, 0, 0, 0},
		{0, 0, 0, 1, 5, 5, 1, 1, 5, 5, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 0, 0, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 0, 0, 1, 1, 1, 0, 0, 0},
	},
	DownStep: pixelgrid.Grid{
		{0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 6, 6, 6, 6, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 6, 4, 4, 4, 4, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 6, 1, 4, 4, 1, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 5, 5, 4, 4, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 4, 4, 4, 4, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 1, 1, 2, 7, 2, 2, 7, 2, 1, 1, 0, 0},
		{0, 0, 1, 4, 2, 2, 2, 2, 2, 2, 1, 1, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 4, 1, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 5, 5, 1, 1, 5, 5, 1, 0, 0, 0},
		{0, 0, 1, 5, 5, 1, 0, 1, 5, 5, 1, 0, 0, 0},
		{0, 0, 1, 5, 5, 1, 0, 0, 1, 5, 5, 1, 0, 0},
		{0, 0, 1, 5, 5, 1, 0, 0, 1, 5, 5, 1, 0, 0},
		{0, 0, 1, 2, 2, 1, 0, 0, 0, 1, 2, 2, 1, 0},
		{0, 0, 1, 2, 2, 1, 0, 0, 0, 1, 2, 2, 1, 0},
		{0, 0, 1, 1, 1, 0, 0, 0, 0, 0, 1, 1, 1, 0},
		{0, 1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 1, 0},
	},
	UpIdle: pixelgrid.Grid{
		{0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 6, 6, 6, 6, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 4, 4, 4, 4, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 1, 1, 2, 2, 1, 7, 2, 2, 1, 1, 0, 0},
		{0, 0, 1, 1, 2, 2, 1, 7, 2, 2, 1, 1, 0, 0},
		{0, 0, 1, 4, 2, 2, 1, 7, 2, 2, 4, 1, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 5, 5, 1, 1, 5, 5, 1, 0, 0, 0},
		{0, 0, 0, 1, 5, 5, 1, 1, 5, 5, 1, 0, 0, 0},
		{0, 0, 0, 1, 5, 5, 1, 1, 5, 5, 1, 0, 0, 0},
		{0, 0, 0, 1, 5, 5, 1, 1, 5, 5, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 0, 0, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 0, 0, 1, 1, 1, 0, 0, 0},
	},
	UpStep: pixelgrid.Grid{
		{0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 6, 6, 6, 6, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 4, 4, 4, 4, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 1, 1, 2, 2, 1, 7, 2, 2, 1, 1, 0, 0},
		{0, 0, 1, 4, 2, 2, 1, 7, 2, 2, 1, 1, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 7, 2, 2, 4, 1, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 5, 5, 1, 1, 5, 5, 1, 0, 0, 0},
		{0, 0, 1, 5, 5, 1, 0, 1, 5, 5, 1, 0, 0, 0},
		{0, 0, 1, 5, 5, 1, 0, 0, 1, 5, 5, 1, 0, 0},
		{0, 0, 1, 5, 5, 1, 0, 0, 1, 5, 5, 1, 0, 0},
		{0, 0, 1, 2, 2, 1, 0, 0, 0, 1, 2, 2, 1, 0},
		{0, 0, 1, 2, 2, 1, 0, 0, 0, 1, 2, 2, 1, 0},
		{0, 0, 1, 1, 1, 0, 0, 0, 0, 0, 1, 1, 1, 0},
		{0, 1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 1, 0},
	},
	LeftIdle: pixelgrid.Grid{
		{0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0, 0},
		{0, 0, 1, 4, 4, 4, 6, 6, 6, 1, 0, 0, 0, 0},
		{0, 0, 1, 4, 1, 4, 6, 6, 6, 1, 0, 0, 0, 0},
		{0, 1, 4, 4, 4, 4, 6, 6, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 4, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 7, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 2, 1, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 4, 1, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 5, 5, 5, 5, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 5, 5, 5, 5, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 5, 5, 5, 5, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 5, 5, 5, 5, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
	},
	LeftStep: pixelgrid.Grid{
		{0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0, 0},
		{0, 0, 1, 4, 4, 4, 6, 6, 6, 1, 0, 0, 0, 0},
		{0, 0, 1, 4, 1, 4, 6, 6, 6, 1, 0, 0, 0, 0},
		{0, 1, 4, 4, 4, 4, 6, 6, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 4, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 7, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 1, 2, 2, 1, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 1, 4, 1, 0, 1, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 5, 5, 5, 5, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 5, 5, 1, 5, 5, 5, 1, 0, 0, 0, 0},
		{0, 1, 5, 5, 1, 0, 1, 5, 5, 5, 1, 0, 0, 0},
		{0, 1, 5, 5, 1, 0, 0, 1, 5, 5, 1, 0, 0, 0},
		{1, 2, 2, 1, 0, 0, 0, 1, 2, 2, 1, 0, 0, 0},
		{1, 2, 2, 1, 0, 0, 0, 0, 1, 2, 2, 1, 0, 0},
		{1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0},
		{1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 1, 0, 0},
	},
}

var mageTemplate = &BodyTemplate{
	Name: "mage",
	DownIdle: pixelgrid.Grid{
		{0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 7, 7, 2, 2, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 0, 1, 4, 1, 4, 4, 1, 4, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 4, 4, 4, 4, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 1, 1, 2, 2, 7, 2, 2, 2, 1, 1, 0, 0},
		{0, 0, 1, 1, 2, 7, 2, 7, 2, 2, 1, 1, 0, 0},
		{0, 0, 1, 4, 2, 2, 2, 2, 2, 2, 4, 1, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 6, 2, 2, 2, 2, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 0, 0},
	},
	DownStep: pixelgrid.Grid{
		{0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 7, 7, 2, 2, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 0, 1, 4, 1, 4, 4, 1, 4, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 4, 4, 4, 4, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 1, 1, 2, 2, 7, 2, 2, 2, 1, 1, 0, 0},
		{0, 0, 1, 4, 2, 7, 2, 7, 2, 2, 1, 1, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 4, 1, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 1, 2, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 1, 2, 2, 2, 2, 1, 2, 2, 2, 1, 0, 0, 0},
		{0, 1, 2, 2, 2, 1, 0, 1, 2, 2, 2, 1, 0, 0},
		{0, 1, 6, 2, 2, 1, 0, 1, 6, 2, 2, 1, 0, 0},
		{0, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0},
	},
	UpIdle: pixelgrid.Grid{
		{0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 4, 4, 4, 4, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 1, 1, 2, 2, 2, 2, 2, 2, 1, 1, 0, 0},
		{0, 0, 1, 1, 2, 2, 2, 2, 2, 2, 1, 1, 0, 0},
		{0, 0, 1, 4, 2, 2, 2, 2, 2, 2, 4, 1, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 6, 2, 2, 2, 2, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 0, 0},
	},
	UpStep: pixelgrid.Grid{
		{0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 4, 4, 4, 4, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 1, 1, 2, 2, 2, 2, 2, 2, 1, 1, 0, 0},
		{0, 0, 1, 4, 2, 2, 2, 2, 2, 2, 1, 1, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 4, 1, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 6, 6, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 1, 2, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
		{0, 1, 2, 2, 2, 2, 1, 2, 2, 2, 1, 0, 0, 0},
		{0, 1, 2, 2, 2, 1, 0, 1, 2, 2, 2, 1, 0, 0},
		{0, 1, 6, 2, 2, 1, 0, 1, 6, 2, 2, 1, 0, 0},
		{0, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0},
	},
	LeftIdle: pixelgrid.Grid{
		{0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 2, 2, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 1, 4, 1, 4, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 4, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 7, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 2, 1, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 4, 1, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 6, 2, 2, 6, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	LeftStep: pixelgrid.Grid{
		{0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 2, 2, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 1, 4, 1, 4, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 4, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 7, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 1, 2, 2, 1, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 1, 4, 1, 0, 1, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 6, 6, 6, 6, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 2, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 1, 2, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 1, 2, 2, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 1, 2, 2, 1, 0, 1, 2, 2, 2, 1, 0, 0, 0},
		{0, 1, 6, 2, 1, 0, 1, 6, 2, 2, 1, 0, 0, 0},
		{1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0},
		{1, 1, 1, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0},
	},
}

var bruteTemplate = &BodyTemplate{
	Name: "brute",
	DownIdle: pixelgrid.Grid{
		{0, 0, 0, 0, 0, 0, 7, 7, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 7, 7, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 4, 4, 4, 4, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 4, 4, 4, 4, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 1, 4, 4, 1, 4, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 5, 5, 4, 4, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 4, 5, 5, 4, 1, 0, 0, 0, 0},
		{0, 1, 1, 1, 4, 4, 4, 4, 4, 4, 1, 1, 1, 0},
		{1, 4, 4, 1, 4, 4, 4, 4, 4, 4, 1, 4, 4, 1},
		{1, 4, 4, 1, 4, 5, 4, 4, 5, 4, 1, 4, 4, 1},
		{1, 4, 4, 1, 4, 4, 4, 4, 4, 4, 1, 4, 4, 1},
		{0, 1, 1, 1, 6, 6, 6, 6, 6, 6, 1, 1, 1, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 1, 1, 4, 4, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 1, 1, 4, 4, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 0, 0},
	},
	DownStep: pixelgrid.Grid{
		{0, 0, 0, 0, 0, 0, 7, 7, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 7, 7, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 4, 4, 4, 4, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 4, 4, 4, 4, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 1, 4, 4, 1, 4, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 5, 5, 4, 4, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 4, 5, 5, 4, 1, 0, 0, 0, 0},
		{0, 1, 1, 1, 4, 4, 4, 4, 4, 4, 1, 1, 1, 0},
		{1, 4, 4, 1, 4, 4, 4, 4, 4, 4, 1, 4, 4, 1},
		{0, 1, 4, 1, 4, 5, 4, 4, 5, 4, 1, 4, 1, 0},
		{0, 1, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 1, 0},
		{0, 0, 1, 1, 6, 6, 6, 6, 6, 6, 1, 1, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 1, 2, 2, 1, 0, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 1, 2, 2, 1, 0, 0, 1, 2, 2, 1, 0, 0},
		{0, 0, 1, 2, 2, 1, 0, 0, 1, 2, 2, 1, 0, 0},
		{0, 0, 1, 4, 4, 1, 0, 0, 0, 1, 4, 4, 1, 0},
		{0, 0, 1, 4, 4, 1, 0, 0, 0, 1, 4, 4, 1, 0},
		{0, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 0},
		{0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 1, 1, 1, 0},
	},
	UpIdle: pixelgrid.Grid{
		{0, 0, 0, 0, 0, 0, 7, 7, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 7, 7, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 7, 7, 4, 4, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 4, 4, 4, 4, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 4, 4, 4, 4, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 4, 4, 4, 4, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 4, 4, 4, 4, 1, 0, 0, 0, 0},
		{0, 1, 1, 1, 4, 4, 4, 4, 4, 4, 1, 1, 1, 0},
		{1, 4, 4, 1, 4, 4, 4, 4, 4, 4, 1, 4, 4, 1},
		{1, 4, 4, 1, 4, 4, 1, 4, 4, 4, 1, 4, 4, 1},
		{1, 4, 4, 1, 4, 4, 4, 4, 4, 4, 1, 4, 4, 1},
		{0, 1, 1, 1, 6, 6, 6, 6, 6, 6, 1, 1, 1, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 1, 1, 4, 4, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 1, 1, 4, 4, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 0, 0},
	},
	UpStep: pixelgrid.Grid{
		{0, 0, 0, 0, 0, 0, 7, 7, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 7, 7, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 7, 7, 4, 4, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 4, 4, 4, 4, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 4, 4, 4, 4, 1, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 4, 4, 4, 4, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 4, 4, 4, 4, 1, 0, 0, 0, 0},
		{0, 1, 1, 1, 4, 4, 4, 4, 4, 4, 1, 1, 1, 0},
		{1, 4, 4, 1, 4, 4, 4, 4, 4, 4, 1, 4, 4, 1},
		{0, 1, 4, 1, 4, 4, 1, 4, 4, 4, 1, 4, 1, 0},
		{0, 1, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 1, 0},
		{0, 0, 1, 1, 6, 6, 6, 6, 6, 6, 1, 1, 0, 0},
		{0, 0, 0, 1, 2, 2, 1, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 1, 2, 2, 1, 0, 1, 2, 2, 1, 0, 0, 0},
		{0, 0, 1, 2, 2, 1, 0, 0, 1, 2, 2, 1, 0, 0},
		{0, 0, 1, 2, 2, 1, 0, 0, 1, 2, 2, 1, 0, 0},
		{0, 0, 1, 4, 4, 1, 0, 0, 0, 1, 4, 4, 1, 0},
		{0, 0, 1, 4, 4, 1, 0, 0, 0, 1, 4, 4, 1, 0},
		{0, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 0},
		{0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 1, 1, 1, 0},
	},
	LeftIdle: pixelgrid.Grid{
		{0, 0, 0, 0, 0, 7, 7, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 7, 7, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 4, 4, 4, 4, 4, 4, 1, 0, 0, 0, 0},
		{0, 1, 4, 4, 4, 4, 4, 4, 4, 1, 0, 0, 0, 0},
		{0, 1, 4, 1, 4, 4, 4, 4, 4, 1, 0, 0, 0, 0},
		{1, 4, 4, 4, 4, 5, 4, 4, 1, 0, 0, 0, 0, 0},
		{0, 1, 1, 4, 5, 5, 4, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 4, 4, 4, 4, 4, 1, 1, 0, 0, 0, 0},
		{0, 1, 4, 4, 4, 4, 4, 4, 4, 4, 1, 0, 0, 0},
		{0, 1, 4, 4, 1, 4, 4, 4, 4, 4, 1, 0, 0, 0},
		{0, 1, 4, 4, 1, 4, 4, 4, 4, 4, 1, 0, 0, 0},
		{0, 0, 1, 1, 6, 6, 6, 6, 6, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 4, 4, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 4, 4, 4, 4, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
	},
	LeftStep: pixelgrid.Grid{
		{0, 0, 0, 0, 0, 7, 7, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 7, 7, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 4, 4, 4, 4, 4, 4, 1, 0, 0, 0, 0},
		{0, 1, 4, 4, 4, 4, 4, 4, 4, 1, 0, 0, 0, 0},
		{0, 1, 4, 1, 4, 4, 4, 4, 4, 1, 0, 0, 0, 0},
		{1, 4, 4, 4, 4, 5, 4, 4, 1, 0, 0, 0, 0, 0},
		{0, 1, 1, 4, 5, 5, 4, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 4, 4, 4, 4, 4, 1, 1, 0, 0, 0, 0},
		{0, 1, 4, 4, 4, 4, 4, 4, 4, 4, 1, 0, 0, 0},
		{1, 4, 4, 4, 1, 4, 4, 4, 4, 4, 1, 0, 0, 0},
		{1, 4, 4, 1, 0, 1, 4, 4, 4, 4, 1, 0, 0, 0},
		{0, 1, 1, 1, 6, 6, 6, 6, 6, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 2, 2, 1, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 1, 2, 2, 1, 0, 1, 2, 2, 2, 1, 0, 0, 0},
		{0, 1, 2, 2, 1, 0, 0, 1, 2, 2, 1, 0, 0, 0},
		{1, 4, 4, 1, 0, 0, 0, 1, 4, 4, 1, 0, 0, 0},
		{1, 4, 4, 1, 0, 0, 0, 0, 1, 4, 4, 1, 0, 0},
		{1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0},
		{1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 1, 0, 0},
	},
}

// dummyTemplate is the straw training dummy the arena creeps use. Only the
// front poses exist; the animator keeps dummies facing down no matter what
// their wander direction asks for.
var dummyTemplate = &BodyTemplate{
	Name: "dummy",
	DownIdle: pixelgrid.Grid{
		{0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 6, 6, 6, 6, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 6, 3, 3, 6, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 6, 6, 6, 6, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 6, 1, 1, 6, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 6, 6, 6, 6, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 6, 6, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 2, 2, 2, 2, 1, 1, 1, 0, 0},
		{0, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1, 0},
		{0, 0, 1, 1, 1, 2, 2, 2, 2, 1, 1, 1, 0, 0},
		{0, 0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 6, 6, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 6, 6, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 6, 6, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 6, 6, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 6, 6, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
	},
	DownStep: pixelgrid.Grid{
		{0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 6, 6, 6, 6, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 6, 3, 3, 6, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 6, 6, 6, 6, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 6, 1, 1, 6, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 6, 6, 6, 6, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 6, 6, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 2, 2, 2, 2, 1, 1, 1, 0, 0},
		{0, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1, 0},
		{0, 0, 1, 1, 1, 2, 2, 2, 2, 1, 1, 1, 0, 0},
		{0, 0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 2, 2, 2, 2, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 6, 6, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 6, 6, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 6, 6, 1, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 6, 6, 1, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 6, 6, 1, 1, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
	},
}
