// Package catalog holds the game's playable roster: body templates, palettes
// and the named characters built from them. The roster is fixed data with no
// mutation API.
package catalog

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/gridvale/pixelgrid"
)

// Character pairs a shared body template with its own palette. Immutable
// once built.
type Character struct {
	Name     string
	Template *BodyTemplate
	Palette  pixelgrid.Palette
}

var (
	buildOnce  sync.Once
	characters []Character
)

// Characters returns the full roster in stable order. The roster is built on
// first call and cached for the process lifetime; concurrent first calls are
// safe (sync.Once).
func Characters() []Character {
	buildOnce.Do(func() {
		characters = buildRoster()
	})
	return characters
}

// Dummy returns the down-only template used by arena creeps, plus its
// palette.
func Dummy() (*BodyTemplate, pixelgrid.Palette) {
	return dummyTemplate, palette(
		rgb(92, 64, 38),    // outline
		rgb(196, 164, 90),  // straw
		rgb(226, 200, 130), // highlight
		rgb(196, 164, 90),
		rgb(160, 130, 66),
		rgb(120, 86, 50), // post
		rgb(210, 60, 60), // target mark
	)
}

func buildRoster() []Character {
	roster := []Character{
		// Knights
		character("Aldric", knightTemplate, rgb(40, 44, 52), rgb(120, 130, 150), rgb(200, 210, 230), rgb(224, 172, 126), rgb(180, 130, 90), rgb(150, 40, 40), rgb(230, 190, 60)),
		character("Berwyn", knightTemplate, rgb(40, 44, 52), rgb(90, 100, 120), rgb(170, 180, 200), rgb(198, 140, 100), rgb(150, 100, 70), rgb(40, 90, 150), rgb(210, 210, 210)),
		character("Carrow", knightTemplate, rgb(36, 32, 30), rgb(140, 110, 70), rgb(210, 180, 120), rgb(224, 172, 126), rgb(180, 130, 90), rgb(60, 110, 60), rgb(230, 150, 40)),
		character("Darra", knightTemplate, rgb(44, 36, 48), rgb(130, 90, 150), rgb(200, 160, 220), rgb(235, 190, 150), rgb(190, 145, 105), rgb(90, 50, 110), rgb(240, 220, 120)),
		character("Edda", knightTemplate, rgb(40, 44, 52), rgb(160, 60, 60), rgb(230, 120, 120), rgb(224, 172, 126), rgb(180, 130, 90), rgb(110, 30, 30), rgb(240, 200, 90)),

		// Rangers
		character("Fenn", rangerTemplate, rgb(30, 40, 30), rgb(70, 110, 60), rgb(130, 180, 110), rgb(224, 172, 126), rgb(180, 130, 90), rgb(90, 70, 40), rgb(220, 220, 160)),
		character("Greta", rangerTemplate, rgb(30, 40, 30), rgb(100, 80, 50), rgb(170, 140, 90), rgb(198, 140, 100), rgb(150, 100, 70), rgb(50, 80, 50), rgb(200, 60, 60)),
		character("Hale", rangerTemplate, rgb(26, 34, 40), rgb(60, 90, 110), rgb(120, 160, 190), rgb(235, 190, 150), rgb(190, 145, 105), rgb(40, 60, 80), rgb(230, 210, 120)),
		character("Isolde", rangerTemplate, rgb(34, 30, 40), rgb(110, 70, 120), rgb(180, 130, 190), rgb(224, 172, 126), rgb(180, 130, 90), rgb(70, 40, 80), rgb(140, 230, 180)),
		character("Joss", rangerTemplate, rgb(30, 40, 30), rgb(130, 120, 50), rgb(200, 190, 100), rgb(198, 140, 100), rgb(150, 100, 70), rgb(80, 80, 30), rgb(240, 130, 50)),

		// Mages
		character("Kestrel", mageTemplate, rgb(30, 28, 50), rgb(70, 60, 140), rgb(130, 120, 210), rgb(224, 172, 126), rgb(180, 130, 90), rgb(50, 40, 100), rgb(240, 220, 100)),
		character("Lyra", mageTemplate, rgb(46, 28, 36), rgb(150, 50, 90), rgb(220, 110, 160), rgb(235, 190, 150), rgb(190, 145, 105), rgb(100, 30, 60), rgb(130, 230, 230)),
		character("Morcant", mageTemplate, rgb(26, 38, 38), rgb(40, 110, 100), rgb(90, 180, 170), rgb(198, 140, 100), rgb(150, 100, 70), rgb(30, 80, 70), rgb(240, 170, 60)),
		character("Nimue", mageTemplate, rgb(34, 34, 34), rgb(220, 220, 230), rgb(250, 250, 255), rgb(224, 172, 126), rgb(180, 130, 90), rgb(160, 160, 180), rgb(110, 150, 240)),
		character("Osric", mageTemplate, rgb(36, 26, 20), rgb(130, 70, 30), rgb(200, 130, 70), rgb(224, 172, 126), rgb(180, 130, 90), rgb(90, 50, 20), rgb(120, 230, 110)),

		// Brutes
		character("Padrig", bruteTemplate, rgb(40, 30, 26), rgb(110, 70, 40), rgb(180, 130, 80), rgb(205, 150, 110), rgb(160, 110, 80), rgb(80, 50, 30), rgb(220, 60, 50)),
		character("Quenna", bruteTemplate, rgb(40, 30, 26), rgb(80, 90, 50), rgb(150, 160, 100), rgb(224, 172, 126), rgb(180, 130, 90), rgb(60, 70, 40), rgb(90, 200, 90)),
		character("Rurik", bruteTemplate, rgb(30, 30, 38), rgb(90, 90, 110), rgb(160, 160, 190), rgb(190, 130, 95), rgb(145, 95, 65), rgb(60, 60, 80), rgb(240, 240, 140)),
		character("Sif", bruteTemplate, rgb(40, 30, 26), rgb(140, 110, 60), rgb(210, 180, 110), rgb(235, 190, 150), rgb(190, 145, 105), rgb(100, 80, 40), rgb(80, 170, 240)),
		character("Torvald", bruteTemplate, rgb(36, 26, 26), rgb(150, 60, 40), rgb(220, 120, 90), rgb(205, 150, 110), rgb(160, 110, 80), rgb(100, 40, 30), rgb(250, 210, 80)),
	}

	for _, c := range roster {
		if err := validateTemplate(c.Template); err != nil {
			panic(fmt.Sprintf("catalog: character %q: %v", c.Name, err))
		}
	}
	if err := validateTemplate(dummyTemplate); err != nil {
		panic(fmt.Sprintf("catalog: dummy template: %v", err))
	}

	return roster
}

func character(name string, t *BodyTemplate, outline, primary, highlight, skin, skinShadow, secondary, accent color.RGBA) Character {
	return Character{
		Name:     name,
		Template: t,
		Palette:  pixelgrid.Palette{{}, outline, primary, highlight, skin, skinShadow, secondary, accent},
	}
}

func palette(outline, primary, highlight, skin, skinShadow, secondary, accent color.RGBA) pixelgrid.Palette {
	return pixelgrid.Palette{{}, outline, primary, highlight, skin, skinShadow, secondary, accent}
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func validateTemplate(t *BodyTemplate) error {
	if t.DownIdle == nil || t.DownStep == nil {
		return fmt.Errorf("template %q: front poses are mandatory", t.Name)
	}
	if (t.UpIdle == nil) != (t.UpStep == nil) {
		return fmt.Errorf("template %q: up poses must be authored as a pair", t.Name)
	}
	if t.LeftStep != nil && t.LeftIdle == nil {
		return fmt.Errorf("template %q: left step without left idle", t.Name)
	}
	for _, g := range t.Grids() {
		if err := pixelgrid.Validate(g); err != nil {
			return fmt.Errorf("template %q: %w", t.Name, err)
		}
		if r, c := pixelgrid.Size(g); r != pixelgrid.Rows || c != pixelgrid.Cols {
			return fmt.Errorf("template %q: pose is %dx%d, want %dx%d", t.Name, r, c, pixelgrid.Rows, pixelgrid.Cols)
		}
	}
	return nil
}
