package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gridvale/catalog"
	"github.com/automoto/gridvale/components"
	cfg "github.com/automoto/gridvale/config"
	"github.com/automoto/gridvale/fonts"
	"github.com/automoto/gridvale/pixelgrid"
	"github.com/automoto/gridvale/sprites"
)

// Roster previews walk in place on the select screen. One animator per
// character, built on first visit and kept for the process lifetime.
var portraitAnimators []sprites.Animator

// Characters share body templates, so the frame cache keys on the character
// as well as the grid.
type portraitKey struct {
	char int
	grid *[]uint8
}

var portraitCache = map[portraitKey]*ebiten.Image{}

func portraits() []sprites.Animator {
	if portraitAnimators != nil {
		return portraitAnimators
	}
	roster := catalog.Characters()
	portraitAnimators = make([]sprites.Animator, len(roster))
	for i, c := range roster {
		set, err := sprites.Build(c.Template)
		if err != nil {
			panic(fmt.Sprintf("build preview for %s: %v", c.Name, err))
		}
		portraitAnimators[i].Assign(set)
		portraitAnimators[i].SetWalking(true)
	}
	return portraitAnimators
}

// NewUpdateCharSelect builds the character select system.
func NewUpdateCharSelect(onChosen func(index int), onBack func()) ecs.System {
	return func(e *ecs.ECS) {
		cs := GetOrCreateCharSelect(e)
		input := getOrCreateInput(e)
		roster := catalog.Characters()
		cols := cfg.Menu.PortraitColumns

		for i := range portraits() {
			portraitAnimators[i].Tick(tickSeconds)
		}

		if GetAction(input, cfg.ActionMenuLeft).JustPressed {
			cs.SelectedIndex = (cs.SelectedIndex - 1 + len(roster)) % len(roster)
		}
		if GetAction(input, cfg.ActionMenuRight).JustPressed {
			cs.SelectedIndex = (cs.SelectedIndex + 1) % len(roster)
		}
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			cs.SelectedIndex = (cs.SelectedIndex - cols + len(roster)) % len(roster)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			cs.SelectedIndex = (cs.SelectedIndex + cols) % len(roster)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			cs.Confirmed = true
			onChosen(cs.SelectedIndex)
			return
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			onBack()
		}
	}
}

// DrawCharSelect renders the roster as a grid of walking previews with the
// highlighted character's name underneath.
func DrawCharSelect(e *ecs.ECS, screen *ebiten.Image) {
	cs := GetOrCreateCharSelect(e)
	roster := catalog.Characters()
	previews := portraits()

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	titleFont := fonts.Bold.Get()
	title := "Choose Your Hero"
	text.Draw(screen, title, titleFont, int(width/2)-len(title)*6, 60, cfg.Menu.TitleColor)

	cols := cfg.Menu.PortraitColumns
	scale := cfg.Menu.PortraitScale
	cellW := float64(pixelgrid.Cols)*scale + cfg.Menu.PortraitGap
	cellH := float64(pixelgrid.Rows)*scale + cfg.Menu.PortraitGap
	gridW := float64(cols)*cellW - cfg.Menu.PortraitGap
	startX := (width - gridW) / 2
	startY := 100.0

	op := &ebiten.DrawImageOptions{}
	for i, c := range roster {
		col := i % cols
		row := i / cols
		x := startX + float64(col)*cellW
		y := startY + float64(row)*cellH

		if i == cs.SelectedIndex {
			vector.DrawFilledRect(screen,
				float32(x)-3, float32(y)-3,
				float32(float64(pixelgrid.Cols)*scale)+6,
				float32(float64(pixelgrid.Rows)*scale)+6,
				cfg.Menu.TextColorSelected, false)
		}

		grid, ok := previews[i].Current()
		if !ok {
			continue
		}
		img := portraitImage(i, grid, c.Palette)

		op.GeoM.Reset()
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x, y)
		screen.DrawImage(img, op)
	}

	name := roster[cs.SelectedIndex].Name
	text.Draw(screen, name, titleFont, int(width/2)-len(name)*6, int(height)-60, cfg.Menu.TextColorSelected)

	hint := "Arrows: Navigate   Enter: Choose   Esc: Back"
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, int(width/2)-len(hint)*7/2, int(height)-12, cfg.Menu.TextColorNormal)
}

// portraitImage rasterizes a preview frame once per character, sharing
// aliased frames the same way the in-game sprite cache does.
func portraitImage(char int, grid pixelgrid.Grid, palette pixelgrid.Palette) *ebiten.Image {
	key := portraitKey{char: char, grid: &grid[0]}
	if img, ok := portraitCache[key]; ok {
		return img
	}
	img := rasterizeGrid(grid, palette)
	portraitCache[key] = img
	return img
}

// GetOrCreateCharSelect returns the singleton character select component.
func GetOrCreateCharSelect(e *ecs.ECS) *components.CharSelectData {
	if _, ok := components.CharSelect.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.CharSelect))
		components.CharSelect.SetValue(ent, components.CharSelectData{})
	}

	ent, _ := components.CharSelect.First(e.World)
	return components.CharSelect.Get(ent)
}
