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
)

// The settings row sits below the three save slots.
const fileSelectRows = SlotCount + 1

// NewUpdateFileSelect builds the file select system. onContinue fires for an
// occupied slot, onNewGame for an empty one.
func NewUpdateFileSelect(onContinue func(slot int, saved *SavedSlot), onNewGame func(slot int)) ecs.System {
	return func(e *ecs.ECS) {
		if IsSettingsOpen(e) {
			return
		}

		fs := GetOrCreateFileSelect(e)
		input := getOrCreateInput(e)

		if fs.ConfirmingDelete {
			updateDeleteConfirm(e, fs, input)
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			fs.SelectedSlot = (fs.SelectedSlot - 1 + fileSelectRows) % fileSelectRows
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			fs.SelectedSlot = (fs.SelectedSlot + 1) % fileSelectRows
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			if fs.SelectedSlot == SlotCount {
				OpenSettings(e)
				return
			}
			if fs.Slots[fs.SelectedSlot].Occupied {
				saved, _ := LoadSlot(fs.SelectedSlot)
				if saved != nil {
					onContinue(fs.SelectedSlot, saved)
					return
				}
			}
			onNewGame(fs.SelectedSlot)
			return
		}

		// Back on an occupied slot asks to delete it.
		if GetAction(input, cfg.ActionMenuBack).JustPressed &&
			fs.SelectedSlot < SlotCount && fs.Slots[fs.SelectedSlot].Occupied {
			fs.ConfirmingDelete = true
			fs.ConfirmSelection = 0
		}
	}
}

func updateDeleteConfirm(e *ecs.ECS, fs *components.FileSelectData, input *components.InputData) {
	if GetAction(input, cfg.ActionMenuLeft).JustPressed ||
		GetAction(input, cfg.ActionMenuRight).JustPressed {
		fs.ConfirmSelection = 1 - fs.ConfirmSelection
	}
	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		fs.ConfirmingDelete = false
		return
	}
	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		if fs.ConfirmSelection == 1 {
			_ = ClearSlot(fs.SelectedSlot)
			fs.Slots[fs.SelectedSlot] = components.SlotSummary{}
		}
		fs.ConfirmingDelete = false
	}
}

// DrawFileSelect renders the save slot list.
func DrawFileSelect(e *ecs.ECS, screen *ebiten.Image) {
	fs := GetOrCreateFileSelect(e)

	width := float64(screen.Bounds().Dx())

	vector.DrawFilledRect(screen, 0, 0,
		float32(width), float32(screen.Bounds().Dy()),
		cfg.Menu.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	title := "GRIDVALE"
	titleWidth := len(title) * 20
	text.Draw(screen, title, titleFont, int((width-float64(titleWidth))/2), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	rowFont := fonts.Bold.Get()
	op := &ebiten.DrawImageOptions{}
	roster := catalog.Characters()
	for i := 0; i < fileSelectRows; i++ {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == fs.SelectedSlot {
			textColor = cfg.Menu.TextColorSelected
		}

		label := "Settings"
		if i < SlotCount {
			label = slotLabel(i, fs.Slots[i])
		}
		textWidth := len(label) * 12
		x := int((width - float64(textWidth)) / 2)
		text.Draw(screen, label, rowFont, x, int(y)+int(cfg.Menu.MenuItemHeight), textColor)

		// Mini sprite of the saved hero next to occupied slots
		if i < SlotCount && fs.Slots[i].Occupied {
			ci := fs.Slots[i].CharacterIndex
			if ci >= 0 && ci < len(roster) {
				c := roster[ci]
				img := portraitImage(ci, c.Template.DownIdle, c.Palette)
				op.GeoM.Reset()
				op.GeoM.Scale(1.5, 1.5)
				op.GeoM.Translate(float64(x)-34, y)
				screen.DrawImage(img, op)
			}
		}
	}

	if fs.ConfirmingDelete {
		drawDeleteConfirm(screen, fs, width)
	}

	hint := "Arrows: Navigate   Enter: Select   Esc: Delete Save"
	hintFont := fonts.Small.Get()
	hintWidth := len(hint) * 7
	text.Draw(screen, hint, hintFont, int((width-float64(hintWidth))/2),
		screen.Bounds().Dy()-12, cfg.Menu.TextColorNormal)
}

func slotLabel(index int, slot components.SlotSummary) string {
	if !slot.Occupied {
		return fmt.Sprintf("File %d - New Game", index+1)
	}
	return fmt.Sprintf("File %d - %s the %s (%d KOs)",
		index+1, slot.PlayerName, slot.CharacterName, slot.Score)
}

func drawDeleteConfirm(screen *ebiten.Image, fs *components.FileSelectData, width float64) {
	vector.DrawFilledRect(screen, 0, 0,
		float32(width), float32(screen.Bounds().Dy()),
		cfg.Pause.OverlayColor, false)

	boldFont := fonts.Bold.Get()
	msg := "Delete this save?"
	text.Draw(screen, msg, boldFont, int(width/2)-len(msg)*6, 200, cfg.Menu.TitleColor)

	options := []string{"No", "Yes"}
	for i, opt := range options {
		textColor := cfg.Menu.TextColorNormal
		if i == fs.ConfirmSelection {
			textColor = cfg.Menu.TextColorSelected
		}
		text.Draw(screen, opt, boldFont, int(width/2)-40+i*70, 250, textColor)
	}
}

// GetOrCreateFileSelect returns the singleton file select component, reading
// slot summaries off disk on first use.
func GetOrCreateFileSelect(e *ecs.ECS) *components.FileSelectData {
	if _, ok := components.FileSelect.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.FileSelect))
		data := components.FileSelectData{}
		for i := 0; i < SlotCount; i++ {
			if saved, _ := LoadSlot(i); saved != nil {
				data.Slots[i] = components.SlotSummary{
					Occupied:       true,
					PlayerName:     saved.PlayerName,
					CharacterIndex: saved.CharacterIndex,
					CharacterName:  saved.CharacterName,
					Score:          saved.Score,
				}
			}
		}
		components.FileSelect.SetValue(ent, data)
	}

	ent, _ := components.FileSelect.First(e.World)
	return components.FileSelect.Get(ent)
}
