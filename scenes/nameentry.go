package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/gridvale/catalog"
	"github.com/automoto/gridvale/systems"
	"github.com/automoto/gridvale/ui"
)

// NameEntryScene names a freshly chosen hero using ebitenui.
type NameEntryScene struct {
	sceneChanger SceneChanger
	slot         int
	charIndex    int
	nameUI       *ui.NameEntryUI
	once         sync.Once

	chosenName   string
	shouldGoBack bool
}

// NewNameEntryScene creates the name entry scene
func NewNameEntryScene(sc SceneChanger, slot, charIndex int) *NameEntryScene {
	return &NameEntryScene{sceneChanger: sc, slot: slot, charIndex: charIndex}
}

func (ns *NameEntryScene) Update() {
	ns.once.Do(ns.configure)

	ns.nameUI.Update()

	if ns.chosenName != "" {
		ns.startGame()
		return
	}
	if ns.shouldGoBack {
		ns.sceneChanger.ChangeScene(NewCharSelectScene(ns.sceneChanger, ns.slot))
		return
	}
}

func (ns *NameEntryScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if ns.nameUI == nil {
		return
	}
	ns.nameUI.UI.Draw(screen)
}

func (ns *NameEntryScene) configure() {
	character := catalog.Characters()[ns.charIndex]

	ns.nameUI = ui.NewNameEntryUI(
		character.Name,
		func(name string) { ns.chosenName = name },
		func() { ns.shouldGoBack = true },
	)
}

// startGame writes the new save file and enters the arena.
func (ns *NameEntryScene) startGame() {
	character := catalog.Characters()[ns.charIndex]

	saved := &systems.SavedSlot{
		PlayerName:     ns.chosenName,
		CharacterIndex: ns.charIndex,
		CharacterName:  character.Name,
		Score:          0,
	}
	if err := systems.SaveSlot(ns.slot, saved); err != nil {
		log.Printf("Warning: Could not save new game: %v", err)
	}

	ns.sceneChanger.ChangeScene(NewWorldScene(ns.sceneChanger, &GameConfig{
		Slot:           ns.slot,
		CharacterIndex: ns.charIndex,
		PlayerName:     ns.chosenName,
		Score:          0,
	}))
}
