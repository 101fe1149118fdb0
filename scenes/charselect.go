package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/gridvale/config"
	"github.com/automoto/gridvale/systems"
)

// CharSelectScene shows the roster grid for a new save file.
type CharSelectScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	slot         int
	once         sync.Once
}

// NewCharSelectScene creates the character select scene for the given save slot
func NewCharSelectScene(sc SceneChanger, slot int) *CharSelectScene {
	return &CharSelectScene{sceneChanger: sc, slot: slot}
}

func (cs *CharSelectScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()
}

func (cs *CharSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

func (cs *CharSelectScene) configure() {
	cs.ecs = ecs.NewECS(donburi.NewWorld())

	onChosen := func(index int) {
		cs.sceneChanger.ChangeScene(NewNameEntryScene(cs.sceneChanger, cs.slot, index))
	}
	onBack := func() {
		cs.sceneChanger.ChangeScene(NewFileSelectScene(cs.sceneChanger))
	}

	cs.ecs.AddSystem(systems.UpdateInput)
	cs.ecs.AddSystem(systems.NewUpdateCharSelect(onChosen, onBack))

	cs.ecs.AddRenderer(cfg.Default, systems.DrawCharSelect)
}
