package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gridvale/catalog"
	cfg "github.com/automoto/gridvale/config"
	"github.com/automoto/gridvale/systems"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// FileSelectScene is the title screen: three save files plus a settings row.
type FileSelectScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewFileSelectScene creates the file select scene
func NewFileSelectScene(sc SceneChanger) *FileSelectScene {
	return &FileSelectScene{sceneChanger: sc}
}

func (fs *FileSelectScene) Update() {
	fs.once.Do(fs.configure)
	fs.ecs.Update()
}

func (fs *FileSelectScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

func (fs *FileSelectScene) configure() {
	fs.ecs = ecs.NewECS(donburi.NewWorld())

	onContinue := func(slot int, saved *systems.SavedSlot) {
		roster := catalog.Characters()
		charIndex := saved.CharacterIndex
		if charIndex < 0 || charIndex >= len(roster) {
			charIndex = 0
		}
		fs.sceneChanger.ChangeScene(NewWorldScene(fs.sceneChanger, &GameConfig{
			Slot:           slot,
			CharacterIndex: charIndex,
			PlayerName:     saved.PlayerName,
			Score:          saved.Score,
		}))
	}

	onNewGame := func(slot int) {
		fs.sceneChanger.ChangeScene(NewCharSelectScene(fs.sceneChanger, slot))
	}

	fs.ecs.AddSystem(systems.UpdateInput)
	fs.ecs.AddSystem(systems.NewUpdateFileSelect(onContinue, onNewGame))
	fs.ecs.AddSystem(systems.UpdateSettingsMenu)

	// Renderers (settings draws on the overlay layer, above the file list)
	fs.ecs.AddRenderer(cfg.Default, systems.DrawFileSelect)
	fs.ecs.AddRenderer(cfg.Overlay, systems.DrawSettingsMenu)
}
