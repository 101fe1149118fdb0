package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gridvale/arena"
	"github.com/automoto/gridvale/catalog"
	"github.com/automoto/gridvale/components"
	cfg "github.com/automoto/gridvale/config"
	"github.com/automoto/gridvale/systems"
	"github.com/automoto/gridvale/systems/factory"
)

// Progress is written back to the save file every ten seconds and on quit.
const autosaveFrames = 600

// GameConfig carries the save-file state into the world scene.
type GameConfig struct {
	Slot           int
	CharacterIndex int
	PlayerName     string
	Score          int
}

// WorldScene is the arena: the player, the training dummies, and the walls.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	gameConfig   *GameConfig
	once         sync.Once

	framesSinceSave int
}

// NewWorldScene creates the arena scene for the given save file
func NewWorldScene(sc SceneChanger, config *GameConfig) *WorldScene {
	return &WorldScene{sceneChanger: sc, gameConfig: config}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	ws.revivePlayerIfDown()

	ws.framesSinceSave++
	if ws.framesSinceSave >= autosaveFrames {
		ws.framesSinceSave = 0
		ws.saveProgress()
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ws.ecs = ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ws.ecs.AddSystem(systems.UpdateInput)
	ws.ecs.AddSystem(systems.UpdatePause)

	// Game systems halted while the pause menu is up
	ws.ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ws.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCreeps))
	ws.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSwings))
	ws.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateBolts))
	ws.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateMovement))
	ws.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCombat))
	ws.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateFlashes))
	ws.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateAnimators))
	ws.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))

	// Systems that run even when paused
	ws.ecs.AddSystem(systems.UpdateSettingsMenu)
	ws.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	// Renderers
	ws.ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawPixelSprites)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawAttacks)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawHealthBars)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ws.ecs.AddRenderer(cfg.Overlay, systems.DrawPause)
	ws.ecs.AddRenderer(cfg.Overlay, systems.DrawSettingsMenu)

	// Pause menu "Quit to Menu" saves before leaving
	systems.SetQuitToMenu(func() {
		ws.saveProgress()
		ws.sceneChanger.ChangeScene(NewFileSelectScene(ws.sceneChanger))
	})

	// Load the playfield FIRST, then build the collision space at its size.
	a := arena.MustLoadDefault()
	factory.CreateSpace(ws.ecs, a.Width, a.Height, 16, 16)
	factory.CreateArena(ws.ecs, a)

	// Spawn the hero at the map's player marker
	character := catalog.Characters()[ws.gameConfig.CharacterIndex]
	player := factory.CreatePlayer(ws.ecs,
		a.PlayerSpawn.X, a.PlayerSpawn.Y,
		character, ws.gameConfig.PlayerName,
	)
	playerData := components.Player.Get(player)
	playerData.Score = ws.gameConfig.Score

	// Snap camera to the player's start position to prevent panning from (0,0)
	factory.CreateCamera(ws.ecs, a.PlayerSpawn.X, a.PlayerSpawn.Y)

	// Training dummies wander from the map's creep markers
	for _, spawn := range a.CreepSpawns {
		factory.CreateCreep(ws.ecs, spawn.X, spawn.Y, int64(spawn.Index)+1)
	}
}

// revivePlayerIfDown resets a downed hero at the spawn marker. The training
// ground has no fail state; getting knocked out just costs position.
func (ws *WorldScene) revivePlayerIfDown() {
	entry, ok := components.Player.First(ws.ecs.World)
	if !ok {
		return
	}
	health := components.Health.Get(entry)
	if health.Current > 0 {
		return
	}

	a := components.ArenaInfo.Get(mustArenaEntry(ws.ecs)).Arena
	obj := components.Object.Get(entry).Object
	obj.X = a.PlayerSpawn.X
	obj.Y = a.PlayerSpawn.Y
	obj.Update()

	health.Current = health.Max
	components.Player.Get(entry).InvulnFrames = cfg.Player.InvulnFrames * 2

	physics := components.Physics.Get(entry)
	physics.KnockX = 0
	physics.KnockY = 0
}

func mustArenaEntry(e *ecs.ECS) *donburi.Entry {
	entry, ok := components.ArenaInfo.First(e.World)
	if !ok {
		panic("arena singleton missing")
	}
	return entry
}

// saveProgress writes the current score back to the save file.
func (ws *WorldScene) saveProgress() {
	entry, ok := components.Player.First(ws.ecs.World)
	if !ok {
		return
	}
	playerData := components.Player.Get(entry)

	saved := &systems.SavedSlot{
		PlayerName:     ws.gameConfig.PlayerName,
		CharacterIndex: ws.gameConfig.CharacterIndex,
		CharacterName:  catalog.Characters()[ws.gameConfig.CharacterIndex].Name,
		Score:          playerData.Score,
	}
	if err := systems.SaveSlot(ws.gameConfig.Slot, saved); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
	}
}
