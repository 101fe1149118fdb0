package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gridvale/components"
	cfg "github.com/automoto/gridvale/config"
	"github.com/automoto/gridvale/fonts"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// UpdateSettingsMenu handles settings navigation and value changes.
func UpdateSettingsMenu(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	if !settings.IsOpen {
		return
	}

	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		settings.SelectedRow = components.SettingsOption(
			(int(settings.SelectedRow) - 1 + numSettingsOptions) % numSettingsOptions,
		)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		settings.SelectedRow = components.SettingsOption(
			(int(settings.SelectedRow) + 1) % numSettingsOptions,
		)
	}

	if GetAction(input, cfg.ActionMenuLeft).JustPressed {
		adjustSetting(settings, -1)
	}
	if GetAction(input, cfg.ActionMenuRight).JustPressed {
		adjustSetting(settings, +1)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		switch settings.SelectedRow {
		case components.SettingsOptFullscreen:
			adjustSetting(settings, +1)
		case components.SettingsOptBack:
			closeSettings(settings)
		}
	}
	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		closeSettings(settings)
	}
}

func adjustSetting(settings *components.SettingsMenuData, delta int) {
	switch settings.SelectedRow {
	case components.SettingsOptResolution:
		n := len(cfg.SettingsMenu.Resolutions)
		settings.ResolutionIndex = (settings.ResolutionIndex + delta + n) % n
		applyResolution(settings)
	case components.SettingsOptFullscreen:
		settings.Fullscreen = !settings.Fullscreen
		applyResolution(settings)
	case components.SettingsOptInputMode:
		n := len(cfg.SettingsMenu.InputModes)
		settings.InputMode = (settings.InputMode + delta + n) % n
	}
}

func applyResolution(settings *components.SettingsMenuData) {
	ebiten.SetFullscreen(settings.Fullscreen)
	if !settings.Fullscreen && settings.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[settings.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

func closeSettings(settings *components.SettingsMenuData) {
	settings.IsOpen = false
	SaveCurrentSettings(settings)
}

// DrawSettingsMenu renders the settings screen over whatever is behind it.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(e)
	if !settings.IsOpen {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	titleFont := fonts.Bold.Get()
	text.Draw(screen, "Settings", titleFont, int(width/2)-50, 100, cfg.Menu.TitleColor)

	resolutionLabel := "Unknown"
	if settings.ResolutionIndex >= 0 && settings.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		resolutionLabel = cfg.SettingsMenu.Resolutions[settings.ResolutionIndex].Label
	}
	inputLabel := "Unknown"
	if settings.InputMode >= 0 && settings.InputMode < len(cfg.SettingsMenu.InputModes) {
		inputLabel = cfg.SettingsMenu.InputModes[settings.InputMode]
	}

	rows := []string{
		fmt.Sprintf("Resolution  < %s >", resolutionLabel),
		fmt.Sprintf("Fullscreen  < %s >", onOff(settings.Fullscreen)),
		fmt.Sprintf("Input       < %s >", inputLabel),
		"Back",
	}

	rowFont := fonts.Regular.Get()
	for i, row := range rows {
		y := 170 + i*36
		textColor := cfg.Menu.TextColorNormal
		if components.SettingsOption(i) == settings.SelectedRow {
			textColor = cfg.Menu.TextColorSelected
		}
		text.Draw(screen, row, rowFont, int(width/2)-110, y, textColor)
	}
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

// ApplySavedSettingsGlobal applies persisted display settings at startup,
// before any scene has created the settings component.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	ebiten.SetFullscreen(saved.Fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// OpenSettings shows the settings screen.
func OpenSettings(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	settings.IsOpen = true
	settings.SelectedRow = components.SettingsOptResolution
}

// IsSettingsOpen reports whether the settings screen is showing.
func IsSettingsOpen(e *ecs.ECS) bool {
	return GetOrCreateSettingsMenu(e).IsOpen
}

// GetOrCreateSettingsMenu returns the singleton settings component, creating
// it with saved (or default) values if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.SettingsMenu))
		data := components.SettingsMenuData{
			ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
		}
		if saved, _ := LoadSettings(); saved != nil {
			data = settingsFromSaved(saved)
		}
		components.SettingsMenu.SetValue(ent, data)
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}

// settingsFromSaved builds menu state from a persisted save. The stored
// indexes are clamped to the option lists so a stale or hand-edited save
// file cannot point past them.
func settingsFromSaved(saved *SavedSettings) components.SettingsMenuData {
	data := components.SettingsMenuData{
		ResolutionIndex: saved.ResolutionIndex,
		Fullscreen:      saved.Fullscreen,
		InputMode:       saved.InputMode,
	}
	if data.ResolutionIndex < 0 || data.ResolutionIndex >= len(cfg.SettingsMenu.Resolutions) {
		data.ResolutionIndex = cfg.SettingsMenu.DefaultResolutionIndex
	}
	if data.InputMode < 0 || data.InputMode >= len(cfg.SettingsMenu.InputModes) {
		data.InputMode = 0
	}
	return data
}
