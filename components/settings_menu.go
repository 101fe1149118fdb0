package components

import "github.com/yohamta/donburi"

// SettingsOption enumerates the rows of the settings screen
type SettingsOption int

const (
	SettingsOptResolution SettingsOption = iota
	SettingsOptFullscreen
	SettingsOptInputMode
	SettingsOptBack
)

// SettingsMenuData stores the settings screen state
type SettingsMenuData struct {
	IsOpen          bool
	SelectedRow     SettingsOption
	ResolutionIndex int
	Fullscreen      bool
	InputMode       int
}

var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
