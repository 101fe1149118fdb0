package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// InputModeID represents the input mode
type InputModeID int

const (
	InputModeKeyboard InputModeID = iota
	InputModeController
)

// SettingsMenuConfig contains settings screen configuration
type SettingsMenuConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	InputModes             []string
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		Resolutions: []Resolution{
			{Width: 640, Height: 480, Label: "640 x 480"},
			{Width: 1280, Height: 960, Label: "1280 x 960"},
			{Width: 1920, Height: 1440, Label: "1920 x 1440"},
		},
		DefaultResolutionIndex: 1,
		InputModes:             []string{"Keyboard", "Controller"},
	}
}
