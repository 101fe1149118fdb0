package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed float64 // pixels per tick

	// Combat
	Health       int
	InvulnFrames int

	// Sprite. The collision box covers the feet; sprites bottom-align to it
	// so heads overlap walls behind the character.
	SpriteScale     float64 // screen pixels per grid cell
	CollisionWidth  float64
	CollisionHeight float64
}

// CreepConfig contains training-dummy creep configuration
type CreepConfig struct {
	Health       int
	WanderSpeed  float64
	WanderFrames int // frames per wander leg before re-rolling direction
	PauseFrames  int // idle frames between wander legs
	InvulnFrames int
	RespawnDelay int // frames after death before respawning at the spawn marker

	ContactDamage    int // dealt when a dummy bumps into the hero
	ContactKnockback float64

	SpriteScale     float64
	CollisionWidth  float64
	CollisionHeight float64
}

// CombatConfig contains melee swing configuration values
type CombatConfig struct {
	SwingDamage    int
	SwingReach     float64 // hitbox depth in front of the player
	SwingWidth     float64 // hitbox extent across the facing axis
	SwingActive    int     // frames the hitbox lives
	SwingCooldown  int     // frames before the next swing
	SwingKnockback float64

	// Flash effects (frames)
	HitFlashFrames    int // white flash on the target when a hit lands
	DamageFlashFrames int // red flash on the player when taking damage
}

// BoltConfig contains ranged bolt projectile configuration
type BoltConfig struct {
	Speed    float64
	Damage   int
	Width    float64
	Height   float64
	Lifetime int // frames before the bolt fizzles
	Cooldown int // frames between shots
}

// RollConfig contains roll-dash configuration values
type RollConfig struct {
	// Speed multiplier tweens from Boost down to 1.0 over Duration frames.
	Boost        float64
	Duration     int
	Cooldown     int
	InvulnFrames int // i-frames at the start of the roll
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // 0.0-1.0, fraction of the gap closed per tick
	SnapDistance    float64 // below this gap the camera locks on exactly
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	HitIntensity    float64 // pixels
	HitDuration     int     // frames
	DamageIntensity float64
	DamageDuration  int
}

// HUDConfig contains HUD layout and color configuration
type HUDConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	Margin          float64

	HealthBarBgColor  color.RGBA
	HealthBarFgColor  color.RGBA
	HealthBarLowColor color.RGBA
	LowHealthFraction float64 // below this, the bar switches to the low color

	// Bitmap digit rendering for the score counter
	DigitScale float64
	TextColor  color.RGBA
}

// MenuConfig contains file-select and character-select screen configuration
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64

	// Character select grid
	PortraitScale   float64 // grid-cell scale for roster portraits
	PortraitColumns int
	PortraitGap     float64
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// StarfieldConfig contains the background starfield configuration
type StarfieldConfig struct {
	StarCount int
	Seed      int64
	MinShade  uint8
	MaxShade  uint8
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Creep CreepConfig
var Combat CombatConfig
var Bolt BoltConfig
var Roll RollConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var HUD HUDConfig
var Menu MenuConfig
var Pause PauseConfig
var Starfield StarfieldConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	WallGray     = color.RGBA{R: 70, G: 74, B: 90, A: 255}
	FloorBlack   = color.RGBA{R: 12, G: 12, B: 20, A: 255}
	BoltYellow   = color.RGBA{R: 255, G: 230, B: 120, A: 255}
	SwingWhite   = color.RGBA{R: 255, G: 255, B: 255, A: 120}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
	}

	Player = PlayerConfig{
		MoveSpeed:    2.0,
		Health:       60,
		InvulnFrames: 30,

		SpriteScale:     2.0,
		CollisionWidth:  20.0,
		CollisionHeight: 14.0,
	}

	Creep = CreepConfig{
		Health:       30,
		WanderSpeed:  0.6,
		WanderFrames: 90,
		PauseFrames:  45,
		InvulnFrames: 15,
		RespawnDelay: 300,

		ContactDamage:    5,
		ContactKnockback: 2.5,

		SpriteScale:     2.0,
		CollisionWidth:  20.0,
		CollisionHeight: 14.0,
	}

	Combat = CombatConfig{
		SwingDamage:    10,
		SwingReach:     22.0,
		SwingWidth:     30.0,
		SwingActive:    8,
		SwingCooldown:  20,
		SwingKnockback: 3.0,

		HitFlashFrames:    6,
		DamageFlashFrames: 12,
	}

	Bolt = BoltConfig{
		Speed:    5.0,
		Damage:   6,
		Width:    6.0,
		Height:   6.0,
		Lifetime: 90,
		Cooldown: 30,
	}

	Roll = RollConfig{
		Boost:        2.5,
		Duration:     18,
		Cooldown:     45,
		InvulnFrames: 12,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.12,
		SnapDistance:    0.5,
	}

	ScreenShake = ScreenShakeConfig{
		HitIntensity:    2.0,
		HitDuration:     6,
		DamageIntensity: 4.0,
		DamageDuration:  10,
	}

	HUD = HUDConfig{
		HealthBarWidth:  120.0,
		HealthBarHeight: 10.0,
		Margin:          8.0,

		HealthBarBgColor:  color.RGBA{R: 40, G: 40, B: 48, A: 255},
		HealthBarFgColor:  Green,
		HealthBarLowColor: LightRed,
		LowHealthFraction: 0.25,

		DigitScale: 2.0,
		TextColor:  White,
	}

	Menu = MenuConfig{
		BackgroundColor:   FloorBlack,
		TitleColor:        White,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            80.0,
		MenuStartY:        180.0,
		MenuItemHeight:    32.0,
		MenuItemGap:       12.0,

		PortraitScale:   2.0,
		PortraitColumns: 5,
		PortraitGap:     24.0,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		MenuItemHeight:    32.0,
		MenuItemGap:       12.0,
		MenuOptions:       []string{"Resume", "Settings", "Quit to Menu"},
	}

	Starfield = StarfieldConfig{
		StarCount: 90,
		Seed:      1977,
		MinShade:  40,
		MaxShade:  140,
	}
}
