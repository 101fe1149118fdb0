package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gridvale/components"
	cfg "github.com/automoto/gridvale/config"
	"github.com/automoto/gridvale/fonts"
)

// digitRows is a 3x5 bitmap font for 0-9, one byte per row, low three bits
// used left-to-right.
var digitRows = [10][5]uint8{
	{0b111, 0b101, 0b101, 0b101, 0b111}, // 0
	{0b010, 0b110, 0b010, 0b010, 0b111}, // 1
	{0b111, 0b001, 0b111, 0b100, 0b111}, // 2
	{0b111, 0b001, 0b111, 0b001, 0b111}, // 3
	{0b101, 0b101, 0b111, 0b001, 0b001}, // 4
	{0b111, 0b100, 0b111, 0b001, 0b111}, // 5
	{0b111, 0b100, 0b111, 0b101, 0b111}, // 6
	{0b111, 0b001, 0b010, 0b010, 0b010}, // 7
	{0b111, 0b101, 0b111, 0b101, 0b111}, // 8
	{0b111, 0b101, 0b111, 0b001, 0b111}, // 9
}

// DrawHUD renders the player's health bar and knockout counter in the screen
// corners. The counter uses the bitmap digits so the HUD needs no font asset.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	margin := float32(cfg.HUD.Margin)
	barW := float32(cfg.HUD.HealthBarWidth)
	barH := float32(cfg.HUD.HealthBarHeight)

	vector.DrawFilledRect(screen, margin, margin, barW, barH, cfg.HUD.HealthBarBgColor, false)

	ratio := float32(hp.Current) / float32(hp.Max)
	fg := cfg.HUD.HealthBarFgColor
	if float64(ratio) <= cfg.HUD.LowHealthFraction {
		fg = cfg.HUD.HealthBarLowColor
	}
	vector.DrawFilledRect(screen, margin, margin, barW*ratio, barH, fg, false)

	// Name under the health bar
	text.Draw(screen, player.Name, fonts.Small.Get(),
		int(margin), int(margin+barH)+14, cfg.HUD.TextColor)

	// Cooldown pips: swing then bolt, lit when the attack is ready.
	pip := float32(6)
	pipY := margin + barH + 20
	drawPip(screen, margin, pipY, pip, player.SwingCooldown == 0, cfg.SwingWhite)
	drawPip(screen, margin+pip+4, pipY, pip, player.BoltCooldown == 0, cfg.BoltYellow)

	// Knockout counter, top-right.
	scale := float32(cfg.HUD.DigitScale)
	digits := digitsOf(player.Score)
	glyphW := 4 * scale // 3 columns + 1 gap
	x := float32(screen.Bounds().Dx()) - margin - float32(len(digits))*glyphW
	drawDigits(screen, digits, x, margin, scale)
}

func drawPip(screen *ebiten.Image, x, y, size float32, ready bool, readyColor color.RGBA) {
	clr := readyColor
	if !ready {
		clr = cfg.HUD.HealthBarBgColor
	}
	vector.DrawFilledRect(screen, x, y, size, size, clr, false)
}

func digitsOf(n int) []int {
	if n <= 0 {
		return []int{0}
	}
	var out []int
	for n > 0 {
		out = append([]int{n % 10}, out...)
		n /= 10
	}
	return out
}

func drawDigits(screen *ebiten.Image, digits []int, x, y, scale float32) {
	for i, d := range digits {
		gx := x + float32(i)*4*scale
		for row, bits := range digitRows[d] {
			for col := 0; col < 3; col++ {
				if bits&(0b100>>col) == 0 {
					continue
				}
				vector.DrawFilledRect(screen,
					gx+float32(col)*scale, y+float32(row)*scale,
					scale, scale, cfg.HUD.TextColor, false)
			}
		}
	}
}
