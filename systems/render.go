package systems

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gridvale/arena"
	"github.com/automoto/gridvale/components"
	cfg "github.com/automoto/gridvale/config"
	"github.com/automoto/gridvale/pixelgrid"
	"github.com/automoto/gridvale/tags"
)

var drawOp = &ebiten.DrawImageOptions{}

type star struct {
	x, y  float32
	shade uint8
}

var starfield []star
var starfieldArena *arena.Arena

// DrawArena paints the floor, a deterministic starfield, and the wall
// rectangles. Everything is procedural; the TMX only carries geometry.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	arenaEntry, ok := components.ArenaInfo.First(e.World)
	if !ok {
		return
	}
	info := components.ArenaInfo.Get(arenaEntry)

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX := float32(float64(width)/2 - camera.Position.X)
	offY := float32(float64(height)/2 - camera.Position.Y)

	screen.Fill(cfg.FloorBlack)

	for _, s := range stars(info.Arena) {
		shade := s.shade
		vector.DrawFilledRect(screen, s.x+offX, s.y+offY, 1, 1,
			rgb(shade, shade, shade), false)
	}

	for _, w := range info.Arena.Walls {
		vector.DrawFilledRect(screen,
			float32(w.X)+offX, float32(w.Y)+offY,
			float32(w.W), float32(w.H),
			cfg.WallGray, false)
	}
}

// stars lazily builds the starfield for the current arena. The seed is fixed
// so the sky is identical every session.
func stars(a *arena.Arena) []star {
	if starfieldArena == a {
		return starfield
	}
	rng := rand.New(rand.NewSource(cfg.Starfield.Seed))
	starfield = make([]star, cfg.Starfield.StarCount)
	span := int(cfg.Starfield.MaxShade - cfg.Starfield.MinShade)
	for i := range starfield {
		starfield[i] = star{
			x:     float32(rng.Intn(a.Width)),
			y:     float32(rng.Intn(a.Height)),
			shade: cfg.Starfield.MinShade + uint8(rng.Intn(span+1)),
		}
	}
	starfieldArena = a
	return starfield
}

// DrawPixelSprites renders every character from its animator's current grid.
// Frames rasterize once on first use and live in the per-entity cache; frames
// that alias the idle grid share one image, so a facing change or walk frame
// only costs a new image the first time it is ever shown.
func DrawPixelSprites(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	components.PixelSprite.Each(e.World, func(entry *donburi.Entry) {
		if respawning(entry) {
			return
		}
		sprite := components.PixelSprite.Get(entry)
		grid, ok := sprite.Animator.Current()
		if !ok {
			return
		}
		obj := components.Object.Get(entry)

		img := sprite.CachedFrame(grid)
		if img == nil {
			img = rasterizeGrid(grid, sprite.Palette)
			sprite.StoreFrame(grid, img)
		}

		rows, cols := pixelgrid.Size(grid)
		spriteW := float64(cols) * sprite.Scale
		spriteH := float64(rows) * sprite.Scale

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(sprite.Scale, sprite.Scale)
		// Bottom-center of sprite at bottom-center of collision box.
		drawOp.GeoM.Translate(
			obj.X+obj.W/2-spriteW/2,
			obj.Y+obj.H-spriteH,
		)
		drawOp.GeoM.Translate(float64(width)/2-camera.Position.X, float64(height)/2-camera.Position.Y)

		// Flicker while invulnerable
		if entry.HasComponent(components.Player) {
			player := components.Player.Get(entry)
			if player.InvulnFrames > 0 && player.InvulnFrames%4 < 2 {
				drawOp.ColorScale.Scale(1, 0.5, 0.5, 0.8)
			}
		}

		if entry.HasComponent(components.Flash) {
			flash := components.Flash.Get(entry)
			if flash.Duration > 0 {
				drawOp.ColorScale.Reset()
				drawOp.ColorScale.Scale(flash.R, flash.G, flash.B, 1)
			}
		}

		screen.DrawImage(img, drawOp)
	})
}

// rasterizeGrid converts a pixel grid into a 1:1 texture; slot 0 stays
// transparent. Scaling happens at draw time so one texture serves any zoom.
func rasterizeGrid(g pixelgrid.Grid, palette pixelgrid.Palette) *ebiten.Image {
	rows, cols := pixelgrid.Size(g)
	pix := make([]byte, rows*cols*4)
	for r, row := range g {
		for c, slot := range row {
			if slot == pixelgrid.SlotTransparent {
				continue
			}
			clr := palette[slot]
			i := (r*cols + c) * 4
			pix[i+0] = clr.R
			pix[i+1] = clr.G
			pix[i+2] = clr.B
			pix[i+3] = clr.A
		}
	}
	img := ebiten.NewImage(cols, rows)
	img.WritePixels(pix)
	return img
}

// DrawAttacks shows active swing hitboxes as a brief translucent arc and
// bolts as small glowing squares.
func DrawAttacks(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX := float32(float64(width)/2 - camera.Position.X)
	offY := float32(float64(height)/2 - camera.Position.Y)

	components.Hitbox.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		vector.DrawFilledRect(screen,
			float32(obj.X)+offX, float32(obj.Y)+offY,
			float32(obj.W), float32(obj.H),
			cfg.SwingWhite, false)
	})

	components.Bolt.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		vector.DrawFilledRect(screen,
			float32(obj.X)+offX, float32(obj.Y)+offY,
			float32(obj.W), float32(obj.H),
			cfg.BoltYellow, false)
	})
}

// DrawHealthBars shows a small bar over recently damaged creeps.
func DrawHealthBars(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX := float32(float64(width)/2 - camera.Position.X)
	offY := float32(float64(height)/2 - camera.Position.Y)

	components.HealthBar.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Health) {
			return
		}
		bar := components.HealthBar.Get(entry)
		if bar.TimeToLive <= 0 || respawning(entry) {
			return
		}
		hp := components.Health.Get(entry)
		obj := components.Object.Get(entry)

		barW := float32(28)
		barH := float32(3)
		x := float32(obj.X+obj.W/2) + offX - barW/2
		y := float32(obj.Y) + offY - 34

		vector.DrawFilledRect(screen, x, y, barW, barH, cfg.HUD.HealthBarBgColor, false)
		ratio := float32(hp.Current) / float32(hp.Max)
		vector.DrawFilledRect(screen, x, y, barW*ratio, barH, cfg.HUD.HealthBarFgColor, false)
	})
}

func respawning(entry *donburi.Entry) bool {
	if !entry.HasComponent(tags.Creep) || !entry.HasComponent(components.State) {
		return false
	}
	return components.State.Get(entry).CurrentState == cfg.StateRespawning
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
