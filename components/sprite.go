package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/automoto/gridvale/pixelgrid"
	"github.com/automoto/gridvale/sprites"
)

// PixelSpriteData holds a character's derived animation set, the animator
// driving it, and a lazy cache of rasterized frames. The cache is keyed by
// the address of a grid's first row: frames that alias the idle grid share
// one image, and a repaint happens only when the animator reports a change.
type PixelSpriteData struct {
	Animator sprites.Animator
	Palette  pixelgrid.Palette
	Scale    float64

	frames map[*[]uint8]*ebiten.Image
}

// CachedFrame returns the rasterized image for g, or nil on a cache miss.
func (d *PixelSpriteData) CachedFrame(g pixelgrid.Grid) *ebiten.Image {
	if len(g) == 0 || d.frames == nil {
		return nil
	}
	return d.frames[&g[0]]
}

// StoreFrame caches the rasterized image for g.
func (d *PixelSpriteData) StoreFrame(g pixelgrid.Grid, img *ebiten.Image) {
	if len(g) == 0 {
		return
	}
	if d.frames == nil {
		d.frames = make(map[*[]uint8]*ebiten.Image)
	}
	d.frames[&g[0]] = img
}

var PixelSprite = donburi.NewComponentType[PixelSpriteData]()
