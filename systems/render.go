package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tetrapod/wallflower/assets"
	"github.com/tetrapod/wallflower/components"
	cfg "github.com/tetrapod/wallflower/config"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// DrawPet renders the current animation frame into the overlay window,
// applying the visual table's rotation/mirroring and the squash/stretch
// scale around the frame center.
func DrawPet(ecs *ecs.ECS, screen *ebiten.Image) {
	sheet := assets.Current()
	if sheet == nil {
		return
	}

	petEntry, ok := components.Pet.First(ecs.World)
	if !ok {
		return
	}
	anim := components.Animation.Get(petEntry)
	sprite := components.Sprite.Get(petEntry)

	img := sheet.Frame(anim.Frame)
	if img == nil {
		return
	}

	fw := float64(sheet.FrameW)
	fh := float64(sheet.FrameH)

	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(-fw/2, -fh/2)

	sx, sy := sprite.ScaleX, sprite.ScaleY
	if sprite.FlipX {
		sx = -sx
	}
	if sprite.FlipY {
		sy = -sy
	}
	drawOp.GeoM.Scale(sx, sy)
	drawOp.GeoM.Rotate(sprite.Rotation)

	scale := cfg.Debug.Scale
	drawOp.GeoM.Scale(scale, scale)
	drawOp.GeoM.Translate(fw*scale/2, fh*scale/2)

	screen.DrawImage(img, drawOp)
}
