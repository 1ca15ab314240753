package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/tetrapod/wallflower/components"
	cfg "github.com/tetrapod/wallflower/config"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

// DrawDebug overlays the pet's state when -debug is set.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	petEntry, ok := components.Pet.First(ecs.World)
	if !ok {
		return
	}
	pet := components.Pet.Get(petEntry)
	anim := components.Animation.Get(petEntry)

	line := fmt.Sprintf("%s/%s d%+.0f f%d", pet.Surface, pet.Action, pet.Dir, anim.Frame-anim.Start)
	text.Draw(screen, line, basicfont.Face7x13, 2, 12, color.RGBA{R: 0, G: 255, B: 0, A: 255})
}
