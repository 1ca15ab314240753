package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tetrapod/wallflower/assets"
	"github.com/tetrapod/wallflower/components"
	cfg "github.com/tetrapod/wallflower/config"
	"github.com/tetrapod/wallflower/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWindow finalizes the overlay window once the sprite sheet is
// available (size the window to one frame, build the screen-edge contact
// space, put the pet on the floor) and afterwards repositions the OS window
// to the pet's coordinates every tick.
func UpdateWindow(ecs *ecs.ECS) {
	screenEntry, ok := components.Screen.First(ecs.World)
	if !ok {
		return
	}
	screen := components.Screen.Get(screenEntry)

	if !screen.Ready {
		sheet := assets.Current()
		if sheet == nil {
			return
		}
		finalize(ecs, screen, sheet)
		return
	}

	petEntry, ok := components.Pet.First(ecs.World)
	if !ok {
		return
	}
	pet := components.Pet.Get(petEntry)
	ebiten.SetWindowPosition(int(math.Round(pet.X)), int(math.Round(pet.Y)))
}

func finalize(ecs *ecs.ECS, screen *components.ScreenData, sheet *assets.Sheet) {
	screen.W, screen.H = desktopSize()
	screen.FrameW = int(float64(sheet.FrameW) * cfg.Debug.Scale)
	screen.FrameH = int(float64(sheet.FrameH) * cfg.Debug.Scale)

	ebiten.SetWindowSize(screen.FrameW, screen.FrameH)

	factory.BuildScreenSpace(ecs, screen)

	if petEntry, ok := components.Pet.First(ecs.World); ok {
		pet := components.Pet.Get(petEntry)
		pet.X = float64(cfg.Screen.StartMargin)
		pet.Y = screen.MaxY()
		factory.AttachPetObject(ecs, petEntry, screen)
		ebiten.SetWindowPosition(int(pet.X), int(pet.Y))
	}

	screen.Ready = true
}

// desktopSize queries the current monitor, falling back to a default
// virtual screen when there is none to ask.
func desktopSize() (int, int) {
	if m := ebiten.Monitor(); m != nil {
		w, h := m.Size()
		if w > 0 && h > 0 {
			return w, h
		}
	}
	return cfg.Screen.FallbackWidth, cfg.Screen.FallbackHeight
}
