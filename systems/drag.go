package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tetrapod/wallflower/components"
	cfg "github.com/tetrapod/wallflower/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDrag lets the user pick the pet up with the left mouse button. The
// cursor position is window-relative, so the new window origin is the old
// one plus how far the cursor moved from its grab offset. On release the
// pet is dropped into a plain fall back to the floor.
func UpdateDrag(ecs *ecs.ECS) {
	petEntry, ok := components.Pet.First(ecs.World)
	if !ok {
		return
	}
	pet := components.Pet.Get(petEntry)
	drag := components.Drag.Get(petEntry)

	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	mx, my := ebiten.CursorPosition()

	if pressed {
		if !drag.Dragging {
			drag.Dragging = true
			drag.GrabX = mx
			drag.GrabY = my
			return
		}
		wx, wy := ebiten.WindowPosition()
		pet.X = float64(wx + mx - drag.GrabX)
		pet.Y = float64(wy + my - drag.GrabY)
		return
	}

	if drag.Dragging {
		drag.Dragging = false
		dropPet(pet)
	}
}

// dropPet turns a release into a vertical fall: no horizontal speed, floor
// target straight below, the regular landing sequence at the bottom.
func dropPet(pet *components.PetData) {
	pet.Action = cfg.Jumping
	pet.Flight = cfg.FlightParabola
	pet.FlightFrom = cfg.Floor
	pet.VX = 0
	pet.VY = 0
	pet.TargetX = pet.X
	pet.WallTarget = nil
	pet.LandingLeft = 0
}
