package systems

import (
	"testing"

	"github.com/tetrapod/wallflower/components"
	cfg "github.com/tetrapod/wallflower/config"
	"github.com/tetrapod/wallflower/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS builds a headless world with a ready 1920x1080 screen, a 64x64
// frame, the edge contact space and one pet.
func newTestECS(t *testing.T, scripted bool) (*ecs.ECS, *donburi.Entry, *components.ScreenData) {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())

	screenEntry := factory.CreateScreen(e)
	screen := components.Screen.Get(screenEntry)
	screen.W, screen.H = 1920, 1080
	screen.FrameW, screen.FrameH = 64, 64
	screen.Ready = true
	factory.BuildScreenSpace(e, screen)

	pet := factory.CreatePet(e, scripted)
	factory.AttachPetObject(e, pet, screen)

	setScripted(t, scripted)
	return e, pet, screen
}

// setScripted flips the driver mode flag for the duration of a test.
func setScripted(t *testing.T, v bool) {
	t.Helper()
	prev := cfg.Debug.Scripted
	cfg.Debug.Scripted = v
	t.Cleanup(func() { cfg.Debug.Scripted = prev })
}
