package scenes

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/tetrapod/wallflower/config"
	"github.com/tetrapod/wallflower/systems"
	"github.com/tetrapod/wallflower/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DesktopScene runs the pet against the desktop: one entity, one window,
// every system once per tick.
type DesktopScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewDesktopScene() *DesktopScene {
	return &DesktopScene{}
}

func (ds *DesktopScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()
}

func (ds *DesktopScene) Draw(screen *ebiten.Image) {
	// The window background stays transparent; only the pet is drawn.
	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DesktopScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateWindow)
	ecs.AddSystem(systems.UpdateDrag)
	if cfg.Debug.Scripted {
		ecs.AddSystem(systems.UpdateSequencer)
	} else {
		ecs.AddSystem(systems.UpdateWander)
	}
	ecs.AddSystem(systems.UpdateMotion)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateAnimations)

	ecs.AddRenderer(cfg.Default, systems.DrawPet)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	factory.CreateScreen(ecs)
	factory.CreatePet(ecs, cfg.Debug.Scripted)

	ds.ecs = ecs
}
