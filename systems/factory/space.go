package factory

import (
	"github.com/solarlune/resolv"
	"github.com/tetrapod/wallflower/archetypes"
	"github.com/tetrapod/wallflower/components"
	"github.com/tetrapod/wallflower/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScreen spawns the screen singleton. Geometry and the contact space
// arrive later via BuildScreenSpace, once the frame size is known.
func CreateScreen(ecs *ecs.ECS) *donburi.Entry {
	screen := archetypes.Screen.Spawn(ecs)
	components.Screen.SetValue(screen, components.ScreenData{})
	return screen
}

// BuildScreenSpace fills the resolv space with thin strips along the four
// screen edges. Flight contact checks run against these instead of raw
// coordinate comparisons.
func BuildScreenSpace(ecs *ecs.ECS, screen *components.ScreenData) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}

	w, h := float64(screen.W), float64(screen.H)
	space := resolv.NewSpace(screen.W, screen.H, 64, 64)

	floor := resolv.NewObject(0, h-1, w, 1, tags.ResolvFloor)
	ceiling := resolv.NewObject(0, 0, w, 1, tags.ResolvCeiling)
	left := resolv.NewObject(0, 0, 1, h, tags.ResolvLeftWall)
	right := resolv.NewObject(w-1, 0, 1, h, tags.ResolvRightWall)
	space.Add(floor, ceiling, left, right)

	components.Space.Set(spaceEntry, space)
}
