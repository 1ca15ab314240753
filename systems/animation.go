package systems

import (
	"github.com/tetrapod/wallflower/components"
	cfg "github.com/tetrapod/wallflower/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every frame clock by one tick.
func UpdateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		anim.Update(cfg.Screen.TickDelta)
	})
}
