package systems

import (
	"math/rand"

	"github.com/tetrapod/wallflower/components"
	cfg "github.com/tetrapod/wallflower/config"
	"github.com/tetrapod/wallflower/gamemath"
	"github.com/yohamta/donburi/ecs"
)

var rng = rand.New(rand.NewSource(42))

// SeedWander reseeds the wander RNG; called at startup with the -seed flag.
func SeedWander(seed int64) {
	rng = rand.New(rand.NewSource(seed))
}

// UpdateWander drives the randomized continuous policy. Unlike the
// sequencer it never repositions the window: it only assigns new actions,
// directions and jump targets, so motion stays continuous.
func UpdateWander(ecs *ecs.ECS) {
	screenEntry, ok := components.Screen.First(ecs.World)
	if !ok {
		return
	}
	screen := components.Screen.Get(screenEntry)
	if !screen.Ready {
		return
	}

	petEntry, ok := components.Pet.First(ecs.World)
	if !ok || !petEntry.HasComponent(components.Wander) {
		return
	}
	pet := components.Pet.Get(petEntry)
	if pet.Airborne() || components.Drag.Get(petEntry).Dragging {
		return
	}

	w := components.Wander.Get(petEntry)
	w.Left -= cfg.Screen.TickDelta
	if w.Left > 0 {
		return
	}

	action := sampleAction(pet.Surface)
	w.Left = holdFor(action)
	assignCase(pet, screen, action)
}

// sampleAction draws the next action from the surface's weight table.
func sampleAction(surface cfg.Surface) cfg.Action {
	var weights map[cfg.Action]float64
	switch surface {
	case cfg.Floor:
		weights = cfg.Wander.FloorWeights
	case cfg.Ceiling:
		weights = cfg.Wander.CeilingWeights
	default:
		weights = cfg.Wander.WallWeights
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	// Iterate in a fixed order so the draw is reproducible for a given seed.
	order := []cfg.Action{cfg.Move, cfg.Idle, cfg.Climb, cfg.Jumping, cfg.Sleeping, cfg.Hiding, cfg.GivingFlowers}
	pick := rng.Float64() * total
	for _, a := range order {
		w, ok := weights[a]
		if !ok {
			continue
		}
		pick -= w
		if pick < 0 {
			return a
		}
	}
	if surface == cfg.Floor {
		return cfg.Idle
	}
	return cfg.Climb
}

func holdFor(action cfg.Action) float64 {
	if action == cfg.GivingFlowers {
		return cfg.FlowersDuration()
	}
	r, ok := cfg.Wander.Hold[action]
	if !ok {
		return cfg.Sequencer.CaseDuration
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// assignCase sets the new action in place. Directions flip at random; jump
// targets are drawn relative to the current position.
func assignCase(pet *components.PetData, screen *components.ScreenData, action cfg.Action) {
	pet.Action = action
	pet.Flight = cfg.FlightNone
	pet.FlightFrom = pet.Surface
	pet.VX = 0
	pet.VY = 0
	pet.LandingLeft = 0
	pet.WallTarget = nil

	if action != cfg.Jumping {
		if rng.Float64() < 0.5 {
			pet.Dir = -pet.Dir
		}
		if pet.Dir == 0 {
			pet.Dir = 1
		}
		return
	}

	maxX, maxY := screen.MaxX(), screen.MaxY()

	if pet.Surface.IsWall() {
		// Wall -> floor: a random landing spot away from the wall.
		span := cfg.Wander.JumpMinSpanPct + rng.Float64()*(cfg.Wander.JumpMaxSpanPct-cfg.Wander.JumpMinSpanPct)
		if pet.Surface == cfg.RightWall {
			pet.TargetX = gamemath.Clamp(maxX-span*maxX, 0, maxX)
			pet.Dir = -1
		} else {
			pet.TargetX = gamemath.Clamp(span*maxX, 0, maxX)
			pet.Dir = 1
		}
		return
	}

	// Floor jump: sometimes onto a nearby wall, otherwise along the floor.
	if rng.Float64() < cfg.Wander.WallJumpChance {
		wall := cfg.RightWall
		if pet.X < maxX/2 {
			wall = cfg.LeftWall
		}
		frac := cfg.Wander.WallHeightMinPct + rng.Float64()*(cfg.Wander.WallHeightMaxPct-cfg.Wander.WallHeightMinPct)
		targetY := gamemath.Clamp(maxY-frac*jumpReach(), 0, maxY)
		pet.WallTarget = &components.WallTarget{Wall: wall, Y: targetY}
		if wall == cfg.RightWall {
			pet.TargetX = maxX
			pet.Dir = 1
		} else {
			pet.TargetX = 0
			pet.Dir = -1
		}
		return
	}

	span := cfg.Wander.JumpMinSpanPct + rng.Float64()*(cfg.Wander.JumpMaxSpanPct-cfg.Wander.JumpMinSpanPct)
	dx := span * maxX
	if pet.Dir < 0 {
		dx = -dx
	}
	target := pet.X + dx
	if target < 0 || target > maxX {
		target = pet.X - dx // bounce off the edge instead of clamping short
		pet.Dir = -pet.Dir
	}
	pet.TargetX = gamemath.Clamp(target, 0, maxX)
}
