package systems

import (
	"github.com/tetrapod/wallflower/components"
	cfg "github.com/tetrapod/wallflower/config"
	"github.com/tetrapod/wallflower/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSequencer drives the deterministic case list (built in
// systems/factory). It pauses while the pet is airborne or landing so every
// jump completes visibly, and it repositions the window to a sensible start
// for each case.
func UpdateSequencer(ecs *ecs.ECS) {
	screenEntry, ok := components.Screen.First(ecs.World)
	if !ok {
		return
	}
	screen := components.Screen.Get(screenEntry)
	if !screen.Ready {
		return
	}

	petEntry, ok := components.Pet.First(ecs.World)
	if !ok || !petEntry.HasComponent(components.Sequencer) {
		return
	}
	pet := components.Pet.Get(petEntry)
	if pet.Airborne() || components.Drag.Get(petEntry).Dragging {
		return
	}

	seq := components.Sequencer.Get(petEntry)
	if len(seq.Cases) == 0 {
		return
	}

	seq.Left -= cfg.Screen.TickDelta
	if seq.Left > 0 {
		return
	}

	seq.Index = (seq.Index + 1) % len(seq.Cases)
	c := seq.Cases[seq.Index]
	seq.Left = c.Duration
	applyCase(pet, screen, c)
}

// applyCase resets the pet to a case's surface/action/direction and places
// the window at that case's start position.
func applyCase(pet *components.PetData, screen *components.ScreenData, c components.Case) {
	pet.Surface = c.Surface
	pet.Action = c.Action
	pet.Dir = c.Dir

	pet.Flight = cfg.FlightNone
	pet.FlightFrom = c.Surface
	pet.VX = 0
	pet.VY = 0
	pet.LandingLeft = 0
	pet.TargetX = 0
	pet.WallTarget = nil

	maxX, maxY := screen.MaxX(), screen.MaxY()
	midY := maxY / 2
	margin := float64(cfg.Screen.StartMargin)

	switch c.Surface {
	case cfg.Floor:
		pet.Y = maxY
		if c.Action != cfg.Jumping {
			if pet.Dir >= 0 {
				pet.X = margin
			} else {
				pet.X = maxX - margin
			}
			return
		}
		switch c.Preset.Kind {
		case components.PresetFloorPct:
			pet.X = gamemath.Clamp(maxX*c.Preset.StartPct, 0, maxX)
			pet.TargetX = gamemath.Clamp(maxX*c.Preset.TargetPct, 0, maxX)
			if pet.TargetX >= pet.X {
				pet.Dir = 1
			} else {
				pet.Dir = -1
			}
		case components.PresetFloorToWallPct:
			pet.X = gamemath.Clamp(maxX*c.Preset.StartPct, 0, maxX)
			reach := jumpReach()
			targetY := gamemath.Clamp(maxY-c.Preset.HeightPct*reach, 0, maxY)
			pet.WallTarget = &components.WallTarget{Wall: c.Preset.Wall, Y: targetY}
			if c.Preset.Wall == cfg.RightWall {
				pet.TargetX = maxX
				pet.Dir = 1
			} else {
				pet.TargetX = 0
				pet.Dir = -1
			}
		default:
			pet.X = margin
			pet.TargetX = maxX - margin
			pet.Dir = 1
		}

	case cfg.RightWall:
		pet.X = maxX
		if c.Action == cfg.Jumping {
			pet.Y = midY
			pet.TargetX = gamemath.Clamp(maxX*c.Preset.TargetPct, 0, maxX)
			pet.Dir = -1 // face left on landing from the right wall
		} else if pet.Dir >= 0 {
			pet.Y = maxY - margin
		} else {
			pet.Y = margin
		}

	case cfg.Ceiling:
		pet.Y = 0
		if pet.Dir < 0 {
			pet.X = maxX - margin
		} else {
			pet.X = margin
		}

	case cfg.LeftWall:
		pet.X = 0
		if c.Action == cfg.Jumping {
			pet.Y = midY
			pet.TargetX = gamemath.Clamp(maxX*c.Preset.TargetPct, 0, maxX)
			pet.Dir = 1 // face right on landing from the left wall
		} else if pet.Dir < 0 {
			pet.Y = margin
		} else {
			pet.Y = maxY - margin
		}
	}
}

func jumpReach() float64 {
	return gamemath.JumpReach(cfg.Physics.FloorJumpSpeed, cfg.Physics.Gravity)
}
