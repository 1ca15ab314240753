package systems

import (
	"github.com/tetrapod/wallflower/components"
	cfg "github.com/tetrapod/wallflower/config"
	"github.com/tetrapod/wallflower/gamemath"
	"github.com/tetrapod/wallflower/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMotion advances the pet one tick: edge-following on the current
// surface, parabolic flight between surfaces, and the landing hold. It also
// keeps the visual table applied so row/orientation track the motion state.
func UpdateMotion(ecs *ecs.ECS) {
	screenEntry, ok := components.Screen.First(ecs.World)
	if !ok {
		return
	}
	screen := components.Screen.Get(screenEntry)
	if !screen.Ready {
		return
	}

	petEntry, ok := components.Pet.First(ecs.World)
	if !ok {
		return
	}
	pet := components.Pet.Get(petEntry)
	if components.Drag.Get(petEntry).Dragging {
		return
	}

	dt := cfg.Screen.TickDelta

	if pet.Action == cfg.Jumping && pet.Flight == cfg.FlightNone {
		if pet.Surface == cfg.Ceiling {
			// Ceiling jumps stay disabled: pose only, no physics.
			ApplyVisual(petEntry, VisualFor(pet.Surface, pet.Action, pet.Dir))
			return
		}
		takeOff(pet, screen)
	}

	if pet.Flight != cfg.FlightNone {
		flightStep(petEntry, pet, screen, dt)
	} else {
		ApplyVisual(petEntry, VisualFor(pet.Surface, pet.Action, pet.Dir))
		surfaceStep(pet, screen, dt)
	}

	if pet.Action == cfg.Landing {
		pet.LandingLeft -= dt
		if pet.LandingLeft <= 0 {
			pet.LandingLeft = 0
			pet.Action = cfg.Move // continue walking on the floor
		}
	}

	pet.X = gamemath.Clamp(pet.X, 0, screen.MaxX())
	pet.Y = gamemath.Clamp(pet.Y, 0, screen.MaxY())
	syncObject(petEntry, pet)
}

// takeOff captures the takeoff surface and solves the initial velocity so
// the horizontal travel meets the stored target in the time the vertical
// physics allows.
func takeOff(pet *components.PetData, screen *components.ScreenData) {
	pet.FlightFrom = pet.Surface
	g := cfg.Physics.Gravity

	var t, vy0 float64
	switch {
	case pet.Surface == cfg.Floor && pet.WallTarget != nil:
		// Floor -> wall: time to reach the target height on the way.
		vy0 = cfg.Physics.FloorJumpSpeed
		var ok bool
		t, ok = gamemath.TimeToHeight(pet.Y, pet.WallTarget.Y, vy0, g)
		if !ok {
			t = 1.0
		}
	case pet.Surface == cfg.Floor:
		// Same start and end height: symmetric arc.
		vy0 = cfg.Physics.FloorJumpSpeed
		t = gamemath.SymmetricArcTime(vy0, g)
	default:
		// Wall -> floor: time to fall to the floor line from here.
		vy0 = cfg.Physics.WallJumpSpeed
		var ok bool
		t, ok = gamemath.TimeToHeight(pet.Y, screen.MaxY(), vy0, g)
		if !ok {
			t = 1.0
		}
	}

	pet.VX = gamemath.HorizontalSpeed(pet.TargetX-pet.X, t)
	pet.VY = vy0
	pet.Flight = cfg.FlightParabola
	pet.LandingLeft = 0
}

// flightStep integrates one tick of parabolic flight (velocity first, then
// position) and resolves floor or wall contact.
func flightStep(e *donburi.Entry, pet *components.PetData, screen *components.ScreenData, dt float64) {
	pet.VY += cfg.Physics.Gravity * dt
	dx := pet.VX * dt
	dy := pet.VY * dt

	// The jump pose stays pinned to the takeoff surface for the whole flight.
	ApplyVisual(e, VisualFor(pet.FlightFrom, cfg.Jumping, pet.Dir))

	obj := components.Object.Get(e).Object
	if obj != nil {
		obj.X, obj.Y = pet.X, pet.Y
		obj.Update()

		if pet.WallTarget != nil {
			wallTag := tags.ResolvRightWall
			if pet.WallTarget.Wall == cfg.LeftWall {
				wallTag = tags.ResolvLeftWall
			}
			if col := obj.Check(dx, dy, wallTag); col != nil {
				landOnWall(pet, screen)
				return
			}
		}
		if pet.VY > 0 {
			if col := obj.Check(dx, dy, tags.ResolvFloor); col != nil {
				landOnFloor(pet, screen)
				return
			}
		}
	}

	pet.X = gamemath.Clamp(pet.X+dx, 0, screen.MaxX())
	pet.Y = gamemath.Clamp(pet.Y+dy, 0, screen.MaxY())

	// Coordinate fallback, e.g. when the clamp pinned us to the floor line.
	if pet.Y >= screen.MaxY() && pet.VY > 0 {
		landOnFloor(pet, screen)
	}
}

func landOnFloor(pet *components.PetData, screen *components.ScreenData) {
	pet.Flight = cfg.FlightNone
	pet.Surface = cfg.Floor
	pet.Action = cfg.Landing

	// Facing on landing: from the right wall head left, from the left wall
	// head right, from the floor face the direction of travel.
	switch pet.FlightFrom {
	case cfg.RightWall:
		pet.Dir = -1
	case cfg.LeftWall:
		pet.Dir = 1
	default:
		if pet.VX >= 0 {
			pet.Dir = 1
		} else {
			pet.Dir = -1
		}
	}

	pet.X = gamemath.Clamp(pet.TargetX, 0, screen.MaxX())
	pet.Y = screen.MaxY()
	pet.VX = 0
	pet.VY = 0
	pet.WallTarget = nil
	pet.LandingLeft = cfg.Motion.LandingHold
}

func landOnWall(pet *components.PetData, screen *components.ScreenData) {
	target := pet.WallTarget
	pet.Flight = cfg.FlightNone
	pet.Surface = target.Wall
	pet.Action = cfg.Climb

	if target.Wall == cfg.RightWall {
		pet.X = screen.MaxX()
	} else {
		pet.X = 0
	}
	pet.Y = gamemath.Clamp(target.Y, 0, screen.MaxY())

	// Climb direction from the residual vertical velocity: still rising
	// keeps going up, falling heads down.
	if pet.VY < 0 {
		pet.Dir = 1
	} else {
		pet.Dir = -1
	}

	pet.VX = 0
	pet.VY = 0
	pet.WallTarget = nil
	pet.LandingLeft = 0
}

// surfaceStep advances the free axis of the current surface and pins the
// fixed one. In wander mode, reaching a far corner hands the pet off to the
// adjacent surface; the scripted sequencer assigns surfaces itself.
func surfaceStep(pet *components.PetData, screen *components.ScreenData, dt float64) {
	maxX, maxY := screen.MaxX(), screen.MaxY()

	switch pet.Surface {
	case cfg.Floor:
		switch pet.Action {
		case cfg.Move:
			pet.X += cfg.Motion.FloorSpeed * pet.Dir * dt
		case cfg.Landing:
			pet.X += cfg.Motion.LandingDrift * pet.Dir * dt
		}
		pet.Y = maxY
	case cfg.RightWall:
		if pet.Action == cfg.Climb {
			pet.Y -= cfg.Motion.WallSpeed * pet.Dir * dt // up when dir > 0
		}
		pet.X = maxX
	case cfg.Ceiling:
		if pet.Action == cfg.Climb {
			pet.X += cfg.Motion.CeilingSpeed * pet.Dir * dt
		}
		pet.Y = 0
	case cfg.LeftWall:
		if pet.Action == cfg.Climb {
			pet.Y -= cfg.Motion.WallSpeed * pet.Dir * dt
		}
		pet.X = 0
	}

	if !cfg.Debug.Scripted {
		cornerHandoff(pet, maxX, maxY)
	}
}

// cornerHandoff implements perimeter traversal: at a surface's far corner
// the pet switches to the adjacent surface and keeps moving.
func cornerHandoff(pet *components.PetData, maxX, maxY float64) {
	switch pet.Surface {
	case cfg.Floor:
		if pet.Action != cfg.Move {
			return
		}
		if pet.Dir > 0 && pet.X >= maxX {
			pet.Surface, pet.Action, pet.Dir = cfg.RightWall, cfg.Climb, 1
			pet.X = maxX
		} else if pet.Dir < 0 && pet.X <= 0 {
			pet.Surface, pet.Action, pet.Dir = cfg.LeftWall, cfg.Climb, 1
			pet.X = 0
		}
	case cfg.RightWall:
		if pet.Action != cfg.Climb {
			return
		}
		if pet.Dir > 0 && pet.Y <= 0 {
			pet.Surface, pet.Action, pet.Dir = cfg.Ceiling, cfg.Climb, -1
			pet.Y = 0
		} else if pet.Dir < 0 && pet.Y >= maxY {
			pet.Surface, pet.Action, pet.Dir = cfg.Floor, cfg.Move, -1
			pet.Y = maxY
		}
	case cfg.Ceiling:
		if pet.Action != cfg.Climb {
			return
		}
		if pet.Dir > 0 && pet.X >= maxX {
			pet.Surface, pet.Action, pet.Dir = cfg.RightWall, cfg.Climb, -1
			pet.X = maxX
		} else if pet.Dir < 0 && pet.X <= 0 {
			pet.Surface, pet.Action, pet.Dir = cfg.LeftWall, cfg.Climb, -1
			pet.X = 0
		}
	case cfg.LeftWall:
		if pet.Action != cfg.Climb {
			return
		}
		if pet.Dir > 0 && pet.Y <= 0 {
			pet.Surface, pet.Action, pet.Dir = cfg.Ceiling, cfg.Climb, 1
			pet.Y = 0
		} else if pet.Dir < 0 && pet.Y >= maxY {
			pet.Surface, pet.Action, pet.Dir = cfg.Floor, cfg.Move, 1
			pet.Y = maxY
		}
	}
}

func syncObject(e *donburi.Entry, pet *components.PetData) {
	obj := components.Object.Get(e).Object
	if obj == nil {
		return
	}
	obj.X, obj.Y = pet.X, pet.Y
	obj.Update()
}
