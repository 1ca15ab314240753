package components

import (
	"github.com/tetrapod/wallflower/config"
	"github.com/yohamta/donburi"
)

// WallTarget is the landing point of a floor-to-wall jump.
type WallTarget struct {
	Wall config.Surface
	Y    float64
}

// PetData is the single pet's motion state, mutated once per tick.
type PetData struct {
	Surface config.Surface
	Action  config.Action
	Dir     float64 // +1 or -1; facing and motion sense on the current surface
	X, Y    float64 // window top-left, px

	// Flight state
	Flight      config.FlightKind
	FlightFrom  config.Surface // takeoff surface, pins the jump pose during flight
	VX, VY      float64        // px/s, +y down
	LandingLeft float64        // seconds the landing pose is still held

	// Targeting
	TargetX    float64     // floor x to land on
	WallTarget *WallTarget // non-nil when the jump targets a wall
}

// Airborne reports whether the pet is mid-jump or still landing; scenario
// drivers must not advance while this holds.
func (p *PetData) Airborne() bool {
	return p.Flight != config.FlightNone || p.Action == config.Jumping || p.Action == config.Landing
}

var Pet = donburi.NewComponentType[PetData]()
