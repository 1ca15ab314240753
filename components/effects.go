package components

import (
	"github.com/tanema/gween"
	"github.com/tetrapod/wallflower/config"
	"github.com/yohamta/donburi"
)

// TweenData drives the squash/stretch deformation. The sequences ease the
// sprite scale back to 1.0 after a takeoff or landing impulse; nil means at
// rest. PrevFlight/PrevAction let the effects system detect the transitions.
type TweenData struct {
	X, Y *gween.Sequence

	PrevFlight config.FlightKind
	PrevAction config.Action
}

var Tween = donburi.NewComponentType[TweenData]()
