package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/tetrapod/wallflower/components"
	cfg "github.com/tetrapod/wallflower/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects applies squash/stretch to the sprite scale: an impulse on
// takeoff and on floor landing, eased back to 1.0. Render-only; motion
// never sees the deformation.
func UpdateEffects(ecs *ecs.ECS) {
	petEntry, ok := components.Pet.First(ecs.World)
	if !ok {
		return
	}
	pet := components.Pet.Get(petEntry)
	tw := components.Tween.Get(petEntry)
	sprite := components.Sprite.Get(petEntry)

	ss := cfg.SquashStretch
	dur := float32(ss.Duration)

	tookOff := pet.Flight == cfg.FlightParabola && tw.PrevFlight == cfg.FlightNone
	landed := pet.Action == cfg.Landing && tw.PrevAction != cfg.Landing

	if tookOff {
		tw.X = newScaleSequence(ss.JumpScaleX, dur)
		tw.Y = newScaleSequence(ss.JumpScaleY, dur)
	} else if landed {
		tw.X = newScaleSequence(ss.LandScaleX, dur)
		tw.Y = newScaleSequence(ss.LandScaleY, dur)
	}

	sprite.ScaleX = advanceScale(&tw.X)
	sprite.ScaleY = advanceScale(&tw.Y)

	tw.PrevFlight = pet.Flight
	tw.PrevAction = pet.Action
}

func newScaleSequence(from float64, dur float32) *gween.Sequence {
	seq := gween.NewSequence()
	seq.Add(gween.New(float32(from), 1.0, dur, ease.OutQuad))
	return seq
}

func advanceScale(seq **gween.Sequence) float64 {
	if *seq == nil {
		return 1.0
	}
	v, _, done := (*seq).Update(float32(cfg.Screen.TickDelta))
	if done {
		*seq = nil
		return 1.0
	}
	return float64(v)
}
