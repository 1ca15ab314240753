package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tetrapod/wallflower/components"
	cfg "github.com/tetrapod/wallflower/config"
)

func TestEffectsSquashOnTakeoff(t *testing.T) {
	e, petEntry, _ := newTestECS(t, true)
	pet := components.Pet.Get(petEntry)
	sprite := components.Sprite.Get(petEntry)

	// Settle the previous-state tracking on a grounded pet.
	UpdateEffects(e)
	assert.Equal(t, 1.0, sprite.ScaleX)
	assert.Equal(t, 1.0, sprite.ScaleY)

	pet.Action = cfg.Jumping
	pet.Flight = cfg.FlightParabola
	UpdateEffects(e)

	// Narrow and tall at takeoff, easing back toward rest.
	assert.Less(t, sprite.ScaleX, 1.0)
	assert.Greater(t, sprite.ScaleY, 1.0)
}

func TestEffectsStretchOnLanding(t *testing.T) {
	e, petEntry, _ := newTestECS(t, true)
	pet := components.Pet.Get(petEntry)
	sprite := components.Sprite.Get(petEntry)

	UpdateEffects(e)
	pet.Action = cfg.Landing
	UpdateEffects(e)

	// Wide and flat at floor contact.
	assert.Greater(t, sprite.ScaleX, 1.0)
	assert.Less(t, sprite.ScaleY, 1.0)
}

func TestEffectsSettleBackToRest(t *testing.T) {
	e, petEntry, _ := newTestECS(t, true)
	pet := components.Pet.Get(petEntry)
	sprite := components.Sprite.Get(petEntry)
	tw := components.Tween.Get(petEntry)

	UpdateEffects(e)
	pet.Action = cfg.Landing
	UpdateEffects(e)

	ticks := int(cfg.SquashStretch.Duration/cfg.Screen.TickDelta) + 5
	for i := 0; i < ticks; i++ {
		UpdateEffects(e)
	}

	assert.Equal(t, 1.0, sprite.ScaleX)
	assert.Equal(t, 1.0, sprite.ScaleY)
	assert.Nil(t, tw.X)
	assert.Nil(t, tw.Y)
}

func TestEffectsImpulseFiresOncePerTransition(t *testing.T) {
	e, petEntry, _ := newTestECS(t, true)
	pet := components.Pet.Get(petEntry)
	sprite := components.Sprite.Get(petEntry)

	UpdateEffects(e)
	pet.Action = cfg.Jumping
	pet.Flight = cfg.FlightParabola
	UpdateEffects(e)
	first := sprite.ScaleX

	// Staying airborne keeps easing instead of re-triggering the impulse.
	UpdateEffects(e)
	assert.Greater(t, sprite.ScaleX, first)
}
