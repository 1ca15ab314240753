package systems

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tetrapod/wallflower/components"
	cfg "github.com/tetrapod/wallflower/config"
)

func TestVisualForMappings(t *testing.T) {
	tests := []struct {
		name    string
		surface cfg.Surface
		action  cfg.Action
		dir     float64
		want    Visual
	}{
		{"floor walk right", cfg.Floor, cfg.Move, 1, Visual{Row: cfg.RowWalk, FPS: 14}},
		{"floor walk left mirrors", cfg.Floor, cfg.Move, -1, Visual{Row: cfg.RowWalk, FPS: 14, FlipX: true}},
		{"floor idle", cfg.Floor, cfg.Idle, 1, Visual{Row: cfg.RowIdle, FPS: 10}},
		{"floor sleep", cfg.Floor, cfg.Sleeping, 1, Visual{Row: cfg.RowSleep, FPS: 8}},
		{"floor flowers", cfg.Floor, cfg.GivingFlowers, 1, Visual{Row: cfg.RowFlowers, FPS: 6}},
		{"floor hide flips vertically", cfg.Floor, cfg.Hiding, 1, Visual{Row: cfg.RowHide, FPS: 10, FlipY: true}},
		{"floor jump", cfg.Floor, cfg.Jumping, 1, Visual{Row: cfg.RowJump, FPS: 1}},
		{"floor land left", cfg.Floor, cfg.Landing, -1, Visual{Row: cfg.RowLand, FPS: 20, FlipX: true}},

		{"right wall climb up", cfg.RightWall, cfg.Climb, 1, Visual{Row: cfg.RowClimb, FPS: 12}},
		{"right wall climb down", cfg.RightWall, cfg.Climb, -1, Visual{Row: cfg.RowClimb, FPS: 12, FlipY: true}},
		{"right wall hide rotates", cfg.RightWall, cfg.Hiding, 1, Visual{Row: cfg.RowHide, FPS: 10, Rotation: -math.Pi / 2}},
		{"right wall jump", cfg.RightWall, cfg.Jumping, 1, Visual{Row: cfg.RowJump, FPS: 1, FlipX: true}},

		{"ceiling climb right", cfg.Ceiling, cfg.Climb, 1, Visual{Row: cfg.RowClimb, FPS: 12, Rotation: math.Pi / 2, FlipY: true}},
		{"ceiling climb left", cfg.Ceiling, cfg.Climb, -1, Visual{Row: cfg.RowClimb, FPS: 12, Rotation: math.Pi / 2}},
		{"ceiling hide", cfg.Ceiling, cfg.Hiding, 1, Visual{Row: cfg.RowHide, FPS: 10}},

		{"left wall climb up", cfg.LeftWall, cfg.Climb, 1, Visual{Row: cfg.RowClimb, FPS: 12, Rotation: math.Pi, FlipY: true}},
		{"left wall hide rotates", cfg.LeftWall, cfg.Hiding, 1, Visual{Row: cfg.RowHide, FPS: 10, Rotation: math.Pi / 2}},
		{"left wall jump", cfg.LeftWall, cfg.Jumping, 1, Visual{Row: cfg.RowJump, FPS: 1}},

		{"unmapped falls back to idle", cfg.Ceiling, cfg.Sleeping, 1, Visual{Row: cfg.RowIdle, FPS: 10}},
		{"wall sleep falls back to idle", cfg.RightWall, cfg.Sleeping, 1, Visual{Row: cfg.RowIdle, FPS: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VisualFor(tt.surface, tt.action, tt.dir))
		})
	}
}

// Every combination must resolve to a playable row, mapped or not.
func TestVisualForAlwaysPlayable(t *testing.T) {
	surfaces := []cfg.Surface{cfg.Floor, cfg.RightWall, cfg.Ceiling, cfg.LeftWall}
	actions := []cfg.Action{
		cfg.Idle, cfg.Move, cfg.Climb, cfg.Jumping, cfg.Landing,
		cfg.Sleeping, cfg.Hiding, cfg.GivingFlowers,
	}

	for _, s := range surfaces {
		for _, a := range actions {
			for _, dir := range []float64{-1, 1} {
				v := VisualFor(s, a, dir)
				assert.GreaterOrEqual(t, v.Row, 0, "%v/%v", s, a)
				assert.Less(t, v.Row, cfg.SheetRows, "%v/%v", s, a)
				assert.Greater(t, cfg.RowFrames[v.Row], 0, "%v/%v", s, a)
				assert.Greater(t, v.FPS, 0.0, "%v/%v", s, a)
			}
		}
	}
}

func TestApplyVisual(t *testing.T) {
	_, petEntry, _ := newTestECS(t, true)

	ApplyVisual(petEntry, VisualFor(cfg.RightWall, cfg.Hiding, 1))

	anim := components.Animation.Get(petEntry)
	sprite := components.Sprite.Get(petEntry)
	assert.Equal(t, cfg.RowStart(cfg.RowHide), anim.Frame)
	assert.Equal(t, cfg.RowFrames[cfg.RowHide], anim.Len)
	assert.Equal(t, -math.Pi/2, sprite.Rotation)
	assert.False(t, sprite.FlipX)
	assert.False(t, sprite.FlipY)

	// Re-applying the same visual must not reset the clock.
	anim.Update(anim.SecondsPerFrame)
	ApplyVisual(petEntry, VisualFor(cfg.RightWall, cfg.Hiding, 1))
	assert.Equal(t, cfg.RowStart(cfg.RowHide)+1, anim.Frame)
}
