package systems

import (
	"math"

	"github.com/tetrapod/wallflower/components"
	cfg "github.com/tetrapod/wallflower/config"
	"github.com/yohamta/donburi"
)

// Visual is the render recipe for one (surface, action, facing) combination.
type Visual struct {
	Row      int
	FPS      float64
	Rotation float64 // radians; pre-rotates the sheet's rightward pose
	FlipX    bool    // mirror left-right (facing)
	FlipY    bool    // mirror up-down (wall orientation)
}

// VisualFor maps (surface, action, dir) to a sheet row, playback rate and
// orientation. The sheet's poses read rightward on the floor; walls and the
// ceiling need rotation/mirroring so climb and hide face into the surface.
// Unmapped pairs fall back to the idle row.
func VisualFor(surface cfg.Surface, action cfg.Action, dir float64) Visual {
	a := cfg.Animation
	switch surface {
	case cfg.Floor:
		switch action {
		case cfg.Move:
			return Visual{Row: cfg.RowWalk, FPS: a.MoveFPS, FlipX: dir < 0}
		case cfg.Idle:
			return Visual{Row: cfg.RowIdle, FPS: a.IdleFPS}
		case cfg.Sleeping:
			return Visual{Row: cfg.RowSleep, FPS: a.SleepFPS}
		case cfg.GivingFlowers:
			return Visual{Row: cfg.RowFlowers, FPS: a.FlowersFPS}
		case cfg.Hiding:
			return Visual{Row: cfg.RowHide, FPS: a.HideFPS, FlipY: true}
		case cfg.Jumping:
			return Visual{Row: cfg.RowJump, FPS: a.JumpFPS, FlipX: dir < 0}
		case cfg.Landing:
			return Visual{Row: cfg.RowLand, FPS: a.LandFPS, FlipX: dir < 0}
		}

	case cfg.RightWall:
		switch action {
		case cfg.Climb:
			return Visual{Row: cfg.RowClimb, FPS: a.ClimbFPS, FlipY: dir < 0}
		case cfg.Hiding:
			return Visual{Row: cfg.RowHide, FPS: a.HideFPS, Rotation: -math.Pi / 2}
		case cfg.Jumping:
			return Visual{Row: cfg.RowJump, FPS: a.JumpFPS, FlipX: true}
		}

	case cfg.Ceiling:
		switch action {
		case cfg.Climb:
			return Visual{Row: cfg.RowClimb, FPS: a.ClimbFPS, Rotation: math.Pi / 2, FlipY: dir > 0}
		case cfg.Hiding:
			return Visual{Row: cfg.RowHide, FPS: a.HideFPS}
		}

	case cfg.LeftWall:
		switch action {
		case cfg.Climb:
			return Visual{Row: cfg.RowClimb, FPS: a.ClimbFPS, Rotation: math.Pi, FlipY: dir > 0}
		case cfg.Hiding:
			return Visual{Row: cfg.RowHide, FPS: a.HideFPS, Rotation: math.Pi / 2}
		case cfg.Jumping:
			return Visual{Row: cfg.RowJump, FPS: a.JumpFPS}
		}
	}

	return Visual{Row: cfg.RowIdle, FPS: a.IdleFPS}
}

// ApplyVisual pushes a visual onto the pet's animation clock and sprite
// orientation. The row change detection (and first-frame snap) lives in
// AnimationData.SetRow.
func ApplyVisual(e *donburi.Entry, v Visual) {
	anim := components.Animation.Get(e)
	anim.SetRow(v.Row, v.FPS)

	sprite := components.Sprite.Get(e)
	sprite.Rotation = v.Rotation
	sprite.FlipX = v.FlipX
	sprite.FlipY = v.FlipY
}
