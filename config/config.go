package config

// ScreenConfig contains the virtual desktop geometry defaults.
type ScreenConfig struct {
	FallbackWidth  int // used when the monitor can't be queried
	FallbackHeight int
	StartMargin    int     // px inset from corners for sequencer start positions
	TickDelta      float64 // seconds per simulation tick (Ebitengine default TPS)
}

// PhysicsConfig contains jump physics values. +y points down, so launch
// speeds are negative.
type PhysicsConfig struct {
	Gravity        float64 // px/s^2
	FloorJumpSpeed float64 // initial vertical speed for floor jumps, px/s
	WallJumpSpeed  float64 // initial vertical speed for wall jumps, px/s
}

// MotionConfig contains surface-following speeds.
type MotionConfig struct {
	FloorSpeed   float64 // px/s
	WallSpeed    float64
	CeilingSpeed float64
	LandingDrift float64 // slide speed along the floor while landing
	LandingHold  float64 // seconds the landing pose is held
}

// SequencerConfig contains scripted-mode timing.
type SequencerConfig struct {
	CaseDuration float64 // seconds per case, paused while airborne/landing
}

// HoldRange is a [Min, Max] range of seconds a wander case is held.
type HoldRange struct {
	Min, Max float64
}

// WanderConfig contains the randomized policy's weights and ranges.
type WanderConfig struct {
	FloorWeights   map[Action]float64
	WallWeights    map[Action]float64
	CeilingWeights map[Action]float64
	Hold           map[Action]HoldRange

	// Floor jump distance as a fraction of screen width, in the direction
	// of travel.
	JumpMinSpanPct float64
	JumpMaxSpanPct float64

	// Chance a floor jump targets a wall instead of the floor, and the
	// target height as a fraction of the maximum jump reach.
	WallJumpChance   float64
	WallHeightMinPct float64
	WallHeightMaxPct float64
}

// SquashStretchConfig contains the landing-feel deformation targets.
type SquashStretchConfig struct {
	JumpScaleX float64 // applied at takeoff
	JumpScaleY float64
	LandScaleX float64 // applied at floor contact
	LandScaleY float64
	Duration   float64 // seconds to ease back to 1.0
}

// DebugConfig contains command-line options.
type DebugConfig struct {
	Scripted  bool    // deterministic sequencer instead of wander
	Overlay   bool    // draw the state text overlay
	Scale     float64 // sprite/window scale factor
	Seed      int64   // wander RNG seed
	SheetPath string  // sprite sheet location
}

// Global configuration instances
var (
	Screen        ScreenConfig
	Physics       PhysicsConfig
	Motion        MotionConfig
	Animation     AnimationConfig
	Sequencer     SequencerConfig
	Wander        WanderConfig
	SquashStretch SquashStretchConfig
	Debug         DebugConfig
)

// FlowersDuration returns how long a GivingFlowers case must hold so the
// full row plays once, plus a little padding.
func FlowersDuration() float64 {
	return float64(RowFrames[RowFlowers])/Animation.FlowersFPS + 0.5
}

func init() {
	Screen = ScreenConfig{
		FallbackWidth:  1920,
		FallbackHeight: 1080,
		StartMargin:    40,
		TickDelta:      1.0 / 60.0,
	}

	Physics = PhysicsConfig{
		Gravity:        1800.0,
		FloorJumpSpeed: -900.0,
		WallJumpSpeed:  -880.0,
	}

	Motion = MotionConfig{
		FloorSpeed:   160.0,
		WallSpeed:    120.0,
		CeilingSpeed: 160.0,
		LandingDrift: 140.0,
		LandingHold:  0.5,
	}

	Animation = AnimationConfig{
		IdleFPS:    10.0,
		MoveFPS:    14.0,
		ClimbFPS:   12.0,
		HideFPS:    10.0,
		SleepFPS:   8.0,
		FlowersFPS: 6.0,
		JumpFPS:    1.0,
		LandFPS:    20.0,
	}

	Sequencer = SequencerConfig{
		CaseDuration: 1.5,
	}

	Wander = WanderConfig{
		FloorWeights: map[Action]float64{
			Move:          1.0,
			Idle:          1.0,
			Sleeping:      1.0,
			GivingFlowers: 1.0,
			Hiding:        1.0,
			Jumping:       1.0,
		},
		WallWeights: map[Action]float64{
			Climb:   0.7,
			Hiding:  0.15,
			Jumping: 0.15,
		},
		// Jumping from the ceiling is disallowed.
		CeilingWeights: map[Action]float64{
			Climb:  0.8,
			Hiding: 0.2,
		},
		Hold: map[Action]HoldRange{
			Move:     {Min: 1.5, Max: 4.0},
			Idle:     {Min: 1.0, Max: 3.0},
			Climb:    {Min: 1.5, Max: 4.0},
			Sleeping: {Min: 4.0, Max: 10.0},
			Hiding:   {Min: 2.0, Max: 5.0},
			Jumping:  {Min: 0.5, Max: 0.5}, // the flight itself extends the case
		},
		JumpMinSpanPct:   0.15,
		JumpMaxSpanPct:   0.45,
		WallJumpChance:   0.25,
		WallHeightMinPct: 0.3,
		WallHeightMaxPct: 0.9,
	}

	SquashStretch = SquashStretchConfig{
		JumpScaleX: 0.7,
		JumpScaleY: 1.5,
		LandScaleX: 1.5,
		LandScaleY: 0.6,
		Duration:   0.25,
	}

	Debug = DebugConfig{
		Scripted:  false,
		Overlay:   false,
		Scale:     1.0,
		Seed:      42,
		SheetPath: "pet.png",
	}
}
