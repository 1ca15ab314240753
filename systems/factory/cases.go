package factory

import (
	"github.com/tetrapod/wallflower/components"
	cfg "github.com/tetrapod/wallflower/config"
)

// DefaultCases returns the scripted scenario: every surface/action pairing
// the visual table maps, plus jump presets covering floor-to-floor,
// wall-to-floor and floor-to-wall arcs.
func DefaultCases() []components.Case {
	d := cfg.Sequencer.CaseDuration
	floorPct := func(start, target float64) components.JumpPreset {
		return components.JumpPreset{Kind: components.PresetFloorPct, StartPct: start, TargetPct: target}
	}
	wallToFloor := func(target float64) components.JumpPreset {
		return components.JumpPreset{Kind: components.PresetWallToFloorPct, TargetPct: target}
	}
	floorToWall := func(start float64, wall cfg.Surface, height float64) components.JumpPreset {
		return components.JumpPreset{Kind: components.PresetFloorToWallPct, StartPct: start, Wall: wall, HeightPct: height}
	}

	return []components.Case{
		// Floor movement / idle / social poses
		{Surface: cfg.Floor, Action: cfg.Move, Dir: 1, Duration: d},
		{Surface: cfg.Floor, Action: cfg.Move, Dir: -1, Duration: d},
		{Surface: cfg.Floor, Action: cfg.Idle, Dir: 1, Duration: d},
		{Surface: cfg.Floor, Action: cfg.Sleeping, Dir: 1, Duration: d},
		{Surface: cfg.Floor, Action: cfg.GivingFlowers, Dir: 1, Duration: cfg.FlowersDuration()},
		{Surface: cfg.Floor, Action: cfg.Hiding, Dir: 1, Duration: d},

		// Floor -> floor jumps at arbitrary distances
		{Surface: cfg.Floor, Action: cfg.Jumping, Dir: 1, Duration: d, Preset: floorPct(0.10, 0.90)},
		{Surface: cfg.Floor, Action: cfg.Jumping, Dir: -1, Duration: d, Preset: floorPct(0.90, 0.10)},
		{Surface: cfg.Floor, Action: cfg.Jumping, Dir: -1, Duration: d, Preset: floorPct(0.50, 0.10)},
		{Surface: cfg.Floor, Action: cfg.Jumping, Dir: 1, Duration: d, Preset: floorPct(0.50, 0.90)},

		// Floor -> wall jumps
		{Surface: cfg.Floor, Action: cfg.Jumping, Dir: 1, Duration: d, Preset: floorToWall(0.75, cfg.RightWall, 0.6)},
		{Surface: cfg.Floor, Action: cfg.Jumping, Dir: -1, Duration: d, Preset: floorToWall(0.25, cfg.LeftWall, 0.5)},

		// Right wall
		{Surface: cfg.RightWall, Action: cfg.Climb, Dir: 1, Duration: d},
		{Surface: cfg.RightWall, Action: cfg.Climb, Dir: -1, Duration: d},
		{Surface: cfg.RightWall, Action: cfg.Hiding, Dir: 1, Duration: d},
		{Surface: cfg.RightWall, Action: cfg.Jumping, Dir: 1, Duration: d, Preset: wallToFloor(0.20)},
		{Surface: cfg.RightWall, Action: cfg.Jumping, Dir: -1, Duration: d, Preset: wallToFloor(0.50)},

		// Ceiling (jumping disallowed there)
		{Surface: cfg.Ceiling, Action: cfg.Climb, Dir: -1, Duration: d},
		{Surface: cfg.Ceiling, Action: cfg.Climb, Dir: 1, Duration: d},
		{Surface: cfg.Ceiling, Action: cfg.Hiding, Dir: -1, Duration: d},

		// Left wall
		{Surface: cfg.LeftWall, Action: cfg.Climb, Dir: -1, Duration: d},
		{Surface: cfg.LeftWall, Action: cfg.Climb, Dir: 1, Duration: d},
		{Surface: cfg.LeftWall, Action: cfg.Hiding, Dir: 1, Duration: d},
		{Surface: cfg.LeftWall, Action: cfg.Jumping, Dir: -1, Duration: d, Preset: wallToFloor(0.80)},
		{Surface: cfg.LeftWall, Action: cfg.Jumping, Dir: 1, Duration: d, Preset: wallToFloor(0.40)},
	}
}
