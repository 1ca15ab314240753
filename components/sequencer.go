package components

import (
	"github.com/tetrapod/wallflower/config"
	"github.com/yohamta/donburi"
)

// JumpPresetKind selects how a scripted case positions a jump.
type JumpPresetKind int

const (
	PresetNone JumpPresetKind = iota
	PresetFloorPct                // floor jump: start %, target % of [0, maxX]
	PresetWallToFloorPct          // wall -> floor jump: target % of [0, maxX]
	PresetFloorToWallPct          // floor -> wall jump: start %, wall, height % of jump reach
)

// JumpPreset is a percentage-based jump placement; which fields apply
// depends on Kind.
type JumpPreset struct {
	Kind      JumpPresetKind
	StartPct  float64
	TargetPct float64
	Wall      config.Surface
	HeightPct float64
}

// Case is one scripted scenario step. Immutable once constructed.
type Case struct {
	Surface  config.Surface
	Action   config.Action
	Dir      float64
	Duration float64
	Preset   JumpPreset
}

// SequencerData cycles a fixed case list in the deterministic test mode.
type SequencerData struct {
	Cases []Case
	Index int
	Left  float64 // seconds remaining on the current case
}

var Sequencer = donburi.NewComponentType[SequencerData]()

// WanderData holds the randomized policy's case timer.
type WanderData struct {
	Left float64
}

var Wander = donburi.NewComponentType[WanderData]()
