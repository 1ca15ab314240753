package components

import (
	"github.com/tetrapod/wallflower/config"
	"github.com/yohamta/donburi"
)

// AnimationData is the frame clock for the active sheet row. Frame is an
// absolute sheet index; invariant: Frame stays within [Start, Start+Len)
// once a row has been set.
type AnimationData struct {
	Start           int // absolute sheet index of the row's first frame
	Len             int
	SecondsPerFrame float64
	Elapsed         float64
	Frame           int
}

// SetRow switches to a sheet row at the given rate. Only an actual change
// resets the clock and snaps to the row's first frame, so the new pose is
// visible immediately.
func (a *AnimationData) SetRow(row int, fps float64) {
	start := config.RowStart(row)
	length := config.RowFrames[row]
	if fps < 1 {
		fps = 1
	}
	spf := 1.0 / fps

	if a.Start == start && a.Len == length && a.SecondsPerFrame == spf {
		return
	}
	a.Start = start
	a.Len = length
	a.SecondsPerFrame = spf
	a.Elapsed = 0
	a.Frame = start
}

// Update advances the clock by dt seconds, wrapping within the row. A frame
// index left outside the row by an earlier row change resets to the row
// start before advancing.
func (a *AnimationData) Update(dt float64) {
	if a.Len <= 0 {
		return
	}
	a.Elapsed += dt
	for a.Elapsed >= a.SecondsPerFrame {
		a.Elapsed -= a.SecondsPerFrame
		if a.Frame < a.Start || a.Frame >= a.Start+a.Len {
			a.Frame = a.Start
		}
		local := a.Frame - a.Start
		if local >= a.Len-1 {
			local = 0
		} else {
			local++
		}
		a.Frame = a.Start + local
	}
}

var Animation = donburi.NewComponentType[AnimationData]()
