package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tetrapod/wallflower/config"
)

func TestAnimationSetRowSnapsToRowStart(t *testing.T) {
	var anim AnimationData
	anim.SetRow(config.RowWalk, config.Animation.MoveFPS)

	assert.Equal(t, config.RowStart(config.RowWalk), anim.Frame)
	assert.Equal(t, config.RowFrames[config.RowWalk], anim.Len)
	assert.Equal(t, 0.0, anim.Elapsed)
}

func TestAnimationSetRowSameRowKeepsClock(t *testing.T) {
	var anim AnimationData
	anim.SetRow(config.RowWalk, config.Animation.MoveFPS)
	anim.Update(anim.SecondsPerFrame)
	frame, elapsed := anim.Frame, anim.Elapsed

	anim.SetRow(config.RowWalk, config.Animation.MoveFPS)

	assert.Equal(t, frame, anim.Frame)
	assert.Equal(t, elapsed, anim.Elapsed)
	assert.Equal(t, config.RowStart(config.RowWalk)+1, anim.Frame)
}

func TestAnimationUpdateWrapsWithinRow(t *testing.T) {
	var anim AnimationData
	anim.SetRow(config.RowLand, config.Animation.LandFPS)
	start := config.RowStart(config.RowLand)
	length := config.RowFrames[config.RowLand]

	// Three full cycles one frame interval at a time; the index must stay
	// inside the row the whole way.
	for i := 0; i < 3*length; i++ {
		anim.Update(anim.SecondsPerFrame)
		assert.GreaterOrEqual(t, anim.Frame, start)
		assert.Less(t, anim.Frame, start+length)
	}
	assert.Equal(t, start, anim.Frame)
}

func TestAnimationUpdateSingleFrameRow(t *testing.T) {
	var anim AnimationData
	anim.SetRow(config.RowJump, config.Animation.JumpFPS)

	for i := 0; i < 10; i++ {
		anim.Update(0.5)
		assert.Equal(t, config.RowStart(config.RowJump), anim.Frame)
	}
}

func TestAnimationUpdateResetsStaleFrame(t *testing.T) {
	var anim AnimationData
	anim.SetRow(config.RowIdle, config.Animation.IdleFPS)
	anim.Frame = 999

	anim.Update(anim.SecondsPerFrame)

	start := config.RowStart(config.RowIdle)
	assert.GreaterOrEqual(t, anim.Frame, start)
	assert.Less(t, anim.Frame, start+config.RowFrames[config.RowIdle])
}

func TestAnimationUpdateAccumulatesSubFrameTicks(t *testing.T) {
	var anim AnimationData
	anim.SetRow(config.RowHide, 16)
	start := config.RowStart(config.RowHide)

	// Quarter-interval steps: three leave the frame alone, the fourth advances.
	for i := 0; i < 3; i++ {
		anim.Update(anim.SecondsPerFrame / 4)
		assert.Equal(t, start, anim.Frame)
	}
	anim.Update(anim.SecondsPerFrame / 4)
	assert.Equal(t, start+1, anim.Frame)
}
