package config

// Sprite sheet layout: a fixed grid, one pose per row. Row lengths differ;
// unused columns at the end of a row are blank in the image.
const (
	SheetCols = 27
	SheetRows = 9
)

// Sheet row indices.
const (
	RowIdle = iota
	RowWalk
	RowAltIdle
	RowFlowers
	RowJump
	RowLand
	RowSleep
	RowHide
	RowClimb
)

// RowFrames holds the number of frames in each sheet row.
var RowFrames = [SheetRows]int{13, 5, 17, 27, 1, 9, 1, 8, 8}

// RowStart returns the absolute sheet index of the first frame of a row.
func RowStart(row int) int {
	return row * SheetCols
}

// AnimationConfig contains playback rates per pose, in frames per second.
type AnimationConfig struct {
	IdleFPS    float64
	MoveFPS    float64
	ClimbFPS   float64
	HideFPS    float64
	SleepFPS   float64
	FlowersFPS float64
	JumpFPS    float64 // the jump pose is held for the whole flight
	LandFPS    float64
}
