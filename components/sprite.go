package components

import "github.com/yohamta/donburi"

// SpriteData is the pet's render orientation: rotation and mirroring from
// the visual table, plus the squash/stretch scale from the effects system.
type SpriteData struct {
	Rotation float64 // radians, around the frame center
	FlipX    bool    // mirror left-right (facing)
	FlipY    bool    // mirror up-down (wall orientation correction)
	ScaleX   float64
	ScaleY   float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
