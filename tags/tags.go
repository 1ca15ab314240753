package tags

import "github.com/yohamta/donburi"

var (
	Pet = donburi.NewTag().SetName("Pet")
)

// Resolv tags for the screen-edge contact space
const (
	ResolvFloor     = "floor"
	ResolvCeiling   = "ceiling"
	ResolvLeftWall  = "leftwall"
	ResolvRightWall = "rightwall"
	ResolvPet       = "pet"
)
