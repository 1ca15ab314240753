package config

import "github.com/yohamta/donburi/ecs"

// Default is the single render layer; the overlay window only ever shows the pet.
const Default = ecs.LayerID(0)
