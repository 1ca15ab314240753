package components

import "github.com/yohamta/donburi"

// DragData tracks a mouse drag of the overlay window. While Dragging the
// drivers and motion step stand down.
type DragData struct {
	Dragging bool
	GrabX    int // cursor offset within the window at grab time
	GrabY    int
}

var Drag = donburi.NewComponentType[DragData]()
