package components

import "github.com/yohamta/donburi"

// ScreenData is the virtual desktop rectangle and the pet window's frame
// size. Ready stays false until the sprite sheet has loaded; dependent
// systems skip their tick until then.
type ScreenData struct {
	W, H           int
	FrameW, FrameH int
	Ready          bool
}

// MaxX returns the largest valid window x (the right wall line).
func (s *ScreenData) MaxX() float64 {
	m := s.W - s.FrameW
	if m < 0 {
		m = 0
	}
	return float64(m)
}

// MaxY returns the largest valid window y (the floor line).
func (s *ScreenData) MaxY() float64 {
	m := s.H - s.FrameH
	if m < 0 {
		m = 0
	}
	return float64(m)
}

var Screen = donburi.NewComponentType[ScreenData]()
