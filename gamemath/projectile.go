package gamemath

import "math"

// SymmetricArcTime returns the flight time of an arc that launches and lands
// at the same height: t = 2*|vy0| / g.
func SymmetricArcTime(vy0, g float64) float64 {
	if g <= 0 {
		return 0
	}
	return 2 * math.Abs(vy0) / g
}

// TimeToHeight solves 0.5*g*t^2 + vy0*t + (y0 - targetY) = 0 for the positive
// root: the time a body launched from y0 with vertical speed vy0 (+y down)
// takes to reach targetY. ok is false when the target is never reached.
func TimeToHeight(y0, targetY, vy0, g float64) (t float64, ok bool) {
	a := 0.5 * g
	b := vy0
	c := y0 - targetY
	disc := b*b - 4*a*c
	if disc < 0 || a == 0 {
		return 0, false
	}
	t = (-b + math.Sqrt(disc)) / (2 * a)
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// HorizontalSpeed returns the constant horizontal speed that covers dx in t.
func HorizontalSpeed(dx, t float64) float64 {
	if t <= 0 {
		return 0
	}
	return dx / t
}

// JumpReach returns how far above the launch height an arc with initial
// vertical speed vy0 peaks.
func JumpReach(vy0, g float64) float64 {
	if g <= 0 {
		return 0
	}
	return vy0 * vy0 / (2 * g)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
