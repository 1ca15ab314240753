package config

// Surface identifies which screen edge the pet currently occupies.
type Surface int

const (
	Floor Surface = iota
	RightWall
	Ceiling
	LeftWall
)

func (s Surface) String() string {
	switch s {
	case Floor:
		return "floor"
	case RightWall:
		return "right-wall"
	case Ceiling:
		return "ceiling"
	case LeftWall:
		return "left-wall"
	}
	return "unknown"
}

// IsWall reports whether the surface is one of the two side walls.
func (s Surface) IsWall() bool {
	return s == RightWall || s == LeftWall
}

// Action identifies the pet's current behavior.
type Action int

const (
	Idle Action = iota
	Move
	Climb
	Jumping
	Landing
	Sleeping
	Hiding
	GivingFlowers
)

func (a Action) String() string {
	switch a {
	case Idle:
		return "idle"
	case Move:
		return "move"
	case Climb:
		return "climb"
	case Jumping:
		return "jumping"
	case Landing:
		return "landing"
	case Sleeping:
		return "sleeping"
	case Hiding:
		return "hiding"
	case GivingFlowers:
		return "giving-flowers"
	}
	return "unknown"
}

// FlightKind tracks whether the pet is airborne and how.
type FlightKind int

const (
	FlightNone FlightKind = iota
	FlightParabola
)
