package control

// Keys is the held state of the movement keys, sampled once per frame.
type Keys struct {
	Forward, Back bool
	Left, Right   bool
	Up, Down      bool
}

// axis folds a pair of opposing keys into -1, 0 or 1.
func axis(pos, neg bool) float64 {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	default:
		return 0
	}
}

// Button identifies a pointer button.
type Button int

const (
	// Primary removes the targeted cube.
	Primary Button = iota
	// Secondary places a cube in front of the target.
	Secondary
)

func (b Button) String() string {
	switch b {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// LookDelta is one pointer movement in device units. Positive DY points
// down the screen.
type LookDelta struct {
	DX, DY float64
}
