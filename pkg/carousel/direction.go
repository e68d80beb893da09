package carousel

import "fmt"

// Direction is the way [Controller.Advance] moves through the images.
type Direction int

const (
	// Forward moves to the next image, wrapping from the last to the first.
	Forward Direction = iota
	// Backward moves to the previous image, wrapping from the first to the last.
	Backward
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// DirectionForVelocity maps the primary velocity of a finished horizontal
// drag to a navigation direction. A rightward release (positive velocity)
// reveals the previous image and a leftward release reveals the next one.
// ok is false for a velocity of exactly zero.
func DirectionForVelocity(velocity float64) (dir Direction, ok bool) {
	switch {
	case velocity > 0:
		return Backward, true
	case velocity < 0:
		return Forward, true
	default:
		return Forward, false
	}
}
