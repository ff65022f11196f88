package carousel

// SwipeDirection is the navigation meaning of a horizontal pointer
// gesture.
type SwipeDirection int

const (
	// SwipeNone means the displacement was below the threshold; the
	// gesture is noise, not navigation.
	SwipeNone SwipeDirection = iota
	// SwipeForward maps to Next: the pointer travelled left, dragging
	// the content toward the following slide.
	SwipeForward
	// SwipeBackward maps to Prev.
	SwipeBackward
)

// DefaultSwipeThreshold is the minimum horizontal displacement for a
// gesture to count as a swipe.
const DefaultSwipeThreshold = 100

// String returns a short label for logging and tests.
func (d SwipeDirection) String() string {
	switch d {
	case SwipeForward:
		return "forward"
	case SwipeBackward:
		return "backward"
	default:
		return "none"
	}
}

// ClassifySwipe interprets a completed horizontal gesture from its
// start and end positions. A displacement of exactly threshold counts
// as a swipe. Stateless; safe to call from anywhere.
func ClassifySwipe(startX, endX, threshold int) SwipeDirection {
	diff := startX - endX
	abs := diff
	if abs < 0 {
		abs = -abs
	}
	if abs < threshold {
		return SwipeNone
	}
	if diff > 0 {
		return SwipeForward
	}
	return SwipeBackward
}
