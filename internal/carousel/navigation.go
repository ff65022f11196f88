package carousel

import "errors"

// ErrNoSlides is returned by navigation operations on an empty deck.
var ErrNoSlides = errors.New("carousel: deck has no slides")

// NavigationState owns the current slide index for a fixed-size deck.
// Indices wrap cyclically: advancing past the last slide lands on the
// first, and stepping back from the first lands on the last. It knows
// nothing about timers, rendering, or input devices.
type NavigationState struct {
	count int
	index int
}

// NewNavigationState creates navigation state for a deck of count
// slides, positioned on slide 0.
func NewNavigationState(count int) *NavigationState {
	return &NavigationState{count: count}
}

// Count returns the number of slides, fixed at construction.
func (n *NavigationState) Count() int { return n.count }

// Index returns the current slide index. Meaningless when Count is 0.
func (n *NavigationState) Index() int { return n.index }

// Advance moves the index by delta and returns the new index. The
// result is reduced with a true modulo, so any delta — including large
// negative ones — wraps back into [0, count). Returns ErrNoSlides when
// the deck is empty; the index is untouched on error.
func (n *NavigationState) Advance(delta int) (int, error) {
	if n.count == 0 {
		return 0, ErrNoSlides
	}
	idx := (n.index + delta) % n.count
	if idx < 0 {
		idx += n.count
	}
	n.index = idx
	return idx, nil
}

// GoTo jumps to the given index. Out-of-range values wrap the same way
// Advance wraps deltas, so callers may pass raw, unvalidated indices
// (an indicator click, a digit key) without bounds-checking first.
func (n *NavigationState) GoTo(index int) (int, error) {
	return n.Advance(index - n.index)
}
