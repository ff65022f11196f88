package ui

// slideView is the carousel.Renderer the TUI hands to the controller.
// The controller pushes transitions into it synchronously; View reads
// it when Bubble Tea redraws. Held by pointer so controller callbacks
// survive the value-copies Bubble Tea makes of the Model.
type slideView struct {
	count   int
	index   int
	prev    int
	playing bool
}

func (v *slideView) ActiveSlide(oldIndex, newIndex int) {
	v.prev = oldIndex
	v.index = newIndex
}

func (v *slideView) PlayState(playing bool) {
	v.playing = playing
}

func (v *slideView) SlideCount() int { return v.count }
