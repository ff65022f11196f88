package carousel

import (
	"errors"
	"fmt"
	"time"
)

// Renderer is the visual collaborator the Controller drives. The
// controller computes state transitions; the renderer owns everything
// the user actually sees.
type Renderer interface {
	// ActiveSlide is called after every successful navigation with the
	// slide leaving view and the slide entering it. It must deactivate
	// oldIndex and activate newIndex, indicators included.
	ActiveSlide(oldIndex, newIndex int)
	// PlayState is called whenever auto-play starts or stops, so the
	// play/pause affordance can be swapped.
	PlayState(playing bool)
	// SlideCount reports how many slides the renderer can show. It is
	// queried once, at controller construction.
	SlideCount() int
}

// Options configure a Controller. The zero value is not useful; start
// from DefaultOptions or fill every field from loaded configuration.
type Options struct {
	Interval       time.Duration // auto-play period
	Autoplay       bool          // start in the playing state
	PauseOnHover   bool          // hovering the slide suspends auto-play
	SwipeThreshold int           // minimum gesture displacement; 0 uses the default
}

// DefaultOptions returns the documented defaults: 5s interval,
// auto-play on, pause-on-hover on, swipe threshold 100.
func DefaultOptions() Options {
	return Options{
		Interval:       5 * time.Second,
		Autoplay:       true,
		PauseOnHover:   true,
		SwipeThreshold: DefaultSwipeThreshold,
	}
}

// Controller coordinates navigation, the auto-play timer, and
// hover/keyboard/gesture input for one carousel. It is a two-state
// machine — playing or paused — driven synchronously by whatever event
// loop hosts it; it never spawns goroutines of its own.
//
// Timer discipline: the controller cannot cancel a tick its host has
// already scheduled, so every transition that would cancel the timer
// instead bumps an internal tag. Play hands the current tag to the
// host; Tick rejects any tag but the current one. At most one tag is
// live, which is the "at most one active timer" invariant in practice.
type Controller struct {
	nav      *NavigationState
	renderer Renderer

	interval       time.Duration
	pauseOnHover   bool
	swipeThreshold int

	playing     bool
	hoverPaused bool // the current pause came from hover, not the user
	tag         int  // bumped on every play/pause; stale ticks are dropped
	closed      bool
}

// New builds a controller over the renderer's slides. It fails, before
// wiring anything, when the interval is not positive or when asked to
// auto-play a deck the renderer reports as empty.
func New(renderer Renderer, opts Options) (*Controller, error) {
	if renderer == nil {
		return nil, errors.New("carousel: renderer is required")
	}
	if opts.Interval <= 0 {
		return nil, fmt.Errorf("carousel: interval must be positive, got %v", opts.Interval)
	}
	count := renderer.SlideCount()
	if count == 0 && opts.Autoplay {
		return nil, errors.New("carousel: cannot auto-play an empty deck")
	}
	threshold := opts.SwipeThreshold
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &Controller{
		nav:            NewNavigationState(count),
		renderer:       renderer,
		interval:       opts.Interval,
		pauseOnHover:   opts.PauseOnHover,
		swipeThreshold: threshold,
		playing:        opts.Autoplay,
	}, nil
}

// Playing reports whether an auto-play tick is currently expected.
func (c *Controller) Playing() bool { return c.playing }

// Index returns the current slide index.
func (c *Controller) Index() int { return c.nav.Index() }

// Count returns the number of slides.
func (c *Controller) Count() int { return c.nav.Count() }

// Interval returns the auto-play period the host should schedule
// ticks at.
func (c *Controller) Interval() time.Duration { return c.interval }

// TimerTag returns the tag the host must attach to the next scheduled
// tick. Only useful immediately after construction with Autoplay set;
// afterwards Play returns the fresh tag itself.
func (c *Controller) TimerTag() int { return c.tag }

// Play enters the playing state and returns the tag for the tick the
// host should now schedule. Calling Play while already playing is the
// documented cancel-and-reschedule: the old tag is invalidated so a
// previously scheduled tick can never double-advance. Fails with
// ErrNoSlides on an empty deck.
func (c *Controller) Play() (int, error) {
	if c.closed {
		return 0, errors.New("carousel: controller is closed")
	}
	if c.nav.Count() == 0 {
		return 0, ErrNoSlides
	}
	wasPlaying := c.playing
	c.tag++
	c.playing = true
	c.hoverPaused = false
	if !wasPlaying {
		c.renderer.PlayState(true)
	}
	return c.tag, nil
}

// Pause leaves the playing state and invalidates any scheduled tick.
// Idempotent: pausing while paused changes nothing visible.
func (c *Controller) Pause() {
	if c.closed {
		return
	}
	c.tag++
	c.hoverPaused = false
	if c.playing {
		c.playing = false
		c.renderer.PlayState(false)
	}
}

// TogglePlayPause flips between playing and paused. The returned tag
// is meaningful only when the controller ends up playing.
func (c *Controller) TogglePlayPause() (int, error) {
	if c.playing {
		c.Pause()
		return 0, nil
	}
	return c.Play()
}

// Tick applies one auto-play advance. It returns true when the tick
// was accepted — the host should then schedule the next tick with the
// same tag. Ticks carrying a stale tag, or arriving while paused or
// closed, are dropped.
func (c *Controller) Tick(tag int) bool {
	if c.closed || !c.playing || tag != c.tag {
		return false
	}
	old := c.nav.Index()
	idx, err := c.nav.Advance(1)
	if err != nil {
		return false
	}
	c.renderer.ActiveSlide(old, idx)
	return true
}

// Next pauses auto-play and advances one slide. A deliberate manual
// action always takes control away from the timer; play does not
// resume until the user asks for it.
func (c *Controller) Next() (int, error) {
	return c.manualMove(func() (int, error) { return c.nav.Advance(1) })
}

// Prev pauses auto-play and steps back one slide, wrapping to the last
// slide from the first.
func (c *Controller) Prev() (int, error) {
	return c.manualMove(func() (int, error) { return c.nav.Advance(-1) })
}

// GoToSlide pauses auto-play and jumps to the given slide. The index
// wraps, so indicator clicks and digit keys need no bounds-checking.
func (c *Controller) GoToSlide(index int) (int, error) {
	return c.manualMove(func() (int, error) { return c.nav.GoTo(index) })
}

func (c *Controller) manualMove(move func() (int, error)) (int, error) {
	if c.closed {
		return 0, errors.New("carousel: controller is closed")
	}
	if c.nav.Count() == 0 {
		return 0, ErrNoSlides
	}
	c.Pause()
	old := c.nav.Index()
	idx, err := move()
	if err != nil {
		return 0, err
	}
	c.renderer.ActiveSlide(old, idx)
	return idx, nil
}

// Swipe classifies a completed horizontal gesture and navigates when
// it clears the threshold. The returned bool reports whether any
// navigation happened; sub-threshold gestures leave the controller
// completely untouched, auto-play included.
func (c *Controller) Swipe(startX, endX int) (int, bool, error) {
	switch ClassifySwipe(startX, endX, c.swipeThreshold) {
	case SwipeForward:
		idx, err := c.Next()
		return idx, err == nil, err
	case SwipeBackward:
		idx, err := c.Prev()
		return idx, err == nil, err
	default:
		return c.nav.Index(), false, nil
	}
}

// HoverEnter suspends auto-play while the pointer rests on the slide,
// remembering that the pause was hover-induced so HoverLeave can
// safely resume. No-op unless pause-on-hover is enabled and the
// carousel is actually playing.
func (c *Controller) HoverEnter() {
	if c.closed || !c.pauseOnHover || !c.playing {
		return
	}
	c.tag++
	c.playing = false
	c.hoverPaused = true
	c.renderer.PlayState(false)
}

// HoverLeave resumes auto-play only when the current pause came from
// HoverEnter. A pause the user asked for during the hover sticks. The
// returned tag is for the tick to schedule; resumed reports whether
// play actually restarted.
func (c *Controller) HoverLeave() (tag int, resumed bool) {
	if c.closed || !c.pauseOnHover || !c.hoverPaused {
		return 0, false
	}
	tag, err := c.Play()
	return tag, err == nil
}

// Close permanently stops the controller: the timer tag is invalidated
// and every subsequent operation is rejected. Hosts must call it on
// teardown so in-flight ticks cannot touch a dead controller.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.tag++
	c.playing = false
	c.hoverPaused = false
	c.closed = true
}
