// Package carousel implements the slide-index state machine at the
// heart of marquee: cyclic navigation, the auto-play timer lifecycle,
// swipe interpretation, and the interplay between hover, timer, and
// manual navigation.
//
// # Overview
//
// Three pieces, layered:
//
//   - NavigationState: current index plus slide count, with true-modulo
//     wrap-around. Pure arithmetic, no other knowledge.
//   - Controller: a playing/paused machine that translates external
//     events (key presses, indicator clicks, swipes, hover, timer
//     ticks) into NavigationState transitions and notifies a Renderer
//     after each one.
//   - ClassifySwipe: a stateless gesture classifier turning a pair of
//     horizontal pointer positions into forward/backward/none.
//
// # Event Loop Contract
//
// The controller is single-threaded and synchronous. It belongs to a
// host event loop (in marquee, Bubble Tea's Update loop) that delivers
// events one at a time; no operation blocks and none spawns goroutines.
// Auto-play works through the host: Play returns a tag, the host
// schedules a tick carrying it, and Tick accepts only the current tag.
// Pausing bumps the tag, so a tick already in flight arrives stale and
// is dropped. That gives "at most one active timer" without any
// cancellable timer handle.
//
// # Pause Semantics
//
// Two kinds of pause exist and they deliberately differ:
//
//   - Manual (Pause, or implicitly Next/Prev/GoToSlide/Swipe): the user
//     took control. Auto-play stays off until an explicit Play or
//     toggle.
//   - Hover (HoverEnter): a courtesy suspension. HoverLeave undoes it,
//     but only if the pause is still hover-induced — a manual pause
//     made during the hover wins.
//
// # Errors
//
// Operating on an empty deck returns ErrNoSlides; constructing a
// controller that would auto-play an empty deck, or one with a
// non-positive interval, fails outright. Every operation either
// completes its transition and notification or returns before mutating
// anything.
package carousel
