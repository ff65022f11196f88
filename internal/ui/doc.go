// Package ui provides the terminal user interface for marquee.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program: one Model whose Update loop receives
// keyboard, mouse, tick, and refresh messages, and whose View draws the
// slide frame, indicator dots, header, and footer with Lipgloss. The
// serialized Update loop doubles as the event loop the carousel
// controller requires — every controller operation runs synchronously
// inside Update.
//
// # Package Structure
//
//   - app.go: Model, Options, the Update loop, messages/commands, Run
//   - renderer.go: the carousel.Renderer implementation the controller
//     pushes transitions into
//   - view.go: screen geometry and all rendering (geometry is shared
//     with the mouse handler so hit regions always match the drawing)
//   - mouse.go: swipe capture, indicator clicks, hover tracking
//   - keys.go: key bindings
//   - theme.go: color themes and Lipgloss styles
//   - help.go: the help overlay
//
// # Auto-play
//
// Auto-play ticks are tea.Tick commands carrying the controller's
// timer tag. The controller drops stale tags, so pausing or manual
// navigation silently cancels whatever tick is still in flight; only
// an accepted tick schedules its successor.
//
// # Deck Hot-reload
//
// A one-second refresh tick polls the state store. When the watcher
// has published a new deck, the model rebuilds the controller,
// preserving the play state and slide position (wrapped into the new
// deck's range). Reload errors surface in the footer while the old
// deck stays on screen.
//
// # Markdown
//
// Slide bodies are Markdown rendered with Glamour at the body width
// computed from the window size, displayed inside a bubbles viewport
// so long slides scroll.
package ui
