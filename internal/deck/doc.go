// Package deck defines the slide deck model, its TOML loader, and the
// file watcher that hot-reloads decks while marquee is running.
//
// A deck file lists slides in order:
//
//	title = "Release Notes"
//
//	[[slides]]
//	title = "Welcome"
//	body = """
//	# Hello
//
//	Slide bodies are **Markdown**.
//	"""
//	accent = "#f6c177"
//
// Every slide needs a title or a body; accent colors are optional
// #RGB/#RRGGBB hex. Parsing and validation are strict — a deck that
// fails validation is rejected whole, never shown partially.
//
// Watch keeps a running carousel in sync with the file on disk: edits
// are debounced, reloaded, and handed to a callback (marquee's pushes
// into state.Store). A reload that fails validation is reported but
// never replaces the deck already on screen.
package deck
