// Package app provides the orchestration layer for the Marquee application.
//
// # Overview
//
// This package wires together configuration, deck loading, file watching,
// state management, and the UI to create the complete Marquee TUI
// experience. It serves as the composition root where all dependencies
// are initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load carousel configuration from ~/.config/marquee/config.toml
//  2. Load user preferences (theme) from ~/.config/marquee/prefs.toml
//  3. Load and validate the slide deck
//  4. Create shared state.Store for UI and watcher coordination
//  5. Start the deck file watcher for hot-reloads
//  6. Start the TUI and block until user exits or context cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()   Read carousel config
//	       ├─────> prefs.Load()    Read theme preference
//	       ├─────> deck.Load()     Parse and validate the deck
//	       ├─────> state.Store{}   Shared state container
//	       ├─────> deck.Watch()    Launch hot-reload watcher
//	       └─────> ui.Run()        Start TUI (blocks)
//
//	Hot-Reload Loop:
//	┌─────────────────────────────────────────┐
//	│ deck.Watch() goroutine                  │
//	│  ├─> detects deck file write            │
//	│  ├─> deck.Load()                        │
//	│  └─> store.Update()  (atomic)           │
//	│      └─> UI reads store.Snapshot()      │
//	└─────────────────────────────────────────┘
//
// # Error Handling
//
// The app package distinguishes between fatal and recoverable errors:
//
// Fatal errors (returned from Run):
//   - Configuration file present but invalid
//   - Deck file missing or failing validation at startup
//
// Recoverable errors (logged or shown in the UI, execution continues):
//   - Unreadable preferences file (defaults are used)
//   - Watcher setup failure (hot-reload is disabled)
//   - Deck reloads that fail validation (last good deck stays on screen)
//
// # Configuration
//
// The Options struct allows callers to customize:
//
//   - ConfigPath: Path to config.toml (default: ~/.config/marquee/config.toml)
//   - PrefsPath:  Path to prefs.toml (default: ~/.config/marquee/prefs.toml)
//   - DeckPath:   Deck file override, taking precedence over the config
//   - Interval:   Auto-play interval override
//
// # Design Rationale
//
// This package intentionally keeps orchestration logic minimal and focused.
// Business logic lives in domain packages (carousel, deck, config, state,
// ui). The app package simply connects these pieces with sensible defaults
// for the single-user presentation use case.
package app
