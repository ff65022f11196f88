// Package config handles loading and parsing marquee configuration files.
//
// # Overview
//
// Marquee reads one TOML file describing how the carousel behaves:
// which deck file to show, the auto-play interval, whether auto-play
// starts enabled, whether hovering pauses it, and the swipe threshold.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/marquee/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but keys are absent, use defaults per key
//
// # Default Values
//
//   - Config file: ~/.config/marquee/config.toml
//   - Deck file: ~/.config/marquee/deck.toml
//   - interval_ms: 5000
//   - autoplay: true
//   - pause_on_hover: true
//   - swipe_threshold: 100
//
// # TOML Format
//
// Example config.toml:
//
//	deck = "~/slides/release.toml"
//	interval_ms = 4000
//	autoplay = true
//	pause_on_hover = true
//	swipe_threshold = 80
//
// Every key is optional. Tilde expansion is performed on paths.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g. cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - Invalid values: non-positive interval_ms or swipe_threshold
//
// A missing config file is NOT an error — defaults let marquee run
// out of the box. An invalid file is: a carousel that cannot be
// configured correctly must refuse to initialize rather than start in
// a half-wired state.
package config
