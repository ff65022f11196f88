// Package state provides thread-safe state management for marquee.
//
// # Overview
//
// This package implements a simple but thread-safe store for sharing
// the current slide deck between the deck watcher and the UI. It is
// the coordination point where hot-reloads meet rendering.
//
// # Architecture
//
// Producer-consumer, one writer and one reader:
//
//	Producer (deck watcher):       Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ deck change    │            │                 │
//	│ deck.Load()    │            │                 │
//	│      ↓         │            │                 │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│                │  (mutex)   │      ↓          │
//	└────────────────┘            │  rebuild model  │
//	                              └─────────────────┘
//
// # Update Semantics
//
// A successful Update replaces the deck, clears the error, and counts
// a reload. A failed reload keeps the previous deck — the carousel
// keeps showing the last good content — and records the error so the
// UI can surface it.
//
// # Defensive Copying
//
// Update and Snapshot both copy the slide slice, so neither side can
// mutate data the other is holding. Decks are small (tens of slides);
// copying is far simpler than any sharing discipline.
//
// # Testing Considerations
//
// The zero-value Store is ready to use; Snapshot on a never-updated
// store returns a zero Snapshot with HasDeck false.
package state
