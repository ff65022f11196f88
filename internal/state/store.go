package state

import (
	"fmt"
	"sync"
	"time"

	"marquee/internal/deck"
)

// Snapshot is the latest deck material available to the UI.
type Snapshot struct {
	Deck        deck.Deck
	HasDeck     bool
	LastUpdated time.Time
	LastError   error
	Reloads     int // successful reloads since startup, initial load included
}

// Store coordinates concurrent updates to the snapshot. The deck
// watcher writes; the UI reads on its own schedule.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored deck. When err is non-nil the previous
// deck is kept so the UI keeps showing the last good content, but the
// error is recorded for visibility.
func (s *Store) Update(d *deck.Deck, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		return
	}
	if d != nil {
		s.snapshot.Deck = cloneDeck(*d)
		s.snapshot.HasDeck = true
		s.snapshot.Reloads++
	}
	s.snapshot.LastError = nil
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Deck = cloneDeck(s.snapshot.Deck)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneDeck(d deck.Deck) deck.Deck {
	if len(d.Slides) == 0 {
		d.Slides = nil
		return d
	}
	dup := make([]deck.Slide, len(d.Slides))
	copy(dup, d.Slides)
	d.Slides = dup
	return d
}
