package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"marquee/internal/deck"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	d := deck.Deck{Title: "demo", Slides: []deck.Slide{{Title: "a"}, {Title: "b"}}}

	before := time.Now()
	s.Update(&d, nil)

	snap := s.Snapshot()
	if !snap.HasDeck || snap.Deck.Len() != 2 {
		t.Fatalf("snapshot deck = %#v, want 2 slides HasDeck=true", snap.Deck)
	}
	if snap.Reloads != 1 {
		t.Fatalf("Reloads = %d, want 1", snap.Reloads)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Deck.Slides[0].Title = "mutated"
	snap2 := s.Snapshot()
	if snap2.Deck.Slides[0].Title != "a" {
		t.Fatalf("Snapshot should clone slides; got %q want a", snap2.Deck.Slides[0].Title)
	}
}

func TestStore_UpdateErrorKeepsPreviousDeck(t *testing.T) {
	var s Store

	d := deck.Deck{Slides: []deck.Slide{{Title: "a"}}}
	s.Update(&d, nil)
	prev := s.Snapshot()

	before := time.Now()
	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if snap.Deck.Len() != prev.Deck.Len() || !snap.HasDeck {
		t.Fatalf("deck changed on error: got %#v want %#v", snap.Deck, prev.Deck)
	}
	if snap.Reloads != 1 {
		t.Fatalf("Reloads = %d, want 1 (failed reload must not count)", snap.Reloads)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_SuccessClearsError(t *testing.T) {
	var s Store

	s.Update(nil, errors.New("first load failed"))
	if s.Snapshot().LastError == nil {
		t.Fatal("LastError = nil, want recorded error")
	}

	d := deck.Deck{Slides: []deck.Slide{{Title: "a"}}}
	s.Update(&d, nil)
	snap := s.Snapshot()
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil after successful update", snap.LastError)
	}
	if snap.Reloads != 1 {
		t.Fatalf("Reloads = %d, want 1", snap.Reloads)
	}
}
