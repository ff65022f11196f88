package app

import "testing"

func TestKnownTheme(t *testing.T) {
	for _, name := range []string{"Nightfox", "Kanagawa", "Slate"} {
		if !knownTheme(name) {
			t.Fatalf("knownTheme(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"", "nightfox", "Dracula"} {
		if knownTheme(name) {
			t.Fatalf("knownTheme(%q) = true, want false", name)
		}
	}
}
