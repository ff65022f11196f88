package ui

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"marquee/internal/config"
	"marquee/internal/deck"
	"marquee/internal/state"
)

func testDeck(slides int) deck.Deck {
	d := deck.Deck{Title: "Test Deck"}
	for i := 0; i < slides; i++ {
		d.Slides = append(d.Slides, deck.Slide{
			Title: "Slide",
			Body:  "body",
		})
	}
	return d
}

func newTestModel(t *testing.T, autoplay bool) Model {
	t.Helper()

	store := &state.Store{}
	d := testDeck(3)
	store.Update(&d, nil)

	cfg := &config.Config{
		Interval:       5 * time.Second,
		Autoplay:       autoplay,
		PauseOnHover:   true,
		SwipeThreshold: 100,
	}

	m, err := New(Options{
		Store:       store,
		Config:      cfg,
		ThemeName:   "Nightfox",
		PrefsPath:   filepath.Join(t.TempDir(), "prefs.toml"),
		RefreshTick: time.Minute,
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func pressKey(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestNewRequiresDeck(t *testing.T) {
	cfg := &config.Config{Interval: time.Second, SwipeThreshold: 100}

	if _, err := New(Options{Config: cfg}); err == nil {
		t.Fatal("New() without store should fail")
	}
	if _, err := New(Options{Store: &state.Store{}, Config: cfg}); err == nil {
		t.Fatal("New() with empty store should fail")
	}
}

func TestArrowKeysNavigateAndPause(t *testing.T) {
	m := newTestModel(t, true)

	if !m.ctrl.Playing() {
		t.Fatal("autoplay model should start playing")
	}

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.ctrl.Index(); got != 1 {
		t.Fatalf("index after right = %d, want 1", got)
	}
	if m.ctrl.Playing() {
		t.Fatal("manual navigation should pause auto-play")
	}

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.ctrl.Index(); got != 2 {
		t.Fatalf("index after wrapping left = %d, want 2", got)
	}
}

func TestDigitKeysJumpToSlide(t *testing.T) {
	m := newTestModel(t, false)

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	if got := m.ctrl.Index(); got != 2 {
		t.Fatalf("index after pressing 3 = %d, want 2", got)
	}

	// Out-of-range digits wrap like any other jump.
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}})
	if got := m.ctrl.Index(); got != 1 {
		t.Fatalf("index after pressing 5 = %d, want 1", got)
	}
}

func TestSpaceTogglesPlayback(t *testing.T) {
	m := newTestModel(t, false)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if !m.ctrl.Playing() {
		t.Fatal("space should start playback")
	}
	if cmd == nil {
		t.Fatal("resuming playback should schedule a tick")
	}

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if m.ctrl.Playing() {
		t.Fatal("second space should pause playback")
	}
	if cmd != nil {
		t.Fatal("pausing should not schedule a tick")
	}
}

func TestStaleTickIsDropped(t *testing.T) {
	m := newTestModel(t, true)
	gen, tag := m.gen, m.ctrl.TimerTag()

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRight}) // pauses, bumps tag

	next, cmd := m.Update(tickMsg{gen: gen, tag: tag})
	m = next.(Model)
	if cmd != nil {
		t.Fatal("stale tick should not schedule a successor")
	}
	if got := m.ctrl.Index(); got != 1 {
		t.Fatalf("stale tick moved the carousel: index = %d, want 1", got)
	}
}

func TestLiveTickAdvances(t *testing.T) {
	m := newTestModel(t, true)
	gen, tag := m.gen, m.ctrl.TimerTag()

	next, cmd := m.Update(tickMsg{gen: gen, tag: tag})
	m = next.(Model)
	if got := m.ctrl.Index(); got != 1 {
		t.Fatalf("index after tick = %d, want 1", got)
	}
	if cmd == nil {
		t.Fatal("accepted tick should schedule a successor")
	}
}

func TestPreReloadTickIsDropped(t *testing.T) {
	m := newTestModel(t, true)
	gen, tag := m.gen, m.ctrl.TimerTag()

	// A reload replaces the controller while a tick scheduled by the
	// old one is still in flight. The new controller restarts its tags,
	// so only the generation check keeps the old tick out; accepting it
	// would leave two tick loops running the carousel at double speed.
	reloaded := testDeck(3)
	m.store.Update(&reloaded, nil)
	next, _ := m.Update(refreshMsg(time.Now()))
	m = next.(Model)
	if !m.ctrl.Playing() {
		t.Fatal("reload should preserve the playing state")
	}

	next, cmd := m.Update(tickMsg{gen: gen, tag: tag})
	m = next.(Model)
	if cmd != nil {
		t.Fatal("pre-reload tick should not schedule a successor")
	}
	if got := m.ctrl.Index(); got != 0 {
		t.Fatalf("pre-reload tick moved the carousel: index = %d, want 0", got)
	}

	// The replacement controller's own tick loop is unaffected.
	next, cmd = m.Update(tickMsg{gen: m.gen, tag: m.ctrl.TimerTag()})
	m = next.(Model)
	if got := m.ctrl.Index(); got != 1 {
		t.Fatalf("index after current-generation tick = %d, want 1", got)
	}
	if cmd == nil {
		t.Fatal("current-generation tick should schedule a successor")
	}
}

func TestHelpAbandonsGestureInProgress(t *testing.T) {
	m := newTestModel(t, false)

	// Wide enough that the press-to-release travel clears the swipe
	// threshold; only the abandoned drag state keeps this inert.
	next, _ := m.Update(tea.WindowSizeMsg{Width: 200, Height: 24})
	m = next.(Model)
	geo := m.layout()

	press := tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		X:      geo.frameLeft + geo.frameWidth - 1,
		Y:      geo.frameTop + 1,
	}
	next, _ = m.Update(press)
	m = next.(Model)
	if !m.dragging {
		t.Fatal("press inside the frame should start a gesture")
	}

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}) // open help
	if m.dragging {
		t.Fatal("opening help should abandon the gesture")
	}
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEsc}) // any key closes help

	// The release of the pre-help press must not complete a swipe.
	release := tea.MouseMsg{
		Action: tea.MouseActionRelease,
		X:      geo.frameLeft,
		Y:      geo.frameTop + 1,
	}
	next, _ = m.Update(release)
	m = next.(Model)
	if got := m.ctrl.Index(); got != 0 {
		t.Fatalf("stale release swiped the carousel: index = %d, want 0", got)
	}
}

func TestHelpOverlayToggles(t *testing.T) {
	m := newTestModel(t, false)

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !m.showHelp {
		t.Fatal("? should open help")
	}

	// While help is open, keys close it instead of acting.
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.showHelp {
		t.Fatal("any key should close help")
	}
	if got := m.ctrl.Index(); got != 0 {
		t.Fatalf("key that closed help also navigated: index = %d", got)
	}
}

func TestRefreshRebuildsOnReload(t *testing.T) {
	m := newTestModel(t, true)
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRight}) // index 1, paused

	reloaded := testDeck(5)
	reloaded.Title = "Reloaded"
	m.store.Update(&reloaded, nil)

	next, _ := m.Update(refreshMsg(time.Now()))
	m = next.(Model)

	if m.deckTitle != "Reloaded" {
		t.Fatalf("deckTitle = %q, want %q", m.deckTitle, "Reloaded")
	}
	if got := m.ctrl.Count(); got != 5 {
		t.Fatalf("slide count after reload = %d, want 5", got)
	}
	if got := m.ctrl.Index(); got != 1 {
		t.Fatalf("index after reload = %d, want 1 (preserved)", got)
	}
	if m.ctrl.Playing() {
		t.Fatal("paused state should survive a reload")
	}
}

func TestRefreshSurfacesReloadError(t *testing.T) {
	m := newTestModel(t, false)

	m.store.Update(nil, errors.New("broken deck"))
	next, _ := m.Update(refreshMsg(time.Now()))
	m = next.(Model)

	if m.reloadError == "" {
		t.Fatal("reload error should be surfaced")
	}
	if got := m.ctrl.Count(); got != 3 {
		t.Fatalf("broken reload replaced the deck: count = %d, want 3", got)
	}
}
