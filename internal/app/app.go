package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"marquee/internal/config"
	"marquee/internal/deck"
	"marquee/internal/prefs"
	"marquee/internal/state"
	"marquee/internal/ui"
)

// Options configure the Marquee application.
type Options struct {
	ConfigPath string
	PrefsPath  string        // empty uses default ~/.config/marquee/prefs.toml
	DeckPath   string        // overrides the configured deck path
	Interval   time.Duration // overrides the configured auto-play interval
}

// Run boots the Marquee TUI until the context is cancelled or the user
// quits. Configuration and deck problems are reported before any
// terminal state is touched.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.DeckPath != "" {
		cfg.DeckPath = opts.DeckPath
	}
	if opts.Interval > 0 {
		cfg.Interval = opts.Interval
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		// Broken prefs are not worth refusing to start over.
		log.Printf("app: ignoring unreadable prefs: %v", err)
	}
	themeName := userPrefs.Theme
	if !knownTheme(themeName) {
		log.Printf("app: unknown theme %q in prefs, using default", themeName)
		themeName = ""
	}

	d, err := deck.Load(cfg.DeckPath)
	if err != nil {
		return fmt.Errorf("load deck %s: %w", cfg.DeckPath, err)
	}

	store := &state.Store{}
	store.Update(&d, nil)

	watcher, err := deck.Watch(cfg.DeckPath, func(d deck.Deck, err error) {
		if err != nil {
			store.Update(nil, err)
			return
		}
		store.Update(&d, nil)
	})
	if err != nil {
		// Hot-reload is a convenience; the show goes on without it.
		log.Printf("app: deck watching disabled: %v", err)
	} else {
		defer watcher.Close()
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Config:    &cfg,
		ThemeName: themeName,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

func knownTheme(name string) bool {
	for _, n := range ui.ThemeNames() {
		if n == name {
			return true
		}
	}
	return false
}
