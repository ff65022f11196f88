package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything marquee needs to build a carousel.
type Config struct {
	DeckPath       string
	Interval       time.Duration
	Autoplay       bool
	PauseOnHover   bool
	SwipeThreshold int
}

const (
	defaultConfigPath     = "~/.config/marquee/config.toml"
	defaultDeckPath       = "~/.config/marquee/deck.toml"
	defaultIntervalMS     = 5000
	defaultSwipeThreshold = 100
)

// Load locates and parses the marquee config, falling back to defaults
// when the file is missing. A present-but-broken file is an error: a
// misconfigured carousel must refuse to start rather than come up
// half-wired.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.DeckPath = mustExpand(cfg.DeckPath)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	// Pointer fields distinguish "absent, use the default" from an
	// explicit value, which matters for the booleans that default on.
	var raw struct {
		Deck           string `toml:"deck"`
		IntervalMS     *int   `toml:"interval_ms"`
		Autoplay       *bool  `toml:"autoplay"`
		PauseOnHover   *bool  `toml:"pause_on_hover"`
		SwipeThreshold *int   `toml:"swipe_threshold"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if deckPath := strings.TrimSpace(raw.Deck); deckPath != "" {
		cfg.DeckPath = deckPath
	}
	cfg.DeckPath = mustExpand(cfg.DeckPath)

	if raw.IntervalMS != nil {
		if *raw.IntervalMS <= 0 {
			return Config{}, fmt.Errorf("config: interval_ms must be positive, got %d", *raw.IntervalMS)
		}
		cfg.Interval = time.Duration(*raw.IntervalMS) * time.Millisecond
	}
	if raw.Autoplay != nil {
		cfg.Autoplay = *raw.Autoplay
	}
	if raw.PauseOnHover != nil {
		cfg.PauseOnHover = *raw.PauseOnHover
	}
	if raw.SwipeThreshold != nil {
		if *raw.SwipeThreshold <= 0 {
			return Config{}, fmt.Errorf("config: swipe_threshold must be positive, got %d", *raw.SwipeThreshold)
		}
		cfg.SwipeThreshold = *raw.SwipeThreshold
	}

	return cfg, nil
}

func defaults() Config {
	return Config{
		DeckPath:       defaultDeckPath,
		Interval:       defaultIntervalMS * time.Millisecond,
		Autoplay:       true,
		PauseOnHover:   true,
		SwipeThreshold: defaultSwipeThreshold,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
