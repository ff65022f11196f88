package deck

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Slide is one panel in the carousel. Body is Markdown; it is rendered
// by the UI, not here.
type Slide struct {
	Title  string `toml:"title"`
	Body   string `toml:"body"`
	Accent string `toml:"accent"` // optional frame accent color, e.g. "#f6c177"
}

// Deck is an ordered set of slides loaded from a TOML file.
type Deck struct {
	Title  string  `toml:"title"`
	Slides []Slide `toml:"slides"`
}

// Len returns the number of slides.
func (d Deck) Len() int { return len(d.Slides) }

// ErrEmptyDeck is returned when a deck file parses but contains no
// slides; the carousel cannot be built around it.
var ErrEmptyDeck = errors.New("deck: no slides defined")

// Load reads and validates a deck file. Unlike marquee's config, a
// deck is mandatory: a missing file is an error, not a default.
func Load(path string) (Deck, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Deck{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		return Deck{}, fmt.Errorf("open deck: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Deck{}, fmt.Errorf("read deck: %w", err)
	}

	return Parse(bytes)
}

// Parse decodes and validates deck TOML. Split from Load so the
// watcher and tests can feed bytes directly.
func Parse(data []byte) (Deck, error) {
	var d Deck
	if err := toml.Unmarshal(data, &d); err != nil {
		return Deck{}, fmt.Errorf("parse deck: %w", err)
	}

	if len(d.Slides) == 0 {
		return Deck{}, ErrEmptyDeck
	}
	for i := range d.Slides {
		s := &d.Slides[i]
		s.Title = strings.TrimSpace(s.Title)
		s.Accent = strings.TrimSpace(s.Accent)
		if s.Title == "" && strings.TrimSpace(s.Body) == "" {
			return Deck{}, fmt.Errorf("deck: slide %d has neither title nor body", i+1)
		}
		if s.Accent != "" && !validAccent(s.Accent) {
			return Deck{}, fmt.Errorf("deck: slide %d has invalid accent %q", i+1, s.Accent)
		}
	}

	d.Title = strings.TrimSpace(d.Title)
	return d, nil
}

// validAccent accepts #RGB and #RRGGBB hex colors.
func validAccent(accent string) bool {
	if !strings.HasPrefix(accent, "#") {
		return false
	}
	hex := accent[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	for _, r := range hex {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("deck path is empty")
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
