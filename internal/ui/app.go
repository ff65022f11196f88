// Package ui provides the Bubble Tea TUI for marquee.
package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"marquee/internal/carousel"
	"marquee/internal/config"
	"marquee/internal/deck"
	"marquee/internal/prefs"
	"marquee/internal/state"
)

const defaultRefreshTick = time.Second

// Options configures the UI.
type Options struct {
	Context     context.Context
	Store       *state.Store
	Config      *config.Config
	ThemeName   string
	PrefsPath   string
	RefreshTick time.Duration // store poll cadence for deck reloads; zero uses 1s
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store       *state.Store
	config      *config.Config
	prefsPath   string
	refreshTick time.Duration

	// UI state
	theme    Theme
	keys     keyMap
	width    int
	height   int
	ready    bool
	showHelp bool

	// Carousel state. gen counts controller rebuilds: every controller
	// starts its timer tags at zero, so a tick must match both the tag
	// and the generation it was scheduled under, or a tick from before
	// a hot-reload would be accepted by the replacement controller.
	view *slideView
	ctrl *carousel.Controller
	gen  int

	// Deck state
	deckTitle   string
	slides      []deck.Slide
	lastReloads int
	reloadError string

	// Slide body rendering
	body        viewport.Model
	md          *glamour.TermRenderer
	renderedFor int // slide index the viewport currently shows; -1 forces a refresh

	// Pointer gesture state
	dragging   bool
	dragStartX int
	hovering   bool
}

// New creates a new Bubble Tea model. It fails when the store holds no
// usable deck or the carousel configuration is invalid, so a broken
// setup never reaches the screen half-wired.
func New(opts Options) (Model, error) {
	if opts.Store == nil {
		return Model{}, fmt.Errorf("ui: store is required")
	}
	if opts.Config == nil {
		return Model{}, fmt.Errorf("ui: config is required")
	}

	snap := opts.Store.Snapshot()
	if !snap.HasDeck {
		return Model{}, fmt.Errorf("ui: no deck loaded")
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	refreshTick := opts.RefreshTick
	if refreshTick <= 0 {
		refreshTick = defaultRefreshTick
	}

	m := Model{
		store:       opts.Store,
		config:      opts.Config,
		prefsPath:   prefsPath,
		refreshTick: refreshTick,
		theme:       GetTheme(themeName),
		keys:        DefaultKeyMap(),
		renderedFor: -1,
	}
	if err := m.buildCarousel(snap, opts.Config.Autoplay, 0); err != nil {
		return Model{}, err
	}
	return m, nil
}

// buildCarousel (re)creates the controller and view for a deck
// snapshot. Used at startup and again after every hot-reload.
func (m *Model) buildCarousel(snap state.Snapshot, playing bool, startIndex int) error {
	if m.ctrl != nil {
		m.ctrl.Close()
	}
	m.gen++

	m.deckTitle = snap.Deck.Title
	m.slides = snap.Deck.Slides
	m.lastReloads = snap.Reloads

	m.view = &slideView{count: len(m.slides), playing: playing}
	ctrl, err := carousel.New(m.view, carousel.Options{
		Interval:       m.config.Interval,
		Autoplay:       playing,
		PauseOnHover:   m.config.PauseOnHover,
		SwipeThreshold: m.config.SwipeThreshold,
	})
	if err != nil {
		return err
	}
	m.ctrl = ctrl

	if startIndex > 0 {
		// GoToSlide pauses by design; restore the play state afterwards.
		if _, err := ctrl.GoToSlide(startIndex); err != nil {
			return err
		}
		if playing {
			if _, err := ctrl.Play(); err != nil {
				return err
			}
		}
	}

	m.renderedFor = -1
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{refreshCmd(m.refreshTick)}
	if m.ctrl.Playing() {
		cmds = append(cmds, tickCmd(m.ctrl.Interval(), m.gen, m.ctrl.TimerTag()))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model. It delegates to update and then keeps
// the body viewport in sync with whatever slide is now active, so no
// individual handler has to remember to re-render.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	if mm, ok := next.(Model); ok {
		mm.syncBody()
		return mm, cmd
	}
	return next, cmd
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.initBodyViewport()
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick(msg)

	case refreshMsg:
		return m.handleRefresh()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		// Abandon any half-finished gesture; the release that would
		// complete it lands after the overlay and must not swipe.
		m.dragging = false
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		m.md = nil // glamour word-wrap style is theme-agnostic, but force a re-render
		m.renderedFor = -1
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		_, _ = m.ctrl.Prev()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		_, _ = m.ctrl.Next()
		return m, nil

	case key.Matches(msg, m.keys.First):
		_, _ = m.ctrl.GoToSlide(0)
		return m, nil

	case key.Matches(msg, m.keys.Last):
		_, _ = m.ctrl.GoToSlide(m.ctrl.Count() - 1)
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		// Space is consumed here; it must never fall through to the
		// viewport, which would treat it as page-down.
		tag, err := m.ctrl.TogglePlayPause()
		if err != nil {
			return m, nil
		}
		if m.ctrl.Playing() {
			return m, tickCmd(m.ctrl.Interval(), m.gen, tag)
		}
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.body.ScrollUp(1)
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.body.ScrollDown(1)
		return m, nil
	}

	// Digit keys jump straight to a slide, like indicator clicks.
	if s := msg.String(); len(s) == 1 && s >= "1" && s <= "9" {
		n, _ := strconv.Atoi(s)
		_, _ = m.ctrl.GoToSlide(n - 1)
	}

	return m, nil
}

// handleTick processes one auto-play tick. A tick from a controller
// that has since been rebuilt is dropped on the generation check; the
// controller itself drops stale tags. Only accepted ticks schedule a
// successor.
func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || !m.ctrl.Tick(msg.tag) {
		return m, nil
	}
	return m, tickCmd(m.ctrl.Interval(), msg.gen, msg.tag)
}

// handleRefresh picks up deck hot-reloads from the store.
func (m Model) handleRefresh() (tea.Model, tea.Cmd) {
	snap := m.store.Snapshot()

	if snap.LastError != nil {
		m.reloadError = snap.LastError.Error()
	} else {
		m.reloadError = ""
	}

	cmds := []tea.Cmd{refreshCmd(m.refreshTick)}

	if snap.HasDeck && snap.Reloads != m.lastReloads {
		playing := m.ctrl.Playing()
		index := m.ctrl.Index()
		if err := m.buildCarousel(snap, playing, index); err != nil {
			// Reload produced a deck the carousel cannot run (e.g. the
			// controller rejected it); keep the error visible and stay
			// on the old content.
			m.reloadError = err.Error()
			return m, tea.Batch(cmds...)
		}
		if m.ctrl.Playing() {
			cmds = append(cmds, tickCmd(m.ctrl.Interval(), m.gen, m.ctrl.TimerTag()))
		}
	}

	return m, tea.Batch(cmds...)
}

// initBodyViewport sizes the slide-body viewport and the Markdown
// renderer for the current window.
func (m *Model) initBodyViewport() {
	geo := m.layout()
	m.body = viewport.New(geo.bodyWidth, geo.bodyHeight)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(geo.bodyWidth),
	)
	if err == nil {
		m.md = renderer
	}
	m.renderedFor = -1
}

// syncBody re-renders the slide body when the active slide changed.
func (m *Model) syncBody() {
	if !m.ready || len(m.slides) == 0 {
		return
	}
	idx := m.view.index
	if idx == m.renderedFor {
		return
	}

	body := m.slides[idx].Body
	content := body
	if m.md != nil {
		if out, err := m.md.Render(body); err == nil {
			content = strings.TrimRight(out, "\n")
		}
	}
	m.body.SetContent(content)
	m.body.GotoTop()
	m.renderedFor = idx
}

// Messages

type tickMsg struct {
	gen int
	tag int
}

type refreshMsg time.Time

// Commands

func tickCmd(d time.Duration, gen, tag int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{gen: gen, tag: tag}
	})
}

func refreshCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err = p.Run()
	return err
}
