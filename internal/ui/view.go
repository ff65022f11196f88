package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// geometry describes where everything lands on screen. It is a pure
// function of the window size, so the renderer and the mouse handler
// always agree on hit regions.
type geometry struct {
	frameTop    int
	frameLeft   int
	frameWidth  int // outer, borders included
	frameHeight int
	bodyWidth   int
	bodyHeight  int

	indicatorRow int
	dotsLeft     int
	dotCount     int
}

const (
	minBodyWidth  = 10
	minBodyHeight = 1
	dotSpacing    = 2 // each indicator is a dot plus one space
)

func (m Model) layout() geometry {
	w, h := m.width, m.height
	if w < 24 {
		w = 24
	}
	if h < 8 {
		h = 8
	}

	g := geometry{
		frameTop:  2, // row 0 header, row 1 blank
		frameLeft: 2,
		dotCount:  len(m.slides),
	}
	g.frameWidth = w - 2*g.frameLeft
	g.frameHeight = h - g.frameTop - 2 // indicator row + footer row

	// Inside the frame: border, horizontal padding, title line, blank.
	g.bodyWidth = g.frameWidth - 2 - 4
	if g.bodyWidth < minBodyWidth {
		g.bodyWidth = minBodyWidth
	}
	g.bodyHeight = g.frameHeight - 2 - 2
	if g.bodyHeight < minBodyHeight {
		g.bodyHeight = minBodyHeight
	}

	g.indicatorRow = g.frameTop + g.frameHeight
	g.dotsLeft = (w - g.dotCount*dotSpacing) / 2
	if g.dotsLeft < 0 {
		g.dotsLeft = 0
	}
	return g
}

// inFrame reports whether a cell lies on the slide panel, border
// included. This is the hover region.
func (g geometry) inFrame(x, y int) bool {
	return x >= g.frameLeft && x < g.frameLeft+g.frameWidth &&
		y >= g.frameTop && y < g.frameTop+g.frameHeight
}

// dotAt maps a cell to the indicator under it, if any.
func (g geometry) dotAt(x, y int) (int, bool) {
	if y != g.indicatorRow || g.dotCount == 0 {
		return 0, false
	}
	if x < g.dotsLeft || x >= g.dotsLeft+g.dotCount*dotSpacing {
		return 0, false
	}
	return (x - g.dotsLeft) / dotSpacing, true
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	geo := m.layout()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderFrame(geo))
	b.WriteString("\n")
	b.WriteString(m.renderIndicators(geo))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	logo := styles.Logo.Render("MARQUEE")
	title := m.deckTitle
	if title == "" {
		title = "untitled deck"
	}
	left := logo + "  " + styles.MutedText.Render(title)

	badge := styles.Paused.Render("PAUSED")
	if m.view.playing {
		badge = styles.Playing.Render("PLAYING")
	}
	position := styles.FaintText.Render(fmt.Sprintf(" %d/%d ", m.view.index+1, len(m.slides)))
	right := position + badge

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := " " + left + strings.Repeat(" ", gap) + right
	return styles.Header.Width(m.width).Render(line)
}

func (m Model) renderFrame(geo geometry) string {
	styles := m.theme.Styles()

	idx := m.view.index
	var slideTitle string
	if idx < len(m.slides) {
		slideTitle = m.slides[idx].Title
	}

	titleStyle := styles.SlideTitle
	if idx < len(m.slides) && m.slides[idx].Accent != "" {
		titleStyle = titleStyle.Foreground(lipgloss.Color(m.slides[idx].Accent))
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render(slideTitle))
	content.WriteString("\n\n")
	content.WriteString(m.body.View())

	frameStyle := styles.Frame
	if m.hovering {
		frameStyle = styles.FrameHover
	}
	frame := frameStyle.
		Width(geo.frameWidth - 2).
		Height(geo.frameHeight - 2).
		Render(content.String())

	return lipgloss.NewStyle().MarginLeft(geo.frameLeft).Render(frame)
}

func (m Model) renderIndicators(geo geometry) string {
	styles := m.theme.Styles()

	var dots strings.Builder
	dots.WriteString(strings.Repeat(" ", geo.dotsLeft))
	for i := range m.slides {
		if i == m.view.index {
			dots.WriteString(styles.DotActive.Render("●"))
		} else {
			dots.WriteString(styles.DotInactive.Render("○"))
		}
		dots.WriteString(" ")
	}
	return dots.String()
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	if m.reloadError != "" {
		return styles.Footer.Width(m.width).Render(
			styles.DangerText.Render("deck reload failed: ") + m.reloadError)
	}

	hints := "←/→ navigate · space play/pause · 1-9 jump · T theme · ? help · q quit"
	return styles.Footer.Width(m.width).Render(hints)
}
