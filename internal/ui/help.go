package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpItem struct {
	keys string
	desc string
}

type helpSection struct {
	title string
	items []helpItem
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Navigation",
			items: []helpItem{
				{"←/h, →/l", "Previous / next slide"},
				{"1-9", "Jump to slide"},
				{"g/G", "First / last slide"},
				{"↑/k, ↓/j", "Scroll slide body"},
				{"click dot", "Jump to slide"},
				{"drag", "Swipe to navigate"},
			},
		},
		{
			title: "Playback",
			items: []helpItem{
				{"space", "Play / pause"},
				{"hover", "Pause while pointer rests on the slide"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder

	title := styles.Text.Bold(true).Render("Keyboard & Mouse")
	b.WriteString(title)
	b.WriteString("\n")

	for _, section := range sections {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			keys := styles.Text.Width(14).Render(item.keys)
			b.WriteString("  " + keys + styles.MutedText.Render(item.desc))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Press any key to close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
