package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouse translates pointer events into carousel operations:
// presses and releases bracket a swipe, clicks on the indicator row
// jump to a slide, and motion in and out of the slide frame drives
// hover pause/resume.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.ready || m.showHelp {
		return m, nil
	}
	geo := m.layout()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if idx, ok := geo.dotAt(msg.X, msg.Y); ok {
			_, _ = m.ctrl.GoToSlide(idx)
			return m, nil
		}
		if geo.inFrame(msg.X, msg.Y) {
			m.dragging = true
			m.dragStartX = msg.X
		}
		return m, nil

	case tea.MouseActionRelease:
		// Some terminals report release with ButtonNone, so only the
		// drag state decides whether this completes a gesture.
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		_, _, _ = m.ctrl.Swipe(m.dragStartX, msg.X)
		return m, nil

	case tea.MouseActionMotion:
		inside := geo.inFrame(msg.X, msg.Y)
		switch {
		case inside && !m.hovering:
			m.hovering = true
			m.ctrl.HoverEnter()
		case !inside && m.hovering:
			m.hovering = false
			if tag, resumed := m.ctrl.HoverLeave(); resumed {
				return m, tickCmd(m.ctrl.Interval(), m.gen, tag)
			}
		}
		return m, nil
	}

	return m, nil
}
