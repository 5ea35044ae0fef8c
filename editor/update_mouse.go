package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	manual := m.cfg.ScrollPolicy == ScrollAllowManual

	// Wheel events scroll the input surface; the display surface and gutter
	// follow in refresh.
	if isHorizontalWheel(msg) {
		if manual {
			step := horizontalWheelStep
			if msg.Button == tea.MouseButtonWheelLeft {
				step = -step
			}
			m.xOffset += step
			m.refresh(false)
		}
		return m, nil
	}

	var cmd tea.Cmd
	if manual || !isManualScrollMouse(msg) {
		m.input, cmd = m.input.Update(msg)
	}

	if !m.focused {
		m.refresh(false)
		return m, cmd
	}

	follow := false
	// Only handle selection/caret changes for left button interactions.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			break
		}

		off := m.ScreenToOffset(msg.X, msg.Y)
		if msg.Shift {
			anchor, _ := m.buf.SelectionRaw()
			m.mouseAnchor = anchor
			m.buf.SetSelection(anchor, off)
		} else {
			m.mouseAnchor = off
			m.buf.SetCaret(off)
		}
		m.mouseDragging = true
		follow = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			break
		}
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		m.buf.SetSelection(m.mouseAnchor, m.ScreenToOffset(x, y))
		follow = true

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	m.refresh(follow)
	return m, cmd
}

func isManualScrollMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func isHorizontalWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelLeft || msg.Button == tea.MouseButtonWheelRight)
}
