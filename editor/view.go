package editor

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	body := m.display.View()
	if m.cfg.ShowLineNumbers {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.gutter.View(), body)
	}
	if m.cfg.ShowStatus {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.statusLine())
	}
	return m.cfg.Container.Render(body)
}

// StatusText is the plain status line: "Ln L, Col C · LANG".
func (m Model) StatusText() string {
	return fmt.Sprintf("%s · %s", m.buf.Cursor(), m.Language())
}

func (m Model) statusLine() string {
	s := m.StatusText()
	if w := m.gutterWidth() + m.input.Width; w > 0 {
		s = ansi.Truncate(s, w, "…")
	}
	return m.style.Status.Render(s)
}
