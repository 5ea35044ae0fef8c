package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codepad/highlight"
)

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
	Status    lipgloss.Style

	// Tokens styles highlighted spans by class. Missing classes use Text.
	Tokens map[highlight.Class]lipgloss.Style
}

// DefaultStyle is ThemeStyle(highlight.Dark).
func DefaultStyle() Style { return ThemeStyle(highlight.Dark) }

// ThemeStyle derives a Style from a highlight theme.
func ThemeStyle(t highlight.Theme) Style {
	fg := lipgloss.Color(t.Foreground)
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	tokens := make(map[highlight.Class]lipgloss.Style, len(t.Colors))
	for _, c := range highlight.Classes() {
		s := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color(c)))
		if t.IsItalic(c) {
			s = s.Italic(true)
		}
		tokens[c] = s
	}

	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(fg).Bold(true),
		Text:          lipgloss.NewStyle().Foreground(fg),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Tokens:        tokens,
	}
}

func (s Style) token(c highlight.Class) lipgloss.Style {
	if ts, ok := s.Tokens[c]; ok {
		return ts.Inherit(s.Text)
	}
	return s.Text
}
