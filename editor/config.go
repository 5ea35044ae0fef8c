package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codepad/highlight"
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// OnChange receives the full text after every local edit. It is never
	// called for text supplied through SetText or ResetMsg.
	OnChange func(text string)

	// Language selects the highlighting profile. Unknown identifiers fall
	// back to javascript.
	Language string

	// ReadOnly ignores edits, tab, cut and paste. Navigation, selection,
	// scrolling and copy keep working.
	ReadOnly bool

	// Height fixes the number of visible rows. 0 uses the height given to
	// SetSize.
	Height int

	ShowLineNumbers bool
	ShowStatus      bool

	// Theme names a highlight theme ("dark" or "light"). It is used when Style
	// is nil.
	Theme string

	// Container wraps the whole component (border, padding, background).
	Container lipgloss.Style

	// Style overrides the theme-derived style.
	Style *Style

	TabWidth     int // default: 4
	HistoryLimit int // forwarded to buffer.Options
	KeyMap       KeyMap
	Clipboard    Clipboard
	ScrollPolicy ScrollPolicy

	// Highlighter tokenizes the document. nil uses highlight.Default().
	Highlighter *highlight.Highlighter
}

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Highlighter == nil {
		c.Highlighter = highlight.Default()
	}
	if c.Height < 0 {
		c.Height = 0
	}
	return c
}
