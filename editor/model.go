package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codepad/buffer"
	"github.com/iw2rmb/codepad/highlight"
	"github.com/iw2rmb/codepad/internal/log"
)

// Model is a Bubble Tea component that edits and highlights a single document.
type Model struct {
	cfg   Config
	style Style
	buf   *buffer.Buffer

	focused bool

	// Input surface: owns the scroll position. Its content is the plain text
	// and it is never drawn.
	input   viewport.Model
	xOffset int

	// Display surface and gutter: drawn, never scrolled directly.
	display      viewport.Model
	displayLeft  int
	gutter       viewport.Model
	gutterDigits int

	width, height int

	// spans cache for the current text version.
	spans        []highlight.Span
	spansVersion uint64
	spansLang    string
	spansValid   bool

	// Last value supplied through Config.Text, SetText or ResetMsg.
	hostText string

	pendingRestore *caretRestoreMsg

	mouseAnchor   int
	mouseDragging bool
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()

	style := ThemeStyle(highlight.ThemeByName(cfg.Theme))
	if cfg.Style != nil {
		style = *cfg.Style
	}

	m := Model{
		cfg:   cfg,
		style: style,
		buf: buffer.New(cfg.Text, buffer.Options{
			HistoryLimit: cfg.HistoryLimit,
			OnChange:     cfg.OnChange,
		}),
		focused:  true,
		input:    viewport.New(0, 0),
		display:  viewport.New(0, 0),
		gutter:   viewport.New(0, 0),
		hostText: cfg.Text,
	}
	m.display.MouseWheelEnabled = false
	m.gutter.MouseWheelEnabled = false
	m.layout()
	m.refresh(false)
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

// Text returns the current document text.
func (m Model) Text() string { return m.buf.Text() }

// Cursor returns the 1-based caret position.
func (m Model) Cursor() buffer.CursorPosition { return m.buf.Cursor() }

// Language returns the resolved highlighting profile name.
func (m Model) Language() string {
	return m.cfg.Highlighter.Registry().Resolve(m.cfg.Language).Name
}

func (m Model) SetLanguage(lang string) Model {
	m.cfg.Language = lang
	m.refresh(false)
	return m
}

func (m Model) ReadOnly() bool { return m.cfg.ReadOnly }

func (m Model) SetReadOnly(v bool) Model {
	m.cfg.ReadOnly = v
	return m
}

// SetText replaces the document with host-supplied text.
//
// It is a no-op when text equals the value the host supplied last, so a host
// echoing its stored value back on every render does not disturb local edits.
// OnChange is not called.
func (m Model) SetText(text string) Model {
	if text == m.hostText {
		return m
	}
	m.hostText = text
	m.pendingRestore = nil
	if text == m.buf.Text() {
		// The host caught up with local edits.
		return m
	}

	m.buf.Reset(text)
	m.input.SetYOffset(0)
	m.xOffset = 0
	m.refresh(true)
	log.Debug(log.CatEditor, "external reset", "runes", m.buf.Document().Len())
	return m
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width, m.height = width, height
	m.layout()
	m.refresh(true)
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.refresh(true)
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.refresh(false)
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case ResetMsg:
		return m.SetText(msg.Text), nil
	case caretRestoreMsg:
		m.applyCaretRestore(msg)
		return m, nil
	case tea.KeyMsg:
		m.flushCaretRestore()
		return m.updateKey(msg)
	case tea.MouseMsg:
		m.flushCaretRestore()
		return m.updateMouse(msg)
	default:
		return m, nil
	}
}

// applyCaretRestore handles the deferred half of a tab insertion.
func (m *Model) applyCaretRestore(msg caretRestoreMsg) {
	if m.pendingRestore == nil || *m.pendingRestore != msg {
		return
	}
	m.flushCaretRestore()
	m.refresh(true)
}

// flushCaretRestore applies a pending caret restore right away, before any
// newer input is processed.
func (m *Model) flushCaretRestore() {
	p := m.pendingRestore
	if p == nil {
		return
	}
	m.pendingRestore = nil
	if m.buf.Version() != p.version {
		log.Debug(log.CatEditor, "stale caret restore dropped", "want", p.version, "have", m.buf.Version())
		return
	}
	m.buf.SetCaret(p.offset)
}

func (m Model) insertTab() (Model, tea.Cmd) {
	off := m.buf.InsertTab()
	restore := caretRestoreMsg{version: m.buf.Version(), offset: off}
	m.pendingRestore = &restore
	m.refresh(false)
	return m, func() tea.Msg { return restore }
}
