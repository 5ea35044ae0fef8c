package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codepad/buffer"
	"github.com/iw2rmb/codepad/internal/log"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.insert(normalizeNewlines(string(msg.Runes)))
		}
		m.refresh(true)
		return m, nil
	}

	km := m.cfg.KeyMap
	ro := m.cfg.ReadOnly
	move := func(unit buffer.MoveUnit, dir buffer.MoveDir, extend bool) {
		m.buf.Move(buffer.Move{Unit: unit, Dir: dir, Extend: extend})
	}

	switch {
	case key.Matches(msg, km.Tab):
		if !ro {
			return m.insertTab()
		}

	case key.Matches(msg, km.Left):
		move(buffer.MoveRune, buffer.DirLeft, false)
	case key.Matches(msg, km.Right):
		move(buffer.MoveRune, buffer.DirRight, false)
	case key.Matches(msg, km.Up):
		move(buffer.MoveLine, buffer.DirUp, false)
	case key.Matches(msg, km.Down):
		move(buffer.MoveLine, buffer.DirDown, false)

	case key.Matches(msg, km.ShiftLeft):
		move(buffer.MoveRune, buffer.DirLeft, true)
	case key.Matches(msg, km.ShiftRight):
		move(buffer.MoveRune, buffer.DirRight, true)
	case key.Matches(msg, km.ShiftUp):
		move(buffer.MoveLine, buffer.DirUp, true)
	case key.Matches(msg, km.ShiftDown):
		move(buffer.MoveLine, buffer.DirDown, true)

	case key.Matches(msg, km.WordLeft):
		move(buffer.MoveWord, buffer.DirLeft, false)
	case key.Matches(msg, km.WordRight):
		move(buffer.MoveWord, buffer.DirRight, false)
	case key.Matches(msg, km.ShiftWordLeft):
		move(buffer.MoveWord, buffer.DirLeft, true)
	case key.Matches(msg, km.ShiftWordRight):
		move(buffer.MoveWord, buffer.DirRight, true)

	case key.Matches(msg, km.Home):
		move(buffer.MoveLine, buffer.DirHome, false)
	case key.Matches(msg, km.End):
		move(buffer.MoveLine, buffer.DirEnd, false)
	case key.Matches(msg, km.ShiftHome):
		move(buffer.MoveLine, buffer.DirHome, true)
	case key.Matches(msg, km.ShiftEnd):
		move(buffer.MoveLine, buffer.DirEnd, true)
	case key.Matches(msg, km.DocStart):
		move(buffer.MoveDoc, buffer.DirHome, false)
	case key.Matches(msg, km.DocEnd):
		move(buffer.MoveDoc, buffer.DirEnd, false)
	case key.Matches(msg, km.PageUp):
		m.movePage(-1)
	case key.Matches(msg, km.PageDown):
		m.movePage(1)
	case key.Matches(msg, km.SelectAll):
		m.buf.SetSelection(0, m.buf.Document().Len())

	case key.Matches(msg, km.Backspace):
		if !ro {
			m.buf.Apply(buffer.DeleteBackward(m.buf.Document(), m.buf.Selection()))
		}
	case key.Matches(msg, km.Delete):
		if !ro {
			m.buf.Apply(buffer.DeleteForward(m.buf.Document(), m.buf.Selection()))
		}
	case key.Matches(msg, km.Enter):
		if !ro {
			m.buf.Apply(buffer.InsertNewline(m.buf.Document(), m.buf.Selection()))
		}

	case key.Matches(msg, km.Undo):
		if !ro {
			_ = m.buf.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !ro {
			_ = m.buf.Redo()
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !ro {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !ro {
			m.pasteClipboard()
		}

	default:
		switch {
		case msg.Type == tea.KeySpace:
			if !ro {
				m.insert(" ")
			}
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			if !ro {
				m.insert(string(msg.Runes))
			}
		default:
			return m, nil
		}
	}

	m.refresh(true)
	return m, nil
}

func (m *Model) insert(s string) {
	m.buf.Apply(buffer.InsertText(m.buf.Document(), m.buf.Selection(), s))
}

// movePage moves the caret by one screen of rows in dir, keeping its column.
func (m *Model) movePage(dir int) {
	doc := m.buf.Document()
	rows := maxInt(m.input.Height, 1)
	p := doc.PosAt(m.buf.Caret())
	p.Row += dir * rows
	m.buf.SetCaret(doc.OffsetAt(p))
}

func (m Model) selectedText() string {
	sel := m.buf.Selection()
	if sel.IsEmpty() {
		return ""
	}
	return m.buf.Document().Slice(sel.Start, sel.End)
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.selectedText()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		log.ErrorErr(log.CatEditor, "clipboard write failed", err)
	}
}

func (m *Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.selectedText()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		log.ErrorErr(log.CatEditor, "clipboard write failed", err)
		return
	}
	m.insert("")
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		log.ErrorErr(log.CatEditor, "clipboard read failed", err)
		return
	}
	if s == "" {
		return
	}
	m.insert(normalizeNewlines(s))
}

// normalizeNewlines converts newlines from external sources to '\n'.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
