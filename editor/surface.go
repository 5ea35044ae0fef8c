package editor

import (
	"strings"

	"github.com/iw2rmb/codepad/buffer"
	graphemeutil "github.com/iw2rmb/codepad/internal/grapheme"
)

// layout sizes the three surfaces from the outer size, the container frame
// and the current line count.
func (m *Model) layout() {
	w := maxInt(m.width-m.cfg.Container.GetHorizontalFrameSize(), 0)

	rows := m.cfg.Height
	if rows == 0 {
		rows = maxInt(m.height-m.cfg.Container.GetVerticalFrameSize()-m.statusRows(), 0)
	}

	m.gutterDigits = 0
	gw := 0
	if m.cfg.ShowLineNumbers {
		m.gutterDigits = gutterDigits(m.buf.Document().LineCount())
		gw = m.gutterDigits + 1
	}
	tw := maxInt(w-gw, 0)
	if m.width == 0 {
		tw = 0
	}

	m.input.Width, m.input.Height = tw, rows
	m.display.Width, m.display.Height = tw, rows
	m.gutter.Width, m.gutter.Height = gw, rows
}

func (m Model) statusRows() int {
	if m.cfg.ShowStatus {
		return 1
	}
	return 0
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNumbers {
		return 0
	}
	return m.gutterDigits + 1
}

// refresh brings every surface up to date with the buffer. When follow is
// set the input surface scrolls to keep the caret visible first. The display
// surface and the gutter then copy the input surface's offsets; they never
// scroll on their own.
func (m *Model) refresh(follow bool) {
	m.layout()

	doc := m.buf.Document()
	m.input.SetContent(doc.Text())
	// SetContent only clamps past the last line; re-clamp to the page so the
	// copies below land on the same offset.
	m.input.SetYOffset(m.input.YOffset)
	if follow {
		m.followCaret(doc)
	}
	m.clampXOffset(doc)

	m.updateSpans(doc)
	m.syncSurfaces(doc)
}

// syncSurfaces copies the input surface's offsets to the display surface and
// the gutter, then re-renders both.
func (m *Model) syncSurfaces(doc buffer.Document) {
	m.displayLeft = m.xOffset

	m.display.SetContent(m.renderDisplay(doc))
	m.gutter.SetContent(m.renderGutter(doc))

	m.display.SetYOffset(m.input.YOffset)
	m.gutter.SetYOffset(m.input.YOffset)
}

func (m *Model) followCaret(doc buffer.Document) {
	p := doc.PosAt(m.buf.Caret())

	if h := m.input.Height; h > 0 {
		y := m.input.YOffset
		switch {
		case p.Row < y:
			m.input.SetYOffset(p.Row)
		case p.Row >= y+h:
			m.input.SetYOffset(p.Row - h + 1)
		}
	}

	if w := m.input.Width; w > 0 {
		cell := cellForCol(doc.Line(p.Row), p.Col, m.cfg.TabWidth)
		switch {
		case cell < m.xOffset:
			m.xOffset = cell
		case cell >= m.xOffset+w:
			m.xOffset = cell - w + 1
		}
	}
}

// clampXOffset keeps the horizontal offset within the widest line plus the
// end-of-line caret cell.
func (m *Model) clampXOffset(doc buffer.Document) {
	w := m.input.Width
	if w <= 0 {
		m.xOffset = 0
		return
	}
	widest := 0
	for row := 0; row < doc.LineCount(); row++ {
		widest = maxInt(widest, graphemeutil.Width(doc.Line(row), m.cfg.TabWidth))
	}
	m.xOffset = clampInt(m.xOffset, 0, maxInt(widest+1-w, 0))
}

func (m *Model) updateSpans(doc buffer.Document) {
	v := m.buf.TextVersion()
	if m.spansValid && m.spansVersion == v && m.spansLang == m.cfg.Language {
		return
	}
	m.spans = m.cfg.Highlighter.Tokenize(doc.Text(), m.cfg.Language)
	m.spansVersion = v
	m.spansLang = m.cfg.Language
	m.spansValid = true
}

// visibleRowRange returns the document rows the display surface shows. An
// unsized editor shows every row.
func (m Model) visibleRowRange(lineCount int) (start, end int) {
	if m.input.Height <= 0 {
		return 0, lineCount
	}
	start = clampInt(m.input.YOffset, 0, lineCount)
	end = clampInt(start+m.input.Height, start, lineCount)
	return start, end
}

func cellForCol(line string, col, tabWidth int) int {
	widths := graphemeutil.RuneWidths(line, tabWidth)
	col = clampInt(col, 0, len(widths))
	cell := 0
	for _, w := range widths[:col] {
		cell += w
	}
	return cell
}

// colForCell maps a cell to the rune column whose cluster covers it. Cells
// past the end of the line map to the line end.
func colForCell(line string, cell, tabWidth int) int {
	widths := graphemeutil.RuneWidths(line, tabWidth)
	x := 0
	for i, w := range widths {
		if w == 0 {
			continue
		}
		if cell < x+w {
			return i
		}
		x += w
	}
	return len(widths)
}

func gutterDigits(lineCount int) int {
	d := 1
	for n := lineCount; n >= 10; n /= 10 {
		d++
	}
	return d
}

func blank(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
