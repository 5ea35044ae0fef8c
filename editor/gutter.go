package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/codepad/buffer"
)

// renderGutter renders line numbers 1..LineCount right-aligned, followed by a
// separator cell. The caret's line uses the active style.
func (m *Model) renderGutter(doc buffer.Document) string {
	n := doc.LineCount()
	if !m.cfg.ShowLineNumbers {
		// Keep the row count so the gutter can still follow the input surface.
		return strings.Repeat("\n", n-1)
	}

	start, end := m.visibleRowRange(n)
	active := m.buf.Cursor().Line
	labels := doc.LineIndex()

	out := make([]string, n)
	for row := start; row < end; row++ {
		num := labels[row]
		st := m.style.LineNum
		if num == active {
			st = m.style.LineNumActive
		}
		out[row] = st.Render(fmt.Sprintf("%*d", m.gutterDigits, num)) + m.style.Gutter.Render(" ")
	}
	return strings.Join(out, "\n")
}
