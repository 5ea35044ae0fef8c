package editor

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codepad/buffer"
	"github.com/iw2rmb/codepad/highlight"
	graphemeutil "github.com/iw2rmb/codepad/internal/grapheme"
)

// renderDisplay renders the display surface: one row per document line,
// highlighted, cropped to the copied horizontal offset, with the caret and
// selection of the input surface overlaid. Rows outside the visible range are
// left empty; the display surface only ever shows the rows the input surface
// scrolled to.
func (m *Model) renderDisplay(doc buffer.Document) string {
	n := doc.LineCount()
	start, end := m.visibleRowRange(n)

	caret := -1
	if m.focused {
		caret = m.buf.Caret()
	}
	sel := m.buf.Selection()

	out := make([]string, n)
	for row := start; row < end; row++ {
		out[row] = m.renderRow(doc, row, caret, sel)
	}
	return strings.Join(out, "\n")
}

type cellKind uint8

const (
	cellText cellKind = iota
	cellToken
	cellSelected
	cellCaret
)

type cellRun struct {
	kind  cellKind
	class highlight.Class
	text  strings.Builder
}

func (m *Model) renderRow(doc buffer.Document, row, caret int, sel buffer.Range) string {
	line := doc.Line(row)
	lineStart := doc.LineStart(row)
	runes := []rune(line)
	widths := graphemeutil.RuneWidths(line, m.cfg.TabWidth)
	classes := classesForLine(m.spans, lineStart, len(runes))

	left := maxInt(m.displayLeft, 0)
	right := int(^uint(0) >> 1)
	if m.display.Width > 0 {
		right = left + m.display.Width
	}

	var runs []*cellRun
	emit := func(kind cellKind, class highlight.Class, s string) {
		if s == "" {
			return
		}
		if len(runs) > 0 {
			last := runs[len(runs)-1]
			if last.kind == kind && last.class == class {
				last.text.WriteString(s)
				return
			}
		}
		r := &cellRun{kind: kind, class: class}
		r.text.WriteString(s)
		runs = append(runs, r)
	}

	x := 0
	for i := 0; i < len(runes); {
		w := widths[i]
		j := i + 1
		for j < len(runes) && widths[j] == 0 && runes[j] != '\t' {
			j++
		}

		text := string(runes[i:j])
		if runes[i] == '\t' {
			text = blank(w)
		}

		off := lineStart + i
		kind, class := cellText, classes[i]
		switch {
		case off == caret:
			kind, class = cellCaret, ""
		case sel.Contains(off):
			kind, class = cellSelected, ""
		case class != "":
			kind = cellToken
		}

		spanL, spanR := maxInt(x, left), minInt(x+w, right)
		if spanL < spanR {
			if spanR-spanL < w {
				// Partially visible wide cluster: keep alignment with blanks.
				text = blank(spanR - spanL)
			}
			emit(kind, class, text)
		}

		x += w
		i = j
	}

	if caret == lineStart+len(runes) && x >= left && x < right {
		emit(cellCaret, "", " ")
	}

	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(m.styleFor(r.kind, r.class).Render(r.text.String()))
	}
	return sb.String()
}

func (m *Model) styleFor(kind cellKind, class highlight.Class) lipgloss.Style {
	switch kind {
	case cellCaret:
		return m.style.Cursor
	case cellSelected:
		return m.style.Selection
	case cellToken:
		return m.style.token(class)
	default:
		return m.style.Text
	}
}

// classesForLine returns the token class of every rune in
// [lineStart, lineStart+n), or "" where no span applies.
func classesForLine(spans []highlight.Span, lineStart, n int) []highlight.Class {
	out := make([]highlight.Class, n)
	if n == 0 || len(spans) == 0 {
		return out
	}
	lineEnd := lineStart + n

	i := sort.Search(len(spans), func(i int) bool { return spans[i].End > lineStart })
	for ; i < len(spans) && spans[i].Start < lineEnd; i++ {
		sp := spans[i]
		from := maxInt(sp.Start, lineStart) - lineStart
		to := minInt(sp.End, lineEnd) - lineStart
		for k := from; k < to; k++ {
			out[k] = sp.Class
		}
	}
	return out
}
