package buffer

import (
	"sort"
	"unicode/utf8"
)

// Document is an immutable snapshot of editor text.
//
// Every edit produces a new Document; nothing mutates a Document in place. The
// zero value is the empty document.
type Document struct {
	text       string
	runes      []rune
	byteStarts []int // byte offset of each rune, plus len(text)
	lineStarts []int
}

// NewDocument indexes text into a Document.
//
// An invalid UTF-8 byte counts as one rune, as in a []rune conversion, but
// Text, Line and edits keep the original bytes.
func NewDocument(text string) Document {
	n := utf8.RuneCountInString(text)
	runes := make([]rune, 0, n)
	byteStarts := make([]int, 0, n+1)
	starts := make([]int, 1, 1+n/32)
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '\n' {
			starts = append(starts, len(runes)+1)
		}
		runes = append(runes, r)
		byteStarts = append(byteStarts, i)
		i += size
	}
	byteStarts = append(byteStarts, len(text))
	return Document{text: text, runes: runes, byteStarts: byteStarts, lineStarts: starts}
}

// byteAt returns the byte offset of rune offset i, which must be in
// [0, Len()].
func (d Document) byteAt(i int) int {
	if len(d.byteStarts) == 0 {
		return 0
	}
	return d.byteStarts[i]
}

func (d Document) Text() string { return d.text }

// Len returns the document length in runes.
func (d Document) Len() int { return len(d.runes) }

func (d Document) IsEmpty() bool { return len(d.runes) == 0 }

// LineCount is the number of '\n' characters plus one.
func (d Document) LineCount() int {
	if len(d.lineStarts) == 0 {
		return 1
	}
	return len(d.lineStarts)
}

// LineIndex returns the gutter labels 1..LineCount in ascending order.
func (d Document) LineIndex() []int {
	n := d.LineCount()
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// LineStart returns the offset of the first rune of row (0-based).
func (d Document) LineStart(row int) int {
	if len(d.lineStarts) == 0 || row <= 0 {
		return 0
	}
	if row >= len(d.lineStarts) {
		return d.lineStarts[len(d.lineStarts)-1]
	}
	return d.lineStarts[row]
}

// LineEnd returns the offset just past the last rune of row, excluding the
// trailing '\n'.
func (d Document) LineEnd(row int) int {
	if row < 0 {
		row = 0
	}
	if row+1 >= d.LineCount() {
		return len(d.runes)
	}
	return d.lineStarts[row+1] - 1
}

// LineLen returns the rune length of row without its line break.
func (d Document) LineLen(row int) int {
	return d.LineEnd(row) - d.LineStart(row)
}

// Line returns the text of row without its line break.
func (d Document) Line(row int) string {
	if row < 0 || row >= d.LineCount() {
		return ""
	}
	return d.text[d.byteAt(d.LineStart(row)):d.byteAt(d.LineEnd(row))]
}

// Slice returns the text in [start, end), clamped to the document.
func (d Document) Slice(start, end int) string {
	r := ClampRange(Range{Start: start, End: end}, d.Len())
	return d.text[d.byteAt(r.Start):d.byteAt(r.End)]
}

// RuneAt returns the rune at offset, or 0 when offset is out of range.
func (d Document) RuneAt(offset int) rune {
	if offset < 0 || offset >= len(d.runes) {
		return 0
	}
	return d.runes[offset]
}

// rowOf returns the 0-based row containing offset.
func (d Document) rowOf(offset int) int {
	if len(d.lineStarts) == 0 {
		return 0
	}
	// Last line start <= offset.
	i := sort.Search(len(d.lineStarts), func(i int) bool { return d.lineStarts[i] > offset })
	if i == 0 {
		return 0
	}
	return i - 1
}

// splice returns the text of d with [start, end) replaced by s.
func (d Document) splice(start, end int, s string) string {
	r := ClampRange(Range{Start: start, End: end}, d.Len())
	return d.text[:d.byteAt(r.Start)] + s + d.text[d.byteAt(r.End):]
}
