package buffer

import "fmt"

// CursorPosition is the 1-based (line, column) location of the caret.
//
// It is always derived from a Document and a rune offset and never stored on
// its own.
type CursorPosition struct {
	Line   int
	Column int
}

func (c CursorPosition) String() string {
	return fmt.Sprintf("Ln %d, Col %d", c.Line, c.Column)
}

// CursorAt derives the caret position for offset in d.
//
// Line is one plus the number of line breaks before offset; Column is the
// length of the trailing partial line plus one. offset is clamped into
// [0, d.Len()], so the empty document yields (1, 1).
func CursorAt(d Document, offset int) CursorPosition {
	offset = ClampOffset(offset, d.Len())
	row := d.rowOf(offset)
	return CursorPosition{
		Line:   row + 1,
		Column: offset - d.LineStart(row) + 1,
	}
}
