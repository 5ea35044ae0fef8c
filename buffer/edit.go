package buffer

import "unicode/utf8"

// Indent is the text a tab keystroke inserts.
const Indent = "  "

// Edit is the full text an input surface holds after a native edit, together
// with its new selection-start offset.
type Edit struct {
	Text  string
	Caret int
}

// InsertText replaces sel in d with s, or inserts s at the caret when sel is
// empty.
func InsertText(d Document, sel Range, s string) Edit {
	r := ClampRange(sel, d.Len())
	return Edit{
		Text:  d.splice(r.Start, r.End, s),
		Caret: r.Start + utf8.RuneCountInString(s),
	}
}

// InsertNewline inserts a line break at the caret, or replaces sel.
func InsertNewline(d Document, sel Range) Edit {
	return InsertText(d, sel, "\n")
}

// DeleteBackward applies backspace semantics.
func DeleteBackward(d Document, sel Range) Edit {
	r := ClampRange(sel, d.Len())
	if !r.IsEmpty() {
		return InsertText(d, r, "")
	}
	if r.Start == 0 {
		return Edit{Text: d.Text(), Caret: 0}
	}
	return InsertText(d, Range{Start: r.Start - 1, End: r.Start}, "")
}

// DeleteForward applies delete-key semantics.
func DeleteForward(d Document, sel Range) Edit {
	r := ClampRange(sel, d.Len())
	if !r.IsEmpty() {
		return InsertText(d, r, "")
	}
	if r.Start == d.Len() {
		return Edit{Text: d.Text(), Caret: r.Start}
	}
	return InsertText(d, Range{Start: r.Start, End: r.Start + 1}, "")
}

// TabEdit substitutes sel with Indent and places the caret right after it.
func TabEdit(d Document, sel Range) Edit {
	return InsertText(d, sel, Indent)
}
