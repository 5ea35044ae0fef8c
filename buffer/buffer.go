package buffer

import "github.com/iw2rmb/codepad/internal/log"

type Options struct {
	HistoryLimit int // default: 1000; negative disables undo history

	// OnChange receives the complete text after every accepted local edit.
	// It is optional; without it edits only update local state.
	OnChange func(text string)
}

// Buffer owns the current Document and the selection of the input surface.
type Buffer struct {
	doc         Document
	version     uint64
	textVersion uint64

	// anchor is where a selection started, head is where the caret is.
	anchor int
	head   int

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		doc: NewDocument(text),
		opt: opt,
	}
}

func (b *Buffer) Document() Document { return b.doc }

func (b *Buffer) Text() string { return b.doc.Text() }

// Version changes whenever the document or the selection changes.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion changes only when the document is replaced.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

// SetOnChange replaces the change callback. nil disables notifications.
func (b *Buffer) SetOnChange(fn func(text string)) { b.opt.OnChange = fn }

// Selection returns the normalized selection. An empty range is a plain caret.
func (b *Buffer) Selection() Range {
	return NormalizeRange(Range{Start: b.anchor, End: b.head})
}

// SelectionRaw returns the selection anchor and head without normalization.
//
// This is useful for UI layers that need to preserve the selection direction
// (e.g. shift+click behavior).
func (b *Buffer) SelectionRaw() (anchor, head int) { return b.anchor, b.head }

// Caret returns the head of the selection.
func (b *Buffer) Caret() int { return b.head }

// Cursor derives the caret position from the selection start.
func (b *Buffer) Cursor() CursorPosition {
	return CursorAt(b.doc, b.Selection().Start)
}

// SetCaret collapses the selection at offset.
func (b *Buffer) SetCaret(offset int) {
	b.SetSelection(offset, offset)
}

// SetSelection sets the selection anchor and head, clamped into the document.
func (b *Buffer) SetSelection(anchor, head int) {
	n := b.doc.Len()
	anchor, head = ClampOffset(anchor, n), ClampOffset(head, n)
	if anchor == b.anchor && head == b.head {
		return
	}
	b.anchor, b.head = anchor, head
	b.version++
}

// ClearSelection collapses the selection at the caret.
func (b *Buffer) ClearSelection() {
	b.SetSelection(b.head, b.head)
}

// Replace accepts the complete new text held by the input surface and the
// surface's selection-start offset.
//
// The text replaces the document wholesale; no diff is computed. OnChange is
// invoked when the text differs from the current document. Replace reports
// whether the document changed.
func (b *Buffer) Replace(text string, caret int) bool {
	if text == b.doc.Text() {
		b.SetCaret(caret)
		return false
	}

	prev := b.snapshot()
	change := b.beginChange(ChangeSourceLocal)

	b.setDocument(text)
	caret = ClampOffset(caret, b.doc.Len())
	b.anchor, b.head = caret, caret
	b.version++
	b.recordUndo(prev)
	b.commitChange(change)
	b.notify()
	return true
}

// Apply is Replace for an Edit produced by one of the input-surface edit
// functions.
func (b *Buffer) Apply(e Edit) bool {
	return b.Replace(e.Text, e.Caret)
}

// InsertTab substitutes the current selection with Indent and notifies
// OnChange.
//
// Like a native text input whose value is assigned, the selection ends up
// collapsed at the end of the document. The returned offset (selection start
// plus the indent length) is where the caret belongs; callers restore it once
// the new document has been rendered.
func (b *Buffer) InsertTab() int {
	e := TabEdit(b.doc, b.Selection())

	prev := b.snapshot()
	change := b.beginChange(ChangeSourceTab)

	b.setDocument(e.Text)
	end := b.doc.Len()
	b.anchor, b.head = end, end
	b.version++
	b.recordUndo(prev)
	b.commitChange(change)
	b.notify()
	return e.Caret
}

// Reset replaces the document with text supplied by the host.
//
// This is not a local edit: OnChange is not invoked, the caret returns to the
// start and the undo history is dropped.
func (b *Buffer) Reset(text string) {
	change := b.beginChange(ChangeSourceReset)

	b.setDocument(text)
	b.anchor, b.head = 0, 0
	b.hist = historyState{}
	b.version++
	b.commitChange(change)
	log.Debug(log.CatBuffer, "document reset", "runes", b.doc.Len(), "version", b.version)
}

func (b *Buffer) setDocument(text string) {
	b.doc = NewDocument(text)
	b.textVersion++
}

func (b *Buffer) notify() {
	if b.opt.OnChange == nil {
		return
	}
	b.opt.OnChange(b.doc.Text())
}
