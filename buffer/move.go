package buffer

import "github.com/iw2rmb/codepad/internal/grapheme"

type MoveUnit int

const (
	MoveRune MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, keeps the anchor and moves the head; if false collapses the selection
}

// Move moves the caret. A plain left/right move over a non-empty selection
// collapses it to the matching edge, as native text inputs do.
func (b *Buffer) Move(m Move) {
	sel := b.Selection()
	if !m.Extend && !sel.IsEmpty() && m.Unit == MoveRune {
		switch m.Dir {
		case DirLeft:
			b.SetCaret(sel.Start)
			return
		case DirRight:
			b.SetCaret(sel.End)
			return
		}
	}

	next := b.moveOffset(b.head, m)
	if m.Extend {
		b.SetSelection(b.anchor, next)
		return
	}
	b.SetCaret(next)
}

func (b *Buffer) moveOffset(off int, m Move) int {
	switch m.Unit {
	case MoveRune:
		return b.moveRune(off, m.Dir)
	case MoveWord:
		return b.moveWord(off, m.Dir)
	case MoveLine:
		return b.moveLine(off, m.Dir)
	case MoveDoc:
		return b.moveDoc(off, m.Dir)
	default:
		return off
	}
}

func (b *Buffer) moveRune(off int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		return ClampOffset(off-1, b.doc.Len())
	case DirRight:
		return ClampOffset(off+1, b.doc.Len())
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveLine(off int, dir MoveDir) int {
	p := b.doc.PosAt(off)
	lastRow := b.doc.LineCount() - 1

	switch dir {
	case DirHome:
		return b.doc.LineStart(p.Row)
	case DirEnd:
		return b.doc.LineEnd(p.Row)
	case DirUp:
		if p.Row == 0 {
			return b.doc.LineStart(0)
		}
		return b.doc.OffsetAt(Pos{Row: p.Row - 1, Col: p.Col})
	case DirDown:
		if p.Row == lastRow {
			return b.doc.LineEnd(lastRow)
		}
		return b.doc.OffsetAt(Pos{Row: p.Row + 1, Col: p.Col})
	default:
		return off
	}
}

func (b *Buffer) moveWord(off int, dir MoveDir) int {
	p := b.doc.PosAt(off)
	line := []rune(b.doc.Line(p.Row))
	start := b.doc.LineStart(p.Row)

	switch dir {
	case DirLeft:
		if p.Col == 0 && p.Row > 0 {
			return b.doc.LineEnd(p.Row - 1)
		}
		return start + prevWordBoundary(line, p.Col)
	case DirRight:
		if p.Col == len(line) && p.Row < b.doc.LineCount()-1 {
			return b.doc.LineStart(p.Row + 1)
		}
		return start + nextWordBoundary(line, p.Col)
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveDoc(off int, dir MoveDir) int {
	switch dir {
	case DirHome, DirUp:
		return 0
	case DirEnd, DirDown:
		return b.doc.Len()
	default:
		return off
	}
}

type runeClass int

const (
	classSpace runeClass = iota
	classPunct
	classWord
)

func classify(r rune) runeClass {
	switch {
	case grapheme.IsSpace(r):
		return classSpace
	case grapheme.IsPunct(r):
		return classPunct
	default:
		return classWord
	}
}

// Word boundary rules:
// - skip whitespace, then skip a run of the same class (word or punctuation)
// - newline is a hard boundary (so this operates on a single logical line)
func prevWordBoundary(line []rune, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && classify(line[i-1]) == classSpace {
		i--
	}
	if i == 0 {
		return 0
	}
	c := classify(line[i-1])
	for i > 0 && classify(line[i-1]) == c {
		i--
	}
	return i
}

func nextWordBoundary(line []rune, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && classify(line[i]) == classSpace {
		i++
	}
	if i == len(line) {
		return i
	}
	c := classify(line[i])
	for i < len(line) && classify(line[i]) == c {
		i++
	}
	return i
}
