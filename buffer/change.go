package buffer

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	ChangeSourceLocal ChangeSource = iota
	ChangeSourceTab
	ChangeSourceReset
	ChangeSourceUndo
	ChangeSourceRedo
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourceLocal:
		return "local"
	case ChangeSourceTab:
		return "tab"
	case ChangeSourceReset:
		return "reset"
	case ChangeSourceUndo:
		return "undo"
	case ChangeSourceRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// Change describes the most recent document replacement.
type Change struct {
	Source          ChangeSource
	VersionBefore   uint64
	VersionAfter    uint64
	CursorBefore    CursorPosition
	CursorAfter     CursorPosition
	SelectionBefore Range
	SelectionAfter  Range

	// Text is the complete document after the change.
	Text string
}

type changeBuilder struct {
	source          ChangeSource
	versionBefore   uint64
	cursorBefore    CursorPosition
	selectionBefore Range
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) beginChange(source ChangeSource) changeBuilder {
	return changeBuilder{
		source:          source,
		versionBefore:   b.version,
		cursorBefore:    b.Cursor(),
		selectionBefore: b.Selection(),
	}
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		Source:          cb.source,
		VersionBefore:   cb.versionBefore,
		VersionAfter:    b.version,
		CursorBefore:    cb.cursorBefore,
		CursorAfter:     b.Cursor(),
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  b.Selection(),
		Text:            b.doc.Text(),
	}
	b.hasLastChange = true
}
