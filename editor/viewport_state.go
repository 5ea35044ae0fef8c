package editor

// Surface is the scroll position of one surface, in rows and cells.
type Surface struct {
	Top  int
	Left int
}

// ScrollState is a host-facing snapshot of the three surfaces' offsets.
//
// After every Update the display and gutter offsets equal the input offsets
// (the gutter never scrolls horizontally).
type ScrollState struct {
	Input   Surface
	Display Surface
	Gutter  Surface

	// VisibleRows is the number of text rows the surfaces show.
	VisibleRows int
}

func (m Model) ScrollState() ScrollState {
	return ScrollState{
		Input:       Surface{Top: m.input.YOffset, Left: m.xOffset},
		Display:     Surface{Top: m.display.YOffset, Left: m.displayLeft},
		Gutter:      Surface{Top: m.gutter.YOffset},
		VisibleRows: m.input.Height,
	}
}
