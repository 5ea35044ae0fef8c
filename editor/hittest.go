package editor

// containerOrigin returns the cell where the gutter's top-left corner sits
// inside the rendered component.
func (m Model) containerOrigin() (x, y int) {
	c := m.cfg.Container
	x = c.GetMarginLeft() + c.GetBorderLeftSize() + c.GetPaddingLeft()
	y = c.GetMarginTop() + c.GetBorderTopSize() + c.GetPaddingTop()
	return x, y
}

// ScreenToOffset maps component-local cell coordinates to a document offset.
//
// (0,0) is the top-left cell of the rendered component, container frame
// included. Coordinates are clamped into the document; clicks on the gutter
// map to the start of the row.
func (m Model) ScreenToOffset(x, y int) int {
	doc := m.buf.Document()
	ox, oy := m.containerOrigin()

	row := clampInt(m.input.YOffset+y-oy, 0, doc.LineCount()-1)
	tx := x - ox - m.gutterWidth()
	if tx < 0 {
		return doc.LineStart(row)
	}
	col := colForCell(doc.Line(row), m.xOffset+tx, m.cfg.TabWidth)
	return doc.LineStart(row) + col
}

// OffsetToScreen maps a document offset to component-local cell coordinates.
//
// ok is false when the offset is scrolled out of view.
func (m Model) OffsetToScreen(offset int) (x, y int, ok bool) {
	doc := m.buf.Document()
	ox, oy := m.containerOrigin()

	p := doc.PosAt(offset)
	cell := cellForCol(doc.Line(p.Row), p.Col, m.cfg.TabWidth)

	vy := p.Row - m.input.YOffset
	vx := cell - m.xOffset
	x = vx + ox + m.gutterWidth()
	y = vy + oy

	if m.input.Height > 0 && (vy < 0 || vy >= m.input.Height) {
		return x, y, false
	}
	if m.input.Width > 0 && (vx < 0 || vx >= m.input.Width) {
		return x, y, false
	}
	return x, y, true
}

func (m Model) mouseInBounds(x, y int) bool {
	ox, oy := m.containerOrigin()
	w := m.gutterWidth() + m.input.Width
	h := m.input.Height
	if w <= 0 || h <= 0 {
		return false
	}
	return x >= ox && x < ox+w && y >= oy && y < oy+h
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	ox, oy := m.containerOrigin()
	w := m.gutterWidth() + m.input.Width
	h := m.input.Height
	if w > 0 {
		x = clampInt(x, ox, ox+w-1)
	}
	if h > 0 {
		y = clampInt(y, oy, oy+h-1)
	}
	return x, y
}
