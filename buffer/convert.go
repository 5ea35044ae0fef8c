package buffer

import "sort"

// PosAt converts a rune offset to a 0-based (row, col) position.
func (d Document) PosAt(offset int) Pos {
	offset = ClampOffset(offset, d.Len())
	row := d.rowOf(offset)
	return Pos{Row: row, Col: offset - d.LineStart(row)}
}

// OffsetAt converts p to a rune offset, clamping p into document bounds.
func (d Document) OffsetAt(p Pos) int {
	row := clampInt(p.Row, 0, d.LineCount()-1)
	col := clampInt(p.Col, 0, d.LineLen(row))
	return d.LineStart(row) + col
}

// ClampPos clamps p into document bounds.
func (d Document) ClampPos(p Pos) Pos {
	return d.PosAt(d.OffsetAt(p))
}

// ByteOffset converts a rune offset to a byte offset into Text().
func (d Document) ByteOffset(runeOffset int) int {
	return d.byteAt(ClampOffset(runeOffset, d.Len()))
}

// RuneOffset converts a byte offset into Text() to a rune offset.
//
// ok is false when byteOffset is out of range or splits a UTF-8 sequence.
func (d Document) RuneOffset(byteOffset int) (int, bool) {
	if byteOffset < 0 || byteOffset > len(d.text) {
		return 0, false
	}
	if len(d.byteStarts) == 0 {
		return 0, true
	}
	i := sort.SearchInts(d.byteStarts, byteOffset)
	return i, d.byteStarts[i] == byteOffset
}
