package buffer

// Pos points into the document by (row, col) in runes.
// Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

// Range is a half-open selection in document offsets: [Start, End).
type Range struct {
	Start int
	End   int
}

func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

// NormalizeRange orders r so that Start <= End.
func NormalizeRange(r Range) Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool { return r.Start == r.End }

func (r Range) Len() int {
	n := NormalizeRange(r)
	return n.End - n.Start
}

// Contains reports whether offset lies in [Start, End).
func (r Range) Contains(offset int) bool {
	n := NormalizeRange(r)
	return offset >= n.Start && offset < n.End
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampOffset clamps off into [0, length].
func ClampOffset(off, length int) int {
	return clampInt(off, 0, length)
}

// ClampRange clamps both ends into [0, length] and normalizes the result.
func ClampRange(r Range, length int) Range {
	return NormalizeRange(Range{
		Start: ClampOffset(r.Start, length),
		End:   ClampOffset(r.End, length),
	})
}
