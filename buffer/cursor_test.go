package buffer

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestCursorAt_EmptyDocument(t *testing.T) {
	if got, want := CursorAt(NewDocument(""), 0), (CursorPosition{Line: 1, Column: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got, want := CursorAt(NewDocument(""), 12), (CursorPosition{Line: 1, Column: 1}); got != want {
		t.Fatalf("cursor past end=%v, want %v", got, want)
	}
}

func TestCursorAt_LineStartsAndEnds(t *testing.T) {
	d := NewDocument("ab\ncd")
	cases := []struct {
		off  int
		want CursorPosition
	}{
		{off: 0, want: CursorPosition{Line: 1, Column: 1}},
		{off: 2, want: CursorPosition{Line: 1, Column: 3}},
		{off: 3, want: CursorPosition{Line: 2, Column: 1}},
		{off: 5, want: CursorPosition{Line: 2, Column: 3}},
		{off: -1, want: CursorPosition{Line: 1, Column: 1}},
	}
	for _, tc := range cases {
		if got := CursorAt(d, tc.off); got != tc.want {
			t.Fatalf("CursorAt(%d)=%v, want %v", tc.off, got, tc.want)
		}
	}
}

func TestCursorPosition_String(t *testing.T) {
	if got, want := (CursorPosition{Line: 3, Column: 7}).String(), "Ln 3, Col 7"; got != want {
		t.Fatalf("string=%q, want %q", got, want)
	}
}

// CursorAt must agree with counting line breaks before the offset and
// measuring from the last one.
func TestCursorAt_MatchesLineBreakFormula(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[ab\n]{0,30}`).Draw(t, "text")
		runes := []rune(text)
		off := rapid.IntRange(0, len(runes)).Draw(t, "offset")

		prefix := string(runes[:off])
		wantLine := 1 + strings.Count(prefix, "\n")
		wantCol := off - strings.LastIndex(prefix, "\n")

		got := CursorAt(NewDocument(text), off)
		if got.Line != wantLine || got.Column != wantCol {
			t.Fatalf("CursorAt(%q, %d)=%v, want (%d,%d)", text, off, got, wantLine, wantCol)
		}
		if got.Line < 1 || got.Column < 1 {
			t.Fatalf("cursor must be 1-based: %v", got)
		}
	})
}
