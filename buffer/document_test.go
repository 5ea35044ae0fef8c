package buffer

import (
	"reflect"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestDocument_ZeroValueIsEmptySingleLine(t *testing.T) {
	var d Document
	if d.Len() != 0 || !d.IsEmpty() {
		t.Fatalf("zero document: len=%d empty=%v", d.Len(), d.IsEmpty())
	}
	if got := d.LineCount(); got != 1 {
		t.Fatalf("line count=%d, want 1", got)
	}
	if got := d.LineIndex(); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("line index=%v, want [1]", got)
	}
	if got := d.Line(0); got != "" {
		t.Fatalf("line 0=%q, want empty", got)
	}
}

func TestDocument_LinesAndBounds(t *testing.T) {
	d := NewDocument("ab\n\nπx\n")

	if got, want := d.LineCount(), 4; got != want {
		t.Fatalf("line count=%d, want %d", got, want)
	}
	wantLines := []string{"ab", "", "πx", ""}
	for row, want := range wantLines {
		if got := d.Line(row); got != want {
			t.Fatalf("line %d=%q, want %q", row, got, want)
		}
	}
	if got, want := d.LineStart(2), 4; got != want {
		t.Fatalf("line start 2=%d, want %d", got, want)
	}
	if got, want := d.LineEnd(2), 6; got != want {
		t.Fatalf("line end 2=%d, want %d", got, want)
	}
	if got, want := d.LineLen(2), 2; got != want {
		t.Fatalf("line len 2=%d, want %d", got, want)
	}
	if got := d.Line(9); got != "" {
		t.Fatalf("out of range line=%q, want empty", got)
	}
	if got, want := d.Slice(-3, 2), "ab"; got != want {
		t.Fatalf("slice=%q, want %q", got, want)
	}
	if got, want := d.Slice(7, 4), "πx\n"; got != want {
		t.Fatalf("reversed slice=%q, want %q", got, want)
	}
}

func TestDocument_LineCountProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-z\n\t ]{0,40}`).Draw(t, "text")
		d := NewDocument(text)

		want := strings.Count(text, "\n") + 1
		if d.LineCount() != want {
			t.Fatalf("line count=%d, want %d", d.LineCount(), want)
		}

		idx := d.LineIndex()
		if len(idx) != want {
			t.Fatalf("line index len=%d, want %d", len(idx), want)
		}
		for i, n := range idx {
			if n != i+1 {
				t.Fatalf("line index[%d]=%d, want %d", i, n, i+1)
			}
		}
	})
}

func TestDocument_InvalidUTF8KeepsBytes(t *testing.T) {
	text := "a\xff\nb\x80c"
	d := NewDocument(text)

	if got := d.Len(); got != 6 {
		t.Fatalf("len=%d, want 6", got)
	}
	if got := d.Line(0); got != "a\xff" {
		t.Fatalf("line 0=%q, want %q", got, "a\xff")
	}
	if got := d.Slice(3, 6); got != "b\x80c" {
		t.Fatalf("slice=%q, want %q", got, "b\x80c")
	}
	if got, want := d.ByteOffset(5), 5; got != want {
		t.Fatalf("ByteOffset=%d, want %d", got, want)
	}
	if off, ok := d.RuneOffset(4); !ok || off != 4 {
		t.Fatalf("RuneOffset(4)=(%d,%v), want (4,true)", off, ok)
	}

	e := InsertText(d, Range{Start: 6, End: 6}, "!")
	if want := "a\xff\nb\x80c!"; e.Text != want {
		t.Fatalf("insert rewrote bytes: %q, want %q", e.Text, want)
	}
	e = DeleteBackward(d, Range{Start: 1, End: 1})
	if want := "\xff\nb\x80c"; e.Text != want {
		t.Fatalf("backspace=%q, want %q", e.Text, want)
	}
}

func TestDocument_ArbitraryBytesSurviveEdits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := string(rapid.SliceOfN(rapid.Byte(), 0, 40).Draw(t, "bytes"))
		d := NewDocument(text)
		off := rapid.IntRange(0, d.Len()).Draw(t, "offset")

		e := InsertText(d, Range{Start: off, End: off}, "")
		if e.Text != text {
			t.Fatalf("empty insert changed %q to %q", text, e.Text)
		}
		if got := d.Slice(0, off) + d.Slice(off, d.Len()); got != text {
			t.Fatalf("slices joined=%q, want %q", got, text)
		}
	})
}
