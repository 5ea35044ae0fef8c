package buffer

import "testing"

func TestHistory_UndoRedo(t *testing.T) {
	var calls []string
	b := New("a", Options{OnChange: func(text string) { calls = append(calls, text) }})

	b.Replace("ab", 2)
	b.Replace("abc", 3)

	if !b.Undo() {
		t.Fatalf("expected undo")
	}
	if b.Text() != "ab" || b.Caret() != 2 {
		t.Fatalf("after undo text=%q caret=%d", b.Text(), b.Caret())
	}
	if !b.CanRedo() {
		t.Fatalf("expected redo available")
	}

	if !b.Redo() {
		t.Fatalf("expected redo")
	}
	if b.Text() != "abc" {
		t.Fatalf("after redo text=%q", b.Text())
	}

	want := []string{"ab", "abc", "ab", "abc"}
	if len(calls) != len(want) {
		t.Fatalf("calls=%v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls[%d]=%q, want %q", i, calls[i], want[i])
		}
	}
}

func TestHistory_NewEditClearsRedo(t *testing.T) {
	b := New("", Options{})
	b.Replace("x", 1)
	b.Undo()
	b.Replace("y", 1)

	if b.CanRedo() {
		t.Fatalf("redo should be cleared by a new edit")
	}
}

func TestHistory_Limit(t *testing.T) {
	b := New("", Options{HistoryLimit: 2})
	b.Replace("1", 1)
	b.Replace("12", 2)
	b.Replace("123", 3)

	if !b.Undo() || !b.Undo() {
		t.Fatalf("expected two undo steps")
	}
	if b.Undo() {
		t.Fatalf("history limit not enforced")
	}
	if b.Text() != "1" {
		t.Fatalf("text=%q, want %q", b.Text(), "1")
	}
}

func TestHistory_DisabledByNegativeLimit(t *testing.T) {
	b := New("", Options{HistoryLimit: -1})
	b.Replace("x", 1)

	if b.CanUndo() || b.Undo() {
		t.Fatalf("undo should be disabled")
	}
}

func TestHistory_UndoOnEmptyIsNoop(t *testing.T) {
	calls := 0
	b := New("abc", Options{OnChange: func(string) { calls++ }})

	if b.Undo() || b.Redo() {
		t.Fatalf("expected no-op")
	}
	if calls != 0 {
		t.Fatalf("OnChange called %d times", calls)
	}
}
