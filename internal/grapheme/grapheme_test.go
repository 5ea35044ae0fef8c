package grapheme

import (
	"reflect"
	"testing"
)

func TestRuneWidths_TabUsesTabStops(t *testing.T) {
	got := RuneWidths("a\tb", 4)
	want := []int{1, 3, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("widths=%v, want %v", got, want)
	}

	got = RuneWidths("\t\t", 2)
	want = []int{2, 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("widths=%v, want %v", got, want)
	}
}

func TestRuneWidths_ClusterWidthOnFirstRune(t *testing.T) {
	got := RuneWidths("e\u0301x", 4)
	want := []int{1, 0, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("widths=%v, want %v", got, want)
	}

	if w := Width("界x", 4); w != 3 {
		t.Fatalf("width=%d, want %d", w, 3)
	}
}

func TestTabAdvance_DefaultsNonPositiveWidth(t *testing.T) {
	if got := TabAdvance(1, 0); got != DefaultTabWidth-1 {
		t.Fatalf("advance=%d, want %d", got, DefaultTabWidth-1)
	}
	if got := TabAdvance(4, 4); got != 4 {
		t.Fatalf("advance=%d, want %d", got, 4)
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace('\t') {
		t.Fatalf("tab should be space")
	}
	if IsSpace('a') {
		t.Fatalf("letter should not be space")
	}
	if !IsPunct('!') || !IsPunct('=') {
		t.Fatalf("punctuation and symbols should be punct")
	}
	if IsPunct('a') {
		t.Fatalf("letter should not be punct")
	}
}
