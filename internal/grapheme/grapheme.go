// Package grapheme lays out line text into terminal cells.
//
// Both editor surfaces use the same layout so that a caret placed by the input
// surface lands on the glyph drawn by the display surface.
package grapheme

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is used when a non-positive tab width is supplied.
const DefaultTabWidth = 4

// TabAdvance returns the number of cells a tab occupies when it starts at cell col.
func TabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	adv := tabWidth - col%tabWidth
	if adv < 1 {
		return 1
	}
	return adv
}

// RuneWidths returns the cell width of every rune in line.
//
// A grapheme cluster's width is attributed to its first rune; the remaining
// runes of the cluster get 0. Tabs expand to the next tab stop.
func RuneWidths(line string, tabWidth int) []int {
	if line == "" {
		return nil
	}
	out := make([]int, 0, len(line))
	col := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		runes := g.Runes()
		w := clusterWidth(g.Str(), col, tabWidth)
		out = append(out, w)
		for range runes[1:] {
			out = append(out, 0)
		}
		col += w
	}
	return out
}

// Width returns the total cell width of line.
func Width(line string, tabWidth int) int {
	total := 0
	for _, w := range RuneWidths(line, tabWidth) {
		total += w
	}
	return total
}

func clusterWidth(cluster string, col, tabWidth int) int {
	if cluster == "\t" {
		return TabAdvance(col, tabWidth)
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// IsSpace reports whether r is Unicode whitespace.
func IsSpace(r rune) bool { return unicode.IsSpace(r) }

// IsPunct reports whether r is punctuation or a symbol.
func IsPunct(r rune) bool { return unicode.IsPunct(r) || unicode.IsSymbol(r) }
