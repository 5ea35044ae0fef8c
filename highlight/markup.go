package highlight

import (
	"strings"
	"unicode/utf8"
)

// Render escapes text and wraps every span in a token element.
//
// spans must be sorted and non-overlapping, as Tokenize returns them. Text
// outside spans is escaped and emitted as is. Span offsets count runes; an
// invalid UTF-8 byte counts as one rune and is copied through unchanged.
func Render(text string, spans []Span) string {
	if text == "" {
		return ""
	}
	if len(spans) == 0 {
		return Escape(text)
	}

	at := runeStarts(text)
	n := len(at) - 1
	var b strings.Builder
	b.Grow(len(text) + len(spans)*32)

	pos := 0
	for _, sp := range spans {
		start := clamp(sp.Start, pos, n)
		end := clamp(sp.End, start, n)
		if start == end {
			continue
		}
		b.WriteString(Escape(text[at[pos]:at[start]]))
		b.WriteString(`<span class="token `)
		b.WriteString(string(sp.Class))
		b.WriteString(`">`)
		b.WriteString(Escape(text[at[start]:at[end]]))
		b.WriteString(`</span>`)
		pos = end
	}
	b.WriteString(Escape(text[at[pos]:]))
	return b.String()
}

// runeStarts returns the byte offset of every rune in text followed by
// len(text).
func runeStarts(text string) []int {
	at := make([]int, 0, utf8.RuneCountInString(text)+1)
	for i := 0; i < len(text); {
		at = append(at, i)
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return append(at, len(text))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
