package editor

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func BenchmarkCaretMove(b *testing.B) {
	for _, lines := range []int{100, 1000, 3000} {
		doc := benchmarkDoc(lines)

		b.Run(fmt.Sprintf("javascript/lines=%d", lines), func(b *testing.B) {
			m := New(Config{Text: doc, Language: "javascript", ShowLineNumbers: true})
			m = m.SetSize(160, 40)
			benchmarkCaretPingPong(b, m)
		})

		b.Run(fmt.Sprintf("python/lines=%d", lines), func(b *testing.B) {
			m := New(Config{Text: doc, Language: "python", ShowLineNumbers: true})
			m = m.SetSize(160, 40)
			benchmarkCaretPingPong(b, m)
		})
	}
}

// BenchmarkTyping re-tokenizes the whole document on every keystroke.
func BenchmarkTyping(b *testing.B) {
	for _, lines := range []int{100, 1000} {
		doc := benchmarkDoc(lines)

		b.Run(fmt.Sprintf("lines=%d", lines), func(b *testing.B) {
			m := New(Config{Text: doc, Language: "javascript"})
			m = m.SetSize(160, 40)
			typeX := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}
			back := tea.KeyMsg{Type: tea.KeyBackspace}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if i%2 == 0 {
					m, _ = m.Update(typeX)
				} else {
					m, _ = m.Update(back)
				}
			}
		})
	}
}

func benchmarkCaretPingPong(b *testing.B, m Model) {
	right := tea.KeyMsg{Type: tea.KeyRight}
	left := tea.KeyMsg{Type: tea.KeyLeft}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			m, _ = m.Update(right)
		} else {
			m, _ = m.Update(left)
		}
	}
}

func benchmarkDoc(lines int) string {
	if lines <= 0 {
		return ""
	}
	const line = `const url = "https://github.com/charmbracelet/bubbletea"; // 42 tokens`
	return strings.TrimSuffix(strings.Repeat(line+"\n", lines), "\n")
}
