package highlight

import (
	"sort"

	"github.com/iw2rmb/codepad/internal/log"
)

// tokenize applies the rules of cp to text in declaration order.
//
// claimed marks runes already owned by an accepted span. A match that touches a
// claimed rune is rejected and the scan for that rule resumes after the claimed
// run that blocked it.
func tokenize(cp *compiledProfile, text string) []Span {
	if cp == nil || text == "" {
		return nil
	}

	runes := []rune(text)
	claimed := make([]bool, len(runes))
	var spans []Span

	for i, rule := range cp.rules {
		pos := 0
		for pos < len(runes) {
			m, err := rule.re.FindRunesMatchStartingAt(runes, pos)
			if err != nil {
				log.Warn(log.CatHighlight, "rule skipped", "lang", cp.Name, "rule", i, "err", err)
				break
			}
			if m == nil {
				break
			}

			start, end := m.Index, m.Index+m.Length
			if end <= start {
				pos = start + 1
				continue
			}
			if b := firstClaimed(claimed, start, end); b >= 0 {
				pos = claimedRunEnd(claimed, b)
				continue
			}

			for j := start; j < end; j++ {
				claimed[j] = true
			}
			spans = append(spans, Span{Start: start, End: end, Class: rule.classOf(m)})
			pos = end
		}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans
}

func firstClaimed(claimed []bool, start, end int) int {
	for i := start; i < end; i++ {
		if claimed[i] {
			return i
		}
	}
	return -1
}

func claimedRunEnd(claimed []bool, i int) int {
	for i < len(claimed) && claimed[i] {
		i++
	}
	return i
}
