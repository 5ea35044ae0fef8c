package highlight

import "strings"

var (
	escaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	unescaper = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	)
)

// Escape replaces the five HTML-significant characters in a single
// left-to-right pass. Already escaped entities are escaped again.
func Escape(s string) string { return escaper.Replace(s) }

// Unescape inverts Escape. Entities Escape never produces are left alone.
func Unescape(s string) string { return unescaper.Replace(s) }
