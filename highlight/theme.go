package highlight

import (
	"fmt"
	"sort"
	"strings"
)

// Theme maps token classes to hex colors. The highlighter never consults it;
// renderers do.
type Theme struct {
	Name       string
	Foreground string
	Background string
	Colors     map[Class]string

	// Italic lists classes rendered in italics.
	Italic []Class
}

var (
	Dark = Theme{
		Name:       "dark",
		Foreground: "#d4d4d4",
		Background: "#1e1e1e",
		Colors: map[Class]string{
			ClassComment:   "#6a9955",
			ClassString:    "#ce9178",
			ClassKeyword:   "#569cd6",
			ClassConstant:  "#4fc1ff",
			ClassNumber:    "#b5cea8",
			ClassType:      "#4ec9b0",
			ClassTag:       "#569cd6",
			ClassAttribute: "#9cdcfe",
			ClassSelector:  "#d7ba7d",
			ClassProperty:  "#9cdcfe",
		},
		Italic: []Class{ClassComment},
	}

	Light = Theme{
		Name:       "light",
		Foreground: "#24292e",
		Background: "#ffffff",
		Colors: map[Class]string{
			ClassComment:   "#6a737d",
			ClassString:    "#032f62",
			ClassKeyword:   "#d73a49",
			ClassConstant:  "#005cc5",
			ClassNumber:    "#005cc5",
			ClassType:      "#6f42c1",
			ClassTag:       "#22863a",
			ClassAttribute: "#6f42c1",
			ClassSelector:  "#6f42c1",
			ClassProperty:  "#005cc5",
		},
		Italic: []Class{ClassComment},
	}
)

var themes = map[string]Theme{
	Dark.Name:  Dark,
	Light.Name: Light,
}

// ThemeByName returns the named theme, or Dark for unknown names.
func ThemeByName(name string) Theme {
	if t, ok := themes[normalizeName(name)]; ok {
		return t
	}
	return Dark
}

// Themes lists the built-in theme names.
func Themes() []string {
	out := make([]string, 0, len(themes))
	for name := range themes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Color returns the color for c, or the foreground when c has none.
func (t Theme) Color(c Class) string {
	if col, ok := t.Colors[c]; ok && col != "" {
		return col
	}
	return t.Foreground
}

func (t Theme) IsItalic(c Class) bool {
	for _, k := range t.Italic {
		if k == c {
			return true
		}
	}
	return false
}

// CSS returns a stylesheet for markup produced by Render, scoped to the
// .codepad container.
func (t Theme) CSS() string {
	var b strings.Builder
	fmt.Fprintf(&b, ".codepad { color: %s; background: %s; }\n", t.Foreground, t.Background)
	for _, c := range allClasses {
		fmt.Fprintf(&b, ".codepad .token.%s { color: %s;", c, t.Color(c))
		if t.IsItalic(c) {
			b.WriteString(" font-style: italic;")
		}
		b.WriteString(" }\n")
	}
	return b.String()
}
