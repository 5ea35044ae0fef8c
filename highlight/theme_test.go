package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThemeByName(t *testing.T) {
	require.Equal(t, "light", ThemeByName(" Light ").Name)
	require.Equal(t, "dark", ThemeByName("solarized").Name)
	require.Equal(t, []string{"dark", "light"}, Themes())
}

func TestTheme_ColorFallsBackToForeground(t *testing.T) {
	th := Theme{Foreground: "#111111", Colors: map[Class]string{ClassKeyword: "#222222"}}
	require.Equal(t, "#222222", th.Color(ClassKeyword))
	require.Equal(t, "#111111", th.Color(ClassString))
}

func TestTheme_CSS(t *testing.T) {
	css := Dark.CSS()
	require.True(t, strings.HasPrefix(css, ".codepad { color: #d4d4d4; background: #1e1e1e; }\n"))
	require.Contains(t, css, ".codepad .token.keyword { color: #569cd6; }\n")
	require.Contains(t, css, ".codepad .token.comment { color: #6a9955; font-style: italic; }\n")
	for _, c := range Classes() {
		require.Contains(t, css, ".token."+string(c)+" ")
	}
}
