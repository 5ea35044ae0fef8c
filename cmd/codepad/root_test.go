package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/codepad"
	"github.com/iw2rmb/codepad/highlight"
	"github.com/iw2rmb/codepad/internal/config"
)

// execute runs the CLI with an isolated home directory and a config path that
// does not exist, so only defaults, env and flags apply.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if !containsFlag(args, "--config") {
		args = append([]string{"--config", cfgPath}, args...)
	}

	cmd := newRootCmd("dev")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func containsFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag || strings.HasPrefix(a, flag+"=") {
			return true
		}
	}
	return false
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "", "--version")
	require.NoError(t, err)
	require.Contains(t, out, codepad.Version())
}

func TestLanguagesCommand(t *testing.T) {
	out, err := execute(t, "", "languages")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(highlight.Languages()))
	require.Contains(t, out, "javascript  cjs, js, jsx, mjs\n")
	require.Contains(t, out, "python      py, python3, pyw\n")
}

func TestHighlightCommand_Stdin(t *testing.T) {
	out, err := execute(t, "# hi\nx = 1", "highlight", "--lang", "py")
	require.NoError(t, err)
	require.Contains(t, out, `<span class="token comment"># hi</span>`)
	require.Contains(t, out, `x = <span class="token number">1</span>`)
	require.True(t, strings.HasSuffix(out, "\n"))
}

func TestHighlightCommand_FileExtensionAndCSS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.ts")
	require.NoError(t, os.WriteFile(path, []byte("let a = 1"), 0o644))

	out, err := execute(t, "", "highlight", "--css", path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "<style>\n.codepad { color: #d4d4d4;"))
	require.Contains(t, out, ".codepad .token.keyword {")
	require.Contains(t, out, `<pre class="codepad"><code class="language-typescript"><span class="token keyword">let</span>`)
}

func TestHighlightCommand_Page(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("a < b"), 0o644))

	out, err := execute(t, "", "highlight", "--page", "--theme", "light", path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	require.Contains(t, out, "<title>notes.txt</title>")
	require.Contains(t, out, highlight.Light.CSS())
	// Unknown extensions use editor.language.
	require.Contains(t, out, `<code class="language-javascript">a &lt; b</code>`)
}

func TestHighlightCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "", "highlight", filepath.Join(t.TempDir(), "nope.js"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading input")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codepad", "config.yaml")

	out, err := execute(t, "", "config", "init", path)
	require.NoError(t, err)
	require.Contains(t, out, "wrote "+path)
	require.FileExists(t, path)

	_, err = execute(t, "", "config", "init", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "", "config", "init", "--force", path)
	require.NoError(t, err)
}

func TestConfigShow_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor:\n  theme: light\n  tab_width: 2\n"), 0o600))

	out, err := execute(t, "", "--config", path, "config", "show")
	require.NoError(t, err)
	require.Contains(t, out, "theme: light")
	require.Contains(t, out, "tab_width: 2")

	t.Setenv("CODEPAD_EDITOR_TAB_WIDTH", "8")
	out, err = execute(t, "", "--config", path, "config", "show")
	require.NoError(t, err)
	require.Contains(t, out, "tab_width: 8")

	out, err = execute(t, "", "--config", path, "--tab-width", "3", "--theme", "dark", "config", "show")
	require.NoError(t, err)
	require.Contains(t, out, "tab_width: 3")
	require.Contains(t, out, "theme: dark")
}

func TestInvalidConfigFails(t *testing.T) {
	_, err := execute(t, "", "--tab-width", "99", "languages")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid configuration")
}

func TestRootOptions_Language(t *testing.T) {
	opts := &rootOptions{cfg: config.Defaults()}
	reg := highlight.NewDefaultRegistry()

	require.Equal(t, "python", opts.language(reg, "script.py"))
	require.Equal(t, "css", opts.language(reg, "site.SCSS"))
	require.Equal(t, "javascript", opts.language(reg, "README"))

	opts.cfg.Editor.Language = "html"
	require.Equal(t, "html", opts.language(reg, "notes.txt"))

	opts.lang = "ts"
	require.Equal(t, "ts", opts.language(reg, "script.py"))
}
