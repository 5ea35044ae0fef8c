package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/codepad/editor"
	"github.com/iw2rmb/codepad/internal/config"
)

func TestApp_TabTypeAndQuit(t *testing.T) {
	var changes []string
	m := newAppModel("", editor.Config{
		Text:     "abc",
		OnChange: func(text string) { changes = append(changes, text) },
	})

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(40, 10))
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("x")
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlQ})

	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(appModel)
	require.Equal(t, "  xabc", final.editor.Text())
	require.Equal(t, []string{"  abc", "  xabc"}, changes)
}

func TestApp_FooterAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.js")
	m := newAppModel(path, editor.Config{Text: "let a", ReadOnly: true})

	require.Contains(t, m.View(), "main.js · javascript · read-only · ctrl+q quit")

	next, _ := m.Update(fileChangedMsg{text: "let b"})
	require.Equal(t, "let b", next.(appModel).editor.Text())
	require.Contains(t, next.View(), "reloaded 1×")
	require.NoFileExists(t, path)
}

func TestApp_WindowSizeLeavesRoomForFooter(t *testing.T) {
	m := newAppModel("", editor.Config{Text: "a\nb\nc\nd\ne\nf"})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 4})

	require.Equal(t, 3, next.(appModel).editor.ScrollState().VisibleRows)
}

func TestEditorConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.Editor.ScrollPolicy = config.ScrollFollow
	cfg.Editor.TabWidth = 2

	ec := editorConfig(cfg, &editOptions{noLineNumbers: true, readOnly: true})
	require.Equal(t, editor.ScrollFollowCursorOnly, ec.ScrollPolicy)
	require.Equal(t, 2, ec.TabWidth)
	require.False(t, ec.ShowLineNumbers)
	require.True(t, ec.ShowStatus)
	require.True(t, ec.ReadOnly)
	require.Equal(t, "dark", ec.Theme)
}

func TestReadSource(t *testing.T) {
	dir := t.TempDir()

	text, err := readSource(filepath.Join(dir, "new.py"))
	require.NoError(t, err)
	require.Empty(t, text)

	path := filepath.Join(dir, "old.py")
	require.NoError(t, os.WriteFile(path, []byte("pass"), 0o644))
	text, err = readSource(path)
	require.NoError(t, err)
	require.Equal(t, "pass", text)

	_, err = readSource(dir)
	require.Error(t, err)
}

func TestWatchFile_SendsChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.css")
	require.NoError(t, os.WriteFile(path, []byte("a {}"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs := make(chan tea.Msg, 4)
	require.NoError(t, watchFile(ctx, path, 20*time.Millisecond, func(msg tea.Msg) { msgs <- msg }))

	require.NoError(t, os.WriteFile(path, []byte("b { color: red; }"), 0o644))

	select {
	case msg := <-msgs:
		require.Equal(t, fileChangedMsg{text: "b { color: red; }"}, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a reset after the file changed")
	}
}
