package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLog_FormatsLevelCategoryAndFields(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf, LevelDebug)
	defer cleanup()

	Info(CatHighlight, "rule skipped", "lang", "css", "rule", 3)

	out := buf.String()
	require.Contains(t, out, "[INFO] [highlight] rule skipped lang=css rule=3")
	require.Equal(t, byte('\n'), out[len(out)-1])
}

func TestLog_RespectsMinLevelAndEnabled(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf, LevelWarn)
	defer cleanup()

	Debug(CatEditor, "hidden")
	Info(CatEditor, "hidden")
	require.Empty(t, buf.String())

	Warn(CatEditor, "shown")
	require.Contains(t, buf.String(), "[WARN] [editor] shown")

	buf.Reset()
	SetEnabled(false)
	Error(CatEditor, "muted")
	require.Empty(t, buf.String())
}

func TestLog_OddFieldsAndErrors(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf, LevelDebug)
	defer cleanup()

	Debug(CatBuffer, "odd", "orphan")
	require.Contains(t, buf.String(), "orphan=<missing>")

	buf.Reset()
	ErrorErr(CatConfig, "load failed", errors.New("boom"))
	require.Contains(t, buf.String(), "error=boom")
}

func TestLog_NoLoggerIsSilent(t *testing.T) {
	defaultLogger = nil
	Info(CatCLI, "nobody listens")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, LevelWarn, ParseLevel("warning"))
	require.Equal(t, LevelError, ParseLevel(" error "))
	require.Equal(t, LevelInfo, ParseLevel("chatty"))
}
