package main

import (
	"github.com/atotto/clipboard"

	"github.com/iw2rmb/codepad/editor"
)

// osClipboard adapts the system clipboard to editor.Clipboard.
type osClipboard struct{}

func (osClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (osClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

// systemClipboard returns nil when the platform has no clipboard utility, so
// the editor skips clipboard keys instead of logging an error per key press.
func systemClipboard() editor.Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return osClipboard{}
}
