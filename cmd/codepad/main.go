// Command codepad edits and highlights source files in the terminal.
package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// version is stamped by the release build with -ldflags "-X main.version=...".
var version = "dev"

func init() {
	// Query the terminal background before any Bubble Tea program starts so
	// the OSC 11 reply does not race the input loop.
	_ = lipgloss.HasDarkBackground()
}

func main() {
	if err := newRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
