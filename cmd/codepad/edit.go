package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/codepad/editor"
	"github.com/iw2rmb/codepad/highlight"
	"github.com/iw2rmb/codepad/internal/config"
	"github.com/iw2rmb/codepad/internal/log"
	"github.com/iw2rmb/codepad/internal/watcher"
)

type editOptions struct {
	readOnly      bool
	height        int
	noLineNumbers bool
	watch         bool
	print         bool
}

func addEditFlags(cmd *cobra.Command, o *editOptions) {
	f := cmd.Flags()
	f.BoolVar(&o.readOnly, "read-only", false, "open without allowing edits")
	f.IntVar(&o.height, "height", 0, "visible rows (default: fill the terminal)")
	f.BoolVar(&o.noLineNumbers, "no-line-numbers", false, "hide the line number gutter")
	f.BoolVarP(&o.watch, "watch", "w", false, "reload the file when it changes on disk")
	f.BoolVarP(&o.print, "print", "p", false, "write the final text to stdout on exit")
}

func newEditCmd(root *rootOptions) *cobra.Command {
	o := &editOptions{}
	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit a file (the default command)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, root, o, args)
		},
	}
	addEditFlags(cmd, o)
	return cmd
}

func runEdit(cmd *cobra.Command, root *rootOptions, o *editOptions, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	if o.watch && path == "" {
		return errors.New("--watch needs a file argument")
	}

	text, err := readSource(path)
	if err != nil {
		return err
	}

	reg := root.registry()
	ecfg := editorConfig(root.cfg, o)
	ecfg.Text = text
	ecfg.Language = root.language(reg, path)
	ecfg.Highlighter = highlight.New(highlight.Options{Registry: reg, Expiration: root.cfg.Highlight.CacheTTL})
	ecfg.Clipboard = systemClipboard()
	if cmd.Flags().Changed("height") {
		ecfg.Height = o.height
	}

	model := newAppModel(path, ecfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if o.watch {
		if err := watchFile(ctx, path, root.cfg.Watch.Debounce, p.Send); err != nil {
			return err
		}
	}

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running editor: %w", err)
	}

	if o.print {
		if m, ok := final.(appModel); ok {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), m.editor.Text())
		}
	}
	return nil
}

// editorConfig maps the file configuration and edit flags onto the widget.
func editorConfig(cfg config.Config, o *editOptions) editor.Config {
	policy := editor.ScrollAllowManual
	if cfg.Editor.ScrollPolicy == config.ScrollFollow {
		policy = editor.ScrollFollowCursorOnly
	}
	return editor.Config{
		Theme:           cfg.Editor.Theme,
		TabWidth:        cfg.Editor.TabWidth,
		HistoryLimit:    cfg.Editor.HistoryLimit,
		Height:          cfg.Editor.Height,
		ShowLineNumbers: cfg.Editor.ShowLineNumbers && !o.noLineNumbers,
		ShowStatus:      cfg.Editor.ShowStatus,
		ReadOnly:        o.readOnly,
		ScrollPolicy:    policy,
	}
}

// readSource returns the contents of path. A missing file opens as a new,
// empty document.
func readSource(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info(log.CatCLI, "new file", "path", path)
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// watchFile sends a fileChangedMsg with the file's contents every time it
// changes on disk, until ctx is done.
func watchFile(ctx context.Context, path string, debounce time.Duration, send func(tea.Msg)) error {
	w, err := watcher.New(watcher.Config{Path: path, DebounceDur: debounce})
	if err != nil {
		return err
	}
	changes, err := w.Start()
	if err != nil {
		_ = w.Stop()
		return err
	}

	go func() {
		defer func() { _ = w.Stop() }()
		for {
			select {
			case <-ctx.Done():
				return
			case <-changes:
				data, err := os.ReadFile(path)
				if err != nil {
					log.ErrorErr(log.CatWatcher, "reload failed", err, "path", path)
					continue
				}
				log.Debug(log.CatWatcher, "file changed", "path", path, "bytes", len(data))
				send(fileChangedMsg{text: string(data)})
			}
		}
	}()
	return nil
}
