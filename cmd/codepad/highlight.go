package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/codepad/highlight"
)

type highlightOptions struct {
	css  bool
	page bool
}

func newHighlightCmd(root *rootOptions) *cobra.Command {
	o := &highlightOptions{}
	cmd := &cobra.Command{
		Use:   "highlight [file]",
		Short: "Write highlighted HTML markup for a file (or stdin)",
		Long: `highlight tokenizes a file and writes <span class="token CLASS"> markup to
stdout. Read from stdin when the file is omitted or "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHighlight(cmd, root, o, args)
		},
	}
	cmd.Flags().BoolVar(&o.css, "css", false, "prepend the theme stylesheet and wrap the markup in <pre class=\"codepad\">")
	cmd.Flags().BoolVar(&o.page, "page", false, "write a standalone HTML page")
	return cmd
}

func runHighlight(cmd *cobra.Command, root *rootOptions, o *highlightOptions, args []string) error {
	path := ""
	if len(args) == 1 && args[0] != "-" {
		path = args[0]
	}

	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	reg := root.registry()
	h := highlight.New(highlight.Options{Registry: reg, Expiration: -1})
	lang := reg.Resolve(root.language(reg, path)).Name
	markup := h.Highlight(string(data), lang)

	theme := highlight.ThemeByName(root.cfg.Editor.Theme)
	out := cmd.OutOrStdout()
	switch {
	case o.page:
		title := "codepad"
		if path != "" {
			title = filepath.Base(path)
		}
		_, err = fmt.Fprintf(out, pageTemplate, highlight.Escape(title), theme.CSS(), lang, markup)
	case o.css:
		_, err = fmt.Fprintf(out, "<style>\n%s</style>\n%s\n", theme.CSS(), preBlock(lang, markup))
	default:
		_, err = io.WriteString(out, markup)
		if err == nil && !strings.HasSuffix(markup, "\n") {
			_, err = io.WriteString(out, "\n")
		}
	}
	return err
}

func preBlock(lang, markup string) string {
	return fmt.Sprintf(`<pre class="codepad"><code class="language-%s">%s</code></pre>`, lang, markup)
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { margin: 0; }
pre.codepad { margin: 0; padding: 1em; min-height: 100vh; box-sizing: border-box; }
%s</style>
</head>
<body>
<pre class="codepad"><code class="language-%s">%s</code></pre>
</body>
</html>
`
