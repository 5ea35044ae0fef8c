package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/codepad"
	"github.com/iw2rmb/codepad/highlight"
	"github.com/iw2rmb/codepad/internal/config"
	"github.com/iw2rmb/codepad/internal/log"
)

const localConfigPath = ".codepad/config.yaml"

// rootOptions is shared by every subcommand. cfg is filled in by the
// persistent pre-run hook.
type rootOptions struct {
	cfgFile string
	lang    string

	vp       *viper.Viper
	cfg      config.Config
	closeLog func()
}

func newRootCmd(stamped string) *cobra.Command {
	opts := &rootOptions{vp: viper.New()}
	edit := &editOptions{}

	root := &cobra.Command{
		Use:   "codepad [file]",
		Short: "A terminal code editor with syntax highlighting",
		Long: `codepad opens a file in a terminal editor that highlights JavaScript,
TypeScript, Python, HTML and CSS. Tab inserts two spaces and ctrl+q quits.
The file is never written; use --print to get the final text on stdout.`,
		Version:      codepad.BuildVersion(stamped),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.closeLog != nil {
				opts.closeLog()
				opts.closeLog = nil
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, opts, edit, args)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.cfgFile, "config", "c", "",
		"config file (default: "+localConfigPath+", then ~/.config/codepad/config.yaml)")
	pf.Bool("debug", false, "write a debug log to log.file")
	pf.StringVarP(&opts.lang, "lang", "l", "",
		"language id or alias (default: from the file extension, then editor.language)")
	pf.String("theme", "", "color theme: "+strings.Join(highlight.Themes(), ", "))
	pf.Int("tab-width", 0, "cells per tab stop")

	_ = opts.vp.BindPFlag("debug", pf.Lookup("debug"))
	_ = opts.vp.BindPFlag("editor.theme", pf.Lookup("theme"))
	_ = opts.vp.BindPFlag("editor.tab_width", pf.Lookup("tab-width"))

	addEditFlags(root, edit)

	root.AddCommand(
		newEditCmd(opts),
		newHighlightCmd(opts),
		newLanguagesCmd(opts),
		newConfigCmd(opts),
	)
	return root
}

// load resolves the config file, environment and flags into opts.cfg and
// starts the debug log when requested.
func (o *rootOptions) load() error {
	vp := o.vp
	vp.SetEnvPrefix("CODEPAD")
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	// Lookup order: --config, .codepad/config.yaml, ~/.config/codepad/config.yaml.
	switch {
	case o.cfgFile != "":
		vp.SetConfigFile(o.cfgFile)
	case fileExists(localConfigPath):
		vp.SetConfigFile(localConfigPath)
	default:
		vp.AddConfigPath(filepath.Dir(config.DefaultPath()))
		vp.SetConfigName("config")
		vp.SetConfigType("yaml")
	}

	cfg, err := config.Load(vp)
	if err != nil {
		return err
	}
	o.cfg = cfg

	if vp.GetBool("debug") {
		closeLog, err := log.Init(cfg.Log.File)
		if err != nil {
			return err
		}
		log.SetMinLevel(log.ParseLevel(cfg.Log.Level))
		o.closeLog = closeLog
		log.Info(log.CatCLI, "started", "version", codepad.Version(), "config", vp.ConfigFileUsed())
	}
	return nil
}

// registry returns the default language registry with the configured match
// timeout.
func (o *rootOptions) registry() *highlight.Registry {
	reg := highlight.NewDefaultRegistry()
	reg.SetMatchTimeout(o.cfg.Highlight.MatchTimeout)
	return reg
}

// language picks the profile for path: --lang, then the file extension, then
// editor.language.
func (o *rootOptions) language(reg *highlight.Registry, path string) string {
	if o.lang != "" {
		return o.lang
	}
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		if p, ok := reg.Lookup(ext); ok {
			return p.Name
		}
	}
	return o.cfg.Editor.Language
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
