// Package config provides configuration types and defaults for codepad.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/iw2rmb/codepad/highlight"
	"github.com/iw2rmb/codepad/internal/log"
)

// Config holds all configuration options for codepad.
type Config struct {
	Editor    EditorConfig    `mapstructure:"editor"`
	Highlight HighlightConfig `mapstructure:"highlight"`
	Watch     WatchConfig     `mapstructure:"watch"`
	Log       LogConfig       `mapstructure:"log"`
}

// EditorConfig holds editor widget options.
type EditorConfig struct {
	Language        string `mapstructure:"language"` // used when the file extension is unknown
	Theme           string `mapstructure:"theme"`    // "dark" (default) or "light"
	TabWidth        int    `mapstructure:"tab_width"`
	ShowLineNumbers bool   `mapstructure:"show_line_numbers"`
	ShowStatus      bool   `mapstructure:"show_status"`
	HistoryLimit    int    `mapstructure:"history_limit"` // negative disables undo
	ScrollPolicy    string `mapstructure:"scroll_policy"` // "manual" (default) or "follow"
	Height          int    `mapstructure:"height"`        // 0 fills the terminal
}

// HighlightConfig holds tokenizer options.
type HighlightConfig struct {
	MatchTimeout time.Duration `mapstructure:"match_timeout"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"` // negative disables the span cache
}

// WatchConfig holds options for --watch.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// LogConfig holds debug log options.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Scroll policy names.
const (
	ScrollManual = "manual"
	ScrollFollow = "follow"
)

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		Editor: EditorConfig{
			Language:        highlight.FallbackLanguage,
			Theme:           highlight.Dark.Name,
			TabWidth:        4,
			ShowLineNumbers: true,
			ShowStatus:      true,
			HistoryLimit:    1000,
			ScrollPolicy:    ScrollManual,
		},
		Highlight: HighlightConfig{
			MatchTimeout: highlight.DefaultMatchTimeout,
			CacheTTL:     5 * time.Minute,
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
		Log: LogConfig{
			File:  "debug.log",
			Level: "debug",
		},
	}
}

// SetDefaults registers Defaults() on v so that keys missing from the config
// file, environment and flags fall back to them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("editor.language", d.Editor.Language)
	v.SetDefault("editor.theme", d.Editor.Theme)
	v.SetDefault("editor.tab_width", d.Editor.TabWidth)
	v.SetDefault("editor.show_line_numbers", d.Editor.ShowLineNumbers)
	v.SetDefault("editor.show_status", d.Editor.ShowStatus)
	v.SetDefault("editor.history_limit", d.Editor.HistoryLimit)
	v.SetDefault("editor.scroll_policy", d.Editor.ScrollPolicy)
	v.SetDefault("editor.height", d.Editor.Height)
	v.SetDefault("highlight.match_timeout", d.Highlight.MatchTimeout)
	v.SetDefault("highlight.cache_ttl", d.Highlight.CacheTTL)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

// Load reads the config file configured on v (if any), applies defaults and
// validates the result. A missing config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		log.Debug(log.CatConfig, "no config file, using defaults")
	} else {
		log.Debug(log.CatConfig, "loaded config", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks option ranges. Unknown languages are accepted; the
// highlighter falls back to javascript for them.
func (c Config) Validate() error {
	var errs []error

	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		errs = append(errs, fmt.Errorf("editor.tab_width must be between 1 and 16, got %d", c.Editor.TabWidth))
	}
	if c.Editor.Height < 0 {
		errs = append(errs, fmt.Errorf("editor.height must not be negative, got %d", c.Editor.Height))
	}
	if theme := strings.ToLower(strings.TrimSpace(c.Editor.Theme)); theme != "" && !slices.Contains(highlight.Themes(), theme) {
		errs = append(errs, fmt.Errorf("editor.theme %q is not one of %s", c.Editor.Theme, strings.Join(highlight.Themes(), ", ")))
	}
	switch c.Editor.ScrollPolicy {
	case "", ScrollManual, ScrollFollow:
	default:
		errs = append(errs, fmt.Errorf("editor.scroll_policy must be %q or %q, got %q", ScrollManual, ScrollFollow, c.Editor.ScrollPolicy))
	}
	if c.Highlight.MatchTimeout < 0 {
		errs = append(errs, fmt.Errorf("highlight.match_timeout must not be negative, got %s", c.Highlight.MatchTimeout))
	}
	if c.Watch.Debounce < 0 {
		errs = append(errs, fmt.Errorf("watch.debounce must not be negative, got %s", c.Watch.Debounce))
	}

	return errors.Join(errs...)
}

// DefaultPath returns the user config location, ~/.config/codepad/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".codepad", "config.yaml")
	}
	return filepath.Join(home, ".config", "codepad", "config.yaml")
}
