package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/codepad/internal/log"
)

const fileHeader = `# codepad configuration
#
# Every key can be overridden with an environment variable prefixed with
# CODEPAD_, e.g. CODEPAD_EDITOR_THEME=light.
`

// fileConfig mirrors Config for writing: durations are spelled out ("200ms")
// instead of being encoded as nanoseconds.
type fileConfig struct {
	Editor struct {
		Language        string `yaml:"language"`
		Theme           string `yaml:"theme"`
		TabWidth        int    `yaml:"tab_width"`
		ShowLineNumbers bool   `yaml:"show_line_numbers"`
		ShowStatus      bool   `yaml:"show_status"`
		HistoryLimit    int    `yaml:"history_limit"`
		ScrollPolicy    string `yaml:"scroll_policy"`
		Height          int    `yaml:"height"`
	} `yaml:"editor"`
	Highlight struct {
		MatchTimeout string `yaml:"match_timeout"`
		CacheTTL     string `yaml:"cache_ttl"`
	} `yaml:"highlight"`
	Watch struct {
		Debounce string `yaml:"debounce"`
	} `yaml:"watch"`
	Log struct {
		File  string `yaml:"file"`
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func toFile(c Config) fileConfig {
	var f fileConfig
	f.Editor.Language = c.Editor.Language
	f.Editor.Theme = c.Editor.Theme
	f.Editor.TabWidth = c.Editor.TabWidth
	f.Editor.ShowLineNumbers = c.Editor.ShowLineNumbers
	f.Editor.ShowStatus = c.Editor.ShowStatus
	f.Editor.HistoryLimit = c.Editor.HistoryLimit
	f.Editor.ScrollPolicy = c.Editor.ScrollPolicy
	f.Editor.Height = c.Editor.Height
	f.Highlight.MatchTimeout = c.Highlight.MatchTimeout.String()
	f.Highlight.CacheTTL = c.Highlight.CacheTTL.String()
	f.Watch.Debounce = c.Watch.Debounce.String()
	f.Log.File = c.Log.File
	f.Log.Level = c.Log.Level
	return f
}

// Marshal encodes c as YAML in the config file layout.
func Marshal(c Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(fileHeader)
	buf.WriteString("\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toFile(c)); err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDefault creates a config file at path with default settings.
// Creates the parent directory if it doesn't exist; an existing file is
// replaced atomically.
func WriteDefault(path string) error {
	log.Debug(log.CatConfig, "writing default config", "path", path)

	data, err := Marshal(Defaults())
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".codepad.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	log.Info(log.CatConfig, "created default config", "path", path)
	return nil
}
