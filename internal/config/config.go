package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultToggleHotkey = "K"

	minPanelWidth   = 240
	minPanelHeight  = 200
	minWindowWidth  = 640
	minWindowHeight = 480
)

type Config struct {
	ToggleHotkey string `yaml:"toggle_hotkey"`
	RosterFile   string `yaml:"roster_file"`
	WatchRoster  bool   `yaml:"watch_roster"`
	Panel        Size   `yaml:"panel"`
	Window       Size   `yaml:"window"`
	Log          Log    `yaml:"log"`
}

type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or console
	File   string `yaml:"file,omitempty"`
}

func Default() Config {
	return Config{
		ToggleHotkey: DefaultToggleHotkey,
		WatchRoster:  true,
		Panel:        Size{Width: 424, Height: 520},
		Window:       Size{Width: 1366, Height: 768},
		Log:          Log{Level: "info", Format: "json"},
	}
}

// Normalize fills blank fields and clamps sizes so a hand-edited file can't
// produce an unusable window.
func (c *Config) Normalize() {
	def := Default()
	c.ToggleHotkey = strings.TrimSpace(c.ToggleHotkey)
	if c.ToggleHotkey == "" {
		c.ToggleHotkey = def.ToggleHotkey
	}
	c.RosterFile = strings.TrimSpace(c.RosterFile)
	if c.Panel.Width <= 0 {
		c.Panel.Width = def.Panel.Width
	}
	if c.Panel.Height <= 0 {
		c.Panel.Height = def.Panel.Height
	}
	c.Panel.Width = max(c.Panel.Width, minPanelWidth)
	c.Panel.Height = max(c.Panel.Height, minPanelHeight)
	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	c.Window.Width = max(c.Window.Width, minWindowWidth)
	c.Window.Height = max(c.Window.Height, minWindowHeight)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if c.Log.Format != "console" {
		c.Log.Format = "json"
	}
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

func Save(path string, cfg Config) error {
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "config-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	cleanup = false
	return nil
}
