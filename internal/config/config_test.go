package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := Default()
	want.ToggleHotkey = "Shift+F"
	want.WatchRoster = false
	want.Panel = Size{Width: 500, Height: 600}
	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 permissions, got %v", info.Mode().Perm())
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("panel: [not, a, map"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestNormalizeClampsAndFills(t *testing.T) {
	cfg := Config{
		ToggleHotkey: "  ",
		Panel:        Size{Width: 10, Height: -1},
		Window:       Size{Width: 100, Height: 100},
		Log:          Log{Level: " DEBUG ", Format: "xml"},
	}
	cfg.Normalize()
	if cfg.ToggleHotkey != DefaultToggleHotkey {
		t.Fatalf("expected default hotkey, got %q", cfg.ToggleHotkey)
	}
	if cfg.Panel.Width != minPanelWidth || cfg.Panel.Height != 520 {
		t.Fatalf("unexpected panel size %+v", cfg.Panel)
	}
	if cfg.Window.Width != minWindowWidth || cfg.Window.Height != minWindowHeight {
		t.Fatalf("unexpected window size %+v", cfg.Window)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log config %+v", cfg.Log)
	}
}

func TestRosterPathResolution(t *testing.T) {
	tests := []struct {
		name       string
		rosterFile string
		configPath string
		want       string
	}{
		{name: "default beside config", configPath: "/etc/fl/config.yaml", want: "/etc/fl/FriendList.txt"},
		{name: "relative to config", rosterFile: "friends.txt", configPath: "/etc/fl/config.yaml", want: "/etc/fl/friends.txt"},
		{name: "absolute wins", rosterFile: "/tmp/f.txt", configPath: "/etc/fl/config.yaml", want: "/tmp/f.txt"},
	}
	for _, tc := range tests {
		got, err := Config{RosterFile: tc.rosterFile}.RosterPath(tc.configPath)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}
