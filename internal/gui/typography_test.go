package gui

import (
	"path/filepath"
	"testing"
)

func TestTextLineHeight(t *testing.T) {
	cases := map[int32]int32{16: 21, 20: 26, 0: 1, -4: 1}
	for size, want := range cases {
		if got := textLineHeight(size); got != want {
			t.Fatalf("textLineHeight(%d) = %d, want %d", size, got, want)
		}
	}
}

func TestFontSearchPathsPreferWorkingDir(t *testing.T) {
	paths := fontSearchPaths()
	if len(paths) < len(fontFiles) {
		t.Fatalf("expected at least %d paths, got %v", len(fontFiles), paths)
	}
	if want := filepath.Join("assets", "fonts", fontFiles[0]); paths[0] != want {
		t.Fatalf("first path = %q, want %q", paths[0], want)
	}
}
