package gui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestParseShortcut(t *testing.T) {
	tests := []struct {
		in      string
		want    Shortcut
		wantErr bool
	}{
		{in: "K", want: Shortcut{Key: rl.KeyK}},
		{in: "shift+k", want: Shortcut{Key: rl.KeyK, Shift: true}},
		{in: "Ctrl+Alt+F", want: Shortcut{Key: rl.KeyF, Ctrl: true, Alt: true}},
		{in: "F2", want: Shortcut{Key: rl.KeyF2}},
		{in: "7", want: Shortcut{Key: rl.KeySeven}},
		{in: "Tab", want: Shortcut{Key: rl.KeyTab}},
		{in: "", wantErr: true},
		{in: "Hyper+K", wantErr: true},
		{in: "Shift+", wantErr: true},
		{in: "F13", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseShortcut(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error, got %+v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %+v, got %+v", tc.in, tc.want, got)
		}
	}
}

func TestShortcutString(t *testing.T) {
	s := Shortcut{Key: rl.KeyF5, Shift: true, Ctrl: true}
	if got := s.String(); got != "Ctrl+Shift+F5" {
		t.Fatalf("unexpected %q", got)
	}
	if got := (Shortcut{Key: rl.KeyK}).String(); got != "K" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestShortcutPressed(t *testing.T) {
	plain := Shortcut{Key: rl.KeyK}
	shifted := Shortcut{Key: rl.KeyK, Shift: true}

	src := newKeyState()
	src.pressed[rl.KeyK] = true
	if !plain.Pressed(src) || shifted.Pressed(src) {
		t.Fatalf("expected only the plain shortcut on a bare K")
	}

	src.down[rl.KeyLeftShift] = true
	if plain.Pressed(src) || !shifted.Pressed(src) {
		t.Fatalf("expected only the shifted shortcut with shift held")
	}

	// Key held first, shift pressed second.
	src = newKeyState()
	src.down[rl.KeyK] = true
	src.pressed[rl.KeyRightShift] = true
	if !shifted.Pressed(src) {
		t.Fatalf("expected shift-after-key to count")
	}

	src = newKeyState()
	src.down[rl.KeyK] = true
	if plain.Pressed(src) {
		t.Fatalf("expected a held key not to repeat")
	}
	if (Shortcut{}).Pressed(src) || plain.Pressed(nil) {
		t.Fatalf("expected empty shortcut or source never to fire")
	}
}
