package gui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/friendlist/internal/input"
)

// Shortcut is a key plus the modifiers that must be held with it.
type Shortcut struct {
	Key   int32
	Shift bool
	Ctrl  bool
	Alt   bool
}

var namedKeys = map[string]int32{
	"tab":       rl.KeyTab,
	"space":     rl.KeySpace,
	"backquote": rl.KeyGrave,
	"`":         rl.KeyGrave,
	"insert":    rl.KeyInsert,
	"home":      rl.KeyHome,
	"end":       rl.KeyEnd,
	"pageup":    rl.KeyPageUp,
	"pagedown":  rl.KeyPageDown,
}

// ParseShortcut reads forms like "K", "F2" or "Shift+Ctrl+F".
func ParseShortcut(combo string) (Shortcut, error) {
	parts := strings.Split(combo, "+")
	var s Shortcut
	for i, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			return Shortcut{}, fmt.Errorf("parse shortcut %q: empty part", combo)
		}
		if i < len(parts)-1 {
			switch part {
			case "shift":
				s.Shift = true
			case "ctrl", "control":
				s.Ctrl = true
			case "alt":
				s.Alt = true
			default:
				return Shortcut{}, fmt.Errorf("parse shortcut %q: unknown modifier %q", combo, part)
			}
			continue
		}
		key, ok := keyCode(part)
		if !ok {
			return Shortcut{}, fmt.Errorf("parse shortcut %q: unknown key %q", combo, part)
		}
		s.Key = key
	}
	return s, nil
}

func keyCode(name string) (int32, bool) {
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'a' && c <= 'z':
			return rl.KeyA + int32(c-'a'), true
		case c >= '0' && c <= '9':
			return rl.KeyZero + int32(c-'0'), true
		}
	}
	if strings.HasPrefix(name, "f") && len(name) <= 3 {
		var n int32
		if _, err := fmt.Sscanf(name[1:], "%d", &n); err == nil && n >= 1 && n <= 12 {
			return rl.KeyF1 + n - 1, true
		}
	}
	key, ok := namedKeys[name]
	return key, ok
}

func (s Shortcut) String() string {
	var parts []string
	if s.Ctrl {
		parts = append(parts, "Ctrl")
	}
	if s.Alt {
		parts = append(parts, "Alt")
	}
	if s.Shift {
		parts = append(parts, "Shift")
	}
	return strings.Join(append(parts, keyName(s.Key)), "+")
}

func keyName(key int32) string {
	switch {
	case key >= rl.KeyA && key <= rl.KeyZ:
		return string(rune('A' + key - rl.KeyA))
	case key >= rl.KeyZero && key <= rl.KeyNine:
		return string(rune('0' + key - rl.KeyZero))
	case key >= rl.KeyF1 && key <= rl.KeyF12:
		return fmt.Sprintf("F%d", key-rl.KeyF1+1)
	}
	for name, code := range namedKeys {
		if code == key && len(name) > 1 {
			return strings.ToUpper(name[:1]) + name[1:]
		}
	}
	return fmt.Sprintf("Key%d", key)
}

// Pressed is edge-triggered: it fires on the frame the key goes down with the
// modifiers held, or when the last modifier goes down with the key held.
// Extra modifiers prevent a match so "K" and "Shift+K" can coexist.
func (s Shortcut) Pressed(src input.Source) bool {
	if src == nil || s.Key == 0 {
		return false
	}
	if shiftDown(src) != s.Shift || ctrlDown(src) != s.Ctrl || altDown(src) != s.Alt {
		return false
	}
	if src.Key(s.Key, input.Pressed) {
		return true
	}
	if !src.Key(s.Key, input.Down) {
		return false
	}
	return (s.Shift && modPressed(src, rl.KeyLeftShift, rl.KeyRightShift)) ||
		(s.Ctrl && modPressed(src, rl.KeyLeftControl, rl.KeyRightControl)) ||
		(s.Alt && modPressed(src, rl.KeyLeftAlt, rl.KeyRightAlt))
}

func modPressed(src input.Source, left, right int32) bool {
	return src.Key(left, input.Pressed) || src.Key(right, input.Pressed)
}

func shiftDown(src input.Source) bool {
	return src.Key(rl.KeyLeftShift, input.Down) || src.Key(rl.KeyRightShift, input.Down)
}

func ctrlDown(src input.Source) bool {
	return src.Key(rl.KeyLeftControl, input.Down) || src.Key(rl.KeyRightControl, input.Down)
}

func altDown(src input.Source) bool {
	return src.Key(rl.KeyLeftAlt, input.Down) || src.Key(rl.KeyRightAlt, input.Down)
}
