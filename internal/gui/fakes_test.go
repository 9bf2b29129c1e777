package gui

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/appengine-ltd/friendlist/internal/config"
	"github.com/appengine-ltd/friendlist/internal/input"
)

// keyState is a scripted input.Source.
type keyState struct {
	pressed map[int32]bool
	down    map[int32]bool
	buttons map[string]bool
	axes    map[string]float32
}

func newKeyState() *keyState {
	return &keyState{
		pressed: map[int32]bool{},
		down:    map[int32]bool{},
		buttons: map[string]bool{},
		axes:    map[string]float32{},
	}
}

func (k *keyState) Key(key int32, phase input.Phase) bool {
	switch phase {
	case input.Pressed:
		return k.pressed[key]
	case input.Down:
		return k.down[key] || k.pressed[key]
	}
	return false
}

func (k *keyState) Button(name string, phase input.Phase) bool {
	return phase == input.Pressed && k.buttons[name]
}

func (k *keyState) Axis(name string) float32 {
	return k.axes[name]
}

func newTestUI(t *testing.T) *gameUI {
	t.Helper()
	ui := newGameUI(AppConfig{
		Config:     config.Default(),
		RosterPath: filepath.Join(t.TempDir(), "FriendList.txt"),
	})
	ui.social.now = func() time.Time { return time.Date(2024, 5, 1, 20, 15, 0, 0, time.UTC) }
	return ui
}
