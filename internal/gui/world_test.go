package gui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/appengine-ltd/friendlist/internal/input"
	"github.com/appengine-ltd/friendlist/internal/status"
)

func testWorld() *world {
	return newWorld(rl.NewVector2(1366, 768), 42)
}

func (w *world) simNamed(name string) (int, *sim) {
	for i, s := range w.sims {
		if s.Name == name {
			return i, s
		}
	}
	return -1, nil
}

func TestWorldRegistriesFeedResolver(t *testing.T) {
	w := testWorld()
	r := status.NewResolver(w, w, zap.NewNop())

	tests := map[string]string{
		"Aldric": "Level 12 Paladin",
		"Gunnar": "Level 9 Unknown",
		"Eirik":  "Level 15 (Offline)",
		"Dagny":  "Level 3 (Offline)",
		"Nobody": status.Unknown,
	}
	for name, want := range tests {
		if got := r.Resolve(name); got != want {
			t.Fatalf("%s: expected %q, got %q", name, want, got)
		}
	}
}

func TestWorldActiveInstancesSkipOffline(t *testing.T) {
	w := testWorld()
	for _, inst := range w.ActiveInstances() {
		if inst.Name == "Eirik" || inst.Name == "Freya" {
			t.Fatalf("expected offline sims to be absent, got %+v", inst)
		}
		if inst.Name == "Dagny" && inst.Stats != nil {
			t.Fatalf("expected spawning sim to have no stats")
		}
	}
	if got := len(w.TrackedSims()); got != len(demoSims) {
		t.Fatalf("expected every sim tracked, got %d", got)
	}
}

func TestWorldClickTargets(t *testing.T) {
	w := testWorld()
	i, s := w.simNamed("Corwin")
	src := newKeyState()

	w.update(0, worldInput{src: src, clicked: true, clickAt: s.Pos, blocked: true})
	if w.target != -1 {
		t.Fatalf("expected a blocked click to be ignored")
	}

	w.SetDraggingUI(true)
	w.update(0, worldInput{src: src, clicked: true, clickAt: s.Pos})
	if w.target != -1 {
		t.Fatalf("expected clicks ignored while a UI element is dragged")
	}
	w.SetDraggingUI(false)

	w.update(0, worldInput{src: src, clicked: true, clickAt: s.Pos})
	if w.target != i {
		t.Fatalf("expected Corwin targeted, got %d", w.target)
	}
	if name, online, ok := w.CurrentTarget(); name != "Corwin" || !online || !ok {
		t.Fatalf("unexpected target (%q,%v,%v)", name, online, ok)
	}

	w.update(0, worldInput{src: src, clicked: true, clickAt: rl.NewVector2(-500, -500)})
	if _, _, ok := w.CurrentTarget(); ok {
		t.Fatalf("expected clicking empty ground to clear the target")
	}
}

func TestWorldPauseOnlyThroughChain(t *testing.T) {
	w := testWorld()
	src := newKeyState()
	src.buttons[input.ButtonCancel] = true
	chain := input.NewChain(src, zap.NewNop())

	w.update(0, worldInput{src: chain})
	if !w.paused {
		t.Fatalf("expected Cancel to pause")
	}
	w.update(0, worldInput{src: chain, typing: true})
	if !w.paused {
		t.Fatalf("expected Cancel ignored while typing")
	}

	remove := chain.Register(input.Filter{Name: "test", Suppress: func(q input.Query) bool {
		return q.Kind == input.KindButton && q.Name == input.ButtonCancel
	}})
	w.update(0, worldInput{src: chain})
	if !w.paused {
		t.Fatalf("expected a suppressed Cancel not to reach the host")
	}
	remove()
	w.update(0, worldInput{src: chain})
	if w.paused {
		t.Fatalf("expected Cancel to resume")
	}
}

func TestWorldZoomClamps(t *testing.T) {
	w := testWorld()
	src := newKeyState()
	src.axes[input.AxisScrollWheel] = 100
	w.update(0, worldInput{src: src})
	if w.camera.Zoom != maxZoom {
		t.Fatalf("expected zoom clamped to %v, got %v", maxZoom, w.camera.Zoom)
	}
	src.axes[input.AxisScrollWheel] = -100
	w.update(0, worldInput{src: src})
	if w.camera.Zoom != minZoom {
		t.Fatalf("expected zoom clamped to %v, got %v", minZoom, w.camera.Zoom)
	}
}

func TestSimStaysInBounds(t *testing.T) {
	s := &sim{Pos: rl.NewVector2(5, worldHeight-2), Vel: rl.NewVector2(-100, 100)}
	s.step(1)
	if s.Pos.X < simRadius || s.Pos.Y > worldHeight-simRadius {
		t.Fatalf("expected sim clamped inside the world, got %+v", s.Pos)
	}
	if s.Vel.X <= 0 || s.Vel.Y >= 0 {
		t.Fatalf("expected velocity to bounce, got %+v", s.Vel)
	}
}
