package gui

import (
	"math"
	"math/rand/v2"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/friendlist/internal/input"
	"github.com/appengine-ltd/friendlist/internal/status"
	uitheme "github.com/appengine-ltd/friendlist/internal/ui/theme"
)

const (
	worldWidth  = 2400
	worldHeight = 1600
	simRadius   = 14
	simSpeed    = 60

	camPanSpeed = 420
	zoomStep    = 0.1
	minZoom     = 0.5
	maxZoom     = 2.5

	groupPanelWidth  = 220
	groupPanelHeight = 96
)

// sim is one simulated player in the demo world. Offline sims are only known
// to the tracking registry; Spawning ones are active but have no stats yet.
type sim struct {
	Name     string
	Level    int
	Class    string
	Online   bool
	Spawning bool
	Pos      rl.Vector2
	Vel      rl.Vector2
}

var demoSims = []sim{
	{Name: "Aldric", Level: 12, Class: "Paladin", Online: true},
	{Name: "Brynja", Level: 7, Class: "Druid", Online: true},
	{Name: "Corwin", Level: 23, Class: "Rogue", Online: true},
	{Name: "Dagny", Level: 3, Online: true, Spawning: true},
	{Name: "Eirik", Level: 15, Class: "Arcanist", Online: false},
	{Name: "Freya", Level: 31, Class: "Windblade", Online: false},
	{Name: "Gunnar", Level: 9, Online: true},
}

// world is the stand-in host game: sims, a camera, the current target and
// the group panel anchor the friend list shares.
type world struct {
	sims     []*sim
	camera   rl.Camera2D
	anchor   rl.Vector2
	target   int
	dragging bool
	paused   bool
}

func newWorld(viewport rl.Vector2, seed uint64) *world {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	w := &world{
		camera: rl.Camera2D{
			Offset: rl.NewVector2(viewport.X/2, viewport.Y/2),
			Target: rl.NewVector2(worldWidth/2, worldHeight/2),
			Zoom:   1,
		},
		anchor: rl.NewVector2(worldWidth/2+260, worldHeight/2-60),
		target: -1,
	}
	for _, proto := range demoSims {
		s := proto
		s.Pos = rl.NewVector2(
			worldWidth/2+float32(rng.IntN(900)-450),
			worldHeight/2+float32(rng.IntN(600)-300),
		)
		angle := rng.Float64() * 2 * math.Pi
		s.Vel = rl.NewVector2(float32(math.Cos(angle))*simSpeed, float32(math.Sin(angle))*simSpeed)
		w.sims = append(w.sims, &s)
	}
	return w
}

func (w *world) ActiveInstances() []status.ActiveInstance {
	out := make([]status.ActiveInstance, 0, len(w.sims))
	for _, s := range w.sims {
		if !s.Online {
			continue
		}
		inst := status.ActiveInstance{Name: s.Name}
		if !s.Spawning {
			inst.Stats = &status.Stats{Level: s.Level, Class: s.Class}
		}
		out = append(out, inst)
	}
	return out
}

func (w *world) TrackedSims() []status.TrackedSim {
	out := make([]status.TrackedSim, 0, len(w.sims))
	for _, s := range w.sims {
		out = append(out, status.TrackedSim{Name: s.Name, Level: s.Level})
	}
	return out
}

func (w *world) Position() rl.Vector2 {
	return w.anchor
}

func (w *world) SetPosition(p rl.Vector2) {
	w.anchor = p
}

func (w *world) WorldToScreen(p rl.Vector2) rl.Vector2 {
	return rl.GetWorldToScreen2D(p, w.camera)
}

func (w *world) ScreenToWorld(p rl.Vector2) rl.Vector2 {
	return rl.GetScreenToWorld2D(p, w.camera)
}

func (w *world) CurrentTarget() (string, bool, bool) {
	if w.target < 0 || w.target >= len(w.sims) {
		return "", false, false
	}
	s := w.sims[w.target]
	return s.Name, s.Online, true
}

func (w *world) SetDraggingUI(dragging bool) {
	w.dragging = dragging
}

// worldInput is what the host world reads each frame. Keys and axes come
// through the filter chain.
type worldInput struct {
	src      input.Source
	viewport rl.Vector2
	clicked  bool
	clickAt  rl.Vector2 // world space
	typing   bool
	blocked  bool
}

func (w *world) update(dt float32, in worldInput) {
	if !in.typing && in.src.Button(input.ButtonCancel, input.Pressed) {
		w.paused = !w.paused
	}
	if w.paused {
		return
	}

	w.camera.Offset = rl.NewVector2(in.viewport.X/2, in.viewport.Y/2)
	if !in.typing {
		h := in.src.Axis(axisHorizontal)
		v := in.src.Axis(axisVertical)
		w.camera.Target.X += h * camPanSpeed * dt / w.camera.Zoom
		w.camera.Target.Y += v * camPanSpeed * dt / w.camera.Zoom
	}
	if wheel := in.src.Axis(input.AxisScrollWheel); wheel != 0 {
		w.camera.Zoom = float32(math.Max(minZoom, math.Min(maxZoom, float64(w.camera.Zoom+wheel*zoomStep))))
	}

	for _, s := range w.sims {
		if s.Online {
			s.step(dt)
		}
	}

	if in.clicked && !in.blocked && !w.dragging {
		w.target = w.pick(in.clickAt)
	}
}

func (s *sim) step(dt float32) {
	s.Pos.X += s.Vel.X * dt
	s.Pos.Y += s.Vel.Y * dt
	if s.Pos.X < simRadius || s.Pos.X > worldWidth-simRadius {
		s.Vel.X = -s.Vel.X
		s.Pos.X = float32(math.Max(simRadius, math.Min(worldWidth-simRadius, float64(s.Pos.X))))
	}
	if s.Pos.Y < simRadius || s.Pos.Y > worldHeight-simRadius {
		s.Vel.Y = -s.Vel.Y
		s.Pos.Y = float32(math.Max(simRadius, math.Min(worldHeight-simRadius, float64(s.Pos.Y))))
	}
}

// pick returns the index of the online sim under p, or -1.
func (w *world) pick(p rl.Vector2) int {
	best := -1
	bestDist := float32(simRadius * 1.5)
	for i, s := range w.sims {
		if !s.Online {
			continue
		}
		dx := s.Pos.X - p.X
		dy := s.Pos.Y - p.Y
		if d := float32(math.Sqrt(float64(dx*dx + dy*dy))); d <= bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func (w *world) draw() {
	rl.BeginMode2D(w.camera)
	for x := float32(0); x <= worldWidth; x += 100 {
		rl.DrawLineV(rl.NewVector2(x, 0), rl.NewVector2(x, worldHeight), rl.Fade(uitheme.Divider, 0.8))
	}
	for y := float32(0); y <= worldHeight; y += 100 {
		rl.DrawLineV(rl.NewVector2(0, y), rl.NewVector2(worldWidth, y), rl.Fade(uitheme.Divider, 0.8))
	}
	rl.DrawRectangleLinesEx(rl.NewRectangle(0, 0, worldWidth, worldHeight), 3, uitheme.Border)

	for i, s := range w.sims {
		if !s.Online {
			continue
		}
		clr := uitheme.AccentTeal
		if s.Spawning {
			clr = uitheme.TextMuted
		}
		rl.DrawCircleV(s.Pos, simRadius, clr)
		if i == w.target {
			rl.DrawCircleLines(int32(s.Pos.X), int32(s.Pos.Y), simRadius+5, uitheme.AccentGold)
		}
		label := s.Name
		lw := measureText(label, typeScale.Small)
		drawText(label, int32(s.Pos.X)-lw/2, int32(s.Pos.Y)-simRadius-typeScale.Small-4, typeScale.Small, uitheme.TextPrimary)
	}
	rl.EndMode2D()
}

// drawGroupPanel draws the host's group window centered on the shared anchor.
func (w *world) drawGroupPanel() {
	c := w.WorldToScreen(w.anchor)
	rect := rl.NewRectangle(c.X-groupPanelWidth/2, c.Y-groupPanelHeight/2, groupPanelWidth, groupPanelHeight)
	uitheme.DrawPanel(rect, uitheme.PanelStandard)
	uitheme.DrawHeader(rl.NewRectangle(rect.X, rect.Y+6, rect.Width, 24), "Group")
	line := "No target"
	if name, online, ok := w.CurrentTarget(); ok {
		line = "Target: " + name
		if !online {
			line += " (offline)"
		}
	}
	drawText(line, int32(rect.X+uitheme.PaddingS), int32(rect.Y+46), typeScale.Small, uitheme.TextSecondary)
}

func (w *world) drawPauseMenu(viewport rl.Vector2) {
	if !w.paused {
		return
	}
	uitheme.DrawScrim(rl.NewRectangle(0, 0, viewport.X, viewport.Y))
	rect := rl.NewRectangle(viewport.X/2-160, viewport.Y/2-70, 320, 140)
	uitheme.DrawDialog(rect, "Paused", "Press Esc to resume.")
}
