package overlay

import (
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/appengine-ltd/friendlist/internal/input"
	"github.com/appengine-ltd/friendlist/internal/roster"
	"github.com/appengine-ltd/friendlist/internal/session"
	"github.com/appengine-ltd/friendlist/internal/status"
)

var testViewport = rl.NewVector2(1366, 768)

type logLine struct {
	Message string
	Color   string
}

type socialLog struct {
	lines []logLine
}

func (l *socialLog) LogAdd(message, color string) {
	l.lines = append(l.lines, logLine{Message: message, Color: color})
}

type chatBox struct {
	text   string
	open   bool
	typing bool
}

func (c *chatBox) Text() string { return c.text }
func (c *chatBox) SetText(text string) { c.text = text }
func (c *chatBox) SetCooldown(int) {}
func (c *chatBox) SetOpen(open bool) { c.open = open }
func (c *chatBox) Typing() bool { return c.typing }
func (c *chatBox) SetTyping(typing bool) { c.typing = typing }

type anchor struct {
	pos rl.Vector2
	set int
}

func (a *anchor) Position() rl.Vector2 { return a.pos }
func (a *anchor) SetPosition(p rl.Vector2) {
	a.pos = p
	a.set++
}

// shifted is a camera that only pans: screen = world + offset.
type shifted struct {
	offset rl.Vector2
}

func (s shifted) WorldToScreen(p rl.Vector2) rl.Vector2 {
	return rl.NewVector2(p.X+s.offset.X, p.Y+s.offset.Y)
}

func (s shifted) ScreenToWorld(p rl.Vector2) rl.Vector2 {
	return rl.NewVector2(p.X-s.offset.X, p.Y-s.offset.Y)
}

type target struct {
	name   string
	online bool
	ok     bool
}

func (t target) CurrentTarget() (string, bool, bool) { return t.name, t.online, t.ok }

type panickyTarget struct{}

func (panickyTarget) CurrentTarget() (string, bool, bool) { panic("target despawned") }

type host struct {
	dragging bool
	changes  []bool
}

func (h *host) SetDraggingUI(dragging bool) {
	h.dragging = dragging
	h.changes = append(h.changes, dragging)
}

// allHeld reports every key and button as active and the wheel as turned.
type allHeld struct{}

func (allHeld) Key(int32, input.Phase) bool { return true }
func (allHeld) Button(string, input.Phase) bool { return true }
func (allHeld) Axis(string) float32 { return 1 }

type harness struct {
	ctl    *Controller
	sess   *session.Session
	social *socialLog
	chat   *chatBox
	chain  *input.Chain
}

func newHarness(t *testing.T, opts Options, friends ...string) *harness {
	t.Helper()
	store := roster.NewStore(filepath.Join(t.TempDir(), "FriendList.txt"), zap.NewNop())
	for _, name := range friends {
		store.Add(name)
	}
	social := &socialLog{}
	chat := &chatBox{}
	sess := session.New(zap.NewNop(), store, social, chat)
	if opts.Input == nil {
		opts.Input = input.NewChain(allHeld{}, zap.NewNop())
	}
	resolver := status.NewResolver(nil, nil, zap.NewNop())
	return &harness{
		ctl:    New(sess, resolver, opts),
		sess:   sess,
		social: social,
		chat:   chat,
		chain:  opts.Input,
	}
}

func (h *harness) open() {
	h.ctl.Open()
	h.idle(rl.Vector2{})
}

func (h *harness) idle(mouse rl.Vector2) {
	h.ctl.Update(FrameInput{Viewport: testViewport, Mouse: mouse})
}

func (h *harness) click(p rl.Vector2) {
	h.ctl.Update(FrameInput{Viewport: testViewport, Mouse: p, MousePressed: true, MouseDown: true})
	h.ctl.Update(FrameInput{Viewport: testViewport, Mouse: p, MouseReleased: true})
}

func (h *harness) drag(from, to rl.Vector2) {
	h.ctl.Update(FrameInput{Viewport: testViewport, Mouse: from, MousePressed: true, MouseDown: true})
	h.ctl.Update(FrameInput{Viewport: testViewport, Mouse: to, MouseDown: true})
	h.ctl.Update(FrameInput{Viewport: testViewport, Mouse: to, MouseReleased: true})
}

func (h *harness) row(t *testing.T, name string) RowLayout {
	t.Helper()
	for _, row := range h.ctl.Layout().Rows {
		if row.Name == name {
			return row
		}
	}
	t.Fatalf("no row for %q in %+v", name, h.ctl.Layout().Rows)
	return RowLayout{}
}

func mid(r rl.Rectangle) rl.Vector2 {
	return center(r)
}
