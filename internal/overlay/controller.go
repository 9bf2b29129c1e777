// Package overlay is the friend list window: a per-frame state machine that
// turns mouse and key input into roster actions and describes what to draw.
// It never talks to the graphics backend; the host executes the Frame.
package overlay

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/appengine-ltd/friendlist/internal/input"
	"github.com/appengine-ltd/friendlist/internal/session"
	"github.com/appengine-ltd/friendlist/internal/status"
)

// Anchor is the shared world-space position the window and the host's group
// panel both follow.
type Anchor interface {
	Position() rl.Vector2
	SetPosition(rl.Vector2)
}

// Projector converts between world and screen space.
type Projector interface {
	WorldToScreen(rl.Vector2) rl.Vector2
	ScreenToWorld(rl.Vector2) rl.Vector2
}

// Target reports the player's current target, if any.
type Target interface {
	CurrentTarget() (name string, onlinePlayer bool, ok bool)
}

// Host receives the "a UI element is being dragged" flag.
type Host interface {
	SetDraggingUI(dragging bool)
}

type Options struct {
	Anchor    Anchor
	Projector Projector
	Target    Target
	Host      Host
	Input     *input.Chain
	PanelSize rl.Vector2
}

// FrameInput is the raw device state for one frame, read above the filter
// chain.
type FrameInput struct {
	Viewport      rl.Vector2
	Mouse         rl.Vector2
	MousePressed  bool
	MouseDown     bool
	MouseReleased bool
	Wheel         float32
	EscapePressed bool
	TogglePressed bool
}

type Tooltip struct {
	Visible bool
	Text    string
	Rect    rl.Rectangle
}

type State struct {
	Open           bool
	Window         rl.Rectangle
	Scroll         float32
	Dragging       bool
	DragOffset     rl.Vector2
	PendingRemoval string
	Tooltip        Tooltip
}

type Controller struct {
	sess     *session.Session
	resolver *status.Resolver
	opts     Options
	log      *zap.Logger

	state    State
	placed   bool
	viewport rl.Vector2
	mouse    rl.Vector2
	layout   Layout
	active   control
	release  []func()
}

func New(sess *session.Session, resolver *status.Resolver, opts Options) *Controller {
	if opts.PanelSize.X <= 0 || opts.PanelSize.Y <= 0 {
		opts.PanelSize = rl.NewVector2(DefaultWidth, DefaultHeight)
	}
	log := zap.NewNop()
	if sess != nil && sess.Log != nil {
		log = sess.Log.Named("overlay")
	}
	return &Controller{
		sess:     sess,
		resolver: resolver,
		opts:     opts,
		log:      log,
		state:    State{Window: rl.NewRectangle(0, 0, opts.PanelSize.X, opts.PanelSize.Y)},
	}
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) IsOpen() bool {
	return c.state.Open
}

// Layout returns the geometry computed by the last Update.
func (c *Controller) Layout() Layout {
	return c.layout
}

func (c *Controller) Open() {
	if c.state.Open {
		return
	}
	c.state.Open = true
	c.registerFilters()
	c.log.Debug("friend list opened")
}

// Close hides the window, ends any drag and forgets a pending removal.
func (c *Controller) Close() {
	if !c.state.Open {
		return
	}
	c.endDrag(false)
	c.state.Open = false
	c.state.PendingRemoval = ""
	c.state.Tooltip = Tooltip{}
	c.active = control{}
	c.placed = false
	c.releaseFilters()
	c.log.Debug("friend list closed")
}

func (c *Controller) Toggle() {
	if c.state.Open {
		c.Close()
		return
	}
	c.Open()
}

// RequestRemoval asks for confirmation before removing name. A second
// request while one is pending is ignored.
func (c *Controller) RequestRemoval(name string) {
	if !c.state.Open || c.state.PendingRemoval != "" || name == "" {
		return
	}
	c.state.PendingRemoval = name
}

func (c *Controller) ConfirmRemoval() {
	name := c.state.PendingRemoval
	if name == "" {
		return
	}
	c.state.PendingRemoval = ""
	if c.sess != nil && c.sess.Roster != nil {
		c.sess.RemoveFriend(name)
	}
}

func (c *Controller) CancelRemoval() {
	c.state.PendingRemoval = ""
}

// Update advances the window by one frame. Nothing here may take the host
// down, so a panic is logged and the frame is dropped.
func (c *Controller) Update(in FrameInput) {
	defer func() {
		if rec := recover(); rec != nil {
			c.log.Error("overlay update", zap.Any("panic", rec), zap.Stack("stack"))
		}
	}()

	if in.TogglePressed && !c.typing() {
		c.Toggle()
	}
	if !c.state.Open {
		return
	}

	c.viewport = in.Viewport
	c.mouse = in.Mouse
	c.state.Window.Width = c.opts.PanelSize.X
	c.state.Window.Height = c.opts.PanelSize.Y

	if !c.placed {
		c.state.Window = centered(c.opts.PanelSize, in.Viewport)
		c.placed = true
	}
	if !c.state.Dragging {
		c.snapToAnchor()
	}

	consumed := c.updateDrag(in)

	if in.EscapePressed {
		if c.state.PendingRemoval != "" {
			c.CancelRemoval()
		} else {
			c.Close()
			return
		}
	}

	c.state.Window = ClampToViewport(c.state.Window, in.Viewport)

	if in.Wheel != 0 && c.state.PendingRemoval == "" && contains(c.state.Window, in.Mouse) {
		c.state.Scroll -= in.Wheel * scrollStep
	}
	c.layout = c.computeLayout()
	if clamped := clampf(c.state.Scroll, 0, c.layout.MaxScroll); clamped != c.state.Scroll {
		c.state.Scroll = clamped
		c.layout = c.computeLayout()
	}

	if !consumed {
		c.handleClicks(in)
	}
	if !c.state.Open {
		return
	}
	c.updateTooltip()
}

func (c *Controller) typing() bool {
	return c.sess != nil && c.sess.Chat != nil && c.sess.Chat.Typing()
}

func (c *Controller) snapToAnchor() {
	if c.opts.Anchor == nil || c.opts.Projector == nil {
		return
	}
	p := c.opts.Projector.WorldToScreen(c.opts.Anchor.Position())
	c.state.Window.X = p.X - c.state.Window.Width*0.5
	c.state.Window.Y = p.Y - c.state.Window.Height*0.5
}

// updateDrag reports whether the mouse was used by the drag handle this
// frame.
func (c *Controller) updateDrag(in FrameInput) bool {
	if !c.state.Dragging {
		if !in.MousePressed || c.state.PendingRemoval != "" {
			return false
		}
		handle := ComputeLayout(c.state.Window, in.Viewport, nil, false, 0).Handle
		if !contains(handle, in.Mouse) {
			return false
		}
		c.state.Dragging = true
		c.state.DragOffset = rl.NewVector2(in.Mouse.X-c.state.Window.X, in.Mouse.Y-c.state.Window.Y)
		if c.opts.Host != nil {
			c.opts.Host.SetDraggingUI(true)
		}
		return true
	}

	c.state.Window.X = in.Mouse.X - c.state.DragOffset.X
	c.state.Window.Y = in.Mouse.Y - c.state.DragOffset.Y
	if in.MouseReleased || !in.MouseDown {
		c.state.Window = ClampToViewport(c.state.Window, in.Viewport)
		c.endDrag(true)
	}
	return true
}

// endDrag drops the drag state. When commit is set the window's center is
// written back to the shared anchor.
func (c *Controller) endDrag(commit bool) {
	if !c.state.Dragging {
		return
	}
	c.state.Dragging = false
	c.state.DragOffset = rl.Vector2{}
	if commit && c.opts.Anchor != nil && c.opts.Projector != nil {
		c.opts.Anchor.SetPosition(c.opts.Projector.ScreenToWorld(center(c.state.Window)))
	}
	if c.opts.Host != nil {
		c.opts.Host.SetDraggingUI(false)
	}
}

func (c *Controller) computeLayout() Layout {
	var names []string
	if c.sess != nil && c.sess.Roster != nil {
		names = c.sess.Roster.Names()
	}
	_, quick := c.quickAddTarget()
	return ComputeLayout(c.state.Window, c.viewport, names, quick, c.state.Scroll)
}

// quickAddTarget returns the targeted online player that is not yet a friend.
func (c *Controller) quickAddTarget() (string, bool) {
	if c.opts.Target == nil {
		return "", false
	}
	name, online, ok := c.opts.Target.CurrentTarget()
	if !ok || !online || name == "" {
		return "", false
	}
	if c.sess != nil && c.sess.Roster != nil && c.sess.Roster.Contains(name) {
		return "", false
	}
	return name, true
}

type controlKind int

const (
	controlNone controlKind = iota
	controlHandle
	controlClose
	controlQuickAdd
	controlWhisper
	controlRemove
	controlYes
	controlNo
)

type control struct {
	kind controlKind
	name string
}

// hit returns the control under p. While a removal is pending only the
// dialog buttons are live.
func (c *Controller) hit(p rl.Vector2) (control, rl.Rectangle) {
	l := c.layout
	if c.state.PendingRemoval != "" {
		switch {
		case contains(l.Yes, p):
			return control{kind: controlYes}, l.Yes
		case contains(l.No, p):
			return control{kind: controlNo}, l.No
		}
		return control{}, rl.Rectangle{}
	}
	switch {
	case contains(l.Handle, p):
		return control{kind: controlHandle}, l.Handle
	case contains(l.Close, p):
		return control{kind: controlClose}, l.Close
	case l.HasQuickAdd && contains(l.QuickAdd, p):
		return control{kind: controlQuickAdd}, l.QuickAdd
	}
	if !contains(l.List, p) {
		return control{}, rl.Rectangle{}
	}
	for _, row := range l.Rows {
		if !row.Visible {
			continue
		}
		if contains(row.Whisper, p) {
			return control{kind: controlWhisper, name: row.Name}, row.Whisper
		}
		if contains(row.Remove, p) {
			return control{kind: controlRemove, name: row.Name}, row.Remove
		}
	}
	return control{}, rl.Rectangle{}
}

// handleClicks fires a button when the mouse goes down and comes back up on
// the same control.
func (c *Controller) handleClicks(in FrameInput) {
	if in.MousePressed {
		c.active, _ = c.hit(in.Mouse)
	}
	if !in.MouseReleased {
		return
	}
	pressed := c.active
	c.active = control{}
	if over, _ := c.hit(in.Mouse); over != pressed || over.kind == controlNone {
		return
	}

	switch pressed.kind {
	case controlYes:
		c.ConfirmRemoval()
	case controlNo:
		c.CancelRemoval()
	case controlClose:
		c.Close()
	case controlQuickAdd:
		if name, ok := c.quickAddTarget(); ok && c.sess != nil {
			c.sess.AddFriend(name, session.ColorInfo)
		}
	case controlWhisper:
		if c.sess != nil {
			c.sess.Whisper(pressed.name)
		}
	case controlRemove:
		c.RequestRemoval(pressed.name)
	}
	if c.state.Open {
		c.layout = c.computeLayout()
	}
}

func (c *Controller) updateTooltip() {
	if c.state.Dragging {
		c.state.Tooltip = Tooltip{}
		return
	}
	over, _ := c.hit(c.mouse)
	text := tooltipText(over)
	if text == "" {
		c.state.Tooltip = Tooltip{}
		return
	}
	c.state.Tooltip = Tooltip{Visible: true, Text: text, Rect: placeTooltip(c.mouse, c.viewport)}
}

func tooltipText(ctl control) string {
	switch ctl.kind {
	case controlHandle:
		return "Drag to move"
	case controlClose:
		return "Close"
	case controlWhisper:
		return fmt.Sprintf("Whisper %s", ctl.name)
	case controlRemove:
		return fmt.Sprintf("Remove %s", ctl.name)
	}
	return ""
}
