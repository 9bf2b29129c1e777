package overlay

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	HeaderText      = "Your Friends"
	PlaceholderText = "No friends added yet.\nTarget a SimPlayer and use /friend to add them."
	DialogTitle     = "Confirm Removal"
)

type Op int

const (
	OpPanel Op = iota
	OpBorder
	OpHandle
	OpHeader
	OpButton
	OpClipBegin
	OpClipEnd
	OpRow
	OpPlaceholder
	OpDim
	OpDialog
	OpTooltip
)

// DrawCmd is one primitive for the host to draw. Detail carries the second
// line of a row or the prompt of a dialog.
type DrawCmd struct {
	Op     Op
	Rect   rl.Rectangle
	Text   string
	Detail string
	Hover  bool
}

type Frame struct {
	Commands []DrawCmd
}

func (f Frame) Empty() bool {
	return len(f.Commands) == 0
}

// Find returns the first command with op, for callers that only need one.
func (f Frame) Find(op Op) (DrawCmd, bool) {
	for _, cmd := range f.Commands {
		if cmd.Op == op {
			return cmd, true
		}
	}
	return DrawCmd{}, false
}

type RowView struct {
	Name   string
	Status string
}

// View is everything Render needs; Rows lines up with Layout.Rows.
type View struct {
	State        State
	Layout       Layout
	Rows         []RowView
	QuickAddName string
	Mouse        rl.Vector2
}

// Frame resolves the visible rows' statuses and renders the current state.
func (c *Controller) Frame() Frame {
	if !c.state.Open {
		return Frame{}
	}
	view := View{State: c.state, Layout: c.layout, Mouse: c.mouse}
	view.QuickAddName, _ = c.quickAddTarget()
	view.Rows = make([]RowView, len(c.layout.Rows))
	for i, row := range c.layout.Rows {
		view.Rows[i].Name = row.Name
		if row.Visible {
			view.Rows[i].Status = c.resolver.Resolve(row.Name)
		}
	}
	return Render(view)
}

func Render(v View) Frame {
	if !v.State.Open {
		return Frame{}
	}
	l := v.Layout
	modal := v.State.PendingRemoval != ""
	hover := func(r rl.Rectangle) bool {
		return !modal && contains(r, v.Mouse)
	}

	var f Frame
	add := func(cmd DrawCmd) {
		f.Commands = append(f.Commands, cmd)
	}

	add(DrawCmd{Op: OpPanel, Rect: l.Window})
	add(DrawCmd{Op: OpBorder, Rect: l.Window})
	add(DrawCmd{Op: OpHandle, Rect: l.Handle, Hover: hover(l.Handle) || v.State.Dragging})
	add(DrawCmd{Op: OpButton, Rect: l.Close, Text: "X", Hover: hover(l.Close)})
	add(DrawCmd{Op: OpHeader, Rect: l.Header, Text: HeaderText})
	if l.HasQuickAdd && v.QuickAddName != "" {
		add(DrawCmd{Op: OpButton, Rect: l.QuickAdd, Text: fmt.Sprintf("Add %s to Friends", v.QuickAddName), Hover: hover(l.QuickAdd)})
	}

	add(DrawCmd{Op: OpClipBegin, Rect: l.List})
	if len(l.Rows) == 0 {
		add(DrawCmd{Op: OpPlaceholder, Rect: l.Placeholder, Text: PlaceholderText})
	}
	inList := contains(l.List, v.Mouse)
	for i, row := range l.Rows {
		if !row.Visible {
			continue
		}
		var st string
		if i < len(v.Rows) {
			st = v.Rows[i].Status
		}
		add(DrawCmd{Op: OpRow, Rect: row.Rect, Text: row.Name, Detail: st})
		add(DrawCmd{Op: OpButton, Rect: row.Whisper, Text: "Whisper", Hover: inList && hover(row.Whisper)})
		add(DrawCmd{Op: OpButton, Rect: row.Remove, Text: "X", Hover: inList && hover(row.Remove)})
	}
	add(DrawCmd{Op: OpClipEnd, Rect: l.List})

	if modal {
		add(DrawCmd{Op: OpDim, Rect: rl.NewRectangle(0, 0, l.Dialog.X*2+l.Dialog.Width, l.Dialog.Y*2+l.Dialog.Height)})
		add(DrawCmd{
			Op:     OpDialog,
			Rect:   l.Dialog,
			Text:   DialogTitle,
			Detail: fmt.Sprintf("Remove %s from your friends list?", v.State.PendingRemoval),
		})
		add(DrawCmd{Op: OpButton, Rect: l.Yes, Text: "Yes", Hover: contains(l.Yes, v.Mouse)})
		add(DrawCmd{Op: OpButton, Rect: l.No, Text: "No", Hover: contains(l.No, v.Mouse)})
	}

	if v.State.Tooltip.Visible {
		add(DrawCmd{Op: OpTooltip, Rect: v.State.Tooltip.Rect, Text: v.State.Tooltip.Text})
	}
	return f
}
