package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/friendlist/internal/overlay"
	uitheme "github.com/appengine-ltd/friendlist/internal/ui/theme"
)

// drawOverlayFrame executes the overlay's draw commands in order.
func drawOverlayFrame(f overlay.Frame) {
	clipping := false
	for _, cmd := range f.Commands {
		switch cmd.Op {
		case overlay.OpPanel:
			uitheme.DrawPanel(cmd.Rect, uitheme.PanelStandard)
		case overlay.OpBorder:
			uitheme.DrawOuterBorder(cmd.Rect)
		case overlay.OpHandle:
			uitheme.DrawHandle(cmd.Rect, cmd.Hover)
		case overlay.OpHeader:
			uitheme.DrawHeader(cmd.Rect, cmd.Text)
		case overlay.OpButton:
			uitheme.DrawButton(cmd.Rect, buttonState(cmd.Hover), cmd.Text)
		case overlay.OpClipBegin:
			rl.BeginScissorMode(int32(cmd.Rect.X), int32(cmd.Rect.Y), int32(cmd.Rect.Width), int32(cmd.Rect.Height))
			clipping = true
		case overlay.OpClipEnd:
			if clipping {
				rl.EndScissorMode()
				clipping = false
			}
		case overlay.OpRow:
			uitheme.DrawFriendRow(cmd.Rect, cmd.Text, cmd.Detail)
		case overlay.OpPlaceholder:
			uitheme.DrawMultiline(cmd.Rect, cmd.Text, uitheme.Type.Small, uitheme.TextMuted)
		case overlay.OpDim:
			uitheme.DrawScrim(cmd.Rect)
		case overlay.OpDialog:
			uitheme.DrawDialog(cmd.Rect, cmd.Text, cmd.Detail)
		case overlay.OpTooltip:
			uitheme.DrawTooltip(cmd.Rect, cmd.Text)
		}
	}
	if clipping {
		rl.EndScissorMode()
	}
}

func buttonState(hover bool) uitheme.ButtonState {
	if hover {
		return uitheme.ButtonHover
	}
	return uitheme.ButtonNormal
}
