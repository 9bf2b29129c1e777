package theme

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	PaddingXS = float32(6)
	PaddingS  = float32(10)
	PaddingM  = float32(16)

	CornerRadius   = float32(0.12)
	CornerSegments = int32(8)

	BorderWidth      = float32(1.2)
	BorderWidthHover = float32(2.0)
	OuterBorderWidth = float32(2.0)
)

type PanelVariant int

const (
	PanelStandard PanelVariant = iota
	PanelLifted
)

type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHover
	ButtonDisabled
)

func DrawPanel(rect rl.Rectangle, variant PanelVariant) {
	fill := Panel
	stroke := Border
	if variant == PanelLifted {
		fill = PanelRaised
		stroke = mix(Border, AccentGold, 0.35)
	}
	rl.DrawRectangleRounded(rect, CornerRadius/3, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius/3, CornerSegments, BorderWidth, stroke)
}

// DrawOuterBorder outlines a window with the thick frame color.
func DrawOuterBorder(rect rl.Rectangle) {
	rl.DrawRectangleLinesEx(rect, OuterBorderWidth, BorderOuter)
}

func DrawButton(rect rl.Rectangle, state ButtonState, text string) {
	fill := PanelRaised
	stroke := Border
	label := TextPrimary
	strokeWidth := BorderWidth

	switch state {
	case ButtonHover:
		fill = mix(PanelRaised, AccentGold, 0.18)
		stroke = AccentGold
		strokeWidth = BorderWidthHover
	case ButtonDisabled:
		fill = rl.Fade(PanelRaised, 0.5)
		label = TextMuted
	}

	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)
	if text == "" {
		return
	}
	size := Type.Body
	w := measureText(text, size)
	drawText(text, int32(rect.X+(rect.Width-float32(w))/2), int32(rect.Y+(rect.Height-float32(size))/2), size, label)
}

// rowControlsWidth is the strip at the right of a row taken by the whisper
// and remove buttons.
const rowControlsWidth = 130

// DrawFriendRow draws the row background with the name over the status line.
func DrawFriendRow(rect rl.Rectangle, name, status string) {
	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, rl.Fade(PanelRaised, 0.6))
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, BorderWidth, rl.Fade(Border, 0.9))
	x := int32(rect.X + PaddingS)
	room := int32(rect.Width) - 2*int32(PaddingS) - rowControlsWidth
	drawText(truncate(name, Type.Body, room), x, int32(rect.Y+PaddingXS), Type.Body, TextPrimary)
	drawText(truncate(status, Type.Small, room), x, int32(rect.Y+PaddingXS)+Type.Body+2, Type.Small, TextSecondary)
}

// DrawMultiline centers each line of text horizontally inside rect.
func DrawMultiline(rect rl.Rectangle, text string, size int32, clr rl.Color) {
	lines := strings.Split(text, "\n")
	lineH := int32(float32(size) * Type.LineFactor)
	y := int32(rect.Y + PaddingXS)
	for _, line := range lines {
		w := measureText(line, size)
		drawText(line, int32(rect.X+(rect.Width-float32(w))/2), y, size, clr)
		y += lineH
	}
}

func DrawHeader(rect rl.Rectangle, text string) {
	if text == "" {
		return
	}
	w := measureText(text, Type.Header)
	x := rect.X + (rect.Width-float32(w))/2
	drawText(text, int32(x), int32(rect.Y), Type.Header, AccentGold)
	lineY := rect.Y + float32(Type.Header) + 4
	drawLine(rect.X+PaddingM, lineY, rect.X+rect.Width-PaddingM, lineY, 1.0, rl.Fade(Divider, 0.95))
}

// DrawHandle draws the drag grip as a small diamond.
func DrawHandle(rect rl.Rectangle, active bool) {
	clr := TextMuted
	if active {
		clr = AccentGold
	}
	cx := rect.X + rect.Width/2
	cy := rect.Y + rect.Height/2
	top := rl.NewVector2(cx, rect.Y)
	left := rl.NewVector2(rect.X, cy)
	bottom := rl.NewVector2(cx, rect.Y+rect.Height)
	right := rl.NewVector2(rect.X+rect.Width, cy)
	rl.DrawTriangle(top, left, bottom, clr)
	rl.DrawTriangle(top, bottom, right, clr)
}

func DrawDialog(rect rl.Rectangle, title, prompt string) {
	DrawPanel(rect, PanelLifted)
	DrawOuterBorder(rect)
	tw := measureText(title, Type.Header)
	drawText(title, int32(rect.X+(rect.Width-float32(tw))/2), int32(rect.Y+PaddingS), Type.Header, AccentGold)
	lines := wrap(prompt, Type.Small, int32(rect.Width-2*PaddingM))
	y := int32(rect.Y+PaddingS) + Type.Header + 10
	for _, line := range lines {
		w := measureText(line, Type.Small)
		drawText(line, int32(rect.X+(rect.Width-float32(w))/2), y, Type.Small, TextPrimary)
		y += Type.Small + 4
	}
}

func DrawTooltip(rect rl.Rectangle, text string) {
	rl.DrawRectangleRec(rect, TooltipFill)
	rl.DrawRectangleLinesEx(rect, 1, Border)
	w := measureText(text, Type.Small)
	drawText(text, int32(rect.X+(rect.Width-float32(w))/2), int32(rect.Y+(rect.Height-float32(Type.Small))/2), Type.Small, TextPrimary)
}

// DrawScrim darkens everything under a modal.
func DrawScrim(rect rl.Rectangle) {
	rl.DrawRectangleRec(rect, Scrim)
}

func DrawHintText(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, Type.Small, TextMuted)
}

func wrap(text string, size, maxWidth int32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	lines := make([]string, 0, 2)
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measureText(candidate, size) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

func drawLine(x1, y1, x2, y2, thickness float32, clr rl.Color) {
	rl.DrawLineEx(rl.NewVector2(x1, y1), rl.NewVector2(x2, y2), thickness, clr)
}

func mix(a, b rl.Color, t float32) rl.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	inv := 1.0 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}
