package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// TextDrawFunc draws text at a pixel position.
type TextDrawFunc func(text string, x, y, fontSize int32, clr rl.Color)

// TextMeasureFunc returns the pixel width of text.
type TextMeasureFunc func(text string, fontSize int32) int32

// textRenderer is what every component draws its labels through. The GUI
// swaps in its loaded font at startup; until then raylib's default font is used.
type textRenderer struct {
	draw    TextDrawFunc
	measure TextMeasureFunc
}

var textHooks = textRenderer{
	draw: func(s string, x, y, size int32, clr rl.Color) {
		rl.DrawText(s, x, y, size, clr)
	},
	measure: func(s string, size int32) int32 {
		return rl.MeasureText(s, size)
	},
}

// SetTextRenderer replaces the draw and measure hooks. A nil argument keeps
// the current hook.
func SetTextRenderer(draw TextDrawFunc, measure TextMeasureFunc) {
	if draw != nil {
		textHooks.draw = draw
	}
	if measure != nil {
		textHooks.measure = measure
	}
}

func drawText(s string, x, y, size int32, clr rl.Color) {
	textHooks.draw(s, x, y, size, clr)
}

func measureText(s string, size int32) int32 {
	return textHooks.measure(s, size)
}

// truncate shortens s with a trailing ellipsis until it fits maxWidth.
func truncate(s string, size, maxWidth int32) string {
	if measureText(s, size) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if measureText(candidate, size) <= maxWidth {
			return candidate
		}
	}
	return ""
}
