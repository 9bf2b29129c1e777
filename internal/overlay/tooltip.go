package overlay

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	tooltipOffsetX = 15
	tooltipOffsetY = -35
	tooltipWidth   = 120
	tooltipHeight  = 30
)

// placeTooltip puts the tooltip above and right of the pointer, pulled back
// inside the viewport's right and top edges.
func placeTooltip(mouse, viewport rl.Vector2) rl.Rectangle {
	r := rl.NewRectangle(mouse.X+tooltipOffsetX, mouse.Y+tooltipOffsetY, tooltipWidth, tooltipHeight)
	if viewport.X > 0 && r.X+r.Width > viewport.X {
		r.X = viewport.X - r.Width
	}
	if r.Y < 0 {
		r.Y = 0
	}
	return r
}
