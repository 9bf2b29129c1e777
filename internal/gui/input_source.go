package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/friendlist/internal/input"
)

const (
	buttonSubmit   = "Submit"
	axisHorizontal = "Horizontal"
	axisVertical   = "Vertical"
)

// buttonKeys binds the host's virtual buttons to keyboard keys.
var buttonKeys = map[string][]int32{
	input.ButtonCancel: {rl.KeyEscape},
	buttonSubmit:       {rl.KeyEnter, rl.KeyKpEnter},
}

// raylibSource reads the live device state. Only the frame goroutine may use
// it.
type raylibSource struct{}

func (raylibSource) Key(key int32, phase input.Phase) bool {
	switch phase {
	case input.Pressed:
		return rl.IsKeyPressed(key)
	case input.Down:
		return rl.IsKeyDown(key)
	case input.Released:
		return rl.IsKeyReleased(key)
	}
	return false
}

func (s raylibSource) Button(name string, phase input.Phase) bool {
	for _, key := range buttonKeys[name] {
		if s.Key(key, phase) {
			return true
		}
	}
	if name == input.ButtonCancel {
		switch phase {
		case input.Pressed:
			return rl.IsMouseButtonPressed(rl.MouseButtonRight)
		case input.Down:
			return rl.IsMouseButtonDown(rl.MouseButtonRight)
		case input.Released:
			return rl.IsMouseButtonReleased(rl.MouseButtonRight)
		}
	}
	return false
}

func (s raylibSource) Axis(name string) float32 {
	switch name {
	case input.AxisScrollWheel:
		return rl.GetMouseWheelMove()
	case axisHorizontal:
		return keyAxis(s, rl.KeyLeft, rl.KeyRight)
	case axisVertical:
		return keyAxis(s, rl.KeyUp, rl.KeyDown)
	}
	return 0
}

// keyAxis turns a pair of held keys into -1, 0 or 1.
func keyAxis(src input.Source, negative, positive int32) float32 {
	var v float32
	if src.Key(negative, input.Down) {
		v--
	}
	if src.Key(positive, input.Down) {
		v++
	}
	return v
}
