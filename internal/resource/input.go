package resource

import "github.com/feltengine/klondike/internal/component"

// InputState is the shared input snapshot. The input collaborator
// writes it before each tick; systems only read it, except for clearing
// the one-frame click pulse at tick end.
type InputState struct {
	Pointer component.Vec2
	Buttons [3]bool // left, middle, right
	DownAt  component.Vec2
	Down    bool
	Clicked bool // one-frame pulse

	Keys map[string]bool

	Touch       component.Vec2
	TouchActive bool
}

func (in *InputState) SetPointer(x, y float64) {
	in.Pointer = component.Vec2{X: x, Y: y}
}

// SetButton updates one button. The left button also drives the Down
// flag and records the press position.
func (in *InputState) SetButton(button int, pressed bool) {
	if button < 0 || button >= len(in.Buttons) {
		return
	}
	in.Buttons[button] = pressed
	if button == 0 {
		in.Down = pressed
		if pressed {
			in.DownAt = in.Pointer
		}
	}
}

func (in *InputState) SetKey(key string, pressed bool) {
	in.Keys[key] = pressed
}

func (in *InputState) KeyPressed(key string) bool {
	return in.Keys[key]
}

// SetTouch mirrors touch input onto the pointer for single-path
// handling downstream.
func (in *InputState) SetTouch(x, y float64, active bool) {
	in.Touch = component.Vec2{X: x, Y: y}
	in.TouchActive = active
	in.Pointer = in.Touch
	in.Down = active
	if active {
		in.DownAt = in.Touch
	}
}

func (in *InputState) PointerInRect(x, y, w, h float64) bool {
	return in.Pointer.X >= x && in.Pointer.X <= x+w &&
		in.Pointer.Y >= y && in.Pointer.Y <= y+h
}

// ResetClick clears the one-frame click pulse.
func (in *InputState) ResetClick() {
	in.Clicked = false
}
