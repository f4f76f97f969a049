package core

import "github.com/incredimo/mix/engine/geom"

// Input tracks key, button and pointer state from the events the frame loop
// dispatches.
type Input struct {
	keys    map[Key]bool
	buttons map[MouseButton]bool
	mouse   geom.Vec2
	window  WindowID
}

func NewInput() *Input {
	return &Input{keys: map[Key]bool{}, buttons: map[MouseButton]bool{}}
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKeyDown:
		in.keys[e.Key] = true
	case EventKeyUp:
		in.keys[e.Key] = false
	case EventMouseDown:
		in.buttons[e.Button] = true
		in.mouse, in.window = geom.V2(e.X, e.Y), e.WindowID
	case EventMouseUp:
		in.buttons[e.Button] = false
		in.mouse, in.window = geom.V2(e.X, e.Y), e.WindowID
	case EventMouseMove:
		in.mouse, in.window = geom.V2(e.X, e.Y), e.WindowID
	}
}

func (in *Input) IsKeyDown(k Key) bool            { return in.keys[k] }
func (in *Input) IsButtonDown(b MouseButton) bool { return in.buttons[b] }
func (in *Input) Mouse() geom.Vec2                { return in.mouse }

// MouseWindow is the window that produced the last pointer event.
func (in *Input) MouseWindow() WindowID { return in.window }
