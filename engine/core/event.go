package core

// Event is the closed set of values the backend produces and widgets consume.
type Event interface{ isEvent() }

type EventNone struct{}

func (EventNone) isEvent() {}

type EventInit struct{}

func (EventInit) isEvent() {}

// EventShutdown terminates the frame loop after its handler runs.
type EventShutdown struct{}

func (EventShutdown) isEvent() {}

type EventDraw struct{}

func (EventDraw) isEvent() {}

type EventWindowResize struct {
	WindowID      WindowID
	Width, Height float32
	DPIFactor     float32
}

func (EventWindowResize) isEvent() {}

type EventWindowClose struct{ WindowID WindowID }

func (EventWindowClose) isEvent() {}

type EventMouseDown struct {
	WindowID WindowID
	X, Y     float32
	Button   MouseButton
}

func (EventMouseDown) isEvent() {}

type EventMouseUp struct {
	WindowID WindowID
	X, Y     float32
	Button   MouseButton
}

func (EventMouseUp) isEvent() {}

type EventMouseMove struct {
	WindowID WindowID
	X, Y     float32
}

func (EventMouseMove) isEvent() {}

type EventKeyDown struct {
	WindowID WindowID
	Key      Key
	IsRepeat bool
}

func (EventKeyDown) isEvent() {}

type EventKeyUp struct {
	WindowID WindowID
	Key      Key
}

func (EventKeyUp) isEvent() {}

type EventTextInput struct {
	WindowID WindowID
	Text     string
}

func (EventTextInput) isEvent() {}

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

type Key int

const (
	KeyUnknown Key = iota
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyBackspace
	KeyReturn
	KeySpace
	KeyTab
	KeyShift
	KeyControl
	KeyAlt
	KeyCapsLock
	KeyNumLock
	KeyScrollLock
)
