package core

// Backend is the platform collaborator: windows, the native event pump and
// presentation. Implementations live in engine/platform.
type Backend interface {
	Init() error
	// CreateWindow returns the id the backend will stamp on events for this
	// window, or 0 if it did not create one.
	CreateWindow(title string, width, height int) WindowID
	// PollEvents drains whatever is pending; it never blocks for new input.
	PollEvents() []Event
	// Present shows the arena's passes. The backend reads draw lists but
	// never mutates them.
	Present(cx *Cx)
	Shutdown()
}
