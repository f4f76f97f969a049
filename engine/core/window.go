package core

import "github.com/incredimo/mix/engine/geom"

// WindowHandle is the arena's record of an on-screen window.
type WindowHandle struct {
	ID         WindowID
	Title      string
	Position   geom.Vec2
	InnerSize  geom.Vec2
	OuterSize  geom.Vec2
	DPIFactor  float32
	Fullscreen bool
	Topmost    bool
}

func newWindowHandle(id WindowID, title string, width, height int) *WindowHandle {
	size := geom.V2(800, 600)
	if width > 0 && height > 0 {
		size = geom.V2(float32(width), float32(height))
	}
	return &WindowHandle{
		ID:        id,
		Title:     title,
		InnerSize: size,
		OuterSize: size,
		DPIFactor: 1,
	}
}

// WindowSizer is implemented by backends that can resize a native window.
type WindowSizer interface {
	SetWindowSize(id WindowID, width, height int)
}

// WindowTitler is implemented by backends that can retitle a native window.
type WindowTitler interface {
	SetWindowTitle(id WindowID, title string)
}

// SetWindowSize updates the window record and, if the backend supports it,
// the native window.
func (c *Cx) SetWindowSize(id WindowID, width, height int) {
	w, ok := c.windows[id]
	if !ok {
		c.miss("window", uint64(id), "set_size")
		return
	}
	w.InnerSize = geom.V2(float32(width), float32(height))
	w.OuterSize = w.InnerSize
	if s, ok := c.backend.(WindowSizer); ok {
		s.SetWindowSize(id, width, height)
	}
}

func (c *Cx) SetWindowTitle(id WindowID, title string) {
	w, ok := c.windows[id]
	if !ok {
		c.miss("window", uint64(id), "set_title")
		return
	}
	w.Title = title
	if t, ok := c.backend.(WindowTitler); ok {
		t.SetWindowTitle(id, title)
	}
}
