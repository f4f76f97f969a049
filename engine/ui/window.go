package ui

import (
	"github.com/incredimo/mix/engine/core"
	"github.com/incredimo/mix/engine/geom"
	"github.com/incredimo/mix/engine/gfx/renderer2d"
	"github.com/incredimo/mix/engine/layout"
	"github.com/incredimo/mix/engine/profiler"
)

const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 600
)

// UIWindow owns a native window, the pass that renders into it and the root
// content view.
type UIWindow struct {
	base
	id      core.WindowID
	pass    core.PassID
	bg      *renderer2d.DrawQuad
	theme   Theme
	content *UIView
	resized bool
}

func Window(cx *core.Cx, title string) *UIWindow {
	w := &UIWindow{
		base:    newBase(cx),
		id:      cx.CreateWindow(title, defaultWindowWidth, defaultWindowHeight),
		pass:    cx.CreatePass(),
		bg:      renderer2d.NewDrawQuad().WithCornerRadius(0),
		content: View(cx).Layout(layout.NewVertical().WithSize(layout.Fill(), layout.Fill())),
	}
	cx.UpdatePass(w.pass, func(p *core.Pass) {
		p.SetWindowParent(w.id)
		p.SetMainDrawList(w.dl.ID())
	})
	return w.Theme(LightTheme())
}

func (w *UIWindow) ID() core.WindowID   { return w.id }
func (w *UIWindow) PassID() core.PassID { return w.pass }
func (w *UIWindow) Content() *UIView    { return w.content }

func (w *UIWindow) Theme(t Theme) *UIWindow {
	w.theme = t
	w.bg.Color = t.Background
	return w
}

// Size resizes both the arena record and, where supported, the native window.
func (w *UIWindow) Size(cx *core.Cx, width, height int) *UIWindow {
	cx.SetWindowSize(w.id, width, height)
	return w
}

// SetContent replaces the root view.
func (w *UIWindow) SetContent(v *UIView) *UIWindow { w.content = v; return w }

// Add appends children to the root view.
func (w *UIWindow) Add(children ...Widget) *UIWindow { w.content.Add(children...); return w }

func (w *UIWindow) Title(cx *core.Cx) string {
	if h, ok := cx.Window(w.id); ok {
		return h.Title
	}
	return ""
}

func (w *UIWindow) SetTitle(cx *core.Cx, title string) { cx.SetWindowTitle(w.id, title) }

func (w *UIWindow) HandleEvent(cx *core.Cx, ev core.Event) {
	if e, ok := ev.(core.EventWindowResize); ok && e.WindowID == w.id {
		w.resized = true
	}
	w.content.HandleEvent(cx, ev)
}

func (w *UIWindow) innerSize(cx *core.Cx) geom.Vec2 {
	if h, ok := cx.Window(w.id); ok {
		return h.InnerSize
	}
	return geom.V2(defaultWindowWidth, defaultWindowHeight)
}

// Draw fills the window's pass: background, pixel projection, then the
// content laid out in a turtle covering the window.
func (w *UIWindow) Draw(cx *Cx2D) DrawStep {
	defer profiler.Start(profiler.ScopeWindowDraw)()
	size := w.innerSize(cx.Cx)
	r := geom.Rect{Size: size}
	w.place(cx.Cx, r)
	w.resized = false

	cx.UpdatePass(w.pass, func(p *core.Pass) {
		p.SetClearColor(w.theme.Background)
		p.SetMainDrawList(w.dl.ID())
	})

	w.dl.BeginAlways(cx.Cx)
	w.dl.SetViewTransform(cx.Cx, geom.PixelOrtho(size.X, size.Y))
	w.bg.Draw(cx.Cx, w.dl.ID(), r)

	step := Done
	cx.WithTurtle(r, layout.NewVertical().WithSize(layout.Fill(), layout.Fill()), func(*layout.Turtle) {
		step = w.content.Draw(cx)
	})
	w.dl.End(cx.Cx)
	return step
}

// Resized reports whether a resize for this window arrived since the last
// draw.
func (w *UIWindow) Resized() bool { return w.resized }
