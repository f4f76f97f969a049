package ui

import (
	"github.com/incredimo/mix/engine/colors"
	"github.com/incredimo/mix/engine/core"
	"github.com/incredimo/mix/engine/geom"
	"github.com/incredimo/mix/engine/gfx/renderer2d"
	"github.com/incredimo/mix/engine/layout"
	"github.com/incredimo/mix/engine/profiler"
)

// UIView is a container that places its children with a turtle. Fit axes
// take the content size of the previous pass, so a view whose content size
// changed calls Relayout on the pass context.
type UIView struct {
	base
	layout   layout.Layout
	bg       *renderer2d.DrawQuad
	children []Widget
	content  geom.Vec2
}

func View(cx *core.Cx, children ...Widget) *UIView {
	return &UIView{
		base:     newBase(cx),
		layout:   layout.NewVertical(),
		bg:       renderer2d.NewDrawQuad().WithColor(colors.Transparent),
		children: children,
	}
}

func (v *UIView) Layout(l layout.Layout) *UIView         { v.layout = l; return v }
func (v *UIView) Background(c colors.Color) *UIView      { v.bg.Color = c; return v }
func (v *UIView) CornerRadius(r float32) *UIView         { v.bg.CornerRadius = r; return v }
func (v *UIView) Spacing(s float32) *UIView              { v.layout.Spacing = s; return v }
func (v *UIView) Padding(x, y float32) *UIView           { v.layout.Padding = geom.V2(x, y); return v }
func (v *UIView) AlignItems(a layout.Align) *UIView      { v.layout.AlignItems = a; return v }
func (v *UIView) JustifyContent(a layout.Align) *UIView  { v.layout.JustifyContent = a; return v }
func (v *UIView) Direction(d layout.Direction) *UIView   { v.layout.Direction = d; return v }
func (v *UIView) Size(width, height layout.Size) *UIView { v.layout.Width, v.layout.Height = width, height; return v }
func (v *UIView) Add(children ...Widget) *UIView         { v.children = append(v.children, children...); return v }
func (v *UIView) Children() []Widget                     { return v.children }
func (v *UIView) ContentSize() geom.Vec2                 { return v.content }
func (v *UIView) LayoutPolicy() layout.Layout            { return v.layout }

func (v *UIView) HandleEvent(cx *core.Cx, ev core.Event) {
	for _, c := range v.children {
		c.HandleEvent(cx, ev)
	}
}

func (v *UIView) Draw(cx *Cx2D) DrawStep {
	defer profiler.Start(profiler.ScopeViewDraw)()
	size := v.layout.ResolveSize(cx.Available(), v.content)
	r, ok := cx.AddTurtleItem(size)
	if !ok {
		r = geom.Rect{Size: size}
	}
	v.place(cx.Cx, r)

	if !v.dl.Begin(cx.Cx) {
		return Done
	}
	if v.bg.Color.A() > 0 {
		v.bg.Draw(cx.Cx, v.dl.ID(), r)
	}

	step := Done
	var content geom.Vec2
	cx.WithTurtle(r, v.layout, func(t *layout.Turtle) {
		t.Lead = v.lead(t)
		for _, c := range v.children {
			step = step.Or(c.Draw(cx))
		}
		content = cx.PeekWalkTurtle(layout.WalkCompute).Size
	})
	v.dl.End(cx.Cx)

	if content != v.content {
		v.content = content
		cx.Relayout()
	}
	return step
}

// lead offsets the first child along the main axis so the previous frame's
// content is justified inside the view. Overflowing content starts at the
// leading edge.
func (v *UIView) lead(t *layout.Turtle) float32 {
	inner := t.Inner().Size
	used := v.content.Sub(v.layout.Padding.Scale(2)).Max(geom.Vec2{})
	if v.layout.Direction == layout.Vertical {
		inner, used = inner.Transpose(), used.Transpose()
	}
	return max(0, v.layout.JustifyContent.Resolve(inner.X, used.X))
}
