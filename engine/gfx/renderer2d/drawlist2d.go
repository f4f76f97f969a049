// Package renderer2d turns 2D primitives into draw items in the arena.
package renderer2d

import (
	"github.com/incredimo/mix/engine/core"
	"github.com/incredimo/mix/engine/geom"
)

// DrawList2D is a widget's handle on one arena draw list. The list is
// created once and refilled every draw pass.
type DrawList2D struct {
	id             core.DrawListID
	DirtyCheckRect geom.Rect
}

func NewDrawList2D(cx *core.Cx) *DrawList2D {
	return &DrawList2D{id: cx.CreateDrawList()}
}

func (d *DrawList2D) ID() core.DrawListID { return d.id }

// Begin clears the list and opens it inside whatever list is currently open.
// It reports false, doing nothing, if the arena no longer has the list.
func (d *DrawList2D) Begin(cx *core.Cx) bool {
	if _, ok := cx.DrawList(d.id); !ok {
		return false
	}
	d.BeginAlways(cx)
	return true
}

func (d *DrawList2D) BeginAlways(cx *core.Cx) {
	cx.ClearDrawList(d.id)
	cx.PushDrawList(d.id)
}

func (d *DrawList2D) End(cx *core.Cx) { cx.PopDrawList(d.id) }

func (d *DrawList2D) SetViewTransform(cx *core.Cx, m geom.Mat4) {
	cx.SetViewTransform(d.id, m)
}
