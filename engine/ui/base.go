package ui

import (
	"github.com/incredimo/mix/engine/core"
	"github.com/incredimo/mix/engine/geom"
	"github.com/incredimo/mix/engine/gfx/renderer2d"
)

// base is what every drawing widget owns: a draw list and a hit-test area,
// both created once.
type base struct {
	dl   *renderer2d.DrawList2D
	area core.AreaID
}

func newBase(cx *core.Cx) base {
	return base{dl: renderer2d.NewDrawList2D(cx), area: cx.CreateArea()}
}

func (b *base) Area() core.AreaID           { return b.area }
func (b *base) DrawListID() core.DrawListID { return b.dl.ID() }

// place records the widget's latest rect for hit-testing.
func (b *base) place(cx *core.Cx, r geom.Rect) {
	cx.SetAreaRect(b.area, r)
	cx.SetAreaDrawList(b.area, b.dl.ID())
}

func inset(r geom.Rect, pad geom.Vec2) geom.Rect {
	return geom.Rect{
		Pos:  r.Pos.Add(pad),
		Size: r.Size.Sub(pad.Scale(2)).Max(geom.Vec2{}),
	}
}
