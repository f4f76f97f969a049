package layout

import "github.com/incredimo/mix/engine/geom"

// Item is a placed rectangle. Align records a per-item override.
type Item struct {
	Rect     geom.Rect
	Align    Align
	Override bool
}

// Turtle places items one after another along its layout's main axis. Its
// item list is its whole memory of prior placement.
type Turtle struct {
	Rect   geom.Rect
	Layout Layout
	Items  []Item
	// Lead shifts the first item along the main axis (content justification).
	Lead float32
}

func NewTurtle(rect geom.Rect, l Layout) *Turtle {
	return &Turtle{Rect: rect, Layout: l}
}

// Inner is the turtle's rect minus padding on every side.
func (t *Turtle) Inner() geom.Rect {
	p := t.Layout.Padding
	return geom.Rect{
		Pos:  t.Rect.Pos.Add(p),
		Size: t.Rect.Size.Sub(p.Scale(2)).Max(geom.Vec2{}),
	}
}

func (t *Turtle) AddItem(size geom.Vec2) geom.Rect {
	return t.place(size, t.Layout.AlignItems, false)
}

// AddItemAligned places size using align instead of the layout's AlignItems.
func (t *Turtle) AddItemAligned(size geom.Vec2, align Align) geom.Rect {
	return t.place(size, align, true)
}

func (t *Turtle) place(size geom.Vec2, align Align, override bool) geom.Rect {
	l := t.Layout
	var r geom.Rect
	r.Size = size

	switch l.Direction {
	case Horizontal:
		if n := len(t.Items); n > 0 {
			r.Pos.X = t.Items[n-1].Rect.Right() + l.Spacing
		} else {
			r.Pos.X = t.Rect.X() + l.Padding.X + t.Lead
		}
		r.Pos.Y = t.Rect.Y() + l.Padding.Y + align.Resolve(t.Rect.Height()-l.Padding.Y*2, size.Y)
	case Vertical:
		if n := len(t.Items); n > 0 {
			r.Pos.Y = t.Items[n-1].Rect.Bottom() + l.Spacing
		} else {
			r.Pos.Y = t.Rect.Y() + l.Padding.Y + t.Lead
		}
		r.Pos.X = t.Rect.X() + l.Padding.X + align.Resolve(t.Rect.Width()-l.Padding.X*2, size.X)
	}

	t.Items = append(t.Items, Item{Rect: r, Align: align, Override: override})
	return r
}

// ContentSize sums main-axis extents plus spacing, takes the largest
// cross-axis extent, then adds twice the padding on both axes. An empty
// turtle has zero content size, padding included.
func (t *Turtle) ContentSize() geom.Vec2 {
	if len(t.Items) == 0 {
		return geom.Vec2{}
	}
	var main, cross float32
	for i, it := range t.Items {
		s := it.Rect.Size
		if t.Layout.Direction == Vertical {
			s = s.Transpose()
		}
		main += s.X
		if i > 0 {
			main += t.Layout.Spacing
		}
		if s.Y > cross {
			cross = s.Y
		}
	}
	size := geom.V2(main, cross)
	if t.Layout.Direction == Vertical {
		size = size.Transpose()
	}
	return size.Add(t.Layout.Padding.Scale(2))
}

// Walk fixes the turtle's size and returns its rect.
func (t *Turtle) Walk(w Walk) geom.Rect {
	t.Rect = t.PeekWalk(w)
	return t.Rect
}

// PeekWalk is Walk without storing the result.
func (t *Turtle) PeekWalk(w Walk) geom.Rect {
	r := t.Rect
	if size, ok := w.Size(); ok {
		r.Size = size
	} else {
		r.Size = t.ContentSize()
	}
	return r
}

// StretchCross grows size to the inner cross extent when align is Stretch.
func (t *Turtle) StretchCross(size geom.Vec2, align Align) geom.Vec2 {
	if align != AlignStretch {
		return size
	}
	inner := t.Inner().Size
	if t.Layout.Direction == Horizontal {
		size.Y = inner.Y
	} else {
		size.X = inner.X
	}
	return size
}
