// Package geom holds the small float32 vector, rectangle and matrix types
// shared by the arena, the layout engine and the widgets.
package geom

import "github.com/chewxy/math32"

type Vec2 struct{ X, Y float32 }

func V2(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2          { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2          { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float32) Vec2     { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Array() [2]float32        { return [2]float32{v.X, v.Y} }
func (v Vec2) IsZero() bool             { return v.X == 0 && v.Y == 0 }
func (v Vec2) Max(o Vec2) Vec2          { return Vec2{math32.Max(v.X, o.X), math32.Max(v.Y, o.Y)} }
func (v Vec2) Min(o Vec2) Vec2          { return Vec2{math32.Min(v.X, o.X), math32.Min(v.Y, o.Y)} }
func (v Vec2) Transpose() Vec2          { return Vec2{v.Y, v.X} }
func (v Vec2) Equal(o Vec2, tol float32) bool {
	return math32.Abs(v.X-o.X) <= tol && math32.Abs(v.Y-o.Y) <= tol
}

// Rect is an axis-aligned rectangle with a top-left origin; Y grows downward.
type Rect struct {
	Pos  Vec2
	Size Vec2
}

func R(x, y, w, h float32) Rect { return Rect{Pos: Vec2{x, y}, Size: Vec2{w, h}} }

func (r Rect) X() float32      { return r.Pos.X }
func (r Rect) Y() float32      { return r.Pos.Y }
func (r Rect) Width() float32  { return r.Size.X }
func (r Rect) Height() float32 { return r.Size.Y }
func (r Rect) Right() float32  { return r.Pos.X + r.Size.X }
func (r Rect) Bottom() float32 { return r.Pos.Y + r.Size.Y }
func (r Rect) Center() Vec2    { return Vec2{r.Pos.X + r.Size.X*0.5, r.Pos.Y + r.Size.Y*0.5} }

// Contains reports whether p lies inside r. All four edges are inclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Pos.X && p.X <= r.Right() &&
		p.Y >= r.Pos.Y && p.Y <= r.Bottom()
}

// Intersects reports whether r and o overlap with a non-empty area.
func (r Rect) Intersects(o Rect) bool {
	return r.Pos.X < o.Right() && r.Right() > o.Pos.X &&
		r.Pos.Y < o.Bottom() && r.Bottom() > o.Pos.Y
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	x := math32.Min(r.Pos.X, o.Pos.X)
	y := math32.Min(r.Pos.Y, o.Pos.Y)
	right := math32.Max(r.Right(), o.Right())
	bottom := math32.Max(r.Bottom(), o.Bottom())
	return R(x, y, right-x, bottom-y)
}

// Intersection returns the overlap of r and o, or false when they do not overlap.
func (r Rect) Intersection(o Rect) (Rect, bool) {
	x := math32.Max(r.Pos.X, o.Pos.X)
	y := math32.Max(r.Pos.Y, o.Pos.Y)
	right := math32.Min(r.Right(), o.Right())
	bottom := math32.Min(r.Bottom(), o.Bottom())
	if right > x && bottom > y {
		return R(x, y, right-x, bottom-y), true
	}
	return Rect{}, false
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect { return Rect{Pos: r.Pos.Add(d), Size: r.Size} }

// Array returns x, y, width, height.
func (r Rect) Array() [4]float32 { return [4]float32{r.Pos.X, r.Pos.Y, r.Size.X, r.Size.Y} }
