package ui

import (
	"errors"
	"fmt"

	"github.com/incredimo/mix/engine/core"
	"github.com/incredimo/mix/engine/geom"
	"github.com/incredimo/mix/engine/gfx/renderer2d"
	"github.com/incredimo/mix/engine/layout"
)

var (
	ErrTurtleUnderflow = errors.New("ui: end turtle with no turtle open")
	ErrTurtleImbalance = errors.New("ui: turtles left open at end of draw pass")
)

// Cx2D is the draw-pass context: the arena plus the turtle stack. One is
// built per draw pass.
type Cx2D struct {
	*core.Cx
	// Font is used by text widgets that have none of their own.
	Font renderer2d.Font

	turtles   []*layout.Turtle
	unsettled bool
}

func NewCx2D(cx *core.Cx) *Cx2D {
	return &Cx2D{Cx: cx, turtles: make([]*layout.Turtle, 0, 64)}
}

// BeginTurtle opens a turtle at the zero rect.
func (c *Cx2D) BeginTurtle(l layout.Layout) *layout.Turtle {
	return c.BeginTurtleAt(geom.Rect{}, l)
}

// BeginSizedTurtle opens a turtle at the origin with the given size.
func (c *Cx2D) BeginSizedTurtle(size geom.Vec2, l layout.Layout) *layout.Turtle {
	return c.BeginTurtleAt(geom.Rect{Size: size}, l)
}

func (c *Cx2D) BeginTurtleAt(r geom.Rect, l layout.Layout) *layout.Turtle {
	t := layout.NewTurtle(r, l)
	c.turtles = append(c.turtles, t)
	return t
}

// EndTurtle pops the innermost turtle. It panics with ErrTurtleUnderflow if
// none is open.
func (c *Cx2D) EndTurtle() *layout.Turtle {
	n := len(c.turtles)
	if n == 0 {
		panic(ErrTurtleUnderflow)
	}
	t := c.turtles[n-1]
	c.turtles[n-1] = nil
	c.turtles = c.turtles[:n-1]
	return t
}

// WithTurtle runs fn with a turtle open at r and pops back to the current
// depth however fn exits.
func (c *Cx2D) WithTurtle(r geom.Rect, l layout.Layout, fn func(t *layout.Turtle)) {
	depth := len(c.turtles)
	t := c.BeginTurtleAt(r, l)
	defer c.truncate(depth)
	fn(t)
}

func (c *Cx2D) truncate(depth int) {
	for i := depth; i < len(c.turtles); i++ {
		c.turtles[i] = nil
	}
	c.turtles = c.turtles[:depth]
}

func (c *Cx2D) PeekTurtle() (*layout.Turtle, bool) {
	if n := len(c.turtles); n > 0 {
		return c.turtles[n-1], true
	}
	return nil, false
}

func (c *Cx2D) Depth() int { return len(c.turtles) }

// WalkTurtle sizes the innermost turtle and returns its rect; the zero rect
// if none is open.
func (c *Cx2D) WalkTurtle(w layout.Walk) geom.Rect {
	t, ok := c.PeekTurtle()
	if !ok {
		return geom.Rect{}
	}
	return t.Walk(w)
}

func (c *Cx2D) PeekWalkTurtle(w layout.Walk) geom.Rect {
	t, ok := c.PeekTurtle()
	if !ok {
		return geom.Rect{}
	}
	return t.PeekWalk(w)
}

// AddTurtleItem places size in the innermost turtle. A Stretch-aligned
// turtle grows the item to its inner cross extent.
func (c *Cx2D) AddTurtleItem(size geom.Vec2) (geom.Rect, bool) {
	t, ok := c.PeekTurtle()
	if !ok {
		return geom.Rect{}, false
	}
	return t.AddItem(t.StretchCross(size, t.Layout.AlignItems)), true
}

// Available is the inner size of the innermost turtle.
func (c *Cx2D) Available() geom.Vec2 {
	if t, ok := c.PeekTurtle(); ok {
		return t.Inner().Size
	}
	return geom.Vec2{}
}

// Relayout records that a container's size changed during this pass, so
// the tree should be laid out again before it is presented.
func (c *Cx2D) Relayout() { c.unsettled = true }

// Unsettled reports whether any container called Relayout this pass.
func (c *Cx2D) Unsettled() bool { return c.unsettled }

// Finish ends the pass. Turtles or draw lists still open are an error; both
// stacks are reset so the next pass starts clean.
func (c *Cx2D) Finish() error {
	turtles, lists := len(c.turtles), c.DrawListDepth()
	c.truncate(0)
	c.ResetDrawStack()
	if turtles > 0 || lists > 0 {
		return fmt.Errorf("%w: %d turtles, %d draw lists", ErrTurtleImbalance, turtles, lists)
	}
	return nil
}
