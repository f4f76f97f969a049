package ui

import "github.com/incredimo/mix/engine/core"

// DrawStep is the outcome of a draw call: Redraw asks for another frame.
type DrawStep uint8

const (
	Done DrawStep = iota
	Redraw
)

func (s DrawStep) IsRedraw() bool { return s == Redraw }

// Or is Redraw if either step is.
func (s DrawStep) Or(o DrawStep) DrawStep {
	if s == Redraw || o == Redraw {
		return Redraw
	}
	return Done
}

func (s DrawStep) String() string {
	if s == Redraw {
		return "redraw"
	}
	return "done"
}

// Widget is a node of the tree. Containers own their children exclusively
// and forward events to them in order.
type Widget interface {
	HandleEvent(cx *core.Cx, ev core.Event)
	Draw(cx *Cx2D) DrawStep
}
