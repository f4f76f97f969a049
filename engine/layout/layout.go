// Package layout resolves sizes and places items for the turtle stack.
package layout

import "github.com/incredimo/mix/engine/geom"

type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

type SizeKind uint8

const (
	SizeFixed SizeKind = iota
	SizeFlex
	SizeFill
	SizeFit
)

// Size is a sizing policy for one axis.
type Size struct {
	Kind  SizeKind
	Value float32 // pixels for Fixed, factor for Flex
}

func Fixed(v float32) Size { return Size{Kind: SizeFixed, Value: v} }
func Flex(f float32) Size  { return Size{Kind: SizeFlex, Value: f} }
func Fill() Size           { return Size{Kind: SizeFill} }
func Fit() Size            { return Size{Kind: SizeFit} }

func (s Size) Resolve(available, content float32) float32 {
	switch s.Kind {
	case SizeFixed:
		return s.Value
	case SizeFlex:
		return available * s.Value
	case SizeFill:
		return available
	default:
		return content
	}
}

type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	// AlignStretch resolves to offset 0. Growing the item to the container
	// extent is up to whoever places it.
	AlignStretch
)

func (a Align) Resolve(container, item float32) float32 {
	switch a {
	case AlignCenter:
		return (container - item) * 0.5
	case AlignEnd:
		return container - item
	default:
		return 0
	}
}

// Layout is the declarative policy a turtle places its items under.
type Layout struct {
	Direction      Direction
	Width          Size
	Height         Size
	AlignItems     Align // cross axis
	JustifyContent Align // main axis
	Padding        geom.Vec2
	Spacing        float32
}

// NewHorizontal lays items left to right, filling the width and fitting the height.
func NewHorizontal() Layout {
	return Layout{Direction: Horizontal, Width: Fill(), Height: Fit()}
}

// NewVertical lays items top to bottom, filling the width and fitting the height.
func NewVertical() Layout {
	return Layout{Direction: Vertical, Width: Fill(), Height: Fit()}
}

func (l Layout) WithWidth(s Size) Layout            { l.Width = s; return l }
func (l Layout) WithHeight(s Size) Layout           { l.Height = s; return l }
func (l Layout) WithAlignItems(a Align) Layout      { l.AlignItems = a; return l }
func (l Layout) WithJustifyContent(a Align) Layout  { l.JustifyContent = a; return l }
func (l Layout) WithPadding(p geom.Vec2) Layout     { l.Padding = p; return l }
func (l Layout) WithSpacing(s float32) Layout       { l.Spacing = s; return l }
func (l Layout) WithDirection(d Direction) Layout   { l.Direction = d; return l }
func (l Layout) WithSize(width, height Size) Layout { l.Width, l.Height = width, height; return l }

// ResolveSize applies the width and height policies.
func (l Layout) ResolveSize(available, content geom.Vec2) geom.Vec2 {
	return geom.V2(
		l.Width.Resolve(available.X, content.X),
		l.Height.Resolve(available.Y, content.Y),
	)
}

// Walk selects how a turtle's final size is chosen: an explicit size, or the
// size of what was placed in it.
type Walk struct {
	size     geom.Vec2
	explicit bool
}

func WalkSize(size geom.Vec2) Walk { return Walk{size: size, explicit: true} }

var WalkCompute = Walk{}

// Size returns the explicit size, if any.
func (w Walk) Size() (geom.Vec2, bool) { return w.size, w.explicit }
