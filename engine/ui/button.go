package ui

import (
	"github.com/incredimo/mix/engine/colors"
	"github.com/incredimo/mix/engine/core"
	"github.com/incredimo/mix/engine/geom"
	"github.com/incredimo/mix/engine/gfx/renderer2d"
	"github.com/incredimo/mix/engine/profiler"
	"github.com/incredimo/mix/engine/text"
)

type ButtonState uint8

const (
	ButtonNormal ButtonState = iota
	ButtonHover
	ButtonPressed
	ButtonDisabled
)

func (s ButtonState) String() string {
	switch s {
	case ButtonHover:
		return "hover"
	case ButtonPressed:
		return "pressed"
	case ButtonDisabled:
		return "disabled"
	default:
		return "normal"
	}
}

var (
	disabledFill = colors.RGBA(0.5, 0.5, 0.5, 0.5)
	disabledText = colors.RGBA(0.7, 0.7, 0.7, 0.7)
)

// UIButton is a clickable quad with a centered caption. A click is a left
// press and release both inside the button.
type UIButton struct {
	base
	bg      *renderer2d.DrawQuad
	caption *renderer2d.DrawText
	padding geom.Vec2
	color   colors.Color
	txColor colors.Color
	state   ButtonState
	onClick func(cx *core.Cx)

	// BlockWhenDisabled makes a disabled button ignore input. Off, pointer
	// events move a disabled button out of Disabled like any other state.
	BlockWhenDisabled bool
}

func Button(cx *core.Cx, caption string) *UIButton {
	b := &UIButton{
		base:    newBase(cx),
		bg:      renderer2d.NewDrawQuad(),
		caption: renderer2d.NewDrawText(caption),
	}
	return b.Theme(LightTheme())
}

// Theme resets color, caption style, padding and corner radius from t.
func (b *UIButton) Theme(t Theme) *UIButton {
	b.color = t.Primary
	b.caption.Style = t.ButtonText
	b.txColor = t.ButtonText.Color
	b.padding = geom.V2(t.SpacingMedium, t.SpacingMedium)
	b.bg.CornerRadius = t.RadiusMedium
	return b
}

func (b *UIButton) Color(c colors.Color) *UIButton     { b.color = c; return b }
func (b *UIButton) TextColor(c colors.Color) *UIButton { b.txColor = c; return b }
func (b *UIButton) Padding(x, y float32) *UIButton     { b.padding = geom.V2(x, y); return b }
func (b *UIButton) FontSize(size float32) *UIButton    { b.caption.Style.FontSize = size; return b }
func (b *UIButton) CornerRadius(r float32) *UIButton   { b.bg.CornerRadius = r; return b }
func (b *UIButton) Font(f renderer2d.Font) *UIButton   { b.caption.Font = f; return b }

// OnClick replaces the click callback.
func (b *UIButton) OnClick(fn func(cx *core.Cx)) *UIButton { b.onClick = fn; return b }

func (b *UIButton) Caption() string     { return b.caption.Text }
func (b *UIButton) SetCaption(s string) { b.caption.Text = s }
func (b *UIButton) State() ButtonState  { return b.state }

func (b *UIButton) SetEnabled(on bool) {
	switch {
	case !on:
		b.state = ButtonDisabled
	case b.state == ButtonDisabled:
		b.state = ButtonNormal
	}
}

func (b *UIButton) Enabled() bool { return b.state != ButtonDisabled }

func (b *UIButton) HandleEvent(cx *core.Cx, ev core.Event) {
	if b.state == ButtonDisabled && b.BlockWhenDisabled {
		return
	}

	switch e := ev.(type) {
	case core.EventMouseDown:
		if e.Button != core.MouseLeft {
			return
		}
		if cx.HitTest(b.area, e.X, e.Y) {
			b.state = ButtonPressed
		}
	case core.EventMouseUp:
		if e.Button != core.MouseLeft {
			return
		}
		if !cx.HitTest(b.area, e.X, e.Y) {
			b.state = ButtonNormal
			return
		}
		if b.state == ButtonPressed && b.onClick != nil {
			b.onClick(cx)
		}
		b.state = ButtonHover
	case core.EventMouseMove:
		// moves only swap Normal and Hover; Pressed and Disabled hold
		inside := cx.HitTest(b.area, e.X, e.Y)
		switch {
		case inside && b.state == ButtonNormal:
			b.state = ButtonHover
		case !inside && b.state == ButtonHover:
			b.state = ButtonNormal
		}
	}
}

// palette returns the fill and caption color for the current state.
func (b *UIButton) palette() (fill, caption colors.Color) {
	switch b.state {
	case ButtonHover:
		return b.color.Lighten(0.1), b.txColor
	case ButtonPressed:
		return b.color.Darken(0.1), b.txColor
	case ButtonDisabled:
		return disabledFill, disabledText
	}
	return b.color, b.txColor
}

// Measure is the caption size plus padding on every side.
func (b *UIButton) Measure() geom.Vec2 {
	var f text.Face
	if b.caption.Font != nil {
		f = b.caption.Font
	}
	st := b.caption.Style
	return text.Measure(f, b.caption.Text, st.FontSize, st.LineHeight).Add(b.padding.Scale(2))
}

func (b *UIButton) Draw(cx *Cx2D) DrawStep {
	defer profiler.Start(profiler.ScopeButtonDraw)()
	if b.caption.Font == nil && cx.Font != nil {
		b.caption.Font = cx.Font
	}
	size := b.Measure()
	r, ok := cx.AddTurtleItem(size)
	if !ok {
		r = geom.Rect{Size: size}
	}
	b.place(cx.Cx, r)

	if !b.dl.Begin(cx.Cx) {
		return Done
	}
	fill, fg := b.palette()
	b.bg.DrawColored(cx.Cx, b.dl.ID(), r, fill)
	b.caption.Style.Color = fg
	b.caption.Draw(cx.Cx, b.dl.ID(), inset(r, b.padding))
	b.dl.End(cx.Cx)
	return Done
}
