package ui

import (
	"strings"

	"github.com/incredimo/mix/engine/colors"
	"github.com/incredimo/mix/engine/core"
	"github.com/incredimo/mix/engine/geom"
	"github.com/incredimo/mix/engine/gfx/renderer2d"
	"github.com/incredimo/mix/engine/profiler"
	"github.com/incredimo/mix/engine/text"
)

// UILabel draws a block of text. It takes its size from the text plus
// padding and never handles input.
type UILabel struct {
	base
	text     *renderer2d.DrawText
	padding  geom.Vec2
	maxWidth float32
	lines    string
}

func Label(cx *core.Cx, str string) *UILabel {
	l := &UILabel{base: newBase(cx), text: renderer2d.NewDrawText(str)}
	return l.Theme(LightTheme())
}

// Theme resets text style and padding from t.
func (l *UILabel) Theme(t Theme) *UILabel {
	l.text.Style = t.DefaultText
	l.padding = geom.V2(t.SpacingSmall, t.SpacingSmall)
	return l
}

func (l *UILabel) Color(c colors.Color) *UILabel { l.text.Style.Color = c; return l }
func (l *UILabel) FontSize(size float32) *UILabel {
	l.text.Style.FontSize = size
	return l
}
func (l *UILabel) Align(a renderer2d.TextAlign) *UILabel  { l.text.Style.Align = a; return l }
func (l *UILabel) Font(f renderer2d.Font) *UILabel        { l.text.Font = f; return l }
func (l *UILabel) Padding(x, y float32) *UILabel          { l.padding = geom.V2(x, y); return l }
func (l *UILabel) Style(st renderer2d.TextStyle) *UILabel { l.text.Style = st; return l }

// MaxWidth wraps text at word boundaries so no line exceeds width. Zero
// disables wrapping.
func (l *UILabel) MaxWidth(width float32) *UILabel { l.maxWidth = width; return l }

func (l *UILabel) Text() string { return l.text.Text }

// SetText changes the text; the new size applies from the next draw.
func (l *UILabel) SetText(s string) { l.text.Text = s }

func (l *UILabel) TextStyle() renderer2d.TextStyle { return l.text.Style }

func (l *UILabel) HandleEvent(*core.Cx, core.Event) {}

// Measure is the label's size including padding.
func (l *UILabel) Measure() geom.Vec2 {
	st := l.text.Style
	var f text.Face
	if l.text.Font != nil {
		f = l.text.Font
	}
	l.lines = l.text.Text
	if l.maxWidth > 0 {
		l.lines = wrapText(f, l.text.Text, st.FontSize, l.maxWidth-l.padding.X*2)
	}
	return text.Measure(f, l.lines, st.FontSize, st.LineHeight).Add(l.padding.Scale(2))
}

func (l *UILabel) Draw(cx *Cx2D) DrawStep {
	defer profiler.Start(profiler.ScopeLabelDraw)()
	if l.text.Font == nil && cx.Font != nil {
		l.text.Font = cx.Font
	}
	size := l.Measure()
	r, ok := cx.AddTurtleItem(size)
	if !ok {
		r = geom.Rect{Size: size}
	}
	l.place(cx.Cx, r)

	if !l.dl.Begin(cx.Cx) {
		return Done
	}
	full := l.text.Text
	l.text.Text = l.lines
	l.text.Draw(cx.Cx, l.dl.ID(), inset(r, l.padding))
	l.text.Text = full
	l.dl.End(cx.Cx)
	return Done
}

// wrapText breaks s at spaces so each line fits width. Words wider than width
// get a line of their own. Explicit newlines are kept.
func wrapText(f text.Face, s string, fontSize, width float32) string {
	if s == "" || width <= 0 {
		return s
	}
	measure := func(w string) float32 { return text.Measure(f, w, fontSize, 0).X }
	space := measure(" ")

	var out []string
	for _, raw := range strings.Split(s, "\n") {
		words := strings.Fields(raw)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		cur, curW := words[0], measure(words[0])
		for _, w := range words[1:] {
			ww := measure(w)
			if curW+space+ww > width {
				out = append(out, cur)
				cur, curW = w, ww
				continue
			}
			cur += " " + w
			curW += space + ww
		}
		out = append(out, cur)
	}
	return strings.Join(out, "\n")
}
