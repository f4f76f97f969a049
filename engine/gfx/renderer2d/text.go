package renderer2d

import (
	"strings"

	"github.com/incredimo/mix/engine/colors"
	"github.com/incredimo/mix/engine/core"
	"github.com/incredimo/mix/engine/geom"
	"github.com/incredimo/mix/engine/text"
)

type TextAlign uint8

const (
	TextLeft TextAlign = iota
	TextCenter
	TextRight
)

type TextStyle struct {
	FontSize   float32
	FontName   string
	Color      colors.Color
	Align      TextAlign
	LineHeight float32 // multiple of FontSize
}

func DefaultTextStyle() TextStyle {
	return TextStyle{
		FontSize:   16,
		FontName:   "default",
		Color:      colors.Black,
		LineHeight: text.DefaultLineHeight,
	}
}

// Font is a glyph source with its atlas already in the arena.
type Font interface {
	text.Face
	Texture() core.TextureID
}

// DrawText lays out a string one glyph per draw item.
type DrawText struct {
	Text  string
	Style TextStyle
	Font  Font // may be nil: text is measured but not drawn

	pipe pipeline
}

func NewDrawText(s string) *DrawText {
	return &DrawText{Text: s, Style: DefaultTextStyle()}
}

func (t *DrawText) face() text.Face {
	if t.Font == nil {
		return nil
	}
	return t.Font
}

// Measure is the size of the whole text block.
func (t *DrawText) Measure() geom.Vec2 {
	return text.Measure(t.face(), t.Text, t.Style.FontSize, t.Style.LineHeight)
}

// Draw places the text inside r, top-aligned, horizontally aligned per line
// by Style.Align. Nothing is emitted without a font texture.
func (t *DrawText) Draw(cx *core.Cx, dl core.DrawListID, r geom.Rect) {
	if t.Font == nil || t.Font.Texture().IsEmpty() {
		return
	}
	if !t.pipe.ready(cx, textShader) {
		return
	}

	st := t.Style
	lineHeight := st.LineHeight
	if lineHeight <= 0 {
		lineHeight = text.DefaultLineHeight
	}
	m := t.Font.Metrics()
	scale := float32(1)
	if m.SizePx > 0 {
		scale = st.FontSize / m.SizePx
	}
	tex := t.Font.Texture()

	y := r.Y()
	for _, line := range strings.Split(t.Text, "\n") {
		w := text.Measure(t.Font, line, st.FontSize, lineHeight).X
		x := r.X()
		switch st.Align {
		case TextCenter:
			x += (r.Width() - w) * 0.5
		case TextRight:
			x += r.Width() - w
		}
		baseline := y + m.Ascent*scale

		var prev rune
		for _, ch := range line {
			x += text.Kern(t.Font, prev, ch, st.FontSize)
			prev = ch
			g, ok := t.Font.Glyph(ch)
			if !ok {
				x += text.Advance(t.Font, ch, st.FontSize)
				continue
			}
			if g.W > 0 && g.H > 0 {
				cx.AddDrawItem(dl, core.DrawItem{
					Shader:   t.pipe.shader,
					Geometry: t.pipe.geometry,
					Uniforms: []core.DrawUniform{
						core.Vec4(st.Color),
						core.Float(st.FontSize),
						core.Vec4([4]float32{
							x + g.BearingX*scale,
							baseline - g.BearingY*scale,
							float32(g.W) * scale,
							float32(g.H) * scale,
						}),
						core.Vec4([4]float32{g.U0, g.V0, g.U1, g.V1}),
					},
					Textures:      []core.TextureID{tex},
					InstanceCount: 1,
				})
			}
			x += g.Advance * scale
		}
		y += st.FontSize * lineHeight
	}
}
