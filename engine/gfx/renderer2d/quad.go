package renderer2d

import (
	"embed"

	"github.com/incredimo/mix/engine/assets"
	"github.com/incredimo/mix/engine/colors"
	"github.com/incredimo/mix/engine/core"
	"github.com/incredimo/mix/engine/geom"
)

//go:embed shaders
var shaderFS embed.FS

var (
	quadShader = assets.ShaderSource{
		Vertex:   "quad.vert",
		Fragment: "quad.frag",
		Uniforms: []core.ShaderUniform{
			{Name: "color", Type: core.ShaderVec4},
			{Name: "border_color", Type: core.ShaderVec4},
			{Name: "border_width", Type: core.ShaderFloat},
			{Name: "corner_radius", Type: core.ShaderFloat},
			{Name: "size", Type: core.ShaderVec2},
			{Name: "pos", Type: core.ShaderVec2},
		},
	}
	textShader = assets.ShaderSource{
		Vertex:   "text.vert",
		Fragment: "text.frag",
		Uniforms: []core.ShaderUniform{
			{Name: "color", Type: core.ShaderVec4},
			{Name: "font_size", Type: core.ShaderFloat},
			{Name: "glyph_rect", Type: core.ShaderVec4},
			{Name: "glyph_uv", Type: core.ShaderVec4},
			{Name: "font_texture", Type: core.ShaderTexture2D},
		},
	}
)

// unitQuad creates the (0,0)-(1,1) quad with position and uv attributes.
func unitQuad(cx *core.Cx) core.GeometryID {
	id := cx.CreateGeometry()
	cx.SetGeometryVertices(id, EncodeFloat32s(nil,
		0, 0, 0, 0,
		1, 0, 1, 0,
		1, 1, 1, 1,
		0, 1, 0, 1,
	))
	cx.SetGeometryIndices(id, []uint16{0, 1, 2, 0, 2, 3})
	cx.AddGeometryAttribute(id, "position", 0, core.VertexFloat2)
	cx.AddGeometryAttribute(id, "uv", 8, core.VertexFloat2)
	return id
}

// pipeline is a lazily created shader and geometry pair.
type pipeline struct {
	shader   core.ShaderID
	geometry core.GeometryID
}

func (p *pipeline) ready(cx *core.Cx, src assets.ShaderSource) bool {
	if p.shader.IsEmpty() {
		id, err := assets.CreateShader(cx, shaderFS, src)
		if err != nil {
			cx.Logger().Error("renderer2d: shader", "vertex", src.Vertex, "err", err)
			return false
		}
		p.shader = id
	}
	if p.geometry.IsEmpty() {
		p.geometry = unitQuad(cx)
	}
	return true
}

// DrawQuad draws a filled, optionally bordered and rounded rectangle.
type DrawQuad struct {
	Color        colors.Color
	BorderColor  colors.Color
	BorderWidth  float32
	CornerRadius float32

	pipe pipeline
}

func NewDrawQuad() *DrawQuad {
	return &DrawQuad{Color: colors.White, BorderColor: colors.Transparent}
}

func (q *DrawQuad) WithColor(c colors.Color) *DrawQuad       { q.Color = c; return q }
func (q *DrawQuad) WithBorderColor(c colors.Color) *DrawQuad { q.BorderColor = c; return q }
func (q *DrawQuad) WithBorderWidth(w float32) *DrawQuad      { q.BorderWidth = w; return q }
func (q *DrawQuad) WithCornerRadius(r float32) *DrawQuad     { q.CornerRadius = r; return q }

// Draw appends one item for r to dl.
func (q *DrawQuad) Draw(cx *core.Cx, dl core.DrawListID, r geom.Rect) {
	q.DrawColored(cx, dl, r, q.Color)
}

// DrawColored is Draw with the fill color replaced for this item only.
func (q *DrawQuad) DrawColored(cx *core.Cx, dl core.DrawListID, r geom.Rect, fill colors.Color) {
	if !q.pipe.ready(cx, quadShader) {
		return
	}
	cx.AddDrawItem(dl, core.DrawItem{
		Shader:   q.pipe.shader,
		Geometry: q.pipe.geometry,
		Uniforms: []core.DrawUniform{
			core.Vec4(fill),
			core.Vec4(q.BorderColor),
			core.Float(q.BorderWidth),
			core.Float(q.CornerRadius),
			core.Vec2(r.Size.Array()),
			core.Vec2(r.Pos.Array()),
		},
		InstanceCount: 1,
	})
}
