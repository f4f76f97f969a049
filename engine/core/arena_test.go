package core

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incredimo/mix/engine/geom"
)

func TestIDsMonotonic(t *testing.T) {
	cx := NewCx()
	const n = 50

	var last uint64
	for i := 0; i < n; i++ {
		id := uint64(cx.CreateDrawList())
		require.NotZero(t, id)
		require.Greater(t, id, last)
		last = id
	}

	// kinds are numbered independently
	assert.Equal(t, PassID(1), cx.CreatePass())
	assert.Equal(t, AreaID(1), cx.CreateArea())
	assert.Equal(t, AreaID(2), cx.CreateArea())
	assert.Equal(t, TextureID(1), cx.CreateTexture(4, 4, TextureRGBA8))
	assert.Equal(t, GeometryID(1), cx.CreateGeometry())
	assert.Equal(t, ShaderID(1), cx.CreateShader())
	assert.Equal(t, WindowID(1), cx.CreateWindow("a", 0, 0))
	assert.Equal(t, WindowID(2), cx.CreateWindow("b", 0, 0))
}

func TestForeignIDsAreNoOps(t *testing.T) {
	other := NewCx()
	for i := 0; i < 5; i++ {
		other.CreateArea()
		other.CreateDrawList()
		other.CreateShader()
		other.CreateGeometry()
		other.CreateTexture(1, 1, TextureR8)
	}
	area := other.CreateArea()
	dl := other.CreateDrawList()
	sh := other.CreateShader()
	g := other.CreateGeometry()
	tex := other.CreateTexture(1, 1, TextureR8)

	var buf bytes.Buffer
	cx := NewCx(
		WithDebug(true),
		WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))),
	)

	assert.NotPanics(t, func() {
		cx.SetAreaRect(area, geom.R(1, 2, 3, 4))
		cx.SetAreaDrawList(area, dl)
		cx.SetShaderSource(sh, "v", "f")
		cx.AddShaderUniform(sh, "color", ShaderVec4)
		cx.SetGeometryVertices(g, []byte{1, 2, 3, 4})
		cx.SetGeometryIndices(g, []uint16{0, 1, 2})
		cx.AddGeometryAttribute(g, "pos", 0, VertexFloat2)
		cx.SetTexturePixels(tex, []byte{0})
		cx.ClearDrawList(dl)
		cx.AddDrawItem(dl, DrawItem{})
		cx.SetViewTransform(dl, geom.Identity())
		cx.UpdatePass(PassID(9), func(*Pass) { t.Fatal("called for unknown pass") })
		assert.False(t, cx.HitTest(area, 0, 0))
	})

	_, ok := cx.Area(area)
	assert.False(t, ok)
	_, ok = cx.DrawList(dl)
	assert.False(t, ok)
	_, ok = cx.Area(0)
	assert.False(t, ok)

	assert.Contains(t, buf.String(), "unknown id")
	assert.Contains(t, buf.String(), "op=set_rect")
}

func TestUnknownIDSilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	cx := NewCx(WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	cx.SetAreaRect(AreaID(42), geom.R(0, 0, 1, 1))
	assert.Empty(t, buf.String())
}

func TestAreaRecord(t *testing.T) {
	cx := NewCx()
	id := cx.CreateArea()

	a, ok := cx.Area(id)
	require.True(t, ok)
	assert.Equal(t, AreaData{}, a, "areas start zeroed")

	dl := cx.CreateDrawList()
	cx.SetAreaRect(id, geom.R(10, 10, 20, 20))
	cx.SetAreaDrawList(id, dl)

	a, _ = cx.Area(id)
	assert.Equal(t, geom.R(10, 10, 20, 20), a.Rect)
	assert.Equal(t, dl, a.DrawList)

	assert.True(t, cx.HitTest(id, 10, 10))
	assert.True(t, cx.HitTest(id, 30, 30))
	assert.False(t, cx.HitTest(id, 30.5, 30))
}

func TestDrawListClearKeepsIdentity(t *testing.T) {
	cx := NewCx()
	id := cx.CreateDrawList()
	dl, ok := cx.DrawList(id)
	require.True(t, ok)
	assert.Equal(t, geom.Identity(), dl.ViewTransform())

	m := geom.PixelOrtho(640, 480)
	cx.SetViewTransform(id, m)
	for i := 0; i < 3; i++ {
		cx.AddDrawItem(id, DrawItem{InstanceCount: 1})
	}
	require.Equal(t, 3, dl.Len())

	cx.ClearDrawList(id)
	assert.Equal(t, 0, dl.Len())
	assert.Equal(t, id, dl.ID())
	assert.Equal(t, m, dl.ViewTransform())
}

func TestShaderBuilder(t *testing.T) {
	cx := NewCx()
	id := NewShaderBuilder().
		Vertex("vs").
		Fragment("fs").
		Uniform("color", ShaderVec4).
		Uniform("tex", ShaderTexture2D).
		Build(cx)

	s, ok := cx.Shader(id)
	require.True(t, ok)
	assert.Equal(t, "vs", s.VertexSource)
	assert.Equal(t, "fs", s.FragmentSource)
	assert.Equal(t, []ShaderUniform{{"color", ShaderVec4}, {"tex", ShaderTexture2D}}, s.Uniforms)
}

func TestGeometryStride(t *testing.T) {
	cx := NewCx()
	id := cx.CreateGeometry()
	cx.AddGeometryAttribute(id, "pos", 0, VertexFloat2)
	cx.AddGeometryAttribute(id, "color", 8, VertexUByte4)
	g, _ := cx.Geometry(id)
	assert.Equal(t, 12, g.Stride())
}

func TestPassDefaults(t *testing.T) {
	cx := NewCx()
	id := cx.CreatePass()
	win := cx.CreateWindow("w", 0, 0)
	cx.UpdatePass(id, func(p *Pass) {
		p.SetWindowParent(win)
		p.SetClearColor([4]float32{1, 0, 0, 1})
	})

	p, ok := cx.Pass(id)
	require.True(t, ok)
	assert.InDelta(t, 0.001, p.ZBiasStep, 1e-9)
	assert.Equal(t, PassParent{Kind: PassParentWindow, Window: win}, p.Parent)
	require.NotNil(t, p.ClearColor)
	assert.Nil(t, p.ClearDepth)

	w, _ := cx.Window(win)
	assert.Equal(t, geom.V2(800, 600), w.InnerSize)
	assert.Equal(t, float32(1), w.DPIFactor)
}

func TestNestedDrawLists(t *testing.T) {
	cx := NewCx()
	root := cx.CreateDrawList()
	child := cx.CreateDrawList()

	cx.PushDrawList(root)
	cx.AddDrawItem(root, DrawItem{InstanceCount: 1})
	cx.PushDrawList(child)
	cx.AddDrawItem(child, DrawItem{InstanceCount: 2})
	cx.PopDrawList(child)
	cx.AddDrawItem(root, DrawItem{InstanceCount: 3})
	cx.PopDrawList(root)
	assert.Zero(t, cx.DrawListDepth())

	var got []uint32
	cx.WalkDrawItems(root, func(_ *DrawList, it DrawItem) { got = append(got, it.InstanceCount) })
	assert.Equal(t, []uint32{1, 2, 3}, got)
}

func TestUniformFloats(t *testing.T) {
	assert.Equal(t, []float32{2}, Float(2).Floats())
	assert.Equal(t, []float32{1, 2, 3, 4}, Vec4([4]float32{1, 2, 3, 4}).Floats())
	assert.Len(t, Mat4(geom.Identity()).Floats(), 16)
}

type sizingBackend struct {
	Backend
	sized  [3]int
	titled string
}

func (b *sizingBackend) SetWindowSize(id WindowID, w, h int)     { b.sized = [3]int{int(id), w, h} }
func (b *sizingBackend) SetWindowTitle(id WindowID, title string) { b.titled = title }

func TestSetWindowSizeReachesBackend(t *testing.T) {
	b := &sizingBackend{}
	cx := NewCx()
	id := cx.CreateWindow("w", 0, 0)
	cx.backend = b

	cx.SetWindowSize(id, 320, 240)
	w, _ := cx.Window(id)
	assert.Equal(t, geom.V2(320, 240), w.InnerSize)
	assert.Equal(t, [3]int{int(id), 320, 240}, b.sized)

	cx.SetWindowTitle(id, "renamed")
	assert.Equal(t, "renamed", w.Title)
	assert.Equal(t, "renamed", b.titled)

	cx.SetWindowSize(id+1, 1, 1)
	assert.Equal(t, 320, b.sized[1])
}
