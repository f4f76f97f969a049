package core

import "github.com/incredimo/mix/engine/geom"

// UniformKind tags the value held by a DrawUniform.
type UniformKind uint8

const (
	UniformFloat UniformKind = iota
	UniformVec2
	UniformVec3
	UniformVec4
	UniformMat4
)

// DrawUniform is one inlined uniform value. Only the first Kind.Len()
// entries of Values are meaningful.
type DrawUniform struct {
	Kind   UniformKind
	Values [16]float32
}

func (k UniformKind) Len() int {
	switch k {
	case UniformFloat:
		return 1
	case UniformVec2:
		return 2
	case UniformVec3:
		return 3
	case UniformVec4:
		return 4
	case UniformMat4:
		return 16
	}
	return 0
}

func Float(v float32) DrawUniform { return DrawUniform{Kind: UniformFloat, Values: [16]float32{v}} }
func Vec2(v [2]float32) DrawUniform {
	return DrawUniform{Kind: UniformVec2, Values: [16]float32{v[0], v[1]}}
}
func Vec3(v [3]float32) DrawUniform {
	return DrawUniform{Kind: UniformVec3, Values: [16]float32{v[0], v[1], v[2]}}
}
func Vec4(v [4]float32) DrawUniform {
	return DrawUniform{Kind: UniformVec4, Values: [16]float32{v[0], v[1], v[2], v[3]}}
}
func Mat4(m geom.Mat4) DrawUniform { return DrawUniform{Kind: UniformMat4, Values: m} }

// Floats returns the meaningful values of u.
func (u DrawUniform) Floats() []float32 { return u.Values[:u.Kind.Len()] }

// DrawItem is one submission: geometry drawn with a shader, uniforms in the
// shader's declaration order, and the textures it samples. An item with a
// non-empty SubList stands for that whole list, drawn at this position.
type DrawItem struct {
	SubList       DrawListID
	Shader        ShaderID
	Geometry      GeometryID
	Uniforms      []DrawUniform
	Textures      []TextureID
	InstanceCount uint32
}

// DrawList is an ordered command buffer. Items are submitted in append order.
// The view transform belongs to the list as a whole: it applies to every item
// in the list no matter when the transform was set.
type DrawList struct {
	id            DrawListID
	items         []DrawItem
	viewTransform geom.Mat4
}

func newDrawList(id DrawListID) *DrawList {
	return &DrawList{id: id, viewTransform: geom.Identity()}
}

func (dl *DrawList) ID() DrawListID           { return dl.id }
func (dl *DrawList) Items() []DrawItem        { return dl.items }
func (dl *DrawList) Len() int                 { return len(dl.items) }
func (dl *DrawList) ViewTransform() geom.Mat4 { return dl.viewTransform }

func (dl *DrawList) AddDrawItem(item DrawItem) { dl.items = append(dl.items, item) }

// Clear drops all items but keeps the backing storage, the id and the transform.
func (dl *DrawList) Clear() { dl.items = dl.items[:0] }

func (dl *DrawList) SetViewTransform(m geom.Mat4) { dl.viewTransform = m }
