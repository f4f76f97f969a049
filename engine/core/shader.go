package core

type ShaderUniformType uint8

const (
	ShaderFloat ShaderUniformType = iota
	ShaderVec2
	ShaderVec3
	ShaderVec4
	ShaderMat4
	ShaderTexture2D
)

type ShaderUniform struct {
	Name string
	Type ShaderUniformType
}

// Shader carries opaque source text and the uniform declarations a DrawItem's
// values are matched against, in order.
type Shader struct {
	ID             ShaderID
	VertexSource   string
	FragmentSource string
	Uniforms       []ShaderUniform
}

// ShaderBuilder collects a shader definition and creates it in an arena.
type ShaderBuilder struct {
	vertex, fragment string
	uniforms         []ShaderUniform
}

func NewShaderBuilder() *ShaderBuilder { return &ShaderBuilder{} }

func (b *ShaderBuilder) Vertex(src string) *ShaderBuilder   { b.vertex = src; return b }
func (b *ShaderBuilder) Fragment(src string) *ShaderBuilder { b.fragment = src; return b }
func (b *ShaderBuilder) Uniform(name string, typ ShaderUniformType) *ShaderBuilder {
	b.uniforms = append(b.uniforms, ShaderUniform{Name: name, Type: typ})
	return b
}

func (b *ShaderBuilder) Build(cx *Cx) ShaderID {
	id := cx.CreateShader()
	cx.SetShaderSource(id, b.vertex, b.fragment)
	for _, u := range b.uniforms {
		cx.AddShaderUniform(id, u.Name, u.Type)
	}
	return id
}
