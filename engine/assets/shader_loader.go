package assets

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/incredimo/mix/engine/core"
)

// LoadShader reads shaders/<name> from fsys. The source is returned as is;
// presenters that need a terminator add it themselves.
func LoadShader(fsys fs.FS, name string) (string, error) {
	b, err := fs.ReadFile(fsys, path.Join("shaders", name))
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	return string(b), nil
}

// ShaderSource names a vertex/fragment pair and the uniforms it declares.
type ShaderSource struct {
	Vertex   string
	Fragment string
	Uniforms []core.ShaderUniform
}

// CreateShader loads both stages and registers them in the arena.
func CreateShader(cx *core.Cx, fsys fs.FS, src ShaderSource) (core.ShaderID, error) {
	vs, err := LoadShader(fsys, src.Vertex)
	if err != nil {
		return 0, err
	}
	fsrc, err := LoadShader(fsys, src.Fragment)
	if err != nil {
		return 0, err
	}
	b := core.NewShaderBuilder().Vertex(vs).Fragment(fsrc)
	for _, u := range src.Uniforms {
		b.Uniform(u.Name, u.Type)
	}
	return b.Build(cx), nil
}
