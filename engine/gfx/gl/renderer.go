// Package glbackend presents arena passes with OpenGL 3.3 core.
package glbackend

import (
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/incredimo/mix/engine/core"
	"github.com/incredimo/mix/engine/profiler"
)

type program struct {
	id       uint32
	uniforms []int32 // locations, in declaration order
	view     int32
}

// buffers hold a geometry's vertex and index data. Buffer objects are shared
// between the windows' contexts.
type buffers struct {
	vbo, ebo uint32
	count    int32
}

// vaoKey names a vertex array object. VAOs are not shared between
// contexts, so each window binds its own per geometry.
type vaoKey struct {
	win  core.WindowID
	geom core.GeometryID
}

// Renderer mirrors arena shaders, geometry and textures into GL objects on
// first use and replays draw lists. It must run on the thread owning the GL
// context.
type Renderer struct {
	log      *slog.Logger
	programs map[core.ShaderID]*program
	buffers  map[core.GeometryID]*buffers
	vaos     map[vaoKey]uint32
	textures map[core.TextureID]uint32
	failed   map[core.ShaderID]bool
}

func NewRenderer(log *slog.Logger) *Renderer {
	if log == nil {
		log = slog.Default()
	}
	return &Renderer{
		log:      log,
		programs: map[core.ShaderID]*program{},
		buffers:  map[core.GeometryID]*buffers{},
		vaos:     map[vaoKey]uint32{},
		textures: map[core.TextureID]uint32{},
		failed:   map[core.ShaderID]bool{},
	}
}

// Info reads device limits for the arena's GPU record.
func (r *Renderer) Info() core.GPUInfo {
	var maxTex int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &maxTex)
	return core.GPUInfo{
		Vendor:           gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer:         gl.GoStr(gl.GetString(gl.RENDERER)),
		MaxTextureSize:   int(maxTex),
		PerformanceLevel: "high",
	}
}

// Present draws every pass parented to win into the current framebuffer.
func (r *Renderer) Present(cx *core.Cx, win core.WindowID, fbWidth, fbHeight int) {
	defer profiler.Start(profiler.ScopePresent)()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	for _, id := range cx.Passes() {
		p, _ := cx.Pass(id)
		if p.Parent.Kind != core.PassParentWindow || p.Parent.Window != win {
			continue
		}
		if c := p.ClearColor; c != nil {
			gl.ClearColor(c.R(), c.G(), c.B(), c.A())
			gl.Clear(gl.COLOR_BUFFER_BIT)
		}
		cx.WalkDrawItems(p.MainDrawList, func(dl *core.DrawList, it core.DrawItem) {
			r.drawItem(cx, win, dl, it)
		})
	}
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (r *Renderer) drawItem(cx *core.Cx, win core.WindowID, dl *core.DrawList, it core.DrawItem) {
	sh, ok := cx.Shader(it.Shader)
	if !ok {
		return
	}
	prog := r.program(sh)
	vao, count, ok := r.vertexArray(cx, win, it.Geometry)
	if prog == nil || !ok {
		return
	}

	gl.UseProgram(prog.id)
	if prog.view >= 0 {
		vt := dl.ViewTransform()
		gl.UniformMatrix4fv(prog.view, 1, false, &vt[0])
	}

	vi, ti := 0, 0
	for i, u := range sh.Uniforms {
		loc := prog.uniforms[i]
		if u.Type == core.ShaderTexture2D {
			if ti < len(it.Textures) {
				gl.ActiveTexture(gl.TEXTURE0 + uint32(ti))
				gl.BindTexture(gl.TEXTURE_2D, r.texture(cx, it.Textures[ti]))
				gl.Uniform1i(loc, int32(ti))
			}
			ti++
			continue
		}
		if vi >= len(it.Uniforms) {
			continue
		}
		setUniform(loc, it.Uniforms[vi])
		vi++
	}

	gl.BindVertexArray(vao)
	if n := int32(it.InstanceCount); n > 1 {
		gl.DrawElementsInstanced(gl.TRIANGLES, count, gl.UNSIGNED_SHORT, nil, n)
	} else {
		gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_SHORT, nil)
	}
}

func setUniform(loc int32, u core.DrawUniform) {
	if loc < 0 {
		return
	}
	v := u.Values
	switch u.Kind {
	case core.UniformFloat:
		gl.Uniform1f(loc, v[0])
	case core.UniformVec2:
		gl.Uniform2f(loc, v[0], v[1])
	case core.UniformVec3:
		gl.Uniform3f(loc, v[0], v[1], v[2])
	case core.UniformVec4:
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	case core.UniformMat4:
		gl.UniformMatrix4fv(loc, 1, false, &v[0])
	}
}

func (r *Renderer) program(sh *core.Shader) *program {
	if p, ok := r.programs[sh.ID]; ok {
		return p
	}
	if r.failed[sh.ID] {
		return nil
	}
	id, err := makeProgram(sh.VertexSource, sh.FragmentSource)
	if err != nil {
		r.failed[sh.ID] = true
		r.log.Error("shader program", "shader", uint64(sh.ID), "err", err)
		return nil
	}
	p := &program{id: id, view: gl.GetUniformLocation(id, gl.Str("view_transform\x00"))}
	for _, u := range sh.Uniforms {
		p.uniforms = append(p.uniforms, gl.GetUniformLocation(id, gl.Str(u.Name+"\x00")))
	}
	r.programs[sh.ID] = p
	return p
}

// vertexArray returns win's VAO for geometry id, creating the shared
// buffers on first use by any window.
func (r *Renderer) vertexArray(cx *core.Cx, win core.WindowID, id core.GeometryID) (uint32, int32, bool) {
	b := r.geometry(cx, id)
	if b == nil {
		return 0, 0, false
	}
	key := vaoKey{win: win, geom: id}
	if vao, ok := r.vaos[key]; ok {
		return vao, b.count, true
	}
	g, _ := cx.Geometry(id)

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)

	stride := int32(g.Stride())
	for i, a := range g.Attributes {
		n, typ, norm := attribFormat(a.Format)
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointer(uint32(i), n, typ, norm, stride, unsafe.Pointer(uintptr(a.Offset)))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	r.vaos[key] = vao
	return vao, b.count, true
}

func (r *Renderer) geometry(cx *core.Cx, id core.GeometryID) *buffers {
	if b, ok := r.buffers[id]; ok {
		return b
	}
	g, ok := cx.Geometry(id)
	if !ok || len(g.Vertices) == 0 || len(g.Indices) == 0 {
		return nil
	}

	b := &buffers{count: int32(len(g.Indices))}
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices), gl.Ptr(g.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*2, gl.Ptr(g.Indices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	r.buffers[id] = b
	return b
}

// ForgetWindow drops win's vertex arrays. They die with the window's
// context, so nothing is deleted here.
func (r *Renderer) ForgetWindow(win core.WindowID) {
	for k := range r.vaos {
		if k.win == win {
			delete(r.vaos, k)
		}
	}
}

func (r *Renderer) texture(cx *core.Cx, id core.TextureID) uint32 {
	if t, ok := r.textures[id]; ok {
		return t
	}
	tex, ok := cx.Texture(id)
	if !ok {
		return 0
	}
	internal, format := texFormat(tex.Format)

	var t uint32
	gl.GenTextures(1, &t)
	gl.BindTexture(gl.TEXTURE_2D, t)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	var pix unsafe.Pointer
	if len(tex.Pixels) > 0 {
		pix = gl.Ptr(tex.Pixels)
	}
	typ := uint32(gl.UNSIGNED_BYTE)
	if tex.Format == core.TextureDepth32 {
		typ = gl.FLOAT
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(tex.Width), int32(tex.Height), 0, format, typ, pix)
	r.textures[id] = t
	return t
}

// attribFormat maps a vertex format to component count, GL type and
// normalization.
func attribFormat(f core.VertexFormat) (int32, uint32, bool) {
	switch f {
	case core.VertexFloat1:
		return 1, gl.FLOAT, false
	case core.VertexFloat2:
		return 2, gl.FLOAT, false
	case core.VertexFloat3:
		return 3, gl.FLOAT, false
	case core.VertexFloat4:
		return 4, gl.FLOAT, false
	case core.VertexByte4:
		return 4, gl.BYTE, true
	case core.VertexUByte4:
		return 4, gl.UNSIGNED_BYTE, true
	case core.VertexShort2:
		return 2, gl.SHORT, false
	case core.VertexUShort2:
		return 2, gl.UNSIGNED_SHORT, false
	case core.VertexShort4:
		return 4, gl.SHORT, false
	case core.VertexUShort4:
		return 4, gl.UNSIGNED_SHORT, false
	}
	return 4, gl.FLOAT, false
}

// texFormat maps a texture format to GL internal and pixel formats.
func texFormat(f core.TextureFormat) (int32, uint32) {
	switch f {
	case core.TextureBGRA8:
		return gl.RGBA8, gl.BGRA
	case core.TextureRGB8:
		return gl.RGB8, gl.RGB
	case core.TextureBGR8:
		return gl.RGB8, gl.BGR
	case core.TextureR8:
		return gl.R8, gl.RED
	case core.TextureDepth32:
		return gl.DEPTH_COMPONENT32F, gl.DEPTH_COMPONENT
	}
	return gl.RGBA8, gl.RGBA
}

// Release deletes every GL object created so far. current must be the
// window whose context is current; other windows' vertex arrays go with
// their contexts.
func (r *Renderer) Release(current core.WindowID) {
	for _, p := range r.programs {
		gl.DeleteProgram(p.id)
	}
	for _, b := range r.buffers {
		gl.DeleteBuffers(1, &b.vbo)
		gl.DeleteBuffers(1, &b.ebo)
	}
	for k, vao := range r.vaos {
		if k.win == current {
			gl.DeleteVertexArrays(1, &vao)
		}
	}
	for _, t := range r.textures {
		gl.DeleteTextures(1, &t)
	}
	clear(r.programs)
	clear(r.buffers)
	clear(r.vaos)
	clear(r.textures)
}
