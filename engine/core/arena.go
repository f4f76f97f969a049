package core

import (
	"log/slog"
	"time"

	"github.com/incredimo/mix/engine/geom"
	"github.com/incredimo/mix/engine/profiler"
)

// DefaultFrameInterval is the sleep between loop iterations.
const DefaultFrameInterval = 16 * time.Millisecond

// GPUInfo describes the device limits the backend reports.
type GPUInfo struct {
	Vendor           string
	Renderer         string
	MaxTextureSize   int
	PerformanceLevel string
}

// Cx is the resource arena. It mints ids for every resource kind and owns the
// records they name. Operations on ids it does not own are no-ops.
//
// A Cx is confined to the goroutine running its frame loop.
type Cx struct {
	windows    map[WindowID]*WindowHandle
	passes     map[PassID]*Pass
	drawLists  map[DrawListID]*DrawList
	textures   map[TextureID]*Texture
	geometries map[GeometryID]*Geometry
	shaders    map[ShaderID]*Shader
	areas      map[AreaID]*AreaData

	windowIDs   idSeq[WindowID]
	passIDs     idSeq[PassID]
	drawListIDs idSeq[DrawListID]
	textureIDs  idSeq[TextureID]
	geometryIDs idSeq[GeometryID]
	shaderIDs   idSeq[ShaderID]
	areaIDs     idSeq[AreaID]

	drawStack []DrawListID

	GPU   GPUInfo
	Debug bool
	Stats profiler.FrameStats
	Input *Input

	backend       Backend
	log           *slog.Logger
	sleep         func(time.Duration)
	frameInterval time.Duration
}

type Option func(*Cx)

func WithLogger(l *slog.Logger) Option { return func(c *Cx) { c.log = l } }

func WithDebug(on bool) Option { return func(c *Cx) { c.Debug = on } }

func WithBackend(b Backend) Option { return func(c *Cx) { c.backend = b } }

// WithSleep replaces time.Sleep in the frame loop.
func WithSleep(f func(time.Duration)) Option { return func(c *Cx) { c.sleep = f } }

func WithFrameInterval(d time.Duration) Option {
	return func(c *Cx) {
		if d >= 0 {
			c.frameInterval = d
		}
	}
}

func NewCx(opts ...Option) *Cx {
	c := &Cx{
		windows:    map[WindowID]*WindowHandle{},
		passes:     map[PassID]*Pass{},
		drawLists:  map[DrawListID]*DrawList{},
		textures:   map[TextureID]*Texture{},
		geometries: map[GeometryID]*Geometry{},
		shaders:    map[ShaderID]*Shader{},
		areas:      map[AreaID]*AreaData{},

		GPU:   GPUInfo{MaxTextureSize: 4096, PerformanceLevel: "high"},
		Input: NewInput(),

		log:           slog.Default(),
		sleep:         time.Sleep,
		frameInterval: DefaultFrameInterval,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Cx) Logger() *slog.Logger { return c.log }
func (c *Cx) Backend() Backend     { return c.backend }

// miss records an operation on an id the arena does not own. It only logs
// when Debug is set.
func (c *Cx) miss(kind string, id uint64, op string) {
	if !c.Debug {
		return
	}
	c.log.Debug("unknown id", "kind", kind, "id", id, "op", op)
}

// ---- creation ----

// CreateWindow asks the backend for a native window and records it under the
// id the backend will use on events. Without a backend, or when the backend
// declines, the arena mints the id itself.
func (c *Cx) CreateWindow(title string, width, height int) WindowID {
	var id WindowID
	if c.backend != nil {
		id = c.backend.CreateWindow(title, width, height)
	}
	if id.IsEmpty() || c.windows[id] != nil {
		id = c.windowIDs.next()
	} else {
		c.windowIDs.observe(id)
	}
	c.windows[id] = newWindowHandle(id, title, width, height)
	c.log.Debug("window created", "id", uint64(id), "title", title)
	return id
}

func (c *Cx) CreatePass() PassID {
	id := c.passIDs.next()
	c.passes[id] = newPass(id)
	return id
}

func (c *Cx) CreateDrawList() DrawListID {
	id := c.drawListIDs.next()
	c.drawLists[id] = newDrawList(id)
	return id
}

func (c *Cx) CreateTexture(width, height int, format TextureFormat) TextureID {
	id := c.textureIDs.next()
	c.textures[id] = &Texture{ID: id, Width: width, Height: height, Format: format}
	return id
}

func (c *Cx) CreateGeometry() GeometryID {
	id := c.geometryIDs.next()
	c.geometries[id] = &Geometry{ID: id}
	return id
}

func (c *Cx) CreateShader() ShaderID {
	id := c.shaderIDs.next()
	c.shaders[id] = &Shader{ID: id}
	return id
}

// CreateArea returns a fresh area with an empty rect and no draw list.
func (c *Cx) CreateArea() AreaID {
	id := c.areaIDs.next()
	c.areas[id] = &AreaData{}
	return id
}

// ---- lookup ----

func (c *Cx) Window(id WindowID) (*WindowHandle, bool) {
	w, ok := c.windows[id]
	return w, ok
}

func (c *Cx) Pass(id PassID) (*Pass, bool) {
	p, ok := c.passes[id]
	return p, ok
}

func (c *Cx) DrawList(id DrawListID) (*DrawList, bool) {
	dl, ok := c.drawLists[id]
	return dl, ok
}

func (c *Cx) Texture(id TextureID) (*Texture, bool) {
	t, ok := c.textures[id]
	return t, ok
}

func (c *Cx) Geometry(id GeometryID) (*Geometry, bool) {
	g, ok := c.geometries[id]
	return g, ok
}

func (c *Cx) Shader(id ShaderID) (*Shader, bool) {
	s, ok := c.shaders[id]
	return s, ok
}

func (c *Cx) Area(id AreaID) (AreaData, bool) {
	a, ok := c.areas[id]
	if !ok {
		return AreaData{}, false
	}
	return *a, true
}

// Passes returns pass ids in creation order.
func (c *Cx) Passes() []PassID {
	out := make([]PassID, 0, len(c.passes))
	for id := PassID(1); id <= c.passIDs.last; id++ {
		if _, ok := c.passes[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// ---- mutation ----

func (c *Cx) SetAreaRect(id AreaID, r geom.Rect) {
	a, ok := c.areas[id]
	if !ok {
		c.miss("area", uint64(id), "set_rect")
		return
	}
	a.Rect = r
}

func (c *Cx) SetAreaDrawList(id AreaID, dl DrawListID) {
	a, ok := c.areas[id]
	if !ok {
		c.miss("area", uint64(id), "set_draw_list")
		return
	}
	a.DrawList = dl
}

func (c *Cx) SetShaderSource(id ShaderID, vertex, fragment string) {
	s, ok := c.shaders[id]
	if !ok {
		c.miss("shader", uint64(id), "set_source")
		return
	}
	s.VertexSource, s.FragmentSource = vertex, fragment
}

func (c *Cx) AddShaderUniform(id ShaderID, name string, typ ShaderUniformType) {
	s, ok := c.shaders[id]
	if !ok {
		c.miss("shader", uint64(id), "add_uniform")
		return
	}
	s.Uniforms = append(s.Uniforms, ShaderUniform{Name: name, Type: typ})
}

func (c *Cx) SetGeometryVertices(id GeometryID, vertices []byte) {
	g, ok := c.geometries[id]
	if !ok {
		c.miss("geometry", uint64(id), "set_vertices")
		return
	}
	g.Vertices = vertices
}

func (c *Cx) SetGeometryIndices(id GeometryID, indices []uint16) {
	g, ok := c.geometries[id]
	if !ok {
		c.miss("geometry", uint64(id), "set_indices")
		return
	}
	g.Indices = indices
}

func (c *Cx) AddGeometryAttribute(id GeometryID, name string, offset int, format VertexFormat) {
	g, ok := c.geometries[id]
	if !ok {
		c.miss("geometry", uint64(id), "add_attribute")
		return
	}
	g.Attributes = append(g.Attributes, VertexAttribute{Name: name, Offset: offset, Format: format})
}

func (c *Cx) SetTexturePixels(id TextureID, pixels []byte) {
	t, ok := c.textures[id]
	if !ok {
		c.miss("texture", uint64(id), "set_pixels")
		return
	}
	t.Pixels = pixels
}

// ClearDrawList empties a list in place. Its id and view transform survive.
func (c *Cx) ClearDrawList(id DrawListID) {
	dl, ok := c.drawLists[id]
	if !ok {
		c.miss("draw_list", uint64(id), "clear")
		return
	}
	dl.Clear()
}

func (c *Cx) AddDrawItem(id DrawListID, item DrawItem) {
	dl, ok := c.drawLists[id]
	if !ok {
		c.miss("draw_list", uint64(id), "add_item")
		return
	}
	dl.AddDrawItem(item)
}

func (c *Cx) SetViewTransform(id DrawListID, m geom.Mat4) {
	dl, ok := c.drawLists[id]
	if !ok {
		c.miss("draw_list", uint64(id), "set_view_transform")
		return
	}
	dl.SetViewTransform(m)
}

// UpdatePass runs f on the pass if it exists.
func (c *Cx) UpdatePass(id PassID, f func(*Pass)) {
	p, ok := c.passes[id]
	if !ok {
		c.miss("pass", uint64(id), "update")
		return
	}
	f(p)
}

// ---- backend ----

// Init starts the backend. Without a backend it does nothing.
func (c *Cx) Init() error {
	if c.backend == nil {
		return nil
	}
	return c.backend.Init()
}

func (c *Cx) PollEvents() []Event {
	if c.backend == nil {
		return nil
	}
	return c.backend.PollEvents()
}

// Render records frame timing and asks the backend to present.
func (c *Cx) Render() {
	defer profiler.Start(profiler.ScopeRender)()
	c.Stats.UpdateNow()
	if c.backend != nil {
		c.backend.Present(c)
	}
}

func (c *Cx) Shutdown() {
	if c.backend != nil {
		c.backend.Shutdown()
	}
}
