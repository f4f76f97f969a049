// Package platform provides the desktop backend for the frame loop.
package platform

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/incredimo/mix/engine/core"
	glbackend "github.com/incredimo/mix/engine/gfx/gl"
)

// GLFW is a core.Backend backed by GLFW windows sharing one GL context.
// Every method must be called from the thread running the frame loop.
type GLFW struct {
	cfg      core.Config
	log      *slog.Logger
	inited   bool
	nextID   core.WindowID
	windows  map[core.WindowID]*glfw.Window
	order    []core.WindowID
	queue    []core.Event
	closing  []core.WindowID
	renderer *glbackend.Renderer
	gpu      core.GPUInfo
}

func NewGLFW(cfg core.Config, log *slog.Logger) *GLFW {
	if log == nil {
		log = slog.Default()
	}
	return &GLFW{cfg: cfg, log: log, windows: map[core.WindowID]*glfw.Window{}}
}

// Init starts GLFW. Windows created earlier already did, so repeat calls are
// no-ops.
func (g *GLFW) Init() error {
	if g.inited {
		return nil
	}
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("platform: glfw init: %w", err)
	}
	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)
	g.inited = true
	return nil
}

// GPU is what the GL driver reported once the first window existed.
func (g *GLFW) GPU() core.GPUInfo { return g.gpu }

// CreateWindow opens a native window. It returns 0 if GLFW or GL could not
// start, leaving the arena to mint an id for a window that never shows.
func (g *GLFW) CreateWindow(title string, width, height int) core.WindowID {
	if err := g.Init(); err != nil {
		g.log.Error("create window", "err", err)
		return 0
	}
	var share *glfw.Window
	if len(g.order) > 0 {
		share = g.windows[g.order[0]]
	}
	win, err := glfw.CreateWindow(width, height, title, nil, share)
	if err != nil {
		g.log.Error("create window", "title", title, "err", err)
		return 0
	}
	win.MakeContextCurrent()
	if g.cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	if g.renderer == nil {
		if err := gl.Init(); err != nil {
			g.log.Error("gl init", "err", err)
			win.Destroy()
			return 0
		}
		g.renderer = glbackend.NewRenderer(g.log)
		g.gpu = g.renderer.Info()
		g.log.Info("gl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)), "renderer", g.gpu.Renderer)
	}

	g.nextID++
	id := g.nextID
	g.windows[id] = win
	g.order = append(g.order, id)
	g.bind(id, win)
	return id
}

// bind translates GLFW callbacks into queued events tagged with id.
func (g *GLFW) bind(id core.WindowID, win *glfw.Window) {
	win.SetCloseCallback(func(*glfw.Window) {
		g.queue = append(g.queue, core.EventWindowClose{WindowID: id})
		g.closing = append(g.closing, id)
	})
	win.SetSizeCallback(func(w *glfw.Window, width, height int) {
		sx, _ := w.GetContentScale()
		g.queue = append(g.queue, core.EventWindowResize{
			WindowID: id, Width: float32(width), Height: float32(height), DPIFactor: sx,
		})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		g.queue = append(g.queue, core.EventMouseMove{WindowID: id, X: float32(x), Y: float32(y)})
	})
	win.SetMouseButtonCallback(func(w *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := w.GetCursorPos()
		btn := translateButton(b)
		if action == glfw.Press {
			g.queue = append(g.queue, core.EventMouseDown{WindowID: id, X: float32(x), Y: float32(y), Button: btn})
		} else {
			g.queue = append(g.queue, core.EventMouseUp{WindowID: id, X: float32(x), Y: float32(y), Button: btn})
		}
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		switch action {
		case glfw.Press, glfw.Repeat:
			g.queue = append(g.queue, core.EventKeyDown{WindowID: id, Key: k, IsRepeat: action == glfw.Repeat})
		case glfw.Release:
			g.queue = append(g.queue, core.EventKeyUp{WindowID: id, Key: k})
		}
	})
	win.SetCharCallback(func(_ *glfw.Window, r rune) {
		g.queue = append(g.queue, core.EventTextInput{WindowID: id, Text: string(r)})
	})
}

// close destroys a window. Closing the last one ends the loop.
func (g *GLFW) close(id core.WindowID) {
	win, ok := g.windows[id]
	if !ok {
		return
	}
	if g.renderer != nil {
		g.renderer.ForgetWindow(id)
	}
	win.Destroy()
	delete(g.windows, id)
	for i, o := range g.order {
		if o == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	if len(g.windows) == 0 {
		g.queue = append(g.queue, core.EventShutdown{})
	}
}

func (g *GLFW) PollEvents() []core.Event {
	if !g.inited {
		return nil
	}
	glfw.PollEvents()
	// windows cannot be destroyed from their own callbacks
	for _, id := range g.closing {
		g.close(id)
	}
	g.closing = g.closing[:0]
	evs := g.queue
	g.queue = nil
	return evs
}

// Present renders each window's passes and swaps its buffers.
func (g *GLFW) Present(cx *core.Cx) {
	if g.renderer == nil {
		return
	}
	for _, id := range g.order {
		win := g.windows[id]
		win.MakeContextCurrent()
		fw, fh := win.GetFramebufferSize()
		g.renderer.Present(cx, id, fw, fh)
		win.SwapBuffers()
	}
}

func (g *GLFW) SetWindowSize(id core.WindowID, width, height int) {
	if win, ok := g.windows[id]; ok {
		win.SetSize(width, height)
	}
}

func (g *GLFW) SetWindowTitle(id core.WindowID, title string) {
	if win, ok := g.windows[id]; ok {
		win.SetTitle(title)
	}
}

func (g *GLFW) Shutdown() {
	if !g.inited {
		return
	}
	if g.renderer != nil {
		if len(g.order) > 0 {
			g.windows[g.order[0]].MakeContextCurrent()
			g.renderer.Release(g.order[0])
		}
		g.renderer = nil
	}
	for _, win := range g.windows {
		win.Destroy()
	}
	clear(g.windows)
	g.order = nil
	glfw.Terminate()
	g.inited = false
}

func translateButton(b glfw.MouseButton) core.MouseButton {
	switch b {
	case glfw.MouseButtonRight:
		return core.MouseRight
	case glfw.MouseButtonMiddle:
		return core.MouseMiddle
	default:
		return core.MouseLeft
	}
}

var namedKeys = map[glfw.Key]core.Key{
	glfw.KeyEscape:       core.KeyEscape,
	glfw.KeyInsert:       core.KeyInsert,
	glfw.KeyDelete:       core.KeyDelete,
	glfw.KeyHome:         core.KeyHome,
	glfw.KeyEnd:          core.KeyEnd,
	glfw.KeyPageUp:       core.KeyPageUp,
	glfw.KeyPageDown:     core.KeyPageDown,
	glfw.KeyLeft:         core.KeyLeft,
	glfw.KeyUp:           core.KeyUp,
	glfw.KeyRight:        core.KeyRight,
	glfw.KeyDown:         core.KeyDown,
	glfw.KeyBackspace:    core.KeyBackspace,
	glfw.KeyEnter:        core.KeyReturn,
	glfw.KeyKPEnter:      core.KeyReturn,
	glfw.KeySpace:        core.KeySpace,
	glfw.KeyTab:          core.KeyTab,
	glfw.KeyLeftShift:    core.KeyShift,
	glfw.KeyRightShift:   core.KeyShift,
	glfw.KeyLeftControl:  core.KeyControl,
	glfw.KeyRightControl: core.KeyControl,
	glfw.KeyLeftAlt:      core.KeyAlt,
	glfw.KeyRightAlt:     core.KeyAlt,
	glfw.KeyCapsLock:     core.KeyCapsLock,
	glfw.KeyNumLock:      core.KeyNumLock,
	glfw.KeyScrollLock:   core.KeyScrollLock,
}

func translateKey(k glfw.Key) core.Key {
	switch {
	case k >= glfw.Key0 && k <= glfw.Key9:
		return core.Key0 + core.Key(k-glfw.Key0)
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return core.KeyA + core.Key(k-glfw.KeyA)
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return core.KeyF1 + core.Key(k-glfw.KeyF1)
	}
	if ck, ok := namedKeys[k]; ok {
		return ck
	}
	return core.KeyUnknown
}
