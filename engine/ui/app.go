package ui

import (
	"fmt"

	"github.com/incredimo/mix/engine/core"
	"github.com/incredimo/mix/engine/gfx/renderer2d"
	"github.com/incredimo/mix/engine/profiler"
	"github.com/incredimo/mix/engine/text"
)

// maxLayoutPasses bounds how many times one Draw event re-runs the tree
// while views are still settling their size.
const maxLayoutPasses = 3

// App connects a widget tree to the frame loop.
type App struct {
	Root Widget
	// Font is handed to every draw pass for widgets without their own.
	Font renderer2d.Font

	redraw bool
	passes int
}

func NewApp(root Widget) *App { return &App{Root: root} }

// Handle is the core.Handler: Draw events draw the tree, everything else is
// routed to it.
func (a *App) Handle(cx *core.Cx, ev core.Event) {
	if _, ok := ev.(core.EventDraw); ok {
		a.Draw(cx)
		return
	}
	if a.Root != nil {
		a.Root.HandleEvent(cx, ev)
	}
}

// Draw runs draw passes until no container calls Relayout, or the pass
// limit is hit. A Redraw step from the tree is left for the next frame.
func (a *App) Draw(cx *core.Cx) {
	defer profiler.Start(profiler.ScopeAppDraw)()
	if a.Root == nil {
		return
	}
	a.redraw = false
	for i := 0; i < maxLayoutPasses; i++ {
		a.passes++
		c2 := NewCx2D(cx)
		c2.Font = a.Font
		step := a.Root.Draw(c2)
		if err := c2.Finish(); err != nil {
			cx.Logger().Error("draw pass", "error", err)
		}
		a.redraw = step.IsRedraw() || c2.Unsettled()
		if !c2.Unsettled() {
			return
		}
	}
}

// NeedsRedraw reports whether the last Draw asked for another frame, or
// ended with the tree unsettled.
func (a *App) NeedsRedraw() bool { return a.redraw }

// DrawPasses counts every draw pass run so far.
func (a *App) DrawPasses() int { return a.passes }

func (a *App) Run(cx *core.Cx) error { return cx.Run(a.Handle) }

// LoadDefaultFont rasterizes the built-in font and uploads its atlas.
func LoadDefaultFont(cx *core.Cx) (*text.Font, error) {
	f, err := text.Default(32)
	if err != nil {
		return nil, fmt.Errorf("ui: default font: %w", err)
	}
	f.Upload(cx)
	return f, nil
}
