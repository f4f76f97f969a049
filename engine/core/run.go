package core

import (
	"fmt"
	"runtime"

	"github.com/incredimo/mix/engine/geom"
	"github.com/incredimo/mix/engine/profiler"
)

// Handler receives every event the frame loop dispatches, including the
// synthetic Init, Draw and Shutdown events.
type Handler func(cx *Cx, ev Event)

// Run drives the frame loop until the backend reports EventShutdown:
//
//	Init, Draw, present; then per tick:
//	poll -> dispatch -> extra Draw if a window resized -> Draw -> present -> sleep
//
// The handler sees EventShutdown once, after which the backend is shut down
// and Run returns.
func (c *Cx) Run(h Handler) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := c.Init(); err != nil {
		return fmt.Errorf("core: backend init: %w", err)
	}
	c.log.Info("frame loop start", "interval", c.frameInterval)

	c.dispatch(h, EventInit{})
	c.dispatch(h, EventDraw{})
	c.Render()

	for {
		end := profiler.Start(profiler.ScopeFrame)
		resized := false
		for _, ev := range c.PollEvents() {
			switch ev.(type) {
			case EventShutdown:
				c.dispatch(h, ev)
				end()
				c.Shutdown()
				c.log.Info("engine exit", "frames", c.Stats.FrameCount)
				return nil
			case EventWindowResize:
				resized = true
			}
			c.dispatch(h, ev)
		}
		if resized {
			c.dispatch(h, EventDraw{})
		}
		c.dispatch(h, EventDraw{})
		c.Render()
		end()
		c.sleep(c.frameInterval)
	}
}

func (c *Cx) dispatch(h Handler, ev Event) {
	defer profiler.Start(profiler.ScopeDispatch)()
	c.observe(ev)
	h(c, ev)
}

// observe keeps arena-owned state in step with the event stream before the
// handler sees it.
func (c *Cx) observe(ev Event) {
	c.Input.Handle(ev)
	if e, ok := ev.(EventWindowResize); ok {
		w, found := c.windows[e.WindowID]
		if !found {
			c.miss("window", uint64(e.WindowID), "resize")
			return
		}
		w.InnerSize = geom.V2(e.Width, e.Height)
		w.OuterSize = w.InnerSize
		if e.DPIFactor > 0 {
			w.DPIFactor = e.DPIFactor
		}
	}
}
