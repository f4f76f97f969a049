// Package headless is an in-memory core.Backend. It replays scripted event
// batches, one per poll, and records what the frame loop presents.
package headless

import (
	"github.com/incredimo/mix/engine/core"
)

// Frame is what one Present call saw.
type Frame struct {
	Passes int
	Items  int // leaf draw items reachable from every pass's main draw list
}

type Backend struct {
	// ShutdownWhenDrained makes PollEvents return EventShutdown once the
	// script is exhausted. Without it an exhausted script yields no events.
	ShutdownWhenDrained bool
	InitErr             error

	script   [][]core.Event
	polls    int
	windowID core.WindowID
	titles   []string

	Inited   bool
	ShutDown bool
	Frames   []Frame
}

func New(batches ...[]core.Event) *Backend {
	return &Backend{script: batches, ShutdownWhenDrained: true}
}

// Queue appends a batch to be returned by a later poll.
func (b *Backend) Queue(evs ...core.Event) { b.script = append(b.script, evs) }

func (b *Backend) Init() error {
	if b.InitErr != nil {
		return b.InitErr
	}
	b.Inited = true
	return nil
}

// CreateWindow numbers windows per backend instance.
func (b *Backend) CreateWindow(title string, width, height int) core.WindowID {
	b.windowID++
	b.titles = append(b.titles, title)
	return b.windowID
}

func (b *Backend) Titles() []string { return b.titles }

func (b *Backend) PollEvents() []core.Event {
	if b.polls < len(b.script) {
		evs := b.script[b.polls]
		b.polls++
		return evs
	}
	b.polls++
	if b.ShutdownWhenDrained {
		return []core.Event{core.EventShutdown{}}
	}
	return nil
}

func (b *Backend) Polls() int { return b.polls }

func (b *Backend) Present(cx *core.Cx) {
	var f Frame
	for _, id := range cx.Passes() {
		f.Passes++
		p, _ := cx.Pass(id)
		cx.WalkDrawItems(p.MainDrawList, func(*core.DrawList, core.DrawItem) { f.Items++ })
	}
	b.Frames = append(b.Frames, f)
}

func (b *Backend) Shutdown() { b.ShutDown = true }

var _ core.Backend = (*Backend)(nil)
