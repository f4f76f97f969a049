package main

import (
	"fmt"
	"runtime"

	"github.com/incredimo/mix/engine/colors"
	"github.com/incredimo/mix/engine/core"
	"github.com/incredimo/mix/engine/geom"
	"github.com/incredimo/mix/engine/layout"
	"github.com/incredimo/mix/engine/ui"
)

// statsPanel shows frame timing and device info, refreshed every draw.
type statsPanel struct {
	view  *ui.UIView
	frame *ui.UILabel
	time  *ui.UILabel
	gpu   *ui.UILabel
	mem   *ui.UILabel
}

func newStatsPanel(cx *core.Cx, theme ui.Theme) *statsPanel {
	label := func() *ui.UILabel {
		return ui.Label(cx, "").Theme(theme).FontSize(12).Color(colors.White)
	}
	p := &statsPanel{frame: label(), time: label(), gpu: label(), mem: label()}
	p.view = ui.View(cx, p.frame, p.time, p.gpu, p.mem).
		Layout(layout.NewVertical().
			WithSize(layout.Fit(), layout.Fit()).
			WithPadding(geom.V2(8, 8))).
		Background(colors.Black.WithAlpha(0.5)).
		CornerRadius(theme.RadiusMedium)
	return p
}

func (p *statsPanel) HandleEvent(cx *core.Cx, ev core.Event) { p.view.HandleEvent(cx, ev) }

func (p *statsPanel) Draw(cx *ui.Cx2D) ui.DrawStep {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	p.frame.SetText(fmt.Sprintf("Frame: %d", cx.Stats.FrameCount))
	p.time.SetText(fmt.Sprintf("%.3f ms (%.1f FPS)", float64(cx.Stats.FrameTime.Microseconds())/1000, cx.Stats.FPS))
	p.gpu.SetText(fmt.Sprintf("GPU: %s %s", cx.GPU.Vendor, cx.GPU.Renderer))
	p.mem.SetText(fmt.Sprintf("Heap: %.2f MB, goroutines: %d", float64(mem.HeapAlloc)/(1<<20), runtime.NumGoroutine()))
	return p.view.Draw(cx)
}
