package main

import (
	"fmt"

	"github.com/incredimo/mix/engine/colors"
	"github.com/incredimo/mix/engine/core"
	"github.com/incredimo/mix/engine/gfx/renderer2d"
	"github.com/incredimo/mix/engine/layout"
	"github.com/incredimo/mix/engine/ui"
)

// counter is the demo: a value and three buttons that change it.
type counter struct {
	count  int
	window *ui.UIWindow
	value  *ui.UILabel

	dec, reset, inc *ui.UIButton
}

func newCounter(cx *core.Cx, theme ui.Theme) *counter {
	c := &counter{}

	c.value = ui.Label(cx, "").
		Theme(theme).
		FontSize(24).
		Color(colors.FromHex(0x2196F3)).
		Align(renderer2d.TextCenter)
	c.set(0)

	button := func(caption string, hex uint32, fn func()) *ui.UIButton {
		return ui.Button(cx, caption).
			Theme(theme).
			Color(colors.FromHex(hex)).
			Padding(15, 10).
			OnClick(func(*core.Cx) { fn() })
	}

	c.dec = button("Decrement", 0xF44336, func() { c.set(c.count - 1) })
	c.reset = button("Reset", 0xFF9800, func() { c.set(0) })
	c.inc = button("Increment", 0x4CAF50, func() { c.set(c.count + 1) })

	buttons := ui.View(cx, c.dec, c.reset, c.inc).Layout(layout.NewHorizontal().
		WithSize(layout.Fit(), layout.Fit()).
		WithAlignItems(layout.AlignCenter).
		WithJustifyContent(layout.AlignCenter).
		WithSpacing(10))

	content := ui.View(cx,
		ui.Label(cx, "Counter Example").Theme(theme).FontSize(32).Color(colors.FromHex(0x333333)),
		c.value,
		buttons,
	).Layout(layout.NewVertical().
		WithSize(layout.Fill(), layout.Fill()).
		WithAlignItems(layout.AlignCenter).
		WithJustifyContent(layout.AlignCenter).
		WithSpacing(20))

	c.window = ui.Window(cx, "Counter Example").
		Theme(theme).
		Size(cx, 500, 400).
		SetContent(content)
	return c
}

func (c *counter) set(n int) {
	c.count = n
	c.value.SetText(fmt.Sprintf("Counter: %d", n))
}
