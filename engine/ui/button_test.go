package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/incredimo/mix/engine/core"
	"github.com/incredimo/mix/engine/geom"
)

func placedButton(t *testing.T) (*core.Cx, *UIButton, *int) {
	t.Helper()
	cx := core.NewCx()
	clicks := 0
	b := Button(cx, "OK").OnClick(func(*core.Cx) { clicks++ })
	cx.SetAreaRect(b.Area(), geom.R(10, 10, 100, 40))
	return cx, b, &clicks
}

func down(x, y float32) core.Event {
	return core.EventMouseDown{X: x, Y: y, Button: core.MouseLeft}
}

func up(x, y float32) core.Event {
	return core.EventMouseUp{X: x, Y: y, Button: core.MouseLeft}
}

func TestButtonClickFiresOnce(t *testing.T) {
	cx, b, clicks := placedButton(t)

	b.HandleEvent(cx, down(20, 20))
	assert.Equal(t, ButtonPressed, b.State())
	b.HandleEvent(cx, up(20, 20))
	assert.Equal(t, 1, *clicks)
	assert.Equal(t, ButtonHover, b.State())

	// a release without a press is not a click
	b.HandleEvent(cx, up(20, 20))
	assert.Equal(t, 1, *clicks)
}

func TestButtonReleaseOutsideCancels(t *testing.T) {
	cx, b, clicks := placedButton(t)

	b.HandleEvent(cx, down(20, 20))
	b.HandleEvent(cx, up(500, 500))
	assert.Equal(t, ButtonNormal, b.State())
	assert.Zero(t, *clicks)
}

func TestButtonHoverTracksPointer(t *testing.T) {
	cx, b, _ := placedButton(t)

	b.HandleEvent(cx, core.EventMouseMove{X: 50, Y: 30})
	assert.Equal(t, ButtonHover, b.State())
	b.HandleEvent(cx, core.EventMouseMove{X: 0, Y: 0})
	assert.Equal(t, ButtonNormal, b.State())

	b.HandleEvent(cx, down(50, 30))
	b.HandleEvent(cx, core.EventMouseMove{X: 0, Y: 0})
	assert.Equal(t, ButtonPressed, b.State(), "a drag keeps the press")
}

func TestButtonIgnoresOtherButtons(t *testing.T) {
	cx, b, clicks := placedButton(t)

	b.HandleEvent(cx, core.EventMouseDown{X: 20, Y: 20, Button: core.MouseRight})
	b.HandleEvent(cx, core.EventMouseUp{X: 20, Y: 20, Button: core.MouseRight})
	assert.Equal(t, ButtonNormal, b.State())
	assert.Zero(t, *clicks)
}

func TestButtonDisabledGuard(t *testing.T) {
	cx, b, clicks := placedButton(t)
	b.BlockWhenDisabled = true
	b.SetEnabled(false)

	b.HandleEvent(cx, down(20, 20))
	b.HandleEvent(cx, up(20, 20))
	b.HandleEvent(cx, core.EventMouseMove{X: 20, Y: 20})
	assert.Zero(t, *clicks)
	assert.Equal(t, ButtonDisabled, b.State())
	assert.False(t, b.Enabled())

	b.SetEnabled(true)
	assert.Equal(t, ButtonNormal, b.State())
}

func TestButtonDisabledUnguarded(t *testing.T) {
	cx, b, clicks := placedButton(t)
	b.SetEnabled(false)

	b.HandleEvent(cx, core.EventMouseMove{X: 20, Y: 20})
	assert.Equal(t, ButtonDisabled, b.State(), "hover does not enable")
	b.HandleEvent(cx, core.EventMouseMove{X: 500, Y: 500})
	assert.Equal(t, ButtonDisabled, b.State())

	b.HandleEvent(cx, down(20, 20))
	b.HandleEvent(cx, up(20, 20))
	assert.Equal(t, 1, *clicks)
	assert.Equal(t, ButtonHover, b.State())
}

func TestButtonPalette(t *testing.T) {
	cx := core.NewCx()
	th := LightTheme()
	b := Button(cx, "x")

	fill, _ := b.palette()
	assert.Equal(t, th.Primary, fill)

	b.state = ButtonHover
	fill, _ = b.palette()
	assert.Equal(t, th.Primary.Lighten(0.1), fill)

	b.state = ButtonPressed
	fill, _ = b.palette()
	assert.Equal(t, th.Primary.Darken(0.1), fill)

	b.state = ButtonDisabled
	fill, fg := b.palette()
	assert.Equal(t, disabledFill, fill)
	assert.Equal(t, disabledText, fg)
	assert.Equal(t, "disabled", b.State().String())
}

func TestButtonMeasure(t *testing.T) {
	b := Button(core.NewCx(), "ab").Padding(15, 10)
	// two fallback advances of 8px, one 19.2px line
	got := b.Measure()
	assert.True(t, got.Equal(geom.V2(16+30, 19.2+20), 1e-4), "got %v", got)
}
