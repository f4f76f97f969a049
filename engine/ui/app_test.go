package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incredimo/mix/engine/colors"
	"github.com/incredimo/mix/engine/core"
	"github.com/incredimo/mix/engine/geom"
	"github.com/incredimo/mix/engine/platform/headless"
)

func TestThemes(t *testing.T) {
	light := LightTheme()
	assert.Equal(t, colors.FromHex(0x2196F3), light.Primary)
	assert.Equal(t, float32(16), light.DefaultText.FontSize)
	assert.Equal(t, float32(24), light.HeadingText.FontSize)
	assert.Equal(t, colors.White, light.ButtonText.Color)

	dark, ok := ThemeByName("Dark")
	require.True(t, ok)
	assert.Equal(t, colors.FromHex(0x121212), dark.Background)
	assert.Equal(t, colors.White, dark.DefaultText.Color)
	assert.Equal(t, light.Primary, dark.Primary)

	_, ok = ThemeByName("solarized")
	assert.False(t, ok)
}

func TestWindowFillsItsPass(t *testing.T) {
	cx := core.NewCx()
	w := Window(cx, "main")
	w.Add(Label(cx, "hello"))
	app := NewApp(w)

	app.Draw(cx)
	assert.False(t, app.NeedsRedraw())
	assert.Zero(t, cx.DrawListDepth())

	p, ok := cx.Pass(w.PassID())
	require.True(t, ok)
	assert.Equal(t, core.PassParentWindow, p.Parent.Kind)
	assert.Equal(t, w.ID(), p.Parent.Window)
	assert.Equal(t, w.DrawListID(), p.MainDrawList)
	require.NotNil(t, p.ClearColor)
	assert.Equal(t, colors.White, *p.ClearColor)

	dl, _ := cx.DrawList(w.DrawListID())
	assert.Equal(t, geom.PixelOrtho(800, 600), dl.ViewTransform())

	// background quad only: no font, so the label emits no glyphs
	n := 0
	cx.WalkDrawItems(p.MainDrawList, func(*core.DrawList, core.DrawItem) { n++ })
	assert.Equal(t, 1, n)
	assert.Equal(t, "main", w.Title(cx))
}

func TestWindowTextWithDefaultFont(t *testing.T) {
	cx := core.NewCx()
	font, err := LoadDefaultFont(cx)
	require.NoError(t, err)

	w := Window(cx, "main")
	w.Add(Label(cx, "Hi"))
	app := NewApp(w)
	app.Font = font
	app.Draw(cx)

	n := 0
	cx.WalkDrawItems(w.DrawListID(), func(_ *core.DrawList, it core.DrawItem) {
		if len(it.Textures) > 0 {
			assert.Equal(t, font.Texture(), it.Textures[0])
			n++
		}
	})
	assert.Equal(t, 2, n)
}

func TestWindowSizeAndResize(t *testing.T) {
	cx := core.NewCx()
	w := Window(cx, "main").Size(cx, 500, 400)
	h, _ := cx.Window(w.ID())
	assert.Equal(t, geom.V2(500, 400), h.InnerSize)

	w.HandleEvent(cx, core.EventWindowResize{WindowID: w.ID() + 1, Width: 1, Height: 1})
	assert.False(t, w.Resized())
	w.HandleEvent(cx, core.EventWindowResize{WindowID: w.ID(), Width: 640, Height: 480})
	assert.True(t, w.Resized())
	NewApp(w).Draw(cx)
	assert.False(t, w.Resized())

	w.SetTitle(cx, "renamed")
	assert.Equal(t, "renamed", w.Title(cx))
}

func TestAppRunsHeadless(t *testing.T) {
	clicks := 0
	b := headless.New([]core.Event{down(5, 5), up(5, 5)})
	cx := core.NewCx(core.WithBackend(b), core.WithSleep(func(time.Duration) {}))

	w := Window(cx, "Counter")
	w.Add(Button(cx, "+").OnClick(func(*core.Cx) { clicks++ }))
	app := NewApp(w)

	require.NoError(t, app.Run(cx))
	assert.Equal(t, 1, clicks)
	assert.True(t, b.ShutDown)
	assert.Equal(t, []string{"Counter"}, b.Titles())
	require.NotEmpty(t, b.Frames)
	assert.Equal(t, 1, b.Frames[0].Passes)
	// window background and button fill; no font means no caption glyphs
	assert.Equal(t, 2, b.Frames[0].Items)
}
