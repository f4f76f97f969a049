package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incredimo/mix/engine/core"
	"github.com/incredimo/mix/engine/geom"
	"github.com/incredimo/mix/engine/layout"
)

// drawIn runs one pass of w inside a vertical turtle of the given size and
// reports the step and whether a container asked for another layout pass.
func drawIn(t *testing.T, cx *core.Cx, size geom.Vec2, w Widget) (DrawStep, bool) {
	t.Helper()
	c2 := NewCx2D(cx)
	var step DrawStep
	c2.WithTurtle(geom.Rect{Size: size}, layout.NewVertical(), func(*layout.Turtle) {
		step = w.Draw(c2)
	})
	require.NoError(t, c2.Finish())
	return step, c2.Unsettled()
}

func areaRect(t *testing.T, cx *core.Cx, id core.AreaID) geom.Rect {
	t.Helper()
	a, ok := cx.Area(id)
	require.True(t, ok)
	return a.Rect
}

func assertRect(t *testing.T, want, got geom.Rect) {
	t.Helper()
	assert.True(t, want.Pos.Equal(got.Pos, 1e-3) && want.Size.Equal(got.Size, 1e-3), "want %v, got %v", want, got)
}

func TestLabelSize(t *testing.T) {
	cx := core.NewCx()
	l := Label(cx, "abc")
	drawIn(t, cx, geom.V2(200, 100), l)
	// 3 * 8px fallback advance by one 19.2px line, plus 4px padding
	assertRect(t, geom.R(0, 0, 32, 27.2), areaRect(t, cx, l.Area()))

	a, _ := cx.Area(l.Area())
	assert.Equal(t, l.DrawListID(), a.DrawList)
}

func TestLabelWrap(t *testing.T) {
	assert.Equal(t, "aa bb\ncc", wrapText(nil, "aa bb cc", 10, 30))
	assert.Equal(t, "aa\n\nbb", wrapText(nil, "aa\n\nbb", 10, 30))
	assert.Equal(t, "verylongword\nx", wrapText(nil, "verylongword x", 10, 30))

	l := Label(core.NewCx(), "aa bb cc").FontSize(10).Padding(0, 0).MaxWidth(30)
	got := l.Measure()
	assert.True(t, got.Equal(geom.V2(25, 24), 1e-4), "got %v", got)
}

func TestViewFitsContentOnSecondPass(t *testing.T) {
	cx := core.NewCx()
	a, b := Label(cx, "abc"), Label(cx, "abc")
	v := View(cx, a, b).Layout(layout.NewHorizontal().
		WithSize(layout.Fit(), layout.Fit()).
		WithSpacing(10))

	step, unsettled := drawIn(t, cx, geom.V2(400, 300), v)
	assert.Equal(t, Done, step)
	assert.True(t, unsettled, "content grew from zero")

	step, unsettled = drawIn(t, cx, geom.V2(400, 300), v)
	assert.Equal(t, Done, step)
	assert.False(t, unsettled)

	assertRect(t, geom.R(0, 0, 74, 27.2), areaRect(t, cx, v.Area()))
	assertRect(t, geom.R(0, 0, 32, 27.2), areaRect(t, cx, a.Area()))
	assertRect(t, geom.R(42, 0, 32, 27.2), areaRect(t, cx, b.Area()))
}

func TestViewCentersContent(t *testing.T) {
	cx := core.NewCx()
	l := Label(cx, "abc")
	v := View(cx, l).Layout(layout.NewVertical().
		WithSize(layout.Fill(), layout.Fill()).
		WithAlignItems(layout.AlignCenter).
		WithJustifyContent(layout.AlignCenter))

	drawIn(t, cx, geom.V2(400, 300), v)
	step, unsettled := drawIn(t, cx, geom.V2(400, 300), v)
	assert.Equal(t, Done, step)
	assert.False(t, unsettled)

	assertRect(t, geom.R(0, 0, 400, 300), areaRect(t, cx, v.Area()))
	assertRect(t, geom.R(184, 136.4, 32, 27.2), areaRect(t, cx, l.Area()))
}

func TestViewNestsDrawLists(t *testing.T) {
	cx := core.NewCx()
	inner := View(cx).Size(layout.Fixed(10), layout.Fixed(10)).Background(LightTheme().Accent)
	outer := View(cx, inner).Background(LightTheme().Primary)

	drawIn(t, cx, geom.V2(100, 100), outer)

	var lists []core.DrawListID
	cx.WalkDrawItems(outer.DrawListID(), func(dl *core.DrawList, _ core.DrawItem) {
		lists = append(lists, dl.ID())
	})
	assert.Equal(t, []core.DrawListID{outer.DrawListID(), inner.DrawListID()}, lists)
}

func TestViewOfLabelsIsDone(t *testing.T) {
	cx := core.NewCx()
	v := View(cx, Label(cx, "a"), Label(cx, "b"), Label(cx, "c"))

	step, unsettled := drawIn(t, cx, geom.V2(200, 200), v)
	assert.Equal(t, Done, step, "a size change is not a redraw request")
	assert.True(t, unsettled)
}

func TestAppSettlesFitView(t *testing.T) {
	cx := core.NewCx()
	a, b := Label(cx, "abc"), Label(cx, "abc")
	v := View(cx, a, b).Layout(layout.NewHorizontal().
		WithSize(layout.Fit(), layout.Fit()).
		WithSpacing(10))
	app := NewApp(v)

	app.Draw(cx)
	assert.Equal(t, 2, app.DrawPasses(), "one pass to measure, one to place")
	assert.False(t, app.NeedsRedraw())
	assertRect(t, geom.R(0, 0, 74, 27.2), areaRect(t, cx, v.Area()))

	app.Draw(cx)
	assert.Equal(t, 3, app.DrawPasses(), "settled tree takes a single pass")
}
