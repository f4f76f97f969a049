package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incredimo/mix/engine/core"
	"github.com/incredimo/mix/engine/geom"
	"github.com/incredimo/mix/engine/layout"
)

type stubWidget struct {
	step   DrawStep
	events int
}

func (s *stubWidget) HandleEvent(*core.Cx, core.Event) { s.events++ }
func (s *stubWidget) Draw(*Cx2D) DrawStep              { return s.step }

func TestDrawStepOr(t *testing.T) {
	assert.Equal(t, Done, Done.Or(Done))
	assert.Equal(t, Redraw, Done.Or(Redraw))
	assert.Equal(t, Redraw, Redraw.Or(Done))
	assert.True(t, Redraw.IsRedraw())
	assert.Equal(t, "done", Done.String())
}

func TestViewPropagatesChildRedraw(t *testing.T) {
	cx := core.NewCx()
	kids := []*stubWidget{{step: Done}, {step: Redraw}, {step: Done}}
	v := View(cx, kids[0], kids[1], kids[2]).Size(layout.Fixed(10), layout.Fixed(10))

	c2 := NewCx2D(cx)
	for i := 0; i < 3; i++ {
		assert.Equal(t, Redraw, v.Draw(c2))
	}
	kids[1].step = Done
	assert.Equal(t, Done, v.Draw(c2))
	require.NoError(t, c2.Finish())

	v.HandleEvent(cx, core.EventMouseMove{})
	for _, k := range kids {
		assert.Equal(t, 1, k.events)
	}
}

func TestTurtleStackBalance(t *testing.T) {
	c2 := NewCx2D(core.NewCx())
	l := layout.NewHorizontal()

	assert.PanicsWithValue(t, ErrTurtleUnderflow, func() { c2.EndTurtle() })

	c2.BeginSizedTurtle(geom.V2(100, 100), l)
	assert.Panics(t, func() {
		c2.WithTurtle(geom.R(0, 0, 10, 10), l, func(*layout.Turtle) {
			c2.BeginTurtle(l)
			panic("boom")
		})
	})
	assert.Equal(t, 1, c2.Depth())

	err := c2.Finish()
	assert.ErrorIs(t, err, ErrTurtleImbalance)
	assert.Zero(t, c2.Depth())
	assert.NoError(t, c2.Finish())
}

func TestFinishResetsDrawStack(t *testing.T) {
	cx := core.NewCx()
	c2 := NewCx2D(cx)
	cx.PushDrawList(cx.CreateDrawList())

	assert.ErrorIs(t, c2.Finish(), ErrTurtleImbalance)
	assert.Zero(t, cx.DrawListDepth())
}

func TestAddTurtleItemStretches(t *testing.T) {
	c2 := NewCx2D(core.NewCx())

	_, ok := c2.AddTurtleItem(geom.V2(5, 5))
	assert.False(t, ok)

	c2.BeginTurtleAt(geom.R(0, 0, 100, 50), layout.NewHorizontal().
		WithAlignItems(layout.AlignStretch).
		WithPadding(geom.V2(5, 5)))
	r, ok := c2.AddTurtleItem(geom.V2(20, 10))
	require.True(t, ok)
	assert.Equal(t, geom.R(5, 5, 20, 40), r)
	assert.Equal(t, geom.V2(90, 40), c2.Available())
	c2.EndTurtle()
}
