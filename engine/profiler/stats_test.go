package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameStats(t *testing.T) {
	var s FrameStats
	t0 := time.Unix(100, 0)

	s.Update(t0)
	assert.Equal(t, uint64(1), s.FrameCount)
	assert.Zero(t, s.FPS, "first frame only anchors the clock")

	for i := 1; i <= 10; i++ {
		s.Update(t0.Add(time.Duration(i) * 20 * time.Millisecond))
	}
	assert.Equal(t, uint64(11), s.FrameCount)
	assert.Equal(t, 20*time.Millisecond, s.FrameTime)
	assert.InDelta(t, 50, s.FPS, 0.01)
}

func TestFrameStatsWindowRolls(t *testing.T) {
	var s FrameStats
	now := time.Unix(0, 0)
	s.Update(now)
	for i := 0; i < fpsWindow; i++ {
		now = now.Add(100 * time.Millisecond)
		s.Update(now)
	}
	assert.InDelta(t, 10, s.FPS, 0.01)

	// a full window of faster frames pushes the slow ones out
	for i := 0; i < fpsWindow; i++ {
		now = now.Add(10 * time.Millisecond)
		s.Update(now)
	}
	assert.InDelta(t, 100, s.FPS, 0.01)
}

func TestStartIsCallable(t *testing.T) {
	end := Start(ScopeViewDraw)
	assert.NotPanics(t, end)
}

func TestScopeNames(t *testing.T) {
	assert.Equal(t, "ui.Button.Draw", ScopeButtonDraw.String())
	assert.Equal(t, "gl.Present", ScopePresent.String())
	assert.Equal(t, "unknown", numScopes.String())
	for s := range numScopes {
		assert.NotEmpty(t, scopeNames[s], "scope %d", s)
	}
}
