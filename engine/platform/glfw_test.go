package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/incredimo/mix/engine/core"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		in   glfw.Key
		want core.Key
	}{
		{glfw.Key0, core.Key0},
		{glfw.Key7, core.Key7},
		{glfw.KeyA, core.KeyA},
		{glfw.KeyZ, core.KeyZ},
		{glfw.KeyF1, core.KeyF1},
		{glfw.KeyF12, core.KeyF12},
		{glfw.KeyEnter, core.KeyReturn},
		{glfw.KeyRightControl, core.KeyControl},
		{glfw.KeyEscape, core.KeyEscape},
		{glfw.KeyF13, core.KeyUnknown},
		{glfw.KeyWorld1, core.KeyUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, translateKey(tt.in), "glfw key %d", tt.in)
	}
}

func TestTranslateButton(t *testing.T) {
	assert.Equal(t, core.MouseLeft, translateButton(glfw.MouseButtonLeft))
	assert.Equal(t, core.MouseRight, translateButton(glfw.MouseButtonRight))
	assert.Equal(t, core.MouseMiddle, translateButton(glfw.MouseButtonMiddle))
}

func TestUninitializedBackendIsQuiet(t *testing.T) {
	g := NewGLFW(core.DefaultConfig(), nil)
	assert.Nil(t, g.PollEvents())
	assert.NotPanics(t, func() {
		g.Present(core.NewCx())
		g.SetWindowSize(1, 10, 10)
		g.Shutdown()
	})
}
