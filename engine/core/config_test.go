package core

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incredimo/mix/engine/colors"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
title = "Counter Example"
width = 500
clear_color = "#1e1e1e"
frame_interval_ms = 8
theme = "dark"
log_level = "debug"
`))
	require.NoError(t, err)

	assert.Equal(t, "Counter Example", cfg.Title)
	assert.Equal(t, 500, cfg.Width)
	assert.Equal(t, 600, cfg.Height, "absent keys keep defaults")
	assert.True(t, cfg.VSync)
	want := colors.FromHex(0x1e1e1e)
	for i := range want {
		assert.InDelta(t, want[i], cfg.ClearColor[i], 1e-6)
	}
	assert.Equal(t, 8*time.Millisecond, cfg.FrameInterval())
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := ParseConfig([]byte(`clear_color = "not a color"`))
	assert.Error(t, err)

	_, err = ParseConfig([]byte(`width = `))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mix.toml")
	require.NoError(t, os.WriteFile(path, []byte(`title = "from disk"`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from disk", cfg.Title)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultFrameInterval, cfg.FrameInterval())
	assert.Equal(t, "light", cfg.Theme)
}
