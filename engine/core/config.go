package core

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/incredimo/mix/engine/colors"
)

// Config for the engine run.
type Config struct {
	Title           string       `toml:"title"`
	Width           int          `toml:"width"`
	Height          int          `toml:"height"`
	VSync           bool         `toml:"vsync"`
	ClearColor      colors.Color `toml:"clear_color"` // "#rrggbb"
	FrameIntervalMS int          `toml:"frame_interval_ms"`
	Theme           string       `toml:"theme"` // "light" or "dark"
	LogLevel        slog.Level   `toml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Title:           "mix",
		Width:           800,
		Height:          600,
		VSync:           true,
		ClearColor:      colors.FromHex(0xFFFFFF),
		FrameIntervalMS: int(DefaultFrameInterval / time.Millisecond),
		Theme:           "light",
		LogLevel:        slog.LevelInfo,
	}
}

func (c Config) FrameInterval() time.Duration {
	if c.FrameIntervalMS < 0 {
		return DefaultFrameInterval
	}
	return time.Duration(c.FrameIntervalMS) * time.Millisecond
}

// ParseConfig decodes TOML on top of DefaultConfig; absent keys keep defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("core: parse config: %w", err)
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("core: load config: %w", err)
	}
	return ParseConfig(data)
}
