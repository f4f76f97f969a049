package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/incredimo/mix/engine/core"
	"github.com/incredimo/mix/engine/platform"
	"github.com/incredimo/mix/engine/platform/headless"
	"github.com/incredimo/mix/engine/profiler"
	"github.com/incredimo/mix/engine/ui"
)

// GLFW and GL calls must stay on the main thread from the first window on.
func init() { runtime.LockOSThread() }

func main() {
	var (
		configPath  = flag.String("config", "", "TOML config file")
		runHeadless = flag.Bool("headless", false, "run without a window")
		showStats   = flag.Bool("stats", false, "show the frame stats panel")
		profilePath = flag.String("profile", "profile.speedscope.json", "where to dump profiler scopes")
	)
	flag.Parse()

	cfg := core.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = core.LoadConfig(*configPath); err != nil {
			slog.Error("config", "err", err)
			os.Exit(1)
		}
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	theme, ok := ui.ThemeByName(cfg.Theme)
	if !ok {
		log.Warn("unknown theme, using light", "theme", cfg.Theme)
	}

	var backend core.Backend
	if *runHeadless {
		backend = headless.New()
	} else {
		backend = platform.NewGLFW(cfg, log)
	}
	cx := core.NewCx(
		core.WithLogger(log),
		core.WithBackend(backend),
		core.WithFrameInterval(cfg.FrameInterval()),
		core.WithDebug(cfg.LogLevel <= slog.LevelDebug),
	)

	profiler.Init(1 << 10)

	counter := newCounter(cx, theme)
	if *showStats {
		counter.window.Add(newStatsPanel(cx, theme))
	}
	if g, ok := backend.(*platform.GLFW); ok {
		cx.GPU = g.GPU()
	}

	app := ui.NewApp(counter.window)
	font, err := ui.LoadDefaultFont(cx)
	if err != nil {
		log.Error("font", "err", err)
		os.Exit(1)
	}
	app.Font = font

	if err := app.Run(cx); err != nil {
		log.Error("run", "err", err)
		os.Exit(1)
	}
	log.Info("done", "count", counter.count, "frames", cx.Stats.FrameCount)

	if profiler.Enabled {
		if err := profiler.Dump(*profilePath); err != nil {
			log.Error("profile dump", "err", err)
		}
	}
}
