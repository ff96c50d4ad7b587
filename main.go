package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/soocke/sprite-slicer-go/app"
	"github.com/soocke/sprite-slicer-go/config"
	"github.com/soocke/sprite-slicer-go/debug"
)

const fallbackConfigPath = "sprite-slicer.json"

func main() {
	logger := NewLogger(slog.LevelInfo)

	path, err := config.DefaultPath()
	if err != nil {
		logger.Warn("using local config file", "path", fallbackConfigPath, "error", err)
		path = fallbackConfigPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		logger.Error("config load failed, using defaults", "path", path, "error", err)
	}

	if cfg.Debug {
		logger = NewLogger(slog.LevelDebug)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		debug.StartRuntimeLogger(ctx, 5*time.Second, logger)
	}

	c := app.BuildContainer(cfg, path, logger)
	app.NewApp("Sprite Slicer", 1100, 760, c).Start()
}
