package app

import (
	"io"
	"log/slog"

	"github.com/vk/efscriptgen/internal/fsutil"
	"github.com/vk/efscriptgen/internal/script"
)

// Version is reported in the startup banner. Overridden at link time.
var Version = "1.0.0"

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	writer script.Writer
}

// NewApp is the constructor for the main application. It returns an App with
// its own isolated logger. A nil writer writes to the local disk.
func NewApp(outW io.Writer, cfg *Config, writer script.Writer) *App {
	if writer == nil {
		writer = fsutil.Disk{}
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		writer: writer,
	}
}
