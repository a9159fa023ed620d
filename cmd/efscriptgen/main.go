// Command efscriptgen generates effect compilation scripts for every shader
// source under a folder, one script set per target backend.
//
// Usage:
//
//	efscriptgen <folder> [options]
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/vk/efscriptgen/internal/app"
	"github.com/vk/efscriptgen/internal/cli"
)

// main is the entrypoint for the efscriptgen application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// Failures are reported but do not change the exit code.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		slog.Error("Script generation failed.", "error", err)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	generator := app.NewApp(outW, appConfig, nil)
	_, err = generator.Run(context.Background())
	return err
}
