package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/efscriptgen/internal/backend"
)

// ErrMissingInputFolder is returned when no input folder was given.
var ErrMissingInputFolder = errors.New("input folder isn't set")

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputFolder string
	// Extension of the compiled effects referenced by the scripts.
	Extension string

	LogFormat string
	LogLevel  string
	// PrintTree logs the expansion tree of every descriptor.
	PrintTree bool
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputFolder == "" {
		return nil, ErrMissingInputFolder
	}
	if cfg.Extension == "" {
		cfg.Extension = backend.DefaultExtension
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "info"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
