package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/starfall/config"
)

// setupLogging builds the process logger
// A configured file always receives JSON lines; without one, headless runs log
// to stderr through the console writer and interactive runs are silent since
// the terminal owns the screen. The returned closer is nil when no file was opened
func setupLogging(cfg config.LogConfig, headless bool) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		l, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("log level: %w", err)
		}
		level = l
	}

	if cfg.File != "" {
		if dir := filepath.Dir(cfg.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return zerolog.Nop(), nil, fmt.Errorf("creating log directory: %w", err)
			}
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
		}
		return zerolog.New(f).Level(level).With().Timestamp().Logger(), f, nil
	}

	if headless {
		w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
		return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil, nil
	}
	return zerolog.Nop(), nil, nil
}
