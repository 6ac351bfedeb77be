// Package logging records each fmtsize command run in ~/.fmtsize/logs/fmtsize.log.
package logging

import (
	"io"
	"log/slog"

	"github.com/d2verb/fmtsize/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds log file configuration.
type Config struct {
	Path       string // Log file path
	MaxSizeMB  int    // Max size in MB before rotation
	MaxBackups int    // Number of old files to keep
	MaxAgeDays int    // Max age in days
	Compress   bool   // Compress old files
}

// FromSettings builds a Config from the log block of config.yaml.
func FromSettings(path string, s config.LogSettings) Config {
	return Config{
		Path:       path,
		MaxSizeMB:  s.MaxSizeMB,
		MaxBackups: s.MaxBackups,
		MaxAgeDays: s.MaxAgeDays,
		Compress:   s.Compress,
	}
}

// NewRotatingWriter opens the fmtsize log file, rotating it per cfg.
func NewRotatingWriter(cfg Config) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}

// NewLogger returns a text logger for command runs at info level.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
