package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/d2verb/fmtsize"
	"github.com/d2verb/fmtsize/internal/config"
	"github.com/d2verb/fmtsize/internal/logging"
	"github.com/d2verb/fmtsize/internal/ui"
)

// session is the state a command runs with: config, chosen format and logger.
type session struct {
	paths  *config.Paths
	cfg    *config.Config
	format fmtsize.Format
	logger *slog.Logger
	log    io.Closer
}

func (s *session) Close() error {
	if s.log == nil {
		return nil
	}
	return s.log.Close()
}

func (g *Globals) paths() (*config.Paths, error) {
	if g.Home != "" {
		return config.PathsIn(g.Home), nil
	}
	paths, err := config.GetPaths()
	if err != nil {
		return nil, fmt.Errorf("get paths: %w", err)
	}
	return paths, nil
}

// open loads the config, resolves the size format and opens the log file.
// Flags take precedence over config.yaml.
func (g *Globals) open() (*session, error) {
	paths, err := g.paths()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(paths.Config)
	if err != nil {
		return nil, err
	}
	if g.Format != "" {
		cfg.Format = g.Format
	}
	format, err := cfg.SizeFormat()
	if err != nil {
		return nil, errUnknownFormat(err)
	}

	if g.NoColor || !cfg.Color {
		ui.SetColor(false)
	}

	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("create directories: %w", err)
	}
	w := logging.NewRotatingWriter(logging.FromSettings(paths.Log, cfg.Log))

	return &session{
		paths:  paths,
		cfg:    cfg,
		format: format,
		logger: logging.NewLogger(w),
		log:    w,
	}, nil
}

// parseSize parses a byte count. Underscores may group digits.
func parseSize(s string) (uint64, error) {
	n, err := strconv.ParseUint(strings.ReplaceAll(strings.TrimSpace(s), "_", ""), 10, 64)
	if err != nil {
		return 0, errInvalidSize(s)
	}
	return n, nil
}

// sizeRow renders size under f for display.
func sizeRow(label string, size uint64, f fmtsize.Format) ui.SizeRow {
	return ui.SizeRow{
		Label: label,
		Size:  fmtsize.FmtSize(size, f).String(),
		Unit:  f.Name(size),
	}
}
