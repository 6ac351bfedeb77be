package main

import (
	"context"
	"fmt"

	"github.com/d2verb/fmtsize"
	"github.com/d2verb/fmtsize/internal/ui"
	"github.com/d2verb/fmtsize/internal/usage"
)

type DuCmd struct {
	Paths []string `arg:"" name:"path" help:"Files or directories to measure" predictor:"file"`
	Total bool     `short:"c" help:"Print a grand total"`
}

func (c *DuCmd) Run(g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	defer s.Close()

	entries, err := usage.MeasureAll(context.Background(), c.Paths)
	if err != nil {
		if usage.IsNotFound(err) {
			s.logger.Warn("measure failed", "error", err)
			return errPathNotFound(err)
		}
		return fmt.Errorf("measure: %w", err)
	}

	rows := make([]ui.SizeRow, len(entries))
	for i, e := range entries {
		rows[i] = sizeRow(e.Path, e.Size, s.format)
		rows[i].Files = e.Files
		rows[i].Dir = e.Dir
		s.logger.Info("measured", "path", e.Path, "bytes", e.Size, "size", fmtsize.FmtSize(e.Size, s.format))
	}
	ui.PrintSizeList(rows)

	for _, e := range entries {
		if e.Dir && e.Files == 0 {
			ui.PrintWarning(fmt.Sprintf("No files under %s", e.Path))
		}
	}

	if c.Total {
		total := usage.Total(entries)
		ui.PrintTotal(fmtsize.FmtSize(total, s.format).String(), s.format.Name(total))
	}
	return nil
}
