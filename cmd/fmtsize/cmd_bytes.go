package main

import (
	"github.com/d2verb/fmtsize/internal/ui"
)

type BytesCmd struct {
	Sizes []string `arg:"" name:"size" help:"Byte counts to format (digits, optionally grouped with _)"`
}

func (c *BytesCmd) Run(g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	defer s.Close()

	rows := make([]ui.SizeRow, 0, len(c.Sizes))
	for _, input := range c.Sizes {
		size, err := parseSize(input)
		if err != nil {
			s.logger.Warn("invalid size", "input", input)
			return err
		}
		rows = append(rows, sizeRow(input, size, s.format))
	}

	s.logger.Info("formatted sizes", "format", s.format, "count", len(rows))
	ui.PrintSizeList(rows)
	return nil
}
