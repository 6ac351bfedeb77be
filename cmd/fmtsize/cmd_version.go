package main

import (
	"fmt"

	"github.com/d2verb/fmtsize/internal/ui"
)

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Fprintf(ui.Output, "fmtsize version %s (%s)\n", version, commit)
	return nil
}
