package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/d2verb/fmtsize"
	"github.com/d2verb/fmtsize/internal/config"
	"github.com/d2verb/fmtsize/internal/editor"
	"github.com/d2verb/fmtsize/internal/ui"
	"gopkg.in/yaml.v3"
)

type ConfigCmd struct {
	Show ConfigShowCmd `cmd:"" default:"1" help:"Show the effective configuration"`
	Init ConfigInitCmd `cmd:"" help:"Write a default config file"`
	Edit ConfigEditCmd `cmd:"" help:"Open the config file in your editor"`
}

type ConfigShowCmd struct {
	YAML bool `name:"yaml" help:"Print the effective configuration as YAML"`
}

func (c *ConfigShowCmd) Run(g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	defer s.Close()

	if c.YAML {
		data, err := yaml.Marshal(s.cfg)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		_, err = ui.Output.Write(data)
		return err
	}

	_, statErr := os.Stat(s.paths.Config)
	ui.PrintConfig(ui.ConfigDetails{
		Path:    s.paths.Config,
		Exists:  statErr == nil,
		Format:  fmt.Sprint(s.format),
		Color:   s.cfg.Color && !g.NoColor,
		LogPath: s.paths.Log,
	})
	return nil
}

type ConfigInitCmd struct {
	Force bool `help:"Overwrite an existing config file"`
}

func (c *ConfigInitCmd) Run(g *Globals) error {
	paths, err := g.paths()
	if err != nil {
		return err
	}

	if _, err := os.Stat(paths.Config); err == nil && !c.Force {
		return errConfigExists(paths.Config)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}

	cfg := config.DefaultConfig()
	if g.Format != "" {
		cfg.Format = g.Format
	}
	if err := cfg.Save(paths.Config); err != nil {
		if fmtsize.IsUnknownFormat(err) {
			return errUnknownFormat(err)
		}
		return err
	}

	ui.PrintSuccess(fmt.Sprintf("Wrote %s", paths.Config))
	return nil
}

type ConfigEditCmd struct{}

// openEditor is replaced in tests.
var openEditor = editor.Open

func (c *ConfigEditCmd) Run(g *Globals) error {
	paths, err := g.paths()
	if err != nil {
		return err
	}

	if _, err := os.Stat(paths.Config); errors.Is(err, os.ErrNotExist) {
		if err := config.DefaultConfig().Save(paths.Config); err != nil {
			return err
		}
		ui.PrintInfo(fmt.Sprintf("Created %s with defaults", paths.Config))
	}

	ed, err := editor.Find()
	if err != nil {
		return err
	}
	if err := openEditor(context.Background(), ed, paths.Config); err != nil {
		return err
	}

	cfg, err := config.Load(paths.Config)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		ui.PrintError(fmt.Sprintf("Config is invalid: %v", err))
		if fmtsize.IsUnknownFormat(err) {
			return errUnknownFormat(err)
		}
		return err
	}
	ui.PrintSuccess(fmt.Sprintf("Config %s is valid", paths.Config))
	return nil
}
