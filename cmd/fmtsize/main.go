package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/d2verb/fmtsize"
	"github.com/posener/complete"
	"github.com/willabides/kongplete"
)

var (
	version = "dev"
	commit  = "none"
)

// Globals are flags shared by every command.
type Globals struct {
	Format  string `short:"f" help:"Size format (${formats}). Overrides the config file." predictor:"format"`
	NoColor bool   `help:"Disable colored output."`
	Home    string `help:"Directory holding config.yaml and logs." env:"FMTSIZE_HOME" hidden:"" predictor:"file"`
}

type CLI struct {
	Globals

	Bytes   BytesCmd   `cmd:"" help:"Format raw byte counts"`
	Du      DuCmd      `cmd:"" help:"Show the size of files and directories"`
	Config  ConfigCmd  `cmd:"" help:"Show or create the config file"`
	Version VersionCmd `cmd:"" help:"Show version"`

	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

func newParser(cli *CLI) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("fmtsize"),
		kong.Description("Human-readable file and byte sizes"),
		kong.UsageOnError(),
		kong.Vars{"formats": strings.Join(fmtsize.Names(), ", ")},
	)
}

func main() {
	cli := CLI{}
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}

	kongplete.Complete(parser,
		kongplete.WithPredictor("format", newFormatPredictor()),
		kongplete.WithPredictor("file", complete.PredictFiles("*")),
	)

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(&cli.Globals); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		}
		os.Exit(exitCode(err))
	}
}
