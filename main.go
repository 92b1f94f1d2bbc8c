package main

import (
	"io"
	"log/slog"
	"os"

	"launchericon/export"
	"launchericon/palette"
	"launchericon/verify"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Debug bool `help:"Log debug messages" default:"false"`

	Generate export.CLICmd  `cmd:"" default:"withargs" help:"Compose the launcher icon and write it for every density tier"`
	Verify   verify.CLICmd  `cmd:"" help:"Check the icons of every density tier"`
	Palette  palette.CLICmd `cmd:"" help:"Write the icon colors to a RIFF PAL file"`
}

func newParser(cli *CLI) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("launchericon"),
		kong.Description("Draws the app launcher icon and exports it per screen density."),
	)
}

// run parses args and executes the selected command, logging to out.
func run(args []string, out io.Writer) error {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := kctx.Run(logger); err != nil {
		logger.Error("failed", "command", kctx.Command(), "error", err)
		return err
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("launchericon", "error", err)
		os.Exit(1)
	}
}
