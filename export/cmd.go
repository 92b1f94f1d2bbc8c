package export

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"launchericon/compose"
	"launchericon/palette"

	"github.com/alecthomas/kong"
	"golang.org/x/image/draw"
)

type CLICmd struct {
	palette.Flags

	Res        string   `help:"Base folder holding one folder per density tier" default:"android/app/src/main/res" type:"path"`
	Tier       []string `help:"Density tier as name=size, repeatable. Replaces the default Android mipmap tiers" placeholder:"NAME=SIZE"`
	BaseSize   int      `help:"Edge length the icon is composed at before resizing" default:"512"`
	Filter     string   `help:"Resampling filter" enum:"lanczos,catmullrom,bilinear,approxbilinear,nearest" default:"lanczos"`
	Format     string   `help:"Output format" enum:"png,tiff" default:"png"`
	SquareName string   `help:"File name of the square icon, without extension" default:"ic_launcher"`
	RoundName  string   `help:"File name of the round icon, without extension" default:"ic_launcher_round"`
	CreateDirs bool     `help:"Create missing tier folders instead of failing" default:"false"`
	BaseOut    string   `help:"Also write the unscaled composition to this file (.png, .tiff or .bmp)" type:"path"`

	Tiers      []Tier      `kong:"-"`
	Scaler     draw.Scaler `kong:"-"`
	BaseFormat string      `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	res, err := filepath.Abs(c.Res)
	if err != nil {
		return fmt.Errorf("invalid resource path %q: %w", c.Res, err)
	}
	c.Res = res

	if c.Tiers, err = ParseTiers(c.Tier); err != nil {
		return err
	}

	if c.BaseSize < 1 {
		return fmt.Errorf("invalid base size: %d", c.BaseSize)
	}

	if c.Scaler, err = Filter(c.Filter); err != nil {
		return err
	}

	if !alphaFormats[c.Format] {
		return fmt.Errorf("output format %q cannot hold the round icon's transparency", c.Format)
	}

	if c.SquareName == "" || c.RoundName == "" {
		return fmt.Errorf("icon file names must not be empty")
	} else if c.SquareName == c.RoundName {
		return fmt.Errorf("square and round icons share the name %q", c.SquareName)
	}

	if c.BaseOut != "" {
		if c.BaseOut, err = filepath.Abs(c.BaseOut); err != nil {
			return fmt.Errorf("invalid base output path: %w", err)
		}
		if c.BaseFormat, err = FormatOf(c.BaseOut); err != nil {
			return err
		}
	}

	_, err = c.Resolve()
	return err
}

func (c *CLICmd) Run(logger *slog.Logger) error {
	logger.Info("composing icon", "size", c.BaseSize,
		"background", palette.Hex(c.Colors.Background),
		"accent", palette.Hex(c.Colors.Accent),
		"secondary", palette.Hex(c.Colors.Secondary),
		"foreground", palette.Hex(c.Colors.Foreground))
	base := compose.Icon(c.BaseSize, c.Colors)

	if c.BaseOut != "" {
		dir, name := filepath.Split(c.BaseOut)
		if err := save(base, c.BaseFormat, dir, name); err != nil {
			return fmt.Errorf("could not write base icon: %w", err)
		}
		logger.Info("base icon written", "file", c.BaseOut)
	}

	exp := &Exporter{
		Dir:        c.Res,
		Tiers:      c.Tiers,
		Scaler:     c.Scaler,
		Format:     c.Format,
		SquareName: c.SquareName,
		RoundName:  c.RoundName,
		CreateDirs: c.CreateDirs,
		Logger:     logger,
	}

	results, err := exp.Run(base)
	logger.Info("stats", "tiers", len(results), "files", 2*len(results), "total", len(c.Tiers))
	return err
}
