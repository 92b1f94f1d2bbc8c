package verify

import (
	"fmt"
	"image"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"

	"launchericon/export"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type CLICmd struct {
	Res        string   `help:"Base folder holding one folder per density tier" default:"android/app/src/main/res" type:"path"`
	Tier       []string `help:"Density tier as name=size, repeatable. Replaces the default Android mipmap tiers" placeholder:"NAME=SIZE"`
	SquareName string   `help:"File name of the square icon, without extension" default:"ic_launcher"`
	RoundName  string   `help:"File name of the round icon, without extension" default:"ic_launcher_round"`

	Tiers []export.Tier `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	res, err := filepath.Abs(c.Res)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(res); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid resource path %q: %w", c.Res, err)
	}
	c.Res = res

	c.Tiers, err = export.ParseTiers(c.Tier)
	return err
}

func (c *CLICmd) Run(logger *slog.Logger) error {
	var checked, errCount int
	for _, tier := range c.Tiers {
		dir := filepath.Join(c.Res, tier.Name)
		for _, v := range []struct {
			name  string
			round bool
		}{
			{c.SquareName, false},
			{c.RoundName, true},
		} {
			files, err := find(dir, v.name)
			if err != nil {
				errCount++
				logger.Error("missing icon", "tier", tier.Name, "name", v.name, "error", err)
				continue
			}

			for _, file := range files {
				checked++
				if err := Icon(file, tier.Size, v.round); err != nil {
					errCount++
					logger.Error("invalid icon", "tier", tier.Name, "file", file, "error", err)
				}
			}
		}
	}

	logger.Info("stats", "checked", checked, "errors", errCount)

	if errCount > 0 {
		return fmt.Errorf("found %d icon problems", errCount)
	}
	return nil
}

// find returns the files in dir called name with any extension.
func find(dir, name string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, name+".*"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s.* in %q", name, dir)
	}
	return files, nil
}

// Icon checks that the image in file is size x size and, for round icons,
// that exactly the pixels inside the inscribed circle are opaque.
func Icon(file string, size int, round bool) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("could not open icon: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("could not decode icon: %w", err)
	}

	b := img.Bounds()
	if b.Dx() != b.Dy() {
		return fmt.Errorf("%s icon is not square: %dx%d", format, b.Dx(), b.Dy())
	}
	if b.Dx() != size {
		return fmt.Errorf("%s icon is %dpx, want %dpx", format, b.Dx(), size)
	}

	if !round {
		return nil
	}

	for y := range size {
		for x := range size {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			switch inside := export.InCircle(x, y, size); {
			case inside && a != 0xffff:
				return fmt.Errorf("round icon pixel (%d,%d) inside the circle is not opaque", x, y)
			case !inside && a != 0:
				return fmt.Errorf("round icon pixel (%d,%d) outside the circle is not transparent", x, y)
			}
		}
	}

	return nil
}
