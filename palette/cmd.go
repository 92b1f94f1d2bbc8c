package palette

import (
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"

	"launchericon/compose"

	"github.com/alecthomas/kong"
)

// Flags selects the icon colors: the defaults, optionally replaced by a PAL
// file, optionally overridden one color at a time.
type Flags struct {
	Palette    string `help:"RIFF PAL file holding background, accent, secondary and foreground colors" type:"existingfile" group:"palette"`
	Background string `help:"Background color (#RGB or #RRGGBB)" group:"palette"`
	Accent     string `help:"Accent disc color (#RGB or #RRGGBB)" group:"palette"`
	Secondary  string `help:"Marker color (#RGB or #RRGGBB)" group:"palette"`
	Foreground string `help:"Glyph color (#RGB or #RRGGBB)" group:"palette"`

	Colors compose.Palette `kong:"-"`
}

// Resolve builds the icon palette from the flags and stores it in Colors.
func (f *Flags) Resolve() (compose.Palette, error) {
	pal := compose.DefaultPalette
	if f.Palette != "" {
		colors, err := Load(f.Palette)
		if err != nil {
			return pal, err
		}
		if pal, err = compose.PaletteFrom(colors); err != nil {
			return pal, fmt.Errorf("invalid palette file %q: %w", f.Palette, err)
		}
	}

	for _, o := range []struct {
		name string
		val  string
		dest *color.RGBA
	}{
		{"background", f.Background, &pal.Background},
		{"accent", f.Accent, &pal.Accent},
		{"secondary", f.Secondary, &pal.Secondary},
		{"foreground", f.Foreground, &pal.Foreground},
	} {
		if o.val == "" {
			continue
		}
		c, err := ParseHex(o.val)
		if err != nil {
			return pal, fmt.Errorf("invalid %s color: %w", o.name, err)
		}
		c.A = 0xFF
		*o.dest = c
	}

	f.Colors = pal
	return pal, nil
}

type CLICmd struct {
	Flags

	Out string `arg:"" help:"Destination PAL file" type:"path"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	out, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("invalid palette destination %q: %w", c.Out, err)
	}
	c.Out = out

	_, err = c.Resolve()
	return err
}

func (c *CLICmd) Run(logger *slog.Logger) error {
	if err := Save(c.Out, c.Colors.Colors()); err != nil {
		return err
	}

	logger.Info("palette written", "file", c.Out,
		"background", Hex(c.Colors.Background),
		"accent", Hex(c.Colors.Accent),
		"secondary", Hex(c.Colors.Secondary),
		"foreground", Hex(c.Colors.Foreground))
	return nil
}
