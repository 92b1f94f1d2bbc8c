package verify

import (
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"launchericon/compose"
	"launchericon/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, tiers []export.Tier, format string) string {
	t.Helper()
	exp := &export.Exporter{
		Dir:        t.TempDir(),
		Tiers:      tiers,
		Format:     format,
		SquareName: "ic_launcher",
		RoundName:  "ic_launcher_round",
		CreateDirs: true,
		Logger:     slog.New(slog.DiscardHandler),
	}
	_, err := exp.Run(compose.Icon(compose.BaseSize, compose.DefaultPalette))
	require.NoError(t, err)
	return exp.Dir
}

func newCmd(res string, tiers []export.Tier) *CLICmd {
	return &CLICmd{
		Res:        res,
		SquareName: "ic_launcher",
		RoundName:  "ic_launcher_round",
		Tiers:      tiers,
	}
}

func TestRunAcceptsGeneratedTree(t *testing.T) {
	for _, format := range []string{"png", "tiff"} {
		t.Run(format, func(t *testing.T) {
			res := generate(t, export.AndroidTiers, format)
			err := newCmd(res, export.AndroidTiers).Run(slog.New(slog.DiscardHandler))
			assert.NoError(t, err)
		})
	}
}

func TestRunRejectsWrongSize(t *testing.T) {
	tiers := []export.Tier{{Name: "mipmap-mdpi", Size: 48}}
	res := generate(t, tiers, "png")

	wrong := []export.Tier{{Name: "mipmap-mdpi", Size: 72}}
	err := newCmd(res, wrong).Run(slog.New(slog.DiscardHandler))
	assert.Error(t, err)
}

func TestRunRejectsMissingIcon(t *testing.T) {
	tiers := []export.Tier{{Name: "mipmap-mdpi", Size: 48}}
	res := generate(t, tiers, "png")
	require.NoError(t, os.Remove(filepath.Join(res, "mipmap-mdpi", "ic_launcher_round.png")))

	err := newCmd(res, tiers).Run(slog.New(slog.DiscardHandler))
	assert.Error(t, err)
}

func TestIconRejectsSquareAsRound(t *testing.T) {
	res := generate(t, []export.Tier{{Name: "x", Size: 16}}, "png")

	err := Icon(filepath.Join(res, "x", "ic_launcher.png"), 16, true)
	assert.ErrorContains(t, err, "not transparent")
	assert.NoError(t, Icon(filepath.Join(res, "x", "ic_launcher_round.png"), 16, true))
}

func TestIconRejectsNonSquare(t *testing.T) {
	name := filepath.Join(t.TempDir(), "wide.png")
	f, err := os.Create(name)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 16, 8))))
	require.NoError(t, f.Close())

	assert.ErrorContains(t, Icon(name, 16, false), "not square")
}

func writeRound(t *testing.T, size int, flip image.Point) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			a := uint8(0)
			if export.InCircle(x, y, size) {
				a = 0xff
			}
			if x == flip.X && y == flip.Y {
				a = 0xff - a
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 0x34, G: 0x98, B: 0xdb, A: a})
		}
	}

	name := filepath.Join(t.TempDir(), "round.png")
	f, err := os.Create(name)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return name
}

func TestIconChecksWholeCircle(t *testing.T) {
	const size = 48

	assert.NoError(t, Icon(writeRound(t, size, image.Point{X: -1, Y: -1}), size, true))

	// a hole inside the circle, away from the center
	err := Icon(writeRound(t, size, image.Point{X: 10, Y: 24}), size, true)
	assert.ErrorContains(t, err, "(10,24) inside the circle is not opaque")

	// a stray opaque pixel outside the circle, off the corners
	err = Icon(writeRound(t, size, image.Point{X: 5, Y: 5}), size, true)
	require.False(t, export.InCircle(5, 5, size))
	assert.ErrorContains(t, err, "not transparent")
}
