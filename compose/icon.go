package compose

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// BaseSize is the edge length all icon geometry is laid out for.
const BaseSize = 512

type Palette struct {
	Background color.RGBA
	Accent     color.RGBA
	Secondary  color.RGBA
	Foreground color.RGBA
}

var DefaultPalette = Palette{
	Background: color.RGBA{R: 0x2c, G: 0x3e, B: 0x50, A: 0xff},
	Accent:     color.RGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff},
	Secondary:  color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff},
	Foreground: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// Colors returns the palette in background, accent, secondary, foreground
// order, the same order PaletteFrom expects.
func (p Palette) Colors() color.Palette {
	return color.Palette{p.Background, p.Accent, p.Secondary, p.Foreground}
}

func PaletteFrom(pal color.Palette) (Palette, error) {
	if len(pal) < 4 {
		return Palette{}, fmt.Errorf("icon palette needs 4 colors, got %d", len(pal))
	}

	opaque := func(c color.Color) color.RGBA {
		rgba := color.RGBAModel.Convert(c).(color.RGBA)
		rgba.A = 0xff
		return rgba
	}

	return Palette{
		Background: opaque(pal[0]),
		Accent:     opaque(pal[1]),
		Secondary:  opaque(pal[2]),
		Foreground: opaque(pal[3]),
	}, nil
}

const (
	strokeWidth   = 12
	searchRadius  = 60
	handleLength  = 40
	linkWidth     = 4
	markerRadius  = 8
	accentRadius  = 15
	clusterRadius = 6
)

var (
	searchCenter = image.Point{X: -30, Y: -30}
	// 0.7 of the search radius along both axes lands on the lower-right edge.
	handleStart = searchCenter.Add(image.Point{X: searchRadius * 7 / 10, Y: searchRadius * 7 / 10})
	handleEnd   = handleStart.Add(image.Point{X: handleLength, Y: handleLength})

	markers = []image.Point{
		{X: 80, Y: -80},
		{X: 120, Y: -40},
		{X: 100, Y: 20},
		{X: 60, Y: 80},
		{X: -60, Y: 100},
		{X: -100, Y: 60},
	}
	accentMark = image.Point{X: -120, Y: 40}
	cluster    = []image.Point{
		{X: 140, Y: 60},
		{X: 150, Y: 80},
		{X: 160, Y: 100},
	}
)

// Icon draws the launcher icon onto a new opaque size x size canvas.
// Geometry is defined for BaseSize and scaled linearly to size.
func Icon(size int, pal Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(pal.Background), image.Point{}, draw.Src)

	p := newPainter(img)
	p.disc(image.Point{}, float32(BaseSize)/3, pal.Accent)

	p.ring(searchCenter, searchRadius, strokeWidth, pal.Foreground)
	p.line(handleStart, handleEnd, strokeWidth, pal.Foreground)

	p.polyline(markers, linkWidth, pal.Secondary)
	for _, m := range markers {
		p.disc(m, markerRadius, pal.Secondary)
	}

	p.disc(accentMark, accentRadius, pal.Secondary)

	for _, c := range cluster {
		p.disc(c, clusterRadius, pal.Foreground)
	}

	return img
}
