package export

import (
	"fmt"
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
)

// Lanczos is a 3-lobed Lanczos kernel.
var Lanczos = &draw.Kernel{
	Support: 3,
	At: func(t float64) float64 {
		if t == 0 {
			return 1
		}
		x := math.Pi * t
		return 3 * math.Sin(x) * math.Sin(x/3) / (x * x)
	},
}

var filters = map[string]draw.Scaler{
	"lanczos":        Lanczos,
	"catmullrom":     draw.CatmullRom,
	"bilinear":       draw.BiLinear,
	"approxbilinear": draw.ApproxBiLinear,
	"nearest":        draw.NearestNeighbor,
}

// Filter returns the scaler registered under name.
func Filter(name string) (draw.Scaler, error) {
	s, ok := filters[name]
	if !ok {
		return nil, fmt.Errorf("unsupported resampling filter: %s", name)
	}
	return s, nil
}

// square resamples img to a new size x size canvas.
func square(logger *slog.Logger, img image.Image, size int, scaler draw.Scaler) *image.RGBA {
	srcBounds := img.Bounds()
	destBounds := image.Rect(0, 0, size, size)
	dest := image.NewRGBA(destBounds)

	if srcBounds.Dx() == size && srcBounds.Dy() == size {
		draw.Draw(dest, destBounds, img, srcBounds.Min, draw.Src)
		return dest
	}

	logger.Debug("resizing", "from", srcBounds.Dx(), "to", size)
	scaler.Scale(dest, destBounds, img, srcBounds, draw.Src, nil)
	return dest
}
