package export

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// InCircle reports whether the center of pixel (x, y) lies within the circle
// inscribed in a size x size square. Round icons are opaque exactly there.
func InCircle(x, y, size int) bool {
	r := float64(size) / 2
	dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
	return dx*dx+dy*dy <= r*r
}

func circleMask(size int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			if InCircle(x, y, size) {
				mask.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	return mask
}

// round copies the color channels of img and takes its alpha from the
// circle mask. Color data outside the circle is kept, only hidden.
func round(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dest := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dest, dest.Bounds(), img, b.Min, draw.Src)

	mask := circleMask(b.Dx())
	for y := range b.Dy() {
		for x := range b.Dx() {
			dest.Pix[dest.PixOffset(x, y)+3] = mask.AlphaAt(x, y).A
		}
	}
	return dest
}
