package compose

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

// painter fills anti-aliased paths onto an opaque canvas. Coordinates are
// offsets from the canvas center in base units, multiplied by scale.
type painter struct {
	dst    *image.RGBA
	r      vector.Rasterizer
	cx, cy float32
	scale  float32
}

func newPainter(dst *image.RGBA) *painter {
	b := dst.Bounds()
	return &painter{
		dst:   dst,
		cx:    float32(b.Dx()) / 2,
		cy:    float32(b.Dy()) / 2,
		scale: float32(b.Dx()) / BaseSize,
	}
}

func (p *painter) at(o image.Point) (float32, float32) {
	return p.cx + float32(o.X)*p.scale, p.cy + float32(o.Y)*p.scale
}

func (p *painter) begin() {
	b := p.dst.Bounds()
	p.r.Reset(b.Dx(), b.Dy())
}

func (p *painter) fill(c color.Color) {
	p.r.Draw(p.dst, p.dst.Bounds(), image.NewUniform(c), image.Point{})
}

// circle adds a closed circular subpath. Opposite windings cancel, which is
// how rings are cut out of a disc.
func (p *painter) circle(x, y, radius float32, reverse bool) {
	k := radius * kappa
	p.r.MoveTo(x+radius, y)
	if !reverse {
		p.r.CubeTo(x+radius, y+k, x+k, y+radius, x, y+radius)
		p.r.CubeTo(x-k, y+radius, x-radius, y+k, x-radius, y)
		p.r.CubeTo(x-radius, y-k, x-k, y-radius, x, y-radius)
		p.r.CubeTo(x+k, y-radius, x+radius, y-k, x+radius, y)
	} else {
		p.r.CubeTo(x+radius, y-k, x+k, y-radius, x, y-radius)
		p.r.CubeTo(x-k, y-radius, x-radius, y-k, x-radius, y)
		p.r.CubeTo(x-radius, y+k, x-k, y+radius, x, y+radius)
		p.r.CubeTo(x+k, y+radius, x+radius, y+k, x+radius, y)
	}
	p.r.ClosePath()
}

// segment adds a butt-capped quad of the given width between a and b.
func (p *painter) segment(a, b image.Point, width float32) {
	x0, y0 := p.at(a)
	x1, y1 := p.at(b)
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	hw := width * p.scale / 2
	nx, ny := -dy/l*hw, dx/l*hw

	p.r.MoveTo(x0+nx, y0+ny)
	p.r.LineTo(x1+nx, y1+ny)
	p.r.LineTo(x1-nx, y1-ny)
	p.r.LineTo(x0-nx, y0-ny)
	p.r.ClosePath()
}

func (p *painter) disc(o image.Point, radius float32, c color.Color) {
	p.begin()
	x, y := p.at(o)
	p.circle(x, y, radius*p.scale, false)
	p.fill(c)
}

// ring strokes a circle inward from its outer radius.
func (p *painter) ring(o image.Point, radius, width float32, c color.Color) {
	p.begin()
	x, y := p.at(o)
	p.circle(x, y, radius*p.scale, false)
	p.circle(x, y, (radius-width)*p.scale, true)
	p.fill(c)
}

func (p *painter) line(a, b image.Point, width float32, c color.Color) {
	p.polyline([]image.Point{a, b}, width, c)
}

func (p *painter) polyline(pts []image.Point, width float32, c color.Color) {
	p.begin()
	for i := 1; i < len(pts); i++ {
		p.segment(pts[i-1], pts[i], width)
	}
	p.fill(c)
}
