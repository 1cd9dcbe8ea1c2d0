// Package geo projects boundary features onto the plane for the minimap.
package geo

import (
	"errors"
	"math"

	"countytrend/internal/geom"
	"countytrend/internal/shape"
)

const (
	radians = math.Pi / 180
	epsilon = 1e-6
)

// Projection is a conic equal-area projection with a longitude rotation and a
// center, followed by uniform scale and translation. Values are immutable; the
// With* methods return modified copies.
type Projection struct {
	scale     float64
	translate [2]float64
	rotate    float64    // degrees added to longitude
	center    [2]float64 // degrees, in rotated coordinates

	n, c, r0 float64
	cosPhi0  float64
}

// ConicEqualArea returns the Albers conic equal-area projection for the two
// standard parallels, unit scale, no rotation.
func ConicEqualArea(parallel0, parallel1 float64) Projection {
	sy0 := math.Sin(parallel0 * radians)
	n := (sy0 + math.Sin(parallel1*radians)) / 2
	c := 1 + sy0*(2*n-sy0)
	return Projection{scale: 1, n: n, c: c, r0: math.Sqrt(c) / n, cosPhi0: math.Cos(parallel0 * radians)}
}

// Albers is the conic equal-area projection centred on the lower 48 states.
func Albers() Projection {
	return ConicEqualArea(29.5, 45.5).
		WithRotate(96).
		WithCenter(-0.6, 38.7).
		WithScale(1070).
		WithTranslate(480, 250)
}

func (p Projection) WithScale(k float64) Projection {
	p.scale = k
	return p
}

func (p Projection) WithTranslate(x, y float64) Projection {
	p.translate = [2]float64{x, y}
	return p
}

func (p Projection) WithRotate(lambda float64) Projection {
	p.rotate = lambda
	return p
}

func (p Projection) WithCenter(lon, lat float64) Projection {
	p.center = [2]float64{lon, lat}
	return p
}

func (p Projection) Scale() float64 { return p.scale }

func (p Projection) Translate() [2]float64 { return p.translate }

// Project maps lon/lat degrees to plane coordinates (y grows downward).
func (p Projection) Project(lon, lat float64) (float64, float64) {
	lambda := (lon + p.rotate) * radians
	if math.Abs(lambda) > math.Pi {
		lambda -= math.Round(lambda/(2*math.Pi)) * 2 * math.Pi
	}
	x, y := p.raw(lambda, lat*radians)
	cx, cy := p.raw(p.center[0]*radians, p.center[1]*radians)
	return p.translate[0] + p.scale*(x-cx), p.translate[1] - p.scale*(y-cy)
}

func (p Projection) raw(lambda, phi float64) (float64, float64) {
	if math.Abs(p.n) < epsilon {
		// parallels symmetric about the equator: cylindrical equal-area
		return lambda * p.cosPhi0, math.Sin(phi) / p.cosPhi0
	}
	r := math.Sqrt(p.c-2*p.n*math.Sin(phi)) / p.n
	lambda *= p.n
	return r * math.Sin(lambda), p.r0 - r*math.Cos(lambda)
}

// Bounds is the projected bounding box of every ring vertex in fc.
func Bounds(p Projection, fc geom.FeatureCollection) (geom.BBox, bool) {
	var b geom.BBox
	n := 0
	for _, f := range fc.List {
		for _, poly := range f.Polygons {
			for _, ring := range poly {
				for _, pt := range ring {
					x, y := p.Project(pt[0], pt[1])
					b.Extend([2]float64{x, y}, n == 0)
					n++
				}
			}
		}
	}
	return b, n > 0
}

// Path renders a feature as SVG path data, one closed subpath per ring.
func Path(p Projection, f geom.Feature) *shape.Path {
	out := &shape.Path{}
	for _, poly := range f.Polygons {
		for _, ring := range poly {
			n := len(ring)
			if n > 1 && ring[0] == ring[n-1] {
				n--
			}
			if n == 0 {
				continue
			}
			for i := 0; i < n; i++ {
				x, y := p.Project(ring[i][0], ring[i][1])
				if i == 0 {
					out.MoveTo(x, y)
				} else {
					out.LineTo(x, y)
				}
			}
			out.ClosePath()
		}
	}
	return out
}

var ErrEmptyExtent = errors.New("boundaries have no extent")

// scaleBump compensates for the distortion between the unit-scale measuring pass
// and the final projection.
const scaleBump = 0.2

// Fit is the scale and translation that place a feature collection in a box.
type Fit struct {
	Scale      float64
	Translate  [2]float64
	Projection Projection
}

// FitBox projects fc once at unit scale with no translation, measures it, and
// derives the scale and translation that centre it in a width x height box with
// a 5% margin. The result depends only on fc, base and the box.
func FitBox(base Projection, fc geom.FeatureCollection, width, height float64) (Fit, error) {
	unit := base.WithScale(1).WithTranslate(0, 0)
	b, ok := Bounds(unit, fc)
	if !ok {
		return Fit{}, ErrEmptyExtent
	}
	bw, bh := b.MaxX-b.MinX, b.MaxY-b.MinY
	if bw <= 0 && bh <= 0 {
		return Fit{}, ErrEmptyExtent
	}
	s := 0.95 / math.Max(bw/width, bh/height)
	t := [2]float64{
		(width - s*(b.MaxX+b.MinX)) / 2,
		(height - s*(b.MaxY+b.MinY)) / 2,
	}
	return Fit{
		Scale:      s,
		Translate:  t,
		Projection: base.WithScale(s + scaleBump).WithTranslate(t[0], t[1]),
	}, nil
}
