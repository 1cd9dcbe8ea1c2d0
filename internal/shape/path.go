package shape

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/integrate/quad"
)

type Op byte

const (
	MoveTo  Op = 'M'
	LineTo  Op = 'L'
	CurveTo Op = 'C'
	Close   Op = 'Z'
)

// Segment is one path command. Pts holds the end point for M and L, the two
// control points followed by the end point for C, and nothing for Z.
type Segment struct {
	Op  Op
	Pts [][2]float64
}

// Path accumulates drawing commands and serialises them as SVG path data.
type Path struct {
	segs []Segment
}

func (p *Path) MoveTo(x, y float64) {
	p.segs = append(p.segs, Segment{Op: MoveTo, Pts: [][2]float64{{x, y}}})
}

func (p *Path) LineTo(x, y float64) {
	p.segs = append(p.segs, Segment{Op: LineTo, Pts: [][2]float64{{x, y}}})
}

func (p *Path) CurveTo(x1, y1, x2, y2, x, y float64) {
	p.segs = append(p.segs, Segment{Op: CurveTo, Pts: [][2]float64{{x1, y1}, {x2, y2}, {x, y}}})
}

func (p *Path) ClosePath() {
	p.segs = append(p.segs, Segment{Op: Close})
}

func (p *Path) Segments() []Segment { return p.segs }

func (p *Path) Empty() bool { return len(p.segs) == 0 }

// String returns SVG path data in the compact form "M0,0L1,1C...Z".
func (p *Path) String() string {
	var b strings.Builder
	for _, s := range p.segs {
		b.WriteByte(byte(s.Op))
		for i, pt := range s.Pts {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(Num(pt[0]))
			b.WriteByte(',')
			b.WriteString(Num(pt[1]))
		}
	}
	return b.String()
}

// Num formats v with the shortest representation that round-trips, never in
// exponent form.
func Num(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// legendreNodes is the quadrature order used per cubic segment.
const legendreNodes = 16

// Length is the total arc length of the path including closing segments, the
// value an SVG engine reports from getTotalLength.
func (p *Path) Length() float64 {
	var total float64
	var cur, start [2]float64
	for _, s := range p.segs {
		switch s.Op {
		case MoveTo:
			cur = s.Pts[0]
			start = cur
		case LineTo:
			total += dist(cur, s.Pts[0])
			cur = s.Pts[0]
		case CurveTo:
			total += cubicLength(cur, s.Pts[0], s.Pts[1], s.Pts[2])
			cur = s.Pts[2]
		case Close:
			total += dist(cur, start)
			cur = start
		}
	}
	return total
}

// Flatten approximates the path by polylines, one per subpath, sampling each
// cubic segment at steps intervals.
func (p *Path) Flatten(steps int) [][][2]float64 {
	if steps < 1 {
		steps = 1
	}
	var out [][][2]float64
	var line [][2]float64
	var start [2]float64
	flush := func() {
		if len(line) > 0 {
			out = append(out, line)
		}
		line = nil
	}
	for _, s := range p.segs {
		switch s.Op {
		case MoveTo:
			flush()
			start = s.Pts[0]
			line = append(line, start)
		case LineTo:
			line = append(line, s.Pts[0])
		case CurveTo:
			if len(line) == 0 {
				line = append(line, start)
			}
			p0 := line[len(line)-1]
			for i := 1; i <= steps; i++ {
				line = append(line, cubicAt(p0, s.Pts[0], s.Pts[1], s.Pts[2], float64(i)/float64(steps)))
			}
		case Close:
			line = append(line, start)
		}
	}
	flush()
	return out
}

func dist(a, b [2]float64) float64 {
	return math.Hypot(b[0]-a[0], b[1]-a[1])
}

func cubicAt(p0, p1, p2, p3 [2]float64, t float64) [2]float64 {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return [2]float64{
		a*p0[0] + b*p1[0] + c*p2[0] + d*p3[0],
		a*p0[1] + b*p1[1] + c*p2[1] + d*p3[1],
	}
}

func cubicLength(p0, p1, p2, p3 [2]float64) float64 {
	speed := func(t float64) float64 {
		mt := 1 - t
		a := 3 * mt * mt
		b := 6 * mt * t
		c := 3 * t * t
		dx := a*(p1[0]-p0[0]) + b*(p2[0]-p1[0]) + c*(p3[0]-p2[0])
		dy := a*(p1[1]-p0[1]) + b*(p2[1]-p1[1]) + c*(p3[1]-p2[1])
		return math.Hypot(dx, dy)
	}
	return quad.Fixed(speed, 0, 1, legendreNodes, quad.Legendre{}, 0)
}
