package shape

// Cardinal is a cardinal spline through every point. Tension 0 gives the
// Catmull-Rom-like default; 1 degenerates to straight segments.
type Cardinal struct {
	Tension float64
}

// lineNone marks a curve drawn outside an area. Inside one, line is 0 while the
// top edge is drawn and 1 for the baseline.
const lineNone = -1

type cardinalCtx struct {
	p                      *Path
	k                      float64
	line                   int
	point                  int
	x0, x1, x2, y0, y1, y2 float64
}

func (c Cardinal) begin(p *Path) *cardinalCtx {
	return &cardinalCtx{p: p, k: (1 - c.Tension) / 6, line: lineNone}
}

func (c *cardinalCtx) areaStart() { c.line = 0 }
func (c *cardinalCtx) areaEnd()   { c.line = lineNone }

func (c *cardinalCtx) lineStart() {
	c.point = 0
}

func (c *cardinalCtx) lineEnd() {
	switch c.point {
	case 2:
		c.p.LineTo(c.x2, c.y2)
	case 3:
		c.bezier(c.x1, c.y1)
	}
	if c.line == 1 || (c.line != 0 && c.point == 1) {
		c.p.ClosePath()
	}
	if c.line != lineNone {
		c.line = 1 - c.line
	}
}

func (c *cardinalCtx) pointAt(x, y float64) {
	switch c.point {
	case 0:
		c.point = 1
		if c.line == 1 {
			c.p.LineTo(x, y)
		} else {
			c.p.MoveTo(x, y)
		}
	case 1:
		c.point = 2
		c.x1, c.y1 = x, y
	case 2:
		c.point = 3
		c.bezier(x, y)
	default:
		c.bezier(x, y)
	}
	c.x0, c.x1, c.x2 = c.x1, c.x2, x
	c.y0, c.y1, c.y2 = c.y1, c.y2, y
}

func (c *cardinalCtx) bezier(x, y float64) {
	c.p.CurveTo(
		c.x1+c.k*(c.x2-c.x0),
		c.y1+c.k*(c.y2-c.y0),
		c.x2+c.k*(c.x1-x),
		c.y2+c.k*(c.y1-y),
		c.x2,
		c.y2,
	)
}
