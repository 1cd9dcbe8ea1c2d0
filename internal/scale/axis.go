package scale

import (
	"strconv"

	"golang.org/x/net/html"

	"countytrend/internal/scene"
	"countytrend/internal/shape"
)

type Orient int

const (
	Bottom Orient = iota
	Left
)

// offset aligns one-pixel strokes with the pixel grid.
const offset = 0.5

// Axis draws a domain line and one tick (line and label) per tick value into a
// group element. Rendering again updates the same group: ticks are keyed by
// value, ticks that disappear are removed.
type Axis struct {
	Orient     Orient
	Scale      Linear
	TickValues []float64 // explicit ticks; when nil, Scale.Ticks(TickCount) is used
	TickCount  int
	Format     Formatter
	// TickSizeInner is the tick line length; negative values draw gridlines
	// across the plot.
	TickSizeInner float64
	TickSizeOuter float64
	TickPadding   float64
}

func NewAxis(o Orient, s Linear) *Axis {
	return &Axis{
		Orient:        o,
		Scale:         s,
		TickCount:     10,
		TickSizeInner: 6,
		TickSizeOuter: 6,
		TickPadding:   3,
		Format:        func(v float64) string { return shape.Num(v) },
	}
}

func (a *Axis) values() []float64 {
	if a.TickValues != nil {
		return a.TickValues
	}
	return a.Scale.Ticks(a.TickCount)
}

// Render reconciles the axis elements inside g.
func (a *Axis) Render(g *html.Node) {
	k := 1.0
	if a.Orient == Left {
		k = -1
	}
	spacing := max(a.TickSizeInner, 0) + a.TickPadding
	values := a.values()

	scene.SetAttr(g, "fill", "none")
	scene.SetAttr(g, "font-size", "10")
	scene.SetAttr(g, "font-family", "sans-serif")
	if a.Orient == Left {
		scene.SetAttr(g, "text-anchor", "end")
	} else {
		scene.SetAttr(g, "text-anchor", "middle")
	}

	domain := scene.Join(g, "path.domain", 1, nil, func(parent *html.Node, _ int) *html.Node {
		p := scene.Append(parent, "path")
		scene.SetAttr(p, "class", "domain")
		scene.SetAttr(p, "stroke", "currentColor")
		return p
	})
	r0, r1 := a.Scale.Range[0]+offset, a.Scale.Range[1]+offset
	outer := k * a.TickSizeOuter
	var d string
	if a.Orient == Left {
		d = "M" + shape.Num(outer) + "," + shape.Num(r0) + "H" + shape.Num(offset) + "V" + shape.Num(r1) + "H" + shape.Num(outer)
	} else {
		d = "M" + shape.Num(r0) + "," + shape.Num(outer) + "V" + shape.Num(offset) + "H" + shape.Num(r1) + "V" + shape.Num(outer)
	}
	scene.SetAttr(domain.Nodes[0], "d", d)

	ticks := scene.Join(g, "g.tick", len(values), func(i int) string {
		return strconv.FormatFloat(values[i], 'g', -1, 64)
	}, func(parent *html.Node, _ int) *html.Node {
		t := scene.Append(parent, "g")
		scene.SetAttr(t, "class", "tick")
		line := scene.Append(t, "line")
		scene.SetAttr(line, "stroke", "currentColor")
		text := scene.Append(t, "text")
		scene.SetAttr(text, "fill", "currentColor")
		return t
	})
	ticks.RemoveExit()

	for i, t := range ticks.Nodes {
		pos := shape.Num(a.Scale.Apply(values[i]) + offset)
		line := scene.Select(t, "line")
		text := scene.Select(t, "text")
		scene.SetAttr(t, "opacity", "1")
		if a.Orient == Left {
			scene.SetAttr(t, "transform", "translate(0,"+pos+")")
			scene.SetAttr(line, "x2", shape.Num(k*a.TickSizeInner))
			scene.SetAttr(text, "x", shape.Num(k*spacing))
			scene.SetAttr(text, "dy", "0.32em")
		} else {
			scene.SetAttr(t, "transform", "translate("+pos+",0)")
			scene.SetAttr(line, "y2", shape.Num(k*a.TickSizeInner))
			scene.SetAttr(text, "y", shape.Num(k*spacing))
			scene.SetAttr(text, "dy", "0.71em")
		}
		scene.SetText(text, a.Format(values[i]))
	}
}
