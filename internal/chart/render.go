package chart

import (
	"fmt"

	"golang.org/x/net/html"

	"countytrend/internal/geom"
	"countytrend/internal/scale"
	"countytrend/internal/scene"
	"countytrend/internal/shape"
)

// RenderContext is the complete input of one render. It is a value: changing
// the data means building a new context.
type RenderContext struct {
	Mount      *scene.Mount
	Input      Input
	Boundaries geom.Boundaries
	Config     Config
}

func (c RenderContext) WithInput(in Input) RenderContext {
	c.Input = in
	return c
}

var partyClass = [2]string{"dem", "rep"}

// exitAttr marks elements that are animating out; the next render removes them.
const exitAttr = "data-exit"

// Render draws ctx.Input into ctx.Mount. The static scaffold is built on the
// first call against a mount; every call recomputes the geometry and patches
// the data-bound elements. On error the mount is left as it was.
func Render(ctx RenderContext) (Frame, error) {
	if ctx.Mount == nil {
		return Frame{}, fmt.Errorf("render: nil mount")
	}
	cfg := ctx.Config
	f, err := Compute(ctx.Input, ctx.Boundaries, ctx.Mount.Bounds(), cfg)
	if err != nil {
		return Frame{}, err
	}

	root := ctx.Mount.Node()
	if scene.Select(root, "svg") == nil {
		scaffold(root, cfg)
	}
	for _, n := range scene.SelectAll(root, "["+exitAttr+"]") {
		scene.Remove(n)
	}

	scene.SetText(scene.Select(root, "h3"), ctx.Input.Name+" county")
	span := scene.Select(root, ".trendLab span")
	scene.SetAttr(span, "class", f.TrendClass)
	scene.SetText(span, f.TrendText)

	svg := scene.Select(root, "svg")
	scene.SetAttr(svg, "width", shape.Num(f.Width))
	scene.SetAttr(svg, "height", shape.Num(f.Height))

	g := scene.Select(svg, "g.chart")
	renderMinimap(scene.Select(svg, "g.minimap"), f, cfg)
	renderAxes(g, f, cfg)
	renderSeries(g, f, cfg)
	if cfg.UncontestedDots {
		renderDots(g, f, cfg)
	}
	return f, nil
}

func scaffold(root *html.Node, cfg Config) {
	scene.Append(root, "h3")

	svg := scene.Append(root, "svg")
	scene.SetStyle(svg, "display", "block")
	scene.SetStyle(svg, "margin", "auto")
	g := scene.Append(svg, "g")
	scene.SetAttr(g, "class", "chart")
	scene.SetAttr(g, "transform", "translate("+shape.Num(cfg.Margins.Left)+", "+shape.Num(cfg.Margins.Top)+")")

	mm := scene.Append(svg, "g")
	scene.SetAttr(mm, "class", "minimap")

	yAxis := scene.Append(g, "g")
	scene.SetAttr(yAxis, "class", "y axis")
	scene.SetAttr(yAxis, "transform", "translate(-35, 0)")
	label := scene.Append(yAxis, "text")
	scene.SetAttr(label, "class", "label")
	scene.SetAttr(label, "x", "0")
	scene.SetAttr(label, "y", "-12")
	scene.SetStyle(label, "text-anchor", "start")
	scene.SetText(label, "Average percent of vote")

	xAxis := scene.Append(g, "g")
	scene.SetAttr(xAxis, "class", "x axis")
	label = scene.Append(xAxis, "text")
	scene.SetAttr(label, "class", "label")
	scene.SetStyle(label, "text-anchor", "end")
	scene.SetText(label, "General elections")

	p := scene.Append(root, "p")
	scene.SetAttr(p, "class", "footnote")
	scene.SetHTML(p, `<span class="stdev-key rep"></span> <span class="stdev-key dem"></span> Standard deviation from the average`)

	p = scene.Append(root, "p")
	scene.SetAttr(p, "class", "footnote")
	scene.SetText(p, "Data aggregates all contested race results collected by the Secretary of State in general elections.")

	div := scene.Append(root, "div")
	scene.SetAttr(div, "class", "trendLab")
	scene.SetHTML(div, "Net annual trend: <span></span>")
}

func renderMinimap(mm *html.Node, f Frame, cfg Config) {
	scene.SetAttr(mm, "transform", "translate("+shape.Num(f.MinimapX)+", 0)")
	j := scene.Join(mm, "path", len(f.Counties), func(i int) string {
		return f.Counties[i].ID
	}, func(parent *html.Node, _ int) *html.Node {
		return scene.Append(parent, "path")
	})
	j.RemoveExit()
	for i, n := range j.Nodes {
		c := f.Counties[i]
		fill := cfg.FaintFill
		if c.Highlight {
			fill = cfg.HighlightFill
		}
		scene.SetAttr(n, "d", c.D)
		scene.SetStyle(n, "fill", fill)
		scene.SetStyle(n, "stroke-width", "0")
		scene.SetAttr(n, "class", "county "+c.ID)
	}
}

func renderAxes(g *html.Node, f Frame, cfg Config) {
	yAxisG := scene.Select(g, "g.y.axis")
	xAxisG := scene.Select(g, "g.x.axis")
	scene.SetAttr(xAxisG, "transform", "translate(0,"+shape.Num(f.InnerHeight)+")")
	label := scene.Select(xAxisG, "text.label")
	scene.SetAttr(label, "x", shape.Num(f.InnerWidth+6))
	scene.SetAttr(label, "y", "-3")

	grid := -f.InnerWidth - cfg.GridOverhang
	y := scale.NewAxis(scale.Left, f.Y)
	y.TickCount = cfg.YTicks
	y.TickSizeInner, y.TickSizeOuter = grid, grid
	y.TickPadding = 0
	y.Format = scale.AbsPercent
	y.Render(yAxisG)

	x := scale.NewAxis(scale.Bottom, f.X)
	x.TickValues = f.XTicks
	x.TickPadding = 0
	x.Format = scale.ShortYearMillis
	x.Render(xAxisG)
}

func renderSeries(g *html.Node, f Frame, cfg Config) {
	bands := scene.Join(g, "path.stdev", 2, nil, func(parent *html.Node, i int) *html.Node {
		n := scene.Append(parent, "path")
		scene.SetAttr(n, "class", "stdev "+partyClass[i])
		return n
	})
	for i, n := range bands.Nodes {
		scene.Transition(n, "d", f.Bands[i].String(), cfg.Duration)
	}

	lines := scene.Join(g, "path.line", 2, nil, func(parent *html.Node, i int) *html.Node {
		n := scene.Append(parent, "path")
		scene.SetAttr(n, "class", "line "+partyClass[i])
		return n
	})
	// draw-on: a dash as long as the line starts fully offset, then slides in
	for i, n := range lines.Nodes {
		l := shape.Num(f.Lines[i].Length())
		scene.SetAttr(n, "d", f.Lines[i].String())
		scene.SetAttr(n, "stroke-dasharray", l+" "+l)
		scene.SetAttr(n, "stroke-dashoffset", l)
		scene.Transition(n, "stroke-dashoffset", "0", cfg.Duration)
	}
}

func renderDots(g *html.Node, f Frame, cfg Config) {
	base := shape.Num(f.InnerHeight)
	gone := shape.Num(f.InnerHeight + 40)
	for pi, cols := range f.Dots {
		class := "uncontestedD"
		if pi == 1 {
			class = "uncontestedR"
		}
		groups := scene.Join(g, "g."+class, len(cols), func(i int) string {
			return cols[i].Year
		}, func(parent *html.Node, _ int) *html.Node {
			n := scene.Append(parent, "g")
			scene.SetAttr(n, "class", class)
			return n
		})
		groups.RemoveExit()

		for ci, grp := range groups.Nodes {
			col := cols[ci]
			circles := scene.Join(grp, "circle."+class, col.Count, nil, func(parent *html.Node, _ int) *html.Node {
				c := scene.Append(parent, "circle")
				scene.SetAttr(c, "class", class)
				scene.SetAttr(c, "r", "4")
				scene.SetAttr(c, "cy", base)
				return c
			})
			for i, c := range circles.Nodes {
				scene.SetAttr(c, "cx", shape.Num(col.CX))
				scene.Transition(c, "cy", shape.Num(f.InnerHeight-float64(i)*9-3), cfg.Duration)
			}
			for _, c := range circles.Exit {
				scene.SetAttr(c, exitAttr, "true")
				scene.Transition(c, "cy", gone, cfg.Duration)
			}
		}
	}
}
