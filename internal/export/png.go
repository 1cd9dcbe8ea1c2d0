package export

import (
	"errors"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"countytrend/internal/chart"
	"countytrend/internal/scale"
	"countytrend/internal/stats"
)

var ErrEmptyFrame = errors.New("frame has no prepared points")

var (
	demColor = drawing.ColorFromHex("2a6ebb")
	repColor = drawing.ColorFromHex("c8102e")
)

// PNGOptions sizes the raster rendition.
type PNGOptions struct {
	Width  int
	Height int
	Title  string
	// Fits adds the regression line of each party.
	Fits bool
}

// PNG draws the frame's series with go-chart: the mean vote share of each
// party as a solid line and its one standard deviation bounds dashed, on a
// 0-100% axis with one tick per election.
func PNG(w io.Writer, f chart.Frame, opts PNGOptions) error {
	if len(f.DEM) == 0 || len(f.REP) == 0 {
		return ErrEmptyFrame
	}
	var series []gochart.Series
	add := func(name string, pts []chart.PreparedPoint, col drawing.Color) {
		xs := make([]float64, len(pts))
		ys := make([]float64, len(pts))
		lo := make([]float64, len(pts))
		hi := make([]float64, len(pts))
		for i, p := range pts {
			xs[i], ys[i], lo[i], hi[i] = float64(p.Year), p.Y, p.Y0, p.Y1
		}
		band := gochart.Style{StrokeColor: col.WithAlpha(120), StrokeWidth: 1, StrokeDashArray: []float64{4, 3}}
		series = append(series,
			gochart.ContinuousSeries{Name: name, XValues: xs, YValues: ys, Style: gochart.Style{StrokeColor: col, StrokeWidth: 2.5, DotColor: col, DotWidth: 3}},
			gochart.ContinuousSeries{Name: name + " -1 sd", XValues: xs, YValues: lo, Style: band},
			gochart.ContinuousSeries{Name: name + " +1 sd", XValues: xs, YValues: hi, Style: band},
		)
	}
	add("DEM", f.DEM, demColor)
	add("REP", f.REP, repColor)

	lo := float64(min(f.DEM[0].Year, f.REP[0].Year))
	hi := float64(max(f.DEM[len(f.DEM)-1].Year, f.REP[len(f.REP)-1].Year))
	if opts.Fits {
		for _, fit := range []struct {
			name string
			line stats.Line
			col  drawing.Color
		}{{"DEM trend", f.DEMFit, demColor}, {"REP trend", f.REPFit, repColor}} {
			series = append(series, gochart.ContinuousSeries{
				Name:    fit.name,
				XValues: []float64{lo, hi},
				YValues: []float64{fit.line.At(lo), fit.line.At(hi)},
				Style:   gochart.Style{StrokeColor: fit.col.WithAlpha(160), StrokeWidth: 1, StrokeDashArray: []float64{1, 3}},
			})
		}
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}

	var xTicks []gochart.Tick
	for _, p := range f.DEM {
		xTicks = append(xTicks, gochart.Tick{Value: float64(p.Year), Label: scale.ShortYear(p.X)})
	}
	var yTicks []gochart.Tick
	for _, v := range scale.Ticks(0, 1, 4) {
		yTicks = append(yTicks, gochart.Tick{Value: v, Label: scale.AbsPercent(v)})
	}

	ch := gochart.Chart{
		Title:      pngTitle(opts.Title, f),
		Width:      opts.Width,
		Height:     opts.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      gochart.XAxis{Name: "General elections", Range: &gochart.ContinuousRange{Min: lo, Max: hi}, Ticks: xTicks},
		YAxis: gochart.YAxis{
			Name:           "Average percent of vote",
			Range:          &gochart.ContinuousRange{Min: 0, Max: 1},
			Ticks:          yTicks,
			GridMajorStyle: gochart.Style{StrokeColor: drawing.ColorFromHex("dddddd"), StrokeWidth: 1},
			GridLines:      gridLines(yTicks),
		},
		Series: series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}
	return ch.Render(gochart.PNG, w)
}

// pngTitle appends the trend label to the caller's title.
func pngTitle(title string, f chart.Frame) string {
	if f.TrendText == "" {
		return title
	}
	return title + "  (net annual trend " + f.TrendText + ")"
}

func gridLines(ticks []gochart.Tick) []gochart.GridLine {
	out := make([]gochart.GridLine, len(ticks))
	for i, t := range ticks {
		out[i] = gochart.GridLine{Value: t.Value}
	}
	return out
}

