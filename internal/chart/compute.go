package chart

import (
	"errors"
	"fmt"
	"math"

	"countytrend/internal/geo"
	"countytrend/internal/geom"
	"countytrend/internal/scale"
	"countytrend/internal/scene"
	"countytrend/internal/shape"
	"countytrend/internal/stats"
)

var (
	ErrNoContested   = errors.New("no contested returns with a mean")
	ErrMountTooSmall = errors.New("mount too small for the plot margins")
)

// County is one minimap path.
type County struct {
	ID        string
	D         string
	Highlight bool
}

// DotColumn is the stack of uncontested-race dots of one party in one year.
type DotColumn struct {
	Year  string
	CX    float64
	Count int
}

// Frame is everything a render derives from its inputs. It holds no reference
// to the mount.
type Frame struct {
	Width       float64
	Height      float64
	InnerWidth  float64
	InnerHeight float64

	DEM []PreparedPoint
	REP []PreparedPoint

	X      scale.Linear
	Y      scale.Linear
	XTicks []float64

	DEMFit stats.Line
	REPFit stats.Line
	// Trend is the REP slope minus the DEM slope, in vote share per year. A
	// series whose points all fall in one year has slope 0.
	Trend      float64
	TrendText  string
	TrendClass string

	Minimap   geo.Fit
	MinimapX  float64
	Counties  []County
	Highlight int // number of highlighted counties

	// Bands and Lines are indexed DEM, REP.
	Bands [2]*shape.Path
	Lines [2]*shape.Path

	// Dots are the uncontested columns, indexed DEM, REP.
	Dots [2][]DotColumn
}

// TrendLabel is the text and party class of a trend: "R +3%" for a net move
// towards REP, "D +3%" for one towards DEM.
func TrendLabel(trend float64) (text, class string) {
	if trend >= 0 {
		return "R " + scale.SignedPercent(trend, 0), "rep"
	}
	return "D " + scale.SignedPercent(math.Abs(trend), 0), "dem"
}

// Compute derives the frame for in drawn into a box of the given size.
func Compute(in Input, b geom.Boundaries, box scene.Box, cfg Config) (Frame, error) {
	var f Frame
	f.Width = box.Width
	f.Height = box.Height - cfg.HeaderAllowance
	f.InnerWidth = f.Width - cfg.Margins.Right - cfg.Margins.Left
	f.InnerHeight = f.Height - cfg.Margins.Top - cfg.Margins.Bottom
	if f.InnerWidth <= 0 || f.InnerHeight <= 0 {
		return Frame{}, fmt.Errorf("%w: %vx%v", ErrMountTooSmall, box.Width, box.Height)
	}

	var err error
	if f.DEM, err = PrepareContested(in.DEM.Contested.Returns); err != nil {
		return Frame{}, fmt.Errorf("%s: %w", DEM, err)
	}
	if f.REP, err = PrepareContested(in.REP.Contested.Returns); err != nil {
		return Frame{}, fmt.Errorf("%s: %w", REP, err)
	}
	if len(f.DEM) == 0 {
		return Frame{}, fmt.Errorf("%s: %w", DEM, ErrNoContested)
	}
	if len(f.REP) == 0 {
		return Frame{}, fmt.Errorf("%s: %w", REP, ErrNoContested)
	}

	// the DEM series sets the shared time axis
	f.X = scale.NewLinear(f.DEM[0].Millis(), f.DEM[len(f.DEM)-1].Millis(), 0, f.InnerWidth)
	f.XTicks = make([]float64, len(f.DEM))
	for i, p := range f.DEM {
		f.XTicks[i] = p.Millis()
	}
	f.Y = scale.NewLinear(1, 0, 0, f.InnerHeight)

	if err := f.fitTrend(cfg.Precision); err != nil {
		return Frame{}, err
	}

	if err := f.minimap(in.Code, b, cfg); err != nil {
		return Frame{}, err
	}

	curve := shape.Cardinal{Tension: cfg.Tension}
	x := func(p PreparedPoint) float64 { return f.X.Apply(p.Millis()) }
	y := func(p PreparedPoint) float64 { return f.Y.Apply(p.Y) }
	y0 := func(p PreparedPoint) float64 { return f.Y.Apply(p.Y0) }
	y1 := func(p PreparedPoint) float64 { return f.Y.Apply(p.Y1) }
	for i, series := range [2][]PreparedPoint{f.DEM, f.REP} {
		f.Bands[i] = shape.Area(series, curve, x, y0, y1)
		f.Lines[i] = shape.Line(series, curve, x, y)
	}

	for i, p := range [2]Party{DEM, REP} {
		cols, err := f.dots(in.Party(p).Uncontested.Returns, cfg.ExcludedYear, p)
		if err != nil {
			return Frame{}, fmt.Errorf("%s uncontested: %w", p, err)
		}
		f.Dots[i] = cols
	}
	return f, nil
}

func (f *Frame) fitTrend(precision int) error {
	fit := func(pts []PreparedPoint) (stats.Line, error) {
		xs := make([]float64, len(pts))
		ys := make([]float64, len(pts))
		for i, p := range pts {
			xs[i], ys[i] = float64(p.Year), p.Y
		}
		return stats.Fit(xs, ys, precision)
	}
	dem, err := fit(f.DEM)
	if err != nil {
		return fmt.Errorf("%s trend: %w", DEM, err)
	}
	rep, err := fit(f.REP)
	if err != nil {
		return fmt.Errorf("%s trend: %w", REP, err)
	}
	f.DEMFit, f.REPFit = dem, rep
	f.Trend = rep.Slope - dem.Slope
	f.TrendText, f.TrendClass = TrendLabel(f.Trend)
	return nil
}

func (f *Frame) minimap(code string, b geom.Boundaries, cfg Config) error {
	fc, err := b.Features(cfg.GeoObject)
	if err != nil {
		return fmt.Errorf("minimap: %w", err)
	}
	f.Minimap, err = geo.FitBox(geo.Albers(), fc, cfg.MinimapSize, cfg.MinimapSize)
	if err != nil {
		return fmt.Errorf("minimap: %w", err)
	}
	f.MinimapX = f.InnerWidth - cfg.MinimapInset - cfg.MinimapSize/2
	f.Counties = make([]County, len(fc.List))
	for i, feat := range fc.List {
		hl := feat.ID == code
		if hl {
			f.Highlight++
		}
		f.Counties[i] = County{ID: feat.ID, D: geo.Path(f.Minimap.Projection, feat).String(), Highlight: hl}
	}
	return nil
}

func (f *Frame) dots(returns []UncontestedReturn, excluded string, p Party) ([]DotColumn, error) {
	// columns sit either side of the year tick
	shift := 4.0
	if p == REP {
		shift = -4
	}
	prepared := PrepareUncontested(returns, excluded)
	cols := make([]DotColumn, 0, len(prepared))
	for _, r := range prepared {
		x, err := parseYear(r.Year)
		if err != nil {
			return nil, err
		}
		cols = append(cols, DotColumn{
			Year:  r.Year,
			CX:    f.X.Apply(float64(x.UnixMilli())) + shift,
			Count: r.Count,
		})
	}
	return cols, nil
}
