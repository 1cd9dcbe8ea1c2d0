// Package stats fits trend lines to election series.
package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrUnderdetermined is returned when there are no points to fit.
var ErrUnderdetermined = errors.New("stats: no points to fit")

// Line is y = Slope*x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

func (l Line) At(x float64) float64 { return l.Slope*x + l.Intercept }

// Fit is the least-squares line through (xs[i], ys[i]). When every x is the
// same (a single point included) the slope is 0 and the line runs through the
// mean y. The slope is rounded half up to precision decimals first and the
// intercept follows from the rounded slope; a negative precision keeps both
// exact.
func Fit(xs, ys []float64, precision int) (Line, error) {
	if len(xs) != len(ys) {
		return Line{}, errors.New("stats: xs and ys differ in length")
	}
	if len(xs) == 0 {
		return Line{}, ErrUnderdetermined
	}
	var slope float64
	if len(xs) > 1 && stat.Variance(xs, nil) != 0 {
		_, slope = stat.LinearRegression(xs, ys, nil, false)
	}
	if precision >= 0 {
		slope = Round(slope, precision)
	}
	l := Line{Slope: slope, Intercept: stat.Mean(ys, nil) - slope*stat.Mean(xs, nil)}
	if precision >= 0 {
		l.Intercept = Round(l.Intercept, precision)
	}
	return l, nil
}

// Round rounds v half up to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Floor(v*p+0.5) / p
}
