// Package scale maps data values to plot coordinates and draws axes for them.
package scale

import "math"

// Linear maps the continuous Domain onto Range.
type Linear struct {
	Domain [2]float64
	Range  [2]float64
}

func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{Domain: [2]float64{d0, d1}, Range: [2]float64{r0, r1}}
}

// Apply maps v into the range. A degenerate domain maps everything to the middle
// of the range.
func (s Linear) Apply(v float64) float64 {
	d := s.Domain[1] - s.Domain[0]
	t := 0.5
	if d != 0 {
		t = (v - s.Domain[0]) / d
	}
	return s.Range[0] + t*(s.Range[1]-s.Range[0])
}

// Invert maps a range value back to the domain.
func (s Linear) Invert(y float64) float64 {
	r := s.Range[1] - s.Range[0]
	t := 0.5
	if r != 0 {
		t = (y - s.Range[0]) / r
	}
	return s.Domain[0] + t*(s.Domain[1]-s.Domain[0])
}

// Ticks returns about count round values spanning the domain, in domain order.
func (s Linear) Ticks(count int) []float64 {
	return Ticks(s.Domain[0], s.Domain[1], count)
}

// Extent returns the minimum and maximum of values, ignoring NaN.
func Extent(values []float64) (lo, hi float64, ok bool) {
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, ok
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// Ticks returns uniformly spaced, human-friendly values between start and stop
// (inclusive when they fall on a tick). Multiples of 1, 2 or 5 times a power of
// ten are used. Negative steps are represented as their inverse so decimal ticks
// come out exact (0.2, not 0.20000000000000004).
func Ticks(start, stop float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	inc := tickIncrement(start, stop, count)
	if inc == 0 || math.IsInf(inc, 0) || math.IsNaN(inc) {
		return nil
	}
	var ticks []float64
	if inc > 0 {
		lo, hi := math.Ceil(start/inc), math.Floor(stop/inc)
		for i := lo; i <= hi; i++ {
			ticks = append(ticks, i*inc)
		}
	} else {
		inc = -inc
		lo, hi := math.Ceil(start*inc), math.Floor(stop*inc)
		for i := lo; i <= hi; i++ {
			ticks = append(ticks, i/inc)
		}
	}
	if reverse {
		for a, b := 0, len(ticks)-1; a < b; a, b = a+1, b-1 {
			ticks[a], ticks[b] = ticks[b], ticks[a]
		}
	}
	return ticks
}

func tickIncrement(start, stop float64, count int) float64 {
	step := (stop - start) / math.Max(0, float64(count))
	power := math.Floor(math.Log10(step))
	err := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case err >= e10:
		factor = 10
	case err >= e5:
		factor = 5
	case err >= e2:
		factor = 2
	}
	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}
