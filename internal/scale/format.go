package scale

import (
	"math"
	"strconv"
	"time"
)

// Formatter turns a tick value into its label.
type Formatter func(v float64) string

// ShortYear formats a time as an apostrophe and two-digit year: '16.
func ShortYear(t time.Time) string {
	return "'" + t.Format("06")
}

// ShortYearMillis is ShortYear for a value in Unix milliseconds, the unit used
// for time on a linear scale.
func ShortYearMillis(v float64) string {
	return ShortYear(time.UnixMilli(int64(v)).UTC())
}

// AbsPercent renders a fraction as a whole, unsigned percentage: -0.25 -> "25%".
func AbsPercent(v float64) string {
	return strconv.FormatFloat(roundHalfUp(math.Abs(v*100)), 'f', 0, 64) + "%"
}

// SignedPercent renders a fraction as a percentage with an explicit sign and the
// given number of decimals: 0.03 -> "+3%", -0.031 -> "−3%" (U+2212).
func SignedPercent(v float64, decimals int) string {
	sign := "+"
	if v < 0 {
		sign = "−"
		v = -v
	}
	p := math.Pow(10, float64(decimals))
	return sign + strconv.FormatFloat(roundHalfUp(v*100*p)/p, 'f', decimals, 64) + "%"
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
