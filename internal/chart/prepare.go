package chart

import (
	"fmt"
	"sort"
	"time"
)

func parseYear(s string) (time.Time, error) {
	t, err := time.Parse("2006", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse year %q: %w", s, err)
	}
	return t, nil
}

// PrepareContested drops returns without a mean, derives the one standard
// deviation band of the rest and sorts them by year. A missing stdev gives an
// empty band.
func PrepareContested(returns []ContestedReturn) ([]PreparedPoint, error) {
	out := make([]PreparedPoint, 0, len(returns))
	for _, r := range returns {
		if r.Mean == nil {
			continue
		}
		x, err := parseYear(r.Year)
		if err != nil {
			return nil, err
		}
		var sd float64
		if r.Stdev != nil {
			sd = *r.Stdev
		}
		m := *r.Mean
		out = append(out, PreparedPoint{X: x, Y: m, Y0: m - sd, Y1: m + sd, Year: x.Year()})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].X.Before(out[j].X) })
	return out, nil
}

// PrepareUncontested drops the excluded year and sorts by the year string.
func PrepareUncontested(returns []UncontestedReturn, excluded string) []UncontestedReturn {
	out := make([]UncontestedReturn, 0, len(returns))
	for _, r := range returns {
		if r.Year == excluded {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
