package chart

import "time"

type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Config holds the layout constants and styling of the chart.
type Config struct {
	Margins Margins
	// HeaderAllowance is taken off the mount height for the title above the svg.
	HeaderAllowance float64
	MinimapSize     float64
	// MinimapInset is the gap between the minimap and the right edge of the plot.
	MinimapInset float64
	// GridOverhang extends the y gridlines past the plot, under the minimap.
	GridOverhang float64
	Duration     time.Duration
	YTicks       int
	Tension      float64

	HighlightFill string
	FaintFill     string

	// ExcludedYear is left out of the uncontested series.
	ExcludedYear string
	// Precision is the number of decimals regression slopes are rounded to;
	// negative keeps them exact.
	Precision       int
	UncontestedDots bool
	// GeoObject names the boundary collection drawn on the minimap.
	GeoObject string
}

func DefaultConfig() Config {
	return Config{
		Margins:         Margins{Top: 85, Right: 30, Bottom: 30, Left: 40},
		HeaderAllowance: 80,
		MinimapSize:     120,
		MinimapInset:    20,
		GridOverhang:    40,
		Duration:        750 * time.Millisecond,
		YTicks:          4,
		HighlightFill:   "rgba(0,0,0,.6)",
		FaintFill:       "rgba(0,0,0,.1)",
		ExcludedYear:    "2016",
		Precision:       2,
		GeoObject:       "tx_counties",
	}
}
