package chart

import "time"

type Party string

const (
	DEM Party = "DEM"
	REP Party = "REP"
)

// Input is one county's election history as delivered by the data pipeline.
type Input struct {
	Name string       `json:"name"`
	Code string       `json:"code"`
	DEM  PartyReturns `json:"DEM"`
	REP  PartyReturns `json:"REP"`
}

// Party returns the series for p.
func (in Input) Party(p Party) PartyReturns {
	if p == REP {
		return in.REP
	}
	return in.DEM
}

type PartyReturns struct {
	Contested   ContestedSeries   `json:"contested"`
	Uncontested UncontestedSeries `json:"uncontested"`
}

type ContestedSeries struct {
	Returns []ContestedReturn `json:"returns"`
}

type UncontestedSeries struct {
	Returns []UncontestedReturn `json:"returns"`
}

// ContestedReturn is the vote share of a party across the contested races of
// one general election. Mean and Stdev are nil when no race was contested.
type ContestedReturn struct {
	Year  string   `json:"year"`
	Mean  *float64 `json:"mean"`
	Stdev *float64 `json:"stdev"`
}

// UncontestedReturn counts the races a party won unopposed in one election.
type UncontestedReturn struct {
	Year  string `json:"year"`
	Count int    `json:"count"`
}

// PreparedPoint is a plottable contested return: the mean vote share Y with a
// one standard deviation band [Y0, Y1].
type PreparedPoint struct {
	X    time.Time
	Y    float64
	Y0   float64
	Y1   float64
	Year int
}

// Millis is X in Unix milliseconds, the unit of the time axis.
func (p PreparedPoint) Millis() float64 { return float64(p.X.UnixMilli()) }

// Float is a convenience for building nullable returns.
func Float(v float64) *float64 { return &v }
