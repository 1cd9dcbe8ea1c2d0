package tui

import (
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"countytrend/internal/chart"
	"countytrend/internal/scale"
)

// refreshTable lists the prepared points of the current frame, DEM then REP.
func (m *Model) refreshTable() {
	cols := []table.Column{
		{Title: "Year", Width: 6},
		{Title: "Party", Width: 6},
		{Title: "Mean", Width: 6},
		{Title: "-1 sd", Width: 6},
		{Title: "+1 sd", Width: 6},
	}
	var rows []table.Row
	add := func(p chart.Party, pts []chart.PreparedPoint) {
		for _, pt := range pts {
			rows = append(rows, table.Row{
				scale.ShortYear(pt.X),
				string(p),
				scale.AbsPercent(pt.Y),
				pct(pt.Y0),
				pct(pt.Y1),
			})
		}
	}
	add(chart.DEM, m.frame.DEM)
	add(chart.REP, m.frame.REP)
	if len(rows) == 0 {
		m.showTable = false
		m.status = "no prepared points for this county"
		return
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

// pct keeps the sign, unlike the axis format: a band can dip below zero.
func pct(v float64) string {
	return strconv.FormatFloat(v*100, 'f', 0, 64) + "%"
}
