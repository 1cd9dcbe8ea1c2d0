package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")
	demFg     = lipgloss.Color("#4F8FD6")
	repFg     = lipgloss.Color("#E0475B")
	demBandFg = lipgloss.Color("#27496E")
	repBandFg = lipgloss.Color("#6E2732")
	gridFg    = lipgloss.Color("#2B3440")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	demStyle   = lipgloss.NewStyle().Foreground(demFg).Bold(true)
	repStyle   = lipgloss.NewStyle().Foreground(repFg).Bold(true)

	penStyles = map[pen]lipgloss.Style{
		penGrid:      lipgloss.NewStyle().Foreground(gridFg),
		penCounty:    dimStyle,
		penBandDEM:   lipgloss.NewStyle().Foreground(demBandFg),
		penBandREP:   lipgloss.NewStyle().Foreground(repBandFg),
		penHighlight: lipgloss.NewStyle().Foreground(baseFg),
		penLineDEM:   lipgloss.NewStyle().Foreground(demFg),
		penLineREP:   lipgloss.NewStyle().Foreground(repFg),
	}
)

// partyStyle styles text of the class the chart gives a trend ("dem" or "rep").
func partyStyle(class string) lipgloss.Style {
	switch class {
	case "dem":
		return demStyle
	case "rep":
		return repStyle
	}
	return dimStyle
}
