package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	ly := m.layout()

	// Header: title and the trend label in the party colour
	in, _ := m.data.Lookup(m.code)
	header := titleStyle.Render(" countytrend ─ " + in.Name + " county ")
	if m.rendered {
		header += dimStyle.Render("  Net annual trend: ") + partyStyle(m.frame.TrendClass).Render(m.frame.TrendText)
	}
	header = lipgloss.NewStyle().Width(ly.contentW).Render(header)

	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(ly.sidebarW).Render(m.l.View())
	}

	mainW := ly.contentW - ly.plotX + gutterW
	var main string
	switch {
	case m.pasteMode:
		m.ta.SetWidth(mainW)
		m.ta.SetHeight(min(ly.contentH, 12))
		main = m.ta.View()
	case m.showTable:
		m.tbl.SetWidth(min(mainW-4, 44))
		m.tbl.SetHeight(min(ly.contentH-2, 20))
		main = lipgloss.Place(mainW, ly.contentH, lipgloss.Center, lipgloss.Center, boxStyle.Render(m.tbl.View()))
	case !m.rendered:
		main = lipgloss.Place(mainW, ly.contentH, lipgloss.Center, lipgloss.Center, dimStyle.Render(m.status))
	default:
		main = m.renderPlot(ly.plotW, ly.plotH)
	}
	main = lipgloss.NewStyle().Width(mainW).Height(ly.contentH).Render(main)

	body := main
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", main)
	}

	status := dimStyle.Render(" " + m.status + " ")
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp())
	hover := m.hoverText()
	spacerW := max(0, ly.contentW-lipgloss.Width(left)-lipgloss.Width(hover))
	right := lipgloss.Place(spacerW+lipgloss.Width(hover), 1, lipgloss.Right, lipgloss.Center, hover)
	footer := lipgloss.NewStyle().Width(ly.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(ly.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓ county",
		"Tab list",
		"Enter select",
		"a points",
		"p paste",
		"s save",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
