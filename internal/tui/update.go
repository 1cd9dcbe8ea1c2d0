package tui

import (
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				text := strings.TrimSpace(m.ta.Value())
				if text == "" {
					m.status = "paste: empty"
					return m, nil
				}
				if err := m.applyPaste(text); err != nil {
					m.status = "paste error: " + err.Error()
					return m, nil
				}
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.showSidebar = !m.showSidebar
			m.relayout()
			if m.showSidebar {
				m.selectListItem(m.code)
			}
			return m, nil
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showTable = !m.showTable
			if m.showTable {
				m.refreshTable()
			}
		case "s":
			if p, err := m.saveSnapshot(); err != nil {
				m.status = "save error: " + err.Error()
			} else {
				m.status = "saved " + p
				m.log.Info("snapshot saved", "path", p)
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(countyItem); ok {
					m.selectCounty(it.code)
				}
			}
			return m, nil
		case "up", "left":
			if !m.showSidebar {
				m.step(-1)
				return m, nil
			}
		case "down", "right":
			if !m.showSidebar {
				m.step(1)
				return m, nil
			}
		}
	case tea.MouseMsg:
		ly := m.layout()
		cx, cy := msg.X-ly.plotX, msg.Y-ly.plotY
		if m.rendered && cx >= 0 && cx < ly.plotW && cy >= 0 && cy < ly.plotH {
			m.hovering = true
			m.hoverYear = m.nearestYear(cx)
		} else {
			m.hovering = false
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// relayout fits the list and the chart mount to the current window.
func (m *Model) relayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	ly := m.layout()
	if m.showSidebar {
		m.l.SetSize(ly.sidebarW-2, ly.contentH-2)
	}
	m.resize(ly.plotW, ly.plotH)
}
