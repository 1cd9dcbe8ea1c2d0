package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"countytrend/internal/chart"
	"countytrend/internal/export"
	"countytrend/internal/returns"
)

type countyItem struct {
	title, desc string
	code        string
}

func (c countyItem) Title() string       { return c.title }
func (c countyItem) Description() string { return c.desc }
func (c countyItem) FilterValue() string { return c.title + " " + c.code }

func (m *Model) refreshList() {
	items := make([]list.Item, 0, m.data.Len())
	for _, c := range m.data.Counties() {
		items = append(items, countyItem{title: c.Name, desc: c.Code, code: c.Code})
	}
	m.items = items
	m.l.SetItems(items)
}

func (m *Model) selectListItem(code string) {
	for i, it := range m.items {
		if it.(countyItem).code == code {
			m.l.Select(i)
			return
		}
	}
}

// selectCounty charts the county with the given code.
func (m *Model) selectCounty(code string) {
	in, err := m.data.Lookup(code)
	if err != nil {
		m.status = err.Error()
		return
	}
	f, err := m.chart.Update(in)
	if err != nil {
		m.status = "render error: " + err.Error()
		m.log.Error("update failed", "county", code, "err", err)
		return
	}
	m.frame, m.code, m.rendered = f, code, true
	m.selectListItem(code)
	m.status = fmt.Sprintf("%s county  %d elections", in.Name, len(f.DEM))
	if m.showTable {
		m.refreshTable()
	}
}

// step moves the selection by delta counties, wrapping around.
func (m *Model) step(delta int) {
	codes := m.data.Codes()
	for i, c := range codes {
		if c == m.code {
			m.selectCounty(codes[(i+delta+len(codes))%len(codes)])
			return
		}
	}
}

// resize sizes the mount to a plot area of w x h cells and redraws.
func (m *Model) resize(w, h int) {
	m.mount.Resize(float64(w*cellW), float64(h*cellH)+m.cfg.HeaderAllowance)
	f, err := m.chart.Resize()
	if err != nil {
		m.rendered = false
		if errors.Is(err, chart.ErrMountTooSmall) {
			m.status = "terminal too small for the chart"
			return
		}
		m.status = "render error: " + err.Error()
		return
	}
	m.frame, m.rendered = f, true
}

// applyPaste adds the pasted counties to the dataset and charts the first one.
func (m *Model) applyPaste(text string) error {
	d, err := returns.DecodeJSON([]byte(text))
	if err != nil {
		return err
	}
	for _, c := range d.Counties() {
		m.data.Put(c)
	}
	m.refreshList()
	m.selectCounty(d.Codes()[0])
	return nil
}

// saveSnapshot writes the current chart as a standalone HTML page.
func (m *Model) saveSnapshot() (string, error) {
	in, err := m.data.Lookup(m.code)
	if err != nil {
		return "", err
	}
	name := strings.ToLower(strings.ReplaceAll(in.Name, " ", "-"))
	p := filepath.Join(m.saveDir, m.code+"-"+name+".html")
	f, err := os.Create(p)
	if err != nil {
		return "", err
	}
	if err := export.HTML(f, m.mount, in.Name+" county"); err != nil {
		f.Close()
		return "", err
	}
	return p, f.Close()
}
