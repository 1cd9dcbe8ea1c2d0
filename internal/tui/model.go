// Package tui previews county trend charts in the terminal. The chart is
// rendered into an off-screen mount sized to the terminal, and its frame is
// drawn with braille dots.
package tui

import (
	"fmt"
	"io"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"countytrend/internal/chart"
	"countytrend/internal/geom"
	"countytrend/internal/returns"
	"countytrend/internal/scene"
)

// Terminal cells are treated as 8x16 pixels of the chart mount.
const (
	cellW = 8
	cellH = 16
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	// County list
	l     list.Model
	items []list.Item

	// Data
	data     *returns.Dataset
	counties geom.FeatureCollection
	cfg      chart.Config
	chart    *chart.Chart
	mount    *scene.Mount
	frame    chart.Frame
	code     string
	rendered bool

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// prepared points table
	showTable bool
	tbl       table.Model

	// hover state
	hovering  bool
	hoverYear int

	saveDir string
	log     *log.Logger
}

type Options struct {
	Data       *returns.Dataset
	Boundaries geom.Boundaries
	Config     chart.Config
	// County is the code shown first; the first county of Data when empty.
	County string
	// SaveDir receives HTML snapshots; the working directory when empty.
	SaveDir string
	Logger  *log.Logger
}

func New(o Options) (Model, error) {
	if o.Data == nil || o.Data.Len() == 0 {
		return Model{}, fmt.Errorf("tui: %w", returns.ErrNoCounty)
	}
	fc, err := o.Boundaries.Features(o.Config.GeoObject)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.SaveDir == "" {
		o.SaveDir, _ = os.Getwd()
	}
	m := Model{
		helpVisible: true,
		status:      "countytrend ready",
		data:        o.Data,
		counties:    fc,
		cfg:         o.Config,
		mount:       scene.NewMount("chart", 80*cellW, 24*cellH+o.Config.HeaderAllowance),
		saveDir:     o.SaveDir,
		log:         o.Logger,
	}
	m.chart = chart.New(o.Config, chart.WithLogger(o.Logger))

	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Counties"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.refreshList()
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste county JSON here (one object or an array). Press Enter to chart; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)

	code := o.County
	if code == "" {
		code = o.Data.Codes()[0]
	}
	in, err := o.Data.Lookup(code)
	if err != nil {
		return Model{}, err
	}
	f, err := m.chart.Create(m.mount, in, o.Boundaries)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %s: %w", code, err)
	}
	m.frame, m.code, m.rendered = f, code, true
	m.selectListItem(code)
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

// Frame is the frame currently on screen.
func (m Model) Frame() chart.Frame { return m.frame }

// Code is the selected county.
func (m Model) Code() string { return m.code }

func (m Model) Status() string { return m.status }
