package tui

import (
	"fmt"
	"math"
	"strings"

	"countytrend/internal/chart"
	"countytrend/internal/geo"
	"countytrend/internal/scale"
)

// gutterW is the width of the y label column left of the plot.
const gutterW = 5

type layout struct {
	sidebarW int
	contentW int
	contentH int
	// plot canvas origin and size, in cells
	plotX, plotY int
	plotW, plotH int
}

func (m Model) layout() layout {
	sidebarW := 0
	if m.showSidebar {
		sidebarW = 28
	}
	headerH, footerH := 1, 2
	ly := layout{
		sidebarW: sidebarW,
		contentW: max(10, m.width),
		contentH: max(4, m.height-headerH-footerH),
		plotX:    gutterW,
		plotY:    headerH,
	}
	if m.showSidebar {
		ly.plotX += sidebarW + 1
	}
	ly.plotW = max(1, ly.contentW-ly.plotX)
	ly.plotH = max(1, ly.contentH-1) // last row holds the year labels
	return ly
}

// micro maps mount pixels to braille micro-pixels.
func micro(x, y float64) [2]int {
	return [2]int{int(math.Round(x * 2 / cellW)), int(math.Round(y * 4 / cellH))}
}

func (m Model) toMicro(pts [][2]float64, dx, dy float64) [][2]int {
	out := make([][2]int, len(pts))
	for i, p := range pts {
		out[i] = micro(p[0]+dx, p[1]+dy)
	}
	return out
}

func (b *brailleBuf) polyline(pts [][2]int) {
	for i := 1; i < len(pts); i++ {
		b.drawLineMicro(pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1])
	}
}

// renderPlot draws the current frame into w x h cells plus a gutter of y
// labels and a final row of year labels.
func (m Model) renderPlot(w, h int) string {
	f := m.frame
	left, top := m.cfg.Margins.Left, m.cfg.Margins.Top
	br := newBrailleBuf(w, h)

	// dotted gridlines across the plot and under the minimap
	yTicks := scale.Ticks(1, 0, m.cfg.YTicks)
	labels := map[int]string{}
	br.pen = penGrid
	for _, v := range yTicks {
		p := micro(left-35, top+f.Y.Apply(v))
		end := micro(left-35+f.InnerWidth+m.cfg.GridOverhang, 0)[0]
		for x := p[0]; x <= end; x += 2 {
			br.setPixel(x, p[1])
		}
		labels[p[1]/4] = scale.AbsPercent(v)
	}

	bandPens := [2]pen{penBandDEM, penBandREP}
	for i, band := range f.Bands {
		br.pen = bandPens[i]
		for _, ring := range band.Flatten(8) {
			br.fillRing(m.toMicro(ring, left, top))
		}
	}

	// minimap sits in svg space, right of the plot
	for _, c := range m.counties.List {
		hl := c.ID == m.code
		br.pen = penCounty
		if hl {
			br.pen = penHighlight
		}
		for _, ring := range geo.Path(f.Minimap.Projection, c).Flatten(1) {
			r := m.toMicro(ring, f.MinimapX, 0)
			if hl {
				br.fillRing(r)
			}
			br.polyline(r)
		}
	}

	linePens := [2]pen{penLineDEM, penLineREP}
	for i, line := range f.Lines {
		br.pen = linePens[i]
		for _, pl := range line.Flatten(16) {
			br.polyline(m.toMicro(pl, left, top))
		}
	}

	rows := br.toLines(penStyles)
	var out strings.Builder
	for y, row := range rows {
		out.WriteString(dimStyle.Render(fmt.Sprintf("%4s ", labels[y])))
		out.WriteString(row)
		out.WriteByte('\n')
	}
	years := strings.Repeat(" ", gutterW+w)
	for _, v := range f.XTicks {
		col := gutterW + micro(left+f.X.Apply(v), 0)[0]/2 - 1
		years = overlay(years, col, scale.ShortYearMillis(v))
	}
	out.WriteString(dimStyle.Render(years))
	return out.String()
}

// hoverText describes both parties at the hovered election.
func (m Model) hoverText() string {
	if !m.hovering || m.hoverYear == 0 {
		return ""
	}
	parts := []string{fmt.Sprint(m.hoverYear)}
	for i, pts := range [2][]chart.PreparedPoint{m.frame.DEM, m.frame.REP} {
		style, name := demStyle, chart.DEM
		if i == 1 {
			style, name = repStyle, chart.REP
		}
		for _, p := range pts {
			if p.Year == m.hoverYear {
				parts = append(parts, style.Render(fmt.Sprintf("%s %s ±%s", name, scale.AbsPercent(p.Y), scale.AbsPercent(p.Y1-p.Y))))
			}
		}
	}
	return strings.Join(parts, "  ")
}

// nearestYear is the election closest to a plot column.
func (m Model) nearestYear(col int) int {
	f := m.frame
	px := float64(col*cellW+cellW/2) - m.cfg.Margins.Left
	t := f.X.Invert(px)
	best, year := math.Inf(1), 0
	for _, p := range f.DEM {
		if d := math.Abs(p.Millis() - t); d < best {
			best, year = d, p.Year
		}
	}
	return year
}
