package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// pen is the layer a micro-pixel was drawn with; higher pens win the cell colour.
type pen uint8

const (
	penNone pen = iota
	penGrid
	penCounty
	penBandDEM
	penBandREP
	penHighlight
	penLineDEM
	penLineREP
)

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
	ink  [][]pen   // strongest pen per cell
	pen  pen
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	ink := make([][]pen, h)
	for i := range m {
		m[i] = make([]uint8, w)
		ink[i] = make([]pen, w)
	}
	return &brailleBuf{w: w, h: h, m: m, ink: ink, pen: penGrid}
}

var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= dotBits[rx][ry]
	if b.pen > b.ink[cy][cx] {
		b.ink[cy][cx] = b.pen
	}
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillRing fills a closed ring with the even-odd rule, one micro row at a time.
func (b *brailleBuf) fillRing(ring [][2]int) {
	if len(ring) < 3 {
		return
	}
	for y := 0; y < b.h*4; y++ {
		var xs []int
		for i := range ring {
			p, q := ring[i], ring[(i+1)%len(ring)]
			if p[1] == q[1] {
				continue
			}
			if (y >= p[1] && y < q[1]) || (y >= q[1] && y < p[1]) {
				t := float64(y-p[1]) / float64(q[1]-p[1])
				xs = append(xs, int(float64(p[0])+t*float64(q[0]-p[0])))
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := max(0, xs[i]); x <= xs[i+1]; x++ {
				b.setPixel(x, y)
			}
		}
	}
}

// toLines renders the buffer, colouring each cell with the style of its pen.
func (b *brailleBuf) toLines(styles map[pen]lipgloss.Style) []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				sb.WriteByte(' ')
				continue
			}
			glyph := string(rune(0x2800 + int(mask)))
			if st, ok := styles[b.ink[y][x]]; ok {
				glyph = st.Render(glyph)
			}
			sb.WriteString(glyph)
		}
		out[y] = sb.String()
	}
	return out
}
