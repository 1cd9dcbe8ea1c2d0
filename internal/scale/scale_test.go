package scale

import (
	"reflect"
	"testing"
	"time"

	"countytrend/internal/scene"
)

func TestLinearApplyInvert(t *testing.T) {
	y := NewLinear(1, 0, 0, 400)
	if got := y.Apply(1); got != 0 {
		t.Errorf("Apply(1) = %v", got)
	}
	if got := y.Apply(0.25); got != 300 {
		t.Errorf("Apply(0.25) = %v", got)
	}
	if got := y.Invert(100); got != 0.75 {
		t.Errorf("Invert(100) = %v", got)
	}
	if got := NewLinear(5, 5, 0, 10).Apply(5); got != 5 {
		t.Errorf("degenerate domain = %v", got)
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		start, stop float64
		count       int
		want        []float64
	}{
		{0, 1, 4, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}},
		{1, 0, 4, []float64{1, 0.8, 0.6, 0.4, 0.2, 0}},
		{0, 10, 5, []float64{0, 2, 4, 6, 8, 10}},
		{0, 100, 2, []float64{0, 50, 100}},
		{3, 3, 4, []float64{3}},
		{0, 1, 0, nil},
	}
	for _, tt := range tests {
		if got := Ticks(tt.start, tt.stop, tt.count); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Ticks(%v, %v, %d) = %v, want %v", tt.start, tt.stop, tt.count, got, tt.want)
		}
	}
}

func TestExtent(t *testing.T) {
	lo, hi, ok := Extent([]float64{3, -1, 7})
	if !ok || lo != -1 || hi != 7 {
		t.Errorf("Extent = %v %v %v", lo, hi, ok)
	}
	if _, _, ok := Extent(nil); ok {
		t.Error("empty extent reported ok")
	}
}

func TestFormatters(t *testing.T) {
	ts := time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := ShortYear(ts); got != "'16" {
		t.Errorf("ShortYear = %q", got)
	}
	if got := ShortYearMillis(float64(ts.UnixMilli())); got != "'16" {
		t.Errorf("ShortYearMillis = %q", got)
	}
	for v, want := range map[float64]string{0.6: "60%", -0.25: "25%", 0: "0%", 1: "100%", 0.125: "13%"} {
		if got := AbsPercent(v); got != want {
			t.Errorf("AbsPercent(%v) = %q, want %q", v, got, want)
		}
	}
	if got := SignedPercent(0.03, 0); got != "+3%" {
		t.Errorf("SignedPercent = %q", got)
	}
	if got := SignedPercent(-0.031, 0); got != "−3%" {
		t.Errorf("SignedPercent = %q", got)
	}
	if got := SignedPercent(0.0625, 1); got != "+6.3%" {
		t.Errorf("SignedPercent = %q", got)
	}
}

func TestAxisLeftGridlines(t *testing.T) {
	g := scene.Append(scene.Append(scene.NewMount("", 1, 1).Node(), "svg"), "g")
	a := NewAxis(Left, NewLinear(1, 0, 0, 400))
	a.TickCount = 4
	a.TickSizeInner = -640
	a.Format = AbsPercent
	a.Render(g)

	ticks := scene.SelectAll(g, "g.tick")
	if len(ticks) != 6 {
		t.Fatalf("ticks = %d", len(ticks))
	}
	if got := scene.Attr(ticks[0], "transform"); got != "translate(0,0.5)" {
		t.Errorf("first tick transform = %q", got)
	}
	if got := scene.Text(scene.Select(ticks[1], "text")); got != "80%" {
		t.Errorf("label = %q", got)
	}
	if got := scene.Attr(scene.Select(ticks[0], "line"), "x2"); got != "640" {
		t.Errorf("gridline x2 = %q", got)
	}
	if got := scene.Attr(scene.Select(ticks[0], "text"), "x"); got != "-3" {
		t.Errorf("label x = %q", got)
	}
	if got := scene.Attr(scene.Select(g, "path.domain"), "d"); got != "M-6,0.5H0.5V400.5H-6" {
		t.Errorf("domain = %q", got)
	}
	if scene.Attr(g, "text-anchor") != "end" {
		t.Error("left axis should anchor labels at the end")
	}
}

func TestAxisRerenderKeepsTicks(t *testing.T) {
	g := scene.Append(scene.Append(scene.NewMount("", 1, 1).Node(), "svg"), "g")
	a := NewAxis(Bottom, NewLinear(0, 10, 0, 100))
	a.TickValues = []float64{0, 5, 10}
	a.Render(g)
	first := scene.SelectAll(g, "g.tick")

	a.TickValues = []float64{5, 10}
	a.Scale = NewLinear(0, 10, 0, 200)
	a.Render(g)
	second := scene.SelectAll(g, "g.tick")
	if len(second) != 2 {
		t.Fatalf("ticks = %d", len(second))
	}
	if second[0] != first[1] {
		t.Error("tick for 5 should be reused")
	}
	if got := scene.Attr(second[0], "transform"); got != "translate(100.5,0)" {
		t.Errorf("transform = %q", got)
	}
	if scene.Count(g, "path.domain") != 1 {
		t.Error("domain path duplicated")
	}
	if got := scene.Attr(scene.Select(second[0], "text"), "dy"); got != "0.71em" {
		t.Errorf("dy = %q", got)
	}
}
