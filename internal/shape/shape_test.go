package shape

import (
	"math"
	"testing"
)

type pt struct{ x, y, y0, y1 float64 }

func px(p pt) float64  { return p.x }
func py(p pt) float64  { return p.y }
func py0(p pt) float64 { return p.y0 }
func py1(p pt) float64 { return p.y1 }

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestLineTwoPointsIsStraight(t *testing.T) {
	p := Line([]pt{{x: 0, y: 0}, {x: 10, y: 10}}, Cardinal{}, px, py)
	if got := p.String(); got != "M0,0L10,10" {
		t.Fatalf("unexpected path %q", got)
	}
	if !approx(p.Length(), math.Sqrt(200)) {
		t.Errorf("length = %v", p.Length())
	}
}

func TestLineSinglePointCloses(t *testing.T) {
	p := Line([]pt{{x: 3, y: 4}}, Cardinal{}, px, py)
	if got := p.String(); got != "M3,4Z" {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestLineEmpty(t *testing.T) {
	if p := Line([]pt{}, Cardinal{}, px, py); !p.Empty() {
		t.Fatalf("expected empty path, got %q", p.String())
	}
}

func TestCardinalThreePoints(t *testing.T) {
	p := Line([]pt{{x: 0, y: 0}, {x: 10, y: 10}, {x: 20, y: 0}}, Cardinal{}, px, py)
	segs := p.Segments()
	if len(segs) != 3 || segs[0].Op != MoveTo || segs[1].Op != CurveTo || segs[2].Op != CurveTo {
		t.Fatalf("unexpected segments %q", p.String())
	}
	want := [][2]float64{{0, 0}, {10 - 20.0/6, 10}, {10, 10}}
	for i, w := range want {
		if !approx(segs[1].Pts[i][0], w[0]) || !approx(segs[1].Pts[i][1], w[1]) {
			t.Errorf("first curve pt %d = %v, want %v", i, segs[1].Pts[i], w)
		}
	}
	want = [][2]float64{{10 + 20.0/6, 10}, {20, 0}, {20, 0}}
	for i, w := range want {
		if !approx(segs[2].Pts[i][0], w[0]) || !approx(segs[2].Pts[i][1], w[1]) {
			t.Errorf("second curve pt %d = %v, want %v", i, segs[2].Pts[i], w)
		}
	}
}

func TestAreaClosesBand(t *testing.T) {
	data := []pt{{x: 0, y0: 10, y1: 0}, {x: 10, y0: 12, y1: 2}}
	p := Area(data, Cardinal{}, px, py0, py1)
	if got := p.String(); got != "M0,0L10,2L10,12L0,10Z" {
		t.Fatalf("unexpected area %q", got)
	}
	if !approx(p.Length(), math.Hypot(10, 2)*2+10+10) {
		t.Errorf("length = %v", p.Length())
	}
}

func TestCubicLengthStraight(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.CurveTo(10.0/3, 0, 20.0/3, 0, 10, 0)
	if l := p.Length(); math.Abs(l-10) > 1e-6 {
		t.Fatalf("length = %v, want 10", l)
	}
}

func TestFlatten(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.CurveTo(0, 10, 10, 10, 10, 0)
	p.MoveTo(20, 0)
	p.LineTo(30, 0)
	lines := p.Flatten(4)
	if len(lines) != 2 {
		t.Fatalf("expected 2 subpaths, got %d", len(lines))
	}
	if len(lines[0]) != 5 {
		t.Errorf("expected 5 samples, got %d", len(lines[0]))
	}
	end := lines[0][4]
	if !approx(end[0], 10) || !approx(end[1], 0) {
		t.Errorf("curve should end at (10,0), got %v", end)
	}
	mid := lines[0][2]
	if !approx(mid[0], 5) || !approx(mid[1], 7.5) {
		t.Errorf("curve midpoint = %v", mid)
	}
}

func TestNum(t *testing.T) {
	cases := map[float64]string{0: "0", math.Copysign(0, -1): "0", 12.5: "12.5", -3: "-3", 1e21: "1000000000000000000000"}
	for in, want := range cases {
		if got := Num(in); got != want {
			t.Errorf("Num(%v) = %q, want %q", in, got, want)
		}
	}
}
