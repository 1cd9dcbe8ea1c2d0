package geom

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func near(a, b [2]float64) bool {
	return math.Abs(a[0]-b[0]) < 1e-9 && math.Abs(a[1]-b[1]) < 1e-9
}

func TestTopologyFeatures(t *testing.T) {
	topo, err := LoadTopology("testdata/counties.topo.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	fc, err := topo.Features("tx_counties")
	if err != nil {
		t.Fatalf("features: %v", err)
	}
	if len(fc.List) != 3 {
		t.Fatalf("expected 3 features, got %d", len(fc.List))
	}
	ids := []string{fc.List[0].ID, fc.List[1].ID, fc.List[2].ID}
	if strings.Join(ids, ",") != "48001,48003,48005" {
		t.Fatalf("unexpected ids %v", ids)
	}

	left := fc.List[0].Polygons[0][0]
	wantLeft := [][2]float64{{-99, 30}, {-99, 31}, {-100, 31}, {-100, 30}, {-99, 30}}
	if len(left) != len(wantLeft) {
		t.Fatalf("left ring: expected %d points, got %d (%v)", len(wantLeft), len(left), left)
	}
	for i := range left {
		if !near(left[i], wantLeft[i]) {
			t.Errorf("left[%d] = %v, want %v", i, left[i], wantLeft[i])
		}
	}

	// second ring walks the shared arc backwards
	right := fc.List[1].Polygons[0][0]
	wantRight := [][2]float64{{-99, 30}, {-98, 30}, {-98, 31}, {-99, 31}, {-99, 30}}
	if len(right) != len(wantRight) {
		t.Fatalf("right ring: expected %d points, got %d (%v)", len(wantRight), len(right), right)
	}
	for i := range right {
		if !near(right[i], wantRight[i]) {
			t.Errorf("right[%d] = %v, want %v", i, right[i], wantRight[i])
		}
	}

	if len(fc.List[2].Polygons) != 0 {
		t.Errorf("null geometry should have no polygons")
	}
	if fc.BBox.MinX > -99.999 || fc.BBox.MaxX < -98.001 || fc.BBox.MinY > 30.001 || fc.BBox.MaxY < 30.999 {
		t.Errorf("unexpected bbox %+v", fc.BBox)
	}
}

func TestTopologyMissingObject(t *testing.T) {
	topo, err := LoadTopology("testdata/counties.topo.json")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := topo.Features("us_states"); !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestTopologyArcOutOfRange(t *testing.T) {
	topo, err := DecodeTopology(strings.NewReader(`{"type":"Topology","objects":{"c":{"type":"Polygon","id":1,"arcs":[[5]]}},"arcs":[]}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := topo.Features("c"); err == nil {
		t.Fatal("expected error for out of range arc")
	}
}

func TestDecodeTopologyRejectsOtherTypes(t *testing.T) {
	if _, err := DecodeTopology(strings.NewReader(`{"type":"FeatureCollection"}`)); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadDispatch(t *testing.T) {
	b, err := Load("testdata/counties.topo.json")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.(*Topology); !ok {
		t.Fatalf("expected *Topology, got %T", b)
	}
	b, err = Load("testdata/counties.geojson")
	if err != nil {
		t.Fatal(err)
	}
	fc, err := b.Features("ignored")
	if err != nil {
		t.Fatal(err)
	}
	if len(fc.List) != 2 {
		t.Fatalf("expected 2 features, got %d", len(fc.List))
	}
	if fc.List[0].ID != "48001" || fc.List[1].ID != "48003" {
		t.Errorf("unexpected ids %q %q", fc.List[0].ID, fc.List[1].ID)
	}
	if _, ok := fc.Find("48003"); !ok {
		t.Errorf("Find(48003) failed")
	}
}

func TestDecodeGeoJSONRejectsPoints(t *testing.T) {
	_, err := DecodeGeoJSON([]byte(`{"type":"Feature","id":1,"geometry":{"type":"Point","coordinates":[1,2]}}`))
	if !errors.Is(err, ErrUnsupportedGeometry) {
		t.Fatalf("expected ErrUnsupportedGeometry, got %v", err)
	}
}

func TestFormatID(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{float64(48001), "48001"},
		{1.5, "1.5"},
		{"abc", "abc"},
		{nil, ""},
	}
	for _, c := range cases {
		if got := FormatID(c.in); got != c.want {
			t.Errorf("FormatID(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
