package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrObjectNotFound = errors.New("topology object not found")

// Transform is the TopoJSON quantization transform.
type Transform struct {
	Scale     [2]float64 `json:"scale"`
	Translate [2]float64 `json:"translate"`
}

// Topology is a decoded TopoJSON document. Arcs are kept as stored (quantized and
// delta-encoded when Transform is set) and stitched on demand by Features.
type Topology struct {
	Type      string                   `json:"type"`
	Transform *Transform               `json:"transform,omitempty"`
	Objects   map[string]*TopoGeometry `json:"objects"`
	Arcs      [][][]float64            `json:"arcs"`
}

type TopoGeometry struct {
	Type       string          `json:"type"`
	ID         any             `json:"id,omitempty"`
	Properties map[string]any  `json:"properties,omitempty"`
	Arcs       json.RawMessage `json:"arcs,omitempty"`
	Geometries []*TopoGeometry `json:"geometries,omitempty"`
}

// LoadTopology reads a TopoJSON file.
func LoadTopology(path string) (*Topology, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeTopology(f)
}

func DecodeTopology(r io.Reader) (*Topology, error) {
	var t Topology
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, err
	}
	if t.Type != "Topology" {
		return nil, fmt.Errorf("topojson: expected type Topology, got %q", t.Type)
	}
	return &t, nil
}

// Features converts the named object into a FeatureCollection, stitching arcs
// into rings. A GeometryCollection yields one feature per member geometry.
func (t *Topology) Features(object string) (FeatureCollection, error) {
	obj, ok := t.Objects[object]
	if !ok || obj == nil {
		return FeatureCollection{}, fmt.Errorf("%w: %q", ErrObjectNotFound, object)
	}
	members := []*TopoGeometry{obj}
	if obj.Type == "GeometryCollection" {
		members = obj.Geometries
	}
	var fc FeatureCollection
	for _, g := range members {
		f, err := t.feature(g)
		if err != nil {
			return FeatureCollection{}, err
		}
		fc.List = append(fc.List, f)
	}
	fc.recomputeBBox()
	return fc, nil
}

func (t *Topology) feature(g *TopoGeometry) (Feature, error) {
	f := Feature{ID: FormatID(g.ID), Properties: g.Properties}
	switch g.Type {
	case "":
		// null geometry
	case "Polygon":
		var rings [][]int
		if err := json.Unmarshal(g.Arcs, &rings); err != nil {
			return Feature{}, fmt.Errorf("topojson polygon %s: %w", f.ID, err)
		}
		poly, err := t.polygon(rings)
		if err != nil {
			return Feature{}, err
		}
		f.Polygons = [][][][2]float64{poly}
	case "MultiPolygon":
		var polys [][][]int
		if err := json.Unmarshal(g.Arcs, &polys); err != nil {
			return Feature{}, fmt.Errorf("topojson multipolygon %s: %w", f.ID, err)
		}
		for _, rings := range polys {
			poly, err := t.polygon(rings)
			if err != nil {
				return Feature{}, err
			}
			f.Polygons = append(f.Polygons, poly)
		}
	default:
		return Feature{}, fmt.Errorf("%w: topojson %s", ErrUnsupportedGeometry, g.Type)
	}
	return f, nil
}

func (t *Topology) polygon(rings [][]int) ([][][2]float64, error) {
	poly := make([][][2]float64, 0, len(rings))
	for _, arcs := range rings {
		ring, err := t.ring(arcs)
		if err != nil {
			return nil, err
		}
		poly = append(poly, ring)
	}
	return poly, nil
}

// ring joins arcs end to start and pads degenerate rings to four points.
func (t *Topology) ring(arcs []int) ([][2]float64, error) {
	var points [][2]float64
	for _, i := range arcs {
		var err error
		if points, err = t.arc(i, points); err != nil {
			return nil, err
		}
	}
	for len(points) > 0 && len(points) < 4 {
		points = append(points, points[0])
	}
	return points, nil
}

// arc appends arc i to points, dropping the shared point with the previous arc.
// Negative indices (~i) refer to arc i traversed backwards.
func (t *Topology) arc(i int, points [][2]float64) ([][2]float64, error) {
	if len(points) > 0 {
		points = points[:len(points)-1]
	}
	idx := i
	if i < 0 {
		idx = ^i
	}
	if idx >= len(t.Arcs) {
		return nil, fmt.Errorf("topojson: arc index %d out of range (%d arcs)", i, len(t.Arcs))
	}
	start := len(points)
	var x, y float64
	for _, p := range t.Arcs[idx] {
		if len(p) < 2 {
			return nil, fmt.Errorf("topojson: arc %d has a short position", idx)
		}
		pt := [2]float64{p[0], p[1]}
		if tr := t.Transform; tr != nil {
			x += p[0]
			y += p[1]
			pt = [2]float64{x*tr.Scale[0] + tr.Translate[0], y*tr.Scale[1] + tr.Translate[1]}
		}
		points = append(points, pt)
	}
	if i < 0 {
		seg := points[start:]
		for a, b := 0, len(seg)-1; a < b; a, b = a+1, b-1 {
			seg[a], seg[b] = seg[b], seg[a]
		}
	}
	return points, nil
}
