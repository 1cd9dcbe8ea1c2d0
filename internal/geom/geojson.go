package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

var ErrUnsupportedGeometry = errors.New("unsupported geometry")

// LoadGeoJSON reads a GeoJSON FeatureCollection (or single Feature) of polygons.
func LoadGeoJSON(path string) (FeatureCollection, error) {
	f, err := os.Open(path)
	if err != nil {
		return FeatureCollection{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return FeatureCollection{}, err
	}
	return DecodeGeoJSON(data)
}

// DecodeGeoJSON parses GeoJSON bytes. Features keep their "id" member, falling back
// to properties.id. Point and line geometries are rejected.
func DecodeGeoJSON(data []byte) (FeatureCollection, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return FeatureCollection{}, err
	}
	parsePoint := func(v any) (pt [2]float64, ok bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			lon, lok := a[0].(float64)
			lat, aok := a[1].(float64)
			if lok && aok {
				return [2]float64{lon, lat}, true
			}
		}
		return [2]float64{}, false
	}
	parseRing := func(v any) (ring [][2]float64, ok bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		for _, el := range arr {
			if pt, ok := parsePoint(el); ok {
				ring = append(ring, pt)
			}
		}
		return ring, true
	}
	parsePolygon := func(v any) (poly [][][2]float64, ok bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		for _, r := range arr {
			if ring, ok := parseRing(r); ok {
				poly = append(poly, ring)
			}
		}
		return poly, true
	}
	parseMultiPolygon := func(v any) (mp [][][][2]float64, ok bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		for _, el := range arr {
			if poly, ok := parsePolygon(el); ok {
				mp = append(mp, poly)
			}
		}
		return mp, true
	}
	walkGeom := func(g map[string]any) ([][][][2]float64, error) {
		if g == nil {
			return nil, nil
		}
		gt, _ := g["type"].(string)
		switch gt {
		case "Polygon":
			if poly, ok := parsePolygon(g["coordinates"]); ok {
				return [][][][2]float64{poly}, nil
			}
			return nil, nil
		case "MultiPolygon":
			mp, _ := parseMultiPolygon(g["coordinates"])
			return mp, nil
		}
		return nil, fmt.Errorf("%w: geojson %s", ErrUnsupportedGeometry, gt)
	}
	var fc FeatureCollection
	addFeature := func(fm map[string]any) error {
		props, _ := fm["properties"].(map[string]any)
		id := FormatID(fm["id"])
		if id == "" && props != nil {
			id = FormatID(props["id"])
		}
		g, _ := fm["geometry"].(map[string]any)
		polys, err := walkGeom(g)
		if err != nil {
			return err
		}
		fc.List = append(fc.List, Feature{ID: id, Properties: props, Polygons: polys})
		return nil
	}
	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		if err := addFeature(raw); err != nil {
			return FeatureCollection{}, err
		}
	case "FeatureCollection":
		fs, _ := raw["features"].([]any)
		for _, f := range fs {
			if fm, ok := f.(map[string]any); ok {
				if err := addFeature(fm); err != nil {
					return FeatureCollection{}, err
				}
			}
		}
	default:
		return FeatureCollection{}, errors.New("geojson: expected Feature or FeatureCollection, got " + strconv.Quote(t))
	}
	if len(fc.List) == 0 {
		return FeatureCollection{}, errors.New("no features found")
	}
	fc.recomputeBBox()
	return fc, nil
}

// FormatID renders a feature id the way a browser stringifies it: numbers without
// a trailing ".0", strings unchanged, nil as "".
func FormatID(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case int:
		return strconv.Itoa(t)
	}
	return ""
}
