package geom

import (
	"bytes"
	"encoding/json"
	"os"
)

// Load reads boundary data from path, returning a *Topology for TopoJSON documents
// and a FeatureCollection for GeoJSON.
func Load(path string) (Boundaries, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	if head.Type == "Topology" {
		return DecodeTopology(bytes.NewReader(data))
	}
	return DecodeGeoJSON(data)
}
