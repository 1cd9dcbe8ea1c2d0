// Package returns loads per-county election returns.
package returns

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"countytrend/internal/chart"
)

var ErrNoCounty = errors.New("county not in dataset")

// Dataset is an ordered set of counties keyed by code.
type Dataset struct {
	counties []chart.Input
	index    map[string]int
}

func NewDataset(counties ...chart.Input) (*Dataset, error) {
	d := &Dataset{index: make(map[string]int, len(counties))}
	for _, c := range counties {
		if c.Code == "" {
			return nil, fmt.Errorf("county %q has no code", c.Name)
		}
		if _, dup := d.index[c.Code]; dup {
			return nil, fmt.Errorf("duplicate county code %q", c.Code)
		}
		d.index[c.Code] = len(d.counties)
		d.counties = append(d.counties, c)
	}
	return d, nil
}

func (d *Dataset) Len() int { return len(d.counties) }

// Counties returns the counties in load order.
func (d *Dataset) Counties() []chart.Input { return d.counties }

func (d *Dataset) Codes() []string {
	out := make([]string, len(d.counties))
	for i, c := range d.counties {
		out[i] = c.Code
	}
	return out
}

func (d *Dataset) Lookup(code string) (chart.Input, error) {
	i, ok := d.index[code]
	if !ok {
		return chart.Input{}, fmt.Errorf("%w: %q", ErrNoCounty, code)
	}
	return d.counties[i], nil
}

// Put adds c, or replaces the county with the same code in place.
func (d *Dataset) Put(c chart.Input) {
	if i, ok := d.index[c.Code]; ok {
		d.counties[i] = c
		return
	}
	d.index[c.Code] = len(d.counties)
	d.counties = append(d.counties, c)
}

// Load reads a dataset, choosing the format from the file extension.
func Load(path string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(path)
	case ".csv":
		return LoadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported returns file %q (want .json or .csv)", path)
	}
}

func LoadJSON(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// DecodeJSON accepts one county object or an array of them.
func DecodeJSON(data []byte) (*Dataset, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("empty returns document")
	}
	if data[0] == '[' {
		var list []chart.Input
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, err
		}
		return NewDataset(list...)
	}
	var one chart.Input
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, err
	}
	return NewDataset(one)
}
