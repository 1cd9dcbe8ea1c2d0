package returns

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"countytrend/internal/chart"
)

// column indexes of a long-format returns file
type columns struct {
	code, name, party, kind, year, mean, stdev, count int
}

// detectColumns finds the columns by header name (case-insensitive):
// code|fips|id, name|county, party, kind|type, year, mean|avg, stdev|sd|std,
// count|n.
func detectColumns(header []string) (columns, error) {
	c := columns{-1, -1, -1, -1, -1, -1, -1, -1}
	set := func(dst *int, i int) {
		if *dst == -1 {
			*dst = i
		}
	}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "code", "fips", "id":
			set(&c.code, i)
		case "name", "county":
			set(&c.name, i)
		case "party":
			set(&c.party, i)
		case "kind", "type":
			set(&c.kind, i)
		case "year":
			set(&c.year, i)
		case "mean", "avg":
			set(&c.mean, i)
		case "stdev", "sd", "std":
			set(&c.stdev, i)
		case "count", "n":
			set(&c.count, i)
		}
	}
	var missing []string
	for name, idx := range map[string]int{"code": c.code, "party": c.party, "kind": c.kind, "year": c.year} {
		if idx == -1 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return c, fmt.Errorf("csv: missing columns %s", strings.Join(missing, ", "))
	}
	return c, nil
}

// LoadCSV reads a long-format CSV: one row per county, party, kind and year.
// Counties appear in the order of their first row. Empty mean or stdev cells are
// null.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := DecodeCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func DecodeCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	cols, err := detectColumns(recs[0])
	if err != nil {
		return nil, err
	}

	var order []string
	byCode := map[string]*chart.Input{}
	cell := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	for n, row := range recs[1:] {
		line := n + 2
		code := cell(row, cols.code)
		if code == "" {
			return nil, fmt.Errorf("csv line %d: empty code", line)
		}
		in, ok := byCode[code]
		if !ok {
			in = &chart.Input{Code: code}
			byCode[code] = in
			order = append(order, code)
		}
		if name := cell(row, cols.name); name != "" {
			in.Name = name
		}

		var pr *chart.PartyReturns
		switch strings.ToUpper(cell(row, cols.party)) {
		case string(chart.DEM):
			pr = &in.DEM
		case string(chart.REP):
			pr = &in.REP
		default:
			return nil, fmt.Errorf("csv line %d: unknown party %q", line, cell(row, cols.party))
		}
		year := cell(row, cols.year)
		switch strings.ToLower(cell(row, cols.kind)) {
		case "contested":
			mean, err := optFloat(cell(row, cols.mean))
			if err != nil {
				return nil, fmt.Errorf("csv line %d: mean: %w", line, err)
			}
			sd, err := optFloat(cell(row, cols.stdev))
			if err != nil {
				return nil, fmt.Errorf("csv line %d: stdev: %w", line, err)
			}
			pr.Contested.Returns = append(pr.Contested.Returns, chart.ContestedReturn{Year: year, Mean: mean, Stdev: sd})
		case "uncontested":
			count, err := strconv.Atoi(cell(row, cols.count))
			if err != nil {
				return nil, fmt.Errorf("csv line %d: count: %w", line, err)
			}
			pr.Uncontested.Returns = append(pr.Uncontested.Returns, chart.UncontestedReturn{Year: year, Count: count})
		default:
			return nil, fmt.Errorf("csv line %d: unknown kind %q", line, cell(row, cols.kind))
		}
	}

	counties := make([]chart.Input, len(order))
	for i, code := range order {
		counties[i] = *byCode[code]
	}
	return NewDataset(counties...)
}

func optFloat(s string) (*float64, error) {
	if s == "" || strings.EqualFold(s, "null") {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
