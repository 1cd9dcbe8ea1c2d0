package returns

import (
	"errors"
	"strings"
	"testing"

	"countytrend/internal/chart"
)

func TestLoadJSONSingle(t *testing.T) {
	d, err := Load("testdata/harris.json")
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 1 {
		t.Fatalf("len = %d", d.Len())
	}
	h, err := d.Lookup("48201")
	if err != nil {
		t.Fatal(err)
	}
	if h.Name != "Harris" || len(h.DEM.Contested.Returns) != 3 {
		t.Errorf("unexpected county %+v", h)
	}
	if h.DEM.Contested.Returns[1].Mean != nil {
		t.Error("null mean should decode as nil")
	}
	if got := h.DEM.Uncontested.Returns[0].Count; got != 3 {
		t.Errorf("uncontested count = %d", got)
	}
}

func TestDecodeJSONArray(t *testing.T) {
	d, err := DecodeJSON([]byte(` [{"name":"A","code":"1"},{"name":"B","code":"2"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(d.Codes(), ",") != "1,2" {
		t.Errorf("codes = %v", d.Codes())
	}
	if _, err := DecodeJSON([]byte(`[{"code":"1"},{"code":"1"}]`)); err == nil {
		t.Error("duplicate codes accepted")
	}
	if _, err := DecodeJSON([]byte(`{"name":"nocode"}`)); err == nil {
		t.Error("county without code accepted")
	}
	if _, err := DecodeJSON(nil); err == nil {
		t.Error("empty document accepted")
	}
}

func TestLoadCSV(t *testing.T) {
	d, err := Load("testdata/counties.csv")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(d.Codes(), ",") != "48001,48003" {
		t.Fatalf("codes = %v", d.Codes())
	}
	a, _ := d.Lookup("48001")
	if a.Name != "Anderson" || len(a.DEM.Contested.Returns) != 2 || len(a.REP.Contested.Returns) != 2 {
		t.Errorf("Anderson = %+v", a)
	}
	if r := a.REP.Uncontested.Returns; len(r) != 1 || r[0].Count != 4 || r[0].Year != "2014" {
		t.Errorf("uncontested = %+v", r)
	}
	b, _ := d.Lookup("48003")
	if b.DEM.Contested.Returns[0].Stdev != nil || b.DEM.Contested.Returns[1].Mean != nil {
		t.Error("empty and null cells should be nil")
	}

	// the CSV feeds the chart pipeline unchanged
	pts, err := chart.PrepareContested(b.DEM.Contested.Returns)
	if err != nil || len(pts) != 1 {
		t.Errorf("prepared = %v %v", pts, err)
	}
}

func TestDecodeCSVErrors(t *testing.T) {
	tests := map[string]string{
		"missing columns": "code,year\n1,2012\n",
		"bad party":       "code,party,kind,year,mean\n1,GRN,contested,2012,0.1\n",
		"bad kind":        "code,party,kind,year,mean\n1,DEM,primary,2012,0.1\n",
		"bad mean":        "code,party,kind,year,mean\n1,DEM,contested,2012,abc\n",
		"bad count":       "code,party,kind,year,count\n1,DEM,uncontested,2012,\n",
		"empty":           "",
	}
	for name, in := range tests {
		if _, err := DecodeCSV(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestLookupAndPut(t *testing.T) {
	d, _ := NewDataset(chart.Input{Name: "A", Code: "1"})
	if _, err := d.Lookup("9"); !errors.Is(err, ErrNoCounty) {
		t.Errorf("err = %v", err)
	}
	d.Put(chart.Input{Name: "A2", Code: "1"})
	d.Put(chart.Input{Name: "B", Code: "2"})
	if d.Len() != 2 {
		t.Fatalf("len = %d", d.Len())
	}
	if a, _ := d.Lookup("1"); a.Name != "A2" {
		t.Error("Put should replace in place")
	}
}

func TestLoadUnknownExtension(t *testing.T) {
	if _, err := Load("returns.xml"); err == nil {
		t.Error("expected an error")
	}
}
