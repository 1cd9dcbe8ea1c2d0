package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"countytrend/internal/config"
)

const (
	dataFile = "../../internal/returns/testdata/harris.json"
	geoFile  = "../../internal/geom/testdata/counties.topo.json"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := &app{cfg: config.Default()}
	root := a.root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--data", dataFile, "--geo", geoFile, "--log-file", filepath.Join(t.TempDir(), "log")}, args...))
	err := root.Execute()
	if a.logFile != nil {
		a.logFile.Close()
	}
	return out.String(), err
}

func TestRenderSVGToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "harris.svg")
	if _, err := run(t, "render", "--format", "svg", "-o", path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if !strings.HasPrefix(s, "<?xml") || !strings.Contains(s, "<title>Harris county D +2%</title>") {
		t.Errorf("unexpected svg: %.200s", s)
	}
}

func TestRenderHTMLToStdout(t *testing.T) {
	out, err := run(t, "render")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<html") || !strings.Contains(out, `class="line dem"`) {
		t.Errorf("unexpected page: %.200s", out)
	}
}

func TestPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "harris.png")
	if _, err := run(t, "png", "--width", "480", "--height", "320", "-o", path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 480 || b.Dy() != 320 {
		t.Errorf("size = %v", b)
	}
}

func TestUnknownCounty(t *testing.T) {
	if _, err := run(t, "render", "--county", "99999"); err == nil {
		t.Fatal("expected an error for a county missing from the dataset")
	}
}

func TestMissingInputs(t *testing.T) {
	a := &app{cfg: config.Default()}
	root := a.root()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"render"})
	t.Setenv("COUNTYTREND_DATA", "")
	t.Setenv("COUNTYTREND_GEO", "")
	if err := root.Execute(); err == nil || !strings.Contains(err.Error(), "--data") {
		t.Fatalf("err = %v", err)
	}
}
