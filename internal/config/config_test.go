package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

func parse(t *testing.T, args ...string) (*Config, *pflag.FlagSet) {
	t.Helper()
	cfg := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return &cfg, fs
}

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaults(t *testing.T) {
	cfg, _ := parse(t)
	if cfg.Width != 720 || cfg.Height != 560 || cfg.Format != "html" || cfg.GeoObject != "tx_counties" || cfg.Precision != 2 {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestEnvFallback(t *testing.T) {
	cfg, fs := parse(t, "--width", "900")
	err := ApplyEnv(fs, env(map[string]string{
		"COUNTYTREND_DATA":  "returns.json",
		"COUNTYTREND_WIDTH": "300",
		"COUNTYTREND_DOTS":  "true",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataPath != "returns.json" {
		t.Errorf("data = %q", cfg.DataPath)
	}
	if cfg.Width != 900 {
		t.Errorf("flag should win over env, width = %d", cfg.Width)
	}
	if !cfg.UncontestedDots {
		t.Error("dots not read from env")
	}
}

func TestEnvInvalid(t *testing.T) {
	_, fs := parse(t)
	err := ApplyEnv(fs, env(map[string]string{"COUNTYTREND_HEIGHT": "tall"}))
	if err == nil || !strings.Contains(err.Error(), "COUNTYTREND_HEIGHT") {
		t.Errorf("err = %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg, _ := parse(t, "--data", "d.json", "--geo", "g.json")
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	bad := *cfg
	bad.DataPath, bad.Format, bad.Precision, bad.LogLevel = "", "pdf", 11, "loud"
	err := bad.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}
	for _, want := range []string{"--data", "pdf", "precision", "loud"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("COUNTYTREND_GEO=from-dotenv.json\nCOUNTYTREND_COUNTY=48001\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("COUNTYTREND_COUNTY", "48201")
	t.Setenv("COUNTYTREND_GEO", "")
	os.Unsetenv("COUNTYTREND_GEO")

	cfg, fs := parse(t, "--data", "d.json")
	if err := cfg.Resolve(fs, path); err != nil {
		t.Fatal(err)
	}
	if cfg.GeoPath != "from-dotenv.json" {
		t.Errorf("geo = %q", cfg.GeoPath)
	}
	if cfg.County != "48201" {
		t.Errorf(".env must not override the environment, county = %q", cfg.County)
	}
	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing .env should be ignored: %v", err)
	}
}

func TestChartAndLevel(t *testing.T) {
	cfg, _ := parse(t, "--precision", "3", "--dots", "--geo-object", "counties", "--log-level", "debug")
	cc := cfg.Chart()
	if cc.Precision != 3 || !cc.UncontestedDots || cc.GeoObject != "counties" {
		t.Errorf("chart config = %+v", cc)
	}
	if cfg.Level() != log.DebugLevel {
		t.Errorf("level = %v", cfg.Level())
	}
}
