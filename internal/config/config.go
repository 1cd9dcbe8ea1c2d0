// Package config gathers the command-line settings of countytrend.
//
// Every setting has a flag and an environment variable. A flag given on the
// command line wins over the environment, the environment wins over the
// default. Variables may also come from a .env file, which never overrides
// the real environment:
//
//	--data        COUNTYTREND_DATA         returns file (.json or .csv), required
//	--geo         COUNTYTREND_GEO          boundaries (TopoJSON or GeoJSON), required
//	--geo-object  COUNTYTREND_GEO_OBJECT   topology object name (tx_counties)
//	--county      COUNTYTREND_COUNTY       county code (first in the dataset)
//	--width       COUNTYTREND_WIDTH        mount width (720)
//	--height      COUNTYTREND_HEIGHT       mount height (560)
//	-o, --out     COUNTYTREND_OUT          output file (stdout)
//	--format      COUNTYTREND_FORMAT       html or svg (html)
//	--log-level   COUNTYTREND_LOG_LEVEL    debug, info, warn, error (info)
//	--log-file    COUNTYTREND_LOG_FILE     log destination (stderr)
//	--dots        COUNTYTREND_DOTS         draw uncontested races (false)
//	--precision   COUNTYTREND_PRECISION    decimals of regression slopes (2)
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"countytrend/internal/chart"
)

const envPrefix = "COUNTYTREND_"

type Config struct {
	DataPath        string
	GeoPath         string
	GeoObject       string
	County          string
	Width           int
	Height          int
	Out             string
	Format          string
	LogLevel        string
	LogFile         string
	UncontestedDots bool
	Precision       int
}

func Default() Config {
	return Config{
		GeoObject: chart.DefaultConfig().GeoObject,
		Width:     720,
		Height:    560,
		Format:    "html",
		LogLevel:  "info",
		Precision: chart.DefaultConfig().Precision,
	}
}

// flag name -> environment variable
var envKeys = []struct{ flag, env string }{
	{"data", "DATA"},
	{"geo", "GEO"},
	{"geo-object", "GEO_OBJECT"},
	{"county", "COUNTY"},
	{"width", "WIDTH"},
	{"height", "HEIGHT"},
	{"out", "OUT"},
	{"format", "FORMAT"},
	{"log-level", "LOG_LEVEL"},
	{"log-file", "LOG_FILE"},
	{"dots", "DOTS"},
	{"precision", "PRECISION"},
}

// BindFlags registers the settings on fs with c's current values as defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.DataPath, "data", c.DataPath, "election returns file (.json or .csv)")
	fs.StringVar(&c.GeoPath, "geo", c.GeoPath, "county boundaries (TopoJSON or GeoJSON)")
	fs.StringVar(&c.GeoObject, "geo-object", c.GeoObject, "topology object holding the counties")
	fs.StringVar(&c.County, "county", c.County, "county code to chart (default: first in the dataset)")
	fs.IntVar(&c.Width, "width", c.Width, "chart width")
	fs.IntVar(&c.Height, "height", c.Height, "chart height, including the title")
	fs.StringVarP(&c.Out, "out", "o", c.Out, "output file (default: stdout)")
	fs.StringVar(&c.Format, "format", c.Format, "output format: html or svg")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file instead of stderr")
	fs.BoolVar(&c.UncontestedDots, "dots", c.UncontestedDots, "draw uncontested races as a dot plot")
	fs.IntVar(&c.Precision, "precision", c.Precision, "decimals regression slopes are rounded to")
}

// ApplyEnv fills every flag that was not given on the command line from its
// environment variable.
func ApplyEnv(fs *pflag.FlagSet, getenv func(string) string) error {
	for _, k := range envKeys {
		f := fs.Lookup(k.flag)
		if f == nil || f.Changed {
			continue
		}
		v := getenv(envPrefix + k.env)
		if v == "" {
			continue
		}
		if err := fs.Set(k.flag, v); err != nil {
			return fmt.Errorf("invalid %s%s: %w", envPrefix, k.env, err)
		}
	}
	return nil
}

// LoadDotEnv reads variables from path into the environment. A missing file is
// not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Resolve applies the .env file and the environment to the parsed flags and
// validates the result.
func (c *Config) Resolve(flags *pflag.FlagSet, dotenv string) error {
	if err := LoadDotEnv(dotenv); err != nil {
		return err
	}
	if err := ApplyEnv(flags, os.Getenv); err != nil {
		return err
	}
	return c.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.DataPath == "" {
		errs = append(errs, errors.New("returns file required (--data or "+envPrefix+"DATA)"))
	}
	if c.GeoPath == "" {
		errs = append(errs, errors.New("boundaries file required (--geo or "+envPrefix+"GEO)"))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.Format != "html" && c.Format != "svg" {
		errs = append(errs, fmt.Errorf("unknown format %q (want html or svg)", c.Format))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level %q: %w", c.LogLevel, err))
	}
	if c.Precision < 0 || c.Precision > 10 {
		errs = append(errs, fmt.Errorf("precision %d out of range [0,10]", c.Precision))
	}
	return errors.Join(errs...)
}

// Chart is the chart configuration these settings select.
func (c Config) Chart() chart.Config {
	cc := chart.DefaultConfig()
	cc.GeoObject = c.GeoObject
	cc.Precision = c.Precision
	cc.UncontestedDots = c.UncontestedDots
	return cc
}

// Level is the parsed log level; Validate has already rejected bad values.
func (c Config) Level() log.Level {
	l, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return l
}
