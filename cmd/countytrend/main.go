// Command countytrend charts the vote share of both parties in one county
// across elections, as an HTML or SVG document, a PNG, or an interactive
// terminal view.
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"countytrend/internal/chart"
	"countytrend/internal/config"
	"countytrend/internal/export"
	"countytrend/internal/geom"
	"countytrend/internal/returns"
	"countytrend/internal/scene"
	"countytrend/internal/tui"
)

type app struct {
	cfg     config.Config
	log     *log.Logger
	logFile *os.File
}

func main() {
	a := &app{cfg: config.Default()}
	err := a.root().Execute()
	if a.logFile != nil {
		a.logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

func (a *app) root() *cobra.Command {
	root := &cobra.Command{
		Use:          "countytrend",
		Short:        "Chart county election trends",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.Resolve(cmd.Flags(), ".env"); err != nil {
				return err
			}
			return a.setupLog()
		},
	}
	a.cfg.BindFlags(root.PersistentFlags())

	root.AddCommand(a.renderCmd(), a.pngCmd(), a.viewCmd())
	root.SetErrPrefix("countytrend:")
	return root
}

func (a *app) setupLog() error {
	out := io.Writer(os.Stderr)
	if a.cfg.LogFile != "" {
		f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logFile = f
		out = f
	}
	a.log = log.NewWithOptions(out, log.Options{
		Level:           a.cfg.Level(),
		Prefix:          "countytrend",
		ReportTimestamp: a.cfg.LogFile != "",
	})
	return nil
}

// load reads both input files and picks the county to chart.
func (a *app) load() (*returns.Dataset, geom.Boundaries, chart.Input, error) {
	data, err := returns.Load(a.cfg.DataPath)
	if err != nil {
		return nil, nil, chart.Input{}, fmt.Errorf("load returns: %w", err)
	}
	b, err := geom.Load(a.cfg.GeoPath)
	if err != nil {
		return nil, nil, chart.Input{}, fmt.Errorf("load boundaries: %w", err)
	}
	a.log.Debug("loaded inputs", "counties", data.Len(), "data", a.cfg.DataPath, "geo", a.cfg.GeoPath)

	code := a.cfg.County
	if code == "" {
		if data.Len() == 0 {
			return nil, nil, chart.Input{}, fmt.Errorf("%s has no counties", a.cfg.DataPath)
		}
		code = data.Codes()[0]
	}
	in, err := data.Lookup(code)
	if err != nil {
		return nil, nil, chart.Input{}, err
	}
	return data, b, in, nil
}

// draw renders the selected county into a fresh mount of the configured size.
func (a *app) draw() (*scene.Mount, chart.Frame, chart.Input, error) {
	_, b, in, err := a.load()
	if err != nil {
		return nil, chart.Frame{}, chart.Input{}, err
	}
	m := scene.NewMount("chart", float64(a.cfg.Width), float64(a.cfg.Height))
	c := chart.New(a.cfg.Chart(), chart.WithLogger(a.log))
	f, err := c.Create(m, in, b)
	if err != nil {
		return nil, chart.Frame{}, chart.Input{}, err
	}
	return m, f, in, nil
}

// output opens the configured destination; stdout when none is set.
func (a *app) output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if a.cfg.Out == "" || a.cfg.Out == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(a.cfg.Out)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func (a *app) renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Write the chart of one county as an HTML page or an SVG document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, f, in, err := a.draw()
			if err != nil {
				return err
			}
			w, done, err := a.output(cmd)
			if err != nil {
				return err
			}
			if a.cfg.Format == "svg" {
				err = export.SVG(w, m)
			} else {
				err = export.HTML(w, m, in.Name+" county")
			}
			if cerr := done(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}
			a.log.Info("rendered", "county", in.Code, "format", a.cfg.Format, "trend", f.TrendText)
			return nil
		},
	}
}

func (a *app) pngCmd() *cobra.Command {
	var fits bool
	cmd := &cobra.Command{
		Use:   "png",
		Short: "Write the series of one county as a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, f, in, err := a.draw()
			if err != nil {
				return err
			}
			w, done, err := a.output(cmd)
			if err != nil {
				return err
			}
			err = export.PNG(w, f, export.PNGOptions{
				Width:  a.cfg.Width,
				Height: a.cfg.Height,
				Title:  in.Name + " county",
				Fits:   fits,
			})
			if cerr := done(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}
			a.log.Info("rendered", "county", in.Code, "format", "png", "trend", f.TrendText)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fits, "fits", true, "draw the regression line of each party")
	return cmd
}

func (a *app) viewCmd() *cobra.Command {
	var saveDir string
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the counties in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, b, in, err := a.load()
			if err != nil {
				return err
			}
			m, err := tui.New(tui.Options{
				Data:       data,
				Boundaries: b,
				Config:     a.cfg.Chart(),
				County:     in.Code,
				SaveDir:    saveDir,
				Logger:     a.log,
			})
			if err != nil {
				return err
			}
			if a.cfg.LogFile == "" {
				// stderr shares the alternate screen
				a.log.SetOutput(io.Discard)
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
			return err
		},
	}
	cmd.Flags().StringVar(&saveDir, "save-dir", "", "directory for HTML snapshots (default: working directory)")
	return cmd
}
