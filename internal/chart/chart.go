// Package chart renders a county's contested-vote history: both parties' mean
// vote share as smoothed lines over their one standard deviation bands, a y
// axis of vote share, a time axis with one tick per election, a minimap of the
// state with the county filled in, and the net annual trend between the
// parties.
package chart

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"countytrend/internal/geom"
	"countytrend/internal/scene"
)

var ErrNotCreated = errors.New("chart has not been created")

// Chart is the create/update/resize lifecycle around Render. It only keeps the
// current RenderContext; every call renders from that value.
type Chart struct {
	cfg   Config
	log   *log.Logger
	ctx   RenderContext
	frame Frame
	ready bool
}

type Option func(*Chart)

func WithLogger(l *log.Logger) Option {
	return func(c *Chart) { c.log = l }
}

func New(cfg Config, opts ...Option) *Chart {
	c := &Chart{cfg: cfg, log: log.New(io.Discard)}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Create binds the chart to a mount and boundaries and draws in for the first
// time.
func (c *Chart) Create(m *scene.Mount, in Input, b geom.Boundaries) (Frame, error) {
	c.ctx = RenderContext{Mount: m, Input: in, Boundaries: b, Config: c.cfg}
	c.ready = true
	return c.draw()
}

// Update redraws with new data on the same mount and boundaries. When the new
// data cannot be drawn, the chart keeps the previous input.
func (c *Chart) Update(in Input) (Frame, error) {
	if !c.ready {
		return Frame{}, ErrNotCreated
	}
	prev := c.ctx
	c.ctx = c.ctx.WithInput(in)
	f, err := c.draw()
	if err != nil {
		c.ctx = prev
	}
	return f, err
}

// Resize redraws the current data against the mount's current size.
func (c *Chart) Resize() (Frame, error) {
	if !c.ready {
		return Frame{}, ErrNotCreated
	}
	return c.draw()
}

func (c *Chart) Context() RenderContext { return c.ctx }

// Frame is the result of the last successful render.
func (c *Chart) Frame() Frame { return c.frame }

func (c *Chart) draw() (Frame, error) {
	f, err := Render(c.ctx)
	if err != nil {
		c.log.Error("render failed", "county", c.ctx.Input.Code, "err", err)
		return Frame{}, err
	}
	c.frame = f
	c.log.Debug("rendered", "county", c.ctx.Input.Code, "trend", f.TrendText, "width", f.Width, "height", f.Height)
	return f, nil
}
