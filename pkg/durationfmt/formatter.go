// Package durationfmt formats durations into unit segmented strings such as
// "01:02:03" or "3d 2h".
//
// A Formatter is built once from a Config and can then be shared by any
// number of goroutines:
//
//	f, err := durationfmt.New(durationfmt.Symbols().WithMaximum(units.Days))
//	if err != nil {
//		return err
//	}
//	s, err := f.Format(90061, units.Seconds) // "1d 1h 1min 1s"
package durationfmt

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/sgaunet/durfmt/pkg/buckets"
	"github.com/sgaunet/durfmt/pkg/units"
	"github.com/sgaunet/durfmt/pkg/visibility"
)

// Renderer turns a chain whose visibility has been decided into text.
type Renderer interface {
	Render(c *buckets.Chain) string
}

// Formatter formats durations according to an immutable Config.
type Formatter struct {
	cfg      Config
	scale    *units.Scale
	pipeline *visibility.Pipeline
	renderer Renderer
	logger   *slog.Logger
}

// Option customises a Formatter at construction time.
type Option func(*Formatter)

// WithScale uses scale instead of the standard nanoseconds to days scale.
func WithScale(scale *units.Scale) Option {
	return func(f *Formatter) {
		f.scale = scale
	}
}

// WithRenderer replaces the text renderer.
func WithRenderer(r Renderer) Option {
	return func(f *Formatter) {
		f.renderer = r
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Formatter) {
		f.logger = logger
	}
}

// New validates cfg and builds a Formatter.
func New(cfg Config, opts ...Option) (*Formatter, error) {
	f := &Formatter{
		cfg:    cfg.clone(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.scale == nil {
		f.scale = units.Standard()
	}

	if err := f.cfg.Validate(f.scale); err != nil {
		return nil, fmt.Errorf("invalid formatter configuration: %w", err)
	}

	f.pipeline = visibility.Build(visibility.Options{
		Minimum:          f.cfg.Minimum,
		Maximum:          f.cfg.Maximum,
		SuppressLeading:  f.cfg.Suppress.Has(SuppressLeading),
		SuppressTrailing: f.cfg.Suppress.Has(SuppressTrailing),
		SuppressMiddle:   f.cfg.Suppress.Has(SuppressMiddle),
		MaxUnits:         f.cfg.MaxUnits,
		Round:            f.cfg.Round,
	})
	f.pipeline.SetLogger(f.logger)

	if f.renderer == nil {
		f.renderer = NewTextRenderer(f.cfg)
	}

	f.logger.Debug("formatter built",
		"minimum", f.cfg.Minimum.String(),
		"maximum", f.cfg.Maximum.String(),
		"suppress", f.cfg.Suppress.String(),
		"max_units", f.cfg.MaxUnits,
		"round", f.cfg.Round)

	return f, nil
}

// MustNew is like New but panics on an invalid configuration. It is meant
// for package level formatters built from constant configurations.
func MustNew(cfg Config, opts ...Option) *Formatter {
	f, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Config returns a copy of the formatter's configuration.
func (f *Formatter) Config() Config {
	return f.cfg.clone()
}

// Buckets splits value counts of unit into buckets and decides which of them
// are rendered. The returned chain belongs to the caller.
func (f *Formatter) Buckets(value int64, unit units.Unit) (*buckets.Chain, error) {
	if value < 0 {
		return nil, fmt.Errorf("%w: %d %s", ErrNegativeValue, value, unit)
	}
	c, err := buckets.NewWithValue(f.scale, value, unit)
	if err != nil {
		return nil, err
	}
	// nothing above the maximum is ever rendered, so the maximum carries it
	if err := c.PollFromLeft(f.cfg.Maximum); err != nil {
		return nil, err
	}
	return f.pipeline.Apply(c), nil
}

// Format renders value counts of unit.
func (f *Formatter) Format(value int64, unit units.Unit) (string, error) {
	c, err := f.Buckets(value, unit)
	if err != nil {
		return "", err
	}
	return f.renderer.Render(c), nil
}

// FormatMillis renders a number of milliseconds.
func (f *Formatter) FormatMillis(millis int64) (string, error) {
	return f.Format(millis, units.Milliseconds)
}

// FormatDuration renders d.
func (f *Formatter) FormatDuration(d time.Duration) (string, error) {
	return f.Format(int64(d), units.Nanoseconds)
}
