package visibility

import (
	"context"
	"log/slog"

	"github.com/sgaunet/durfmt/pkg/buckets"
	"github.com/sgaunet/durfmt/pkg/units"
)

// Options selects the strategies of a pipeline.
type Options struct {
	Minimum          units.Unit
	Maximum          units.Unit
	SuppressLeading  bool
	SuppressTrailing bool
	SuppressMiddle   bool
	// MaxUnits limits the number of visible buckets; 0 means unbounded.
	MaxUnits int
	Round    bool
}

// Pipeline is an ordered list of strategies.
type Pipeline struct {
	strategies []Strategy
	logger     *slog.Logger
}

// Build assembles the strategies selected by opts in their fixed order.
func Build(opts Options) *Pipeline {
	strategies := []Strategy{RestrictToRange(opts.Minimum, opts.Maximum)}
	if opts.SuppressLeading {
		strategies = append(strategies, RemoveLeadingZeros(opts.Minimum, opts.Maximum))
	}
	if opts.SuppressTrailing {
		strategies = append(strategies, RemoveTrailingZeros(opts.Minimum, opts.Maximum))
	}
	if opts.SuppressMiddle {
		strategies = append(strategies, RemoveMiddleZeros())
	}
	if opts.MaxUnits > 0 {
		strategies = append(strategies, LimitCount(opts.MaxUnits))
	}
	if opts.Round {
		strategies = append(strategies, Round())
	}
	strategies = append(strategies, PullFromLeft(), EnsureAtLeastOneVisible(opts.Minimum))

	return New(strategies...)
}

// New creates a pipeline running strategies in the given order.
func New(strategies ...Strategy) *Pipeline {
	return &Pipeline{
		strategies: strategies,
		logger:     slog.Default(),
	}
}

// SetLogger sets the logger used to trace each step.
func (p *Pipeline) SetLogger(logger *slog.Logger) {
	p.logger = logger
}

// Strategies returns the names of the strategies in order.
func (p *Pipeline) Strategies() []string {
	names := make([]string, len(p.strategies))
	for i, s := range p.strategies {
		names[i] = s.Name()
	}
	return names
}

// Apply runs every strategy on c and returns it.
func (p *Pipeline) Apply(c *buckets.Chain) *buckets.Chain {
	trace := p.logger.Enabled(context.Background(), slog.LevelDebug)
	for _, s := range p.strategies {
		c = s.Apply(c)
		if trace {
			p.logger.Debug("applied visibility strategy", "strategy", s.Name(), "buckets", c.String())
		}
	}
	return c
}
