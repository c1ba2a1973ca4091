// Package visibility decides which buckets of a chain are rendered.
//
// Each Strategy is an independent transform over a buckets.Chain. Most only
// flip visibility flags; Round and PullFromLeft also change values and run
// after every visibility decision has been taken.
package visibility

import (
	"github.com/sgaunet/durfmt/pkg/buckets"
	"github.com/sgaunet/durfmt/pkg/units"
)

// Strategy is a named transformation of a chain. It mutates and returns the
// chain it was given.
type Strategy struct {
	name  string
	apply func(c *buckets.Chain)
}

// Name identifies the strategy in logs.
func (s Strategy) Name() string {
	return s.name
}

// Apply runs the strategy on c and returns c.
func (s Strategy) Apply(c *buckets.Chain) *buckets.Chain {
	s.apply(c)
	return c
}

// RestrictToRange shows exactly the buckets between minimum and maximum.
func RestrictToRange(minimum, maximum units.Unit) Strategy {
	return Strategy{
		name: "restrict-to-range",
		apply: func(c *buckets.Chain) {
			for b := range c.All() {
				b.SetVisible(false)
			}
			for b := range c.SequenceInclusive(maximum, minimum) {
				b.SetVisible(true)
			}
		},
	}
}

// RemoveLeadingZeros hides zero buckets from maximum downwards until the
// first non-zero one. The minimum bucket is never hidden.
func RemoveLeadingZeros(minimum, maximum units.Unit) Strategy {
	return Strategy{
		name: "remove-leading-zeros",
		apply: func(c *buckets.Chain) {
			hideZerosUntilNonZero(c, maximum, minimum)
		},
	}
}

// RemoveTrailingZeros hides zero buckets from minimum upwards until the first
// non-zero one. The maximum bucket is never hidden.
func RemoveTrailingZeros(minimum, maximum units.Unit) Strategy {
	return Strategy{
		name: "remove-trailing-zeros",
		apply: func(c *buckets.Chain) {
			hideZerosUntilNonZero(c, minimum, maximum)
		},
	}
}

func hideZerosUntilNonZero(c *buckets.Chain, from, to units.Unit) {
	for b := range c.Sequence(from, to) {
		if !b.Visible() {
			continue
		}
		if b.Value() != 0 {
			return
		}
		b.SetVisible(false)
	}
}

// RemoveMiddleZeros hides zero buckets that sit between the first and the
// last visible non-zero bucket.
func RemoveMiddleZeros() Strategy {
	return Strategy{
		name: "remove-middle-zeros",
		apply: func(c *buckets.Chain) {
			first, ok := firstVisibleNonZero(c.All())
			if !ok {
				return
			}
			last, _ := firstVisibleNonZero(c.Backward())
			for b := range c.SequenceInclusive(first.Unit(), last.Unit()) {
				if b.Visible() && b.Value() == 0 {
					b.SetVisible(false)
				}
			}
		},
	}
}

func firstVisibleNonZero(seq func(func(*buckets.Bucket) bool)) (*buckets.Bucket, bool) {
	for b := range seq {
		if b.Visible() && b.Value() != 0 {
			return b, true
		}
	}
	return nil, false
}

// LimitCount keeps the n coarsest visible buckets and hides the others.
func LimitCount(n int) Strategy {
	return Strategy{
		name: "limit-count",
		apply: func(c *buckets.Chain) {
			kept := 0
			for b := range c.All() {
				if !b.Visible() {
					continue
				}
				if kept < n {
					kept++
					continue
				}
				b.SetVisible(false)
			}
		},
	}
}

// Round rounds the least significant visible bucket half up using the value
// of the bucket right below it.
func Round() Strategy {
	return Strategy{
		name: "round",
		apply: func(c *buckets.Chain) {
			last := lastVisibleIndex(c)
			if last < 0 || last == c.Len()-1 {
				return
			}
			c.PushLeftRoundedAt(last + 1)
		},
	}
}

// PullFromLeft folds everything coarser than the first visible bucket into it.
func PullFromLeft() Strategy {
	return Strategy{
		name: "pull-from-left",
		apply: func(c *buckets.Chain) {
			if i := firstVisibleIndex(c); i >= 0 {
				c.PollFromLeftAt(i)
			}
		},
	}
}

// EnsureAtLeastOneVisible shows the minimum bucket if nothing else is visible.
func EnsureAtLeastOneVisible(minimum units.Unit) Strategy {
	return Strategy{
		name: "ensure-one-visible",
		apply: func(c *buckets.Chain) {
			if firstVisibleIndex(c) >= 0 {
				return
			}
			if b, err := c.Bucket(minimum); err == nil {
				b.SetVisible(true)
			}
		},
	}
}

func firstVisibleIndex(c *buckets.Chain) int {
	for i := 0; i < c.Len(); i++ {
		if c.At(i).Visible() {
			return i
		}
	}
	return -1
}

func lastVisibleIndex(c *buckets.Chain) int {
	for i := c.Len() - 1; i >= 0; i-- {
		if c.At(i).Visible() {
			return i
		}
	}
	return -1
}
