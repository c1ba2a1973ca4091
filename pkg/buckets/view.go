package buckets

import (
	"iter"

	"github.com/sgaunet/durfmt/pkg/units"
)

// All yields the buckets from the coarsest to the finest.
func (c *Chain) All() iter.Seq[*Bucket] {
	return c.span(0, len(c.buckets)-1)
}

// Backward yields the buckets from the finest to the coarsest.
func (c *Chain) Backward() iter.Seq[*Bucket] {
	return c.span(len(c.buckets)-1, 0)
}

// Sequence yields the buckets from the one of unit a towards the one of unit
// b. The bucket of a is included, the bucket of b is not, so Sequence(a, a)
// is empty. Units outside the scale panic.
func (c *Chain) Sequence(a, b units.Unit) iter.Seq[*Bucket] {
	from, to := c.scale.MustIndex(a), c.scale.MustIndex(b)
	switch {
	case from == to:
		return func(func(*Bucket) bool) {}
	case from < to:
		return c.span(from, to-1)
	default:
		return c.span(from, to+1)
	}
}

// SequenceInclusive is like Sequence but also yields the bucket of b.
func (c *Chain) SequenceInclusive(a, b units.Unit) iter.Seq[*Bucket] {
	return c.span(c.scale.MustIndex(a), c.scale.MustIndex(b))
}

// span yields buckets from index from to index to, both included, in either
// direction.
func (c *Chain) span(from, to int) iter.Seq[*Bucket] {
	return func(yield func(*Bucket) bool) {
		step := 1
		if from > to {
			step = -1
		}
		for i := from; ; i += step {
			if !yield(&c.buckets[i]) || i == to {
				return
			}
		}
	}
}
