package units

import (
	"fmt"
	"math"
	"math/bits"
)

// Step declares one unit of a scale together with the number of units of the
// next finer step it contains. Ratio is ignored for the finest step.
type Step struct {
	Unit  Unit
	Ratio int64
}

// Scale is an immutable, totally ordered list of units. Units are stored
// coarsest first so that position i-1 is always the coarser neighbour of i.
type Scale struct {
	units []Unit
	// maxValues[i] is the carry threshold of units[i], i.e. how many
	// units[i] make one units[i-1]. The coarsest unit has 0 (unbounded).
	maxValues []int64
	index     map[Unit]int
}

// StandardSteps returns the steps of the standard nanoseconds to days scale.
func StandardSteps() []Step {
	return []Step{
		{Unit: Nanoseconds},
		{Unit: Microseconds, Ratio: 1000},
		{Unit: Milliseconds, Ratio: 1000},
		{Unit: Seconds, Ratio: 1000},
		{Unit: Minutes, Ratio: 60},
		{Unit: Hours, Ratio: 60},
		{Unit: Days, Ratio: 24},
	}
}

// Standard builds the nanoseconds to days scale.
func Standard() *Scale {
	s, err := NewScale(StandardSteps()...)
	if err != nil {
		panic(err)
	}
	return s
}

// NewScale builds a scale from steps listed finest first.
func NewScale(steps ...Step) (*Scale, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: no units", ErrInvalidScale)
	}

	n := len(steps)
	s := &Scale{
		units:     make([]Unit, n),
		maxValues: make([]int64, n),
		index:     make(map[Unit]int, n),
	}

	for i, step := range steps {
		pos := n - 1 - i
		if _, dup := s.index[step.Unit]; dup {
			return nil, fmt.Errorf("%w: duplicate unit %s", ErrInvalidScale, step.Unit)
		}
		if i > 0 && step.Ratio < 2 {
			return nil, fmt.Errorf("%w: ratio of %s must be at least 2, got %d",
				ErrInvalidScale, step.Unit, step.Ratio)
		}
		s.units[pos] = step.Unit
		s.index[step.Unit] = pos
		if i > 0 {
			// the finer neighbour overflows into this unit
			s.maxValues[pos+1] = step.Ratio
		}
	}

	return s, nil
}

// Len returns the number of units in the scale.
func (s *Scale) Len() int {
	return len(s.units)
}

// Units returns the units coarsest first.
func (s *Scale) Units() []Unit {
	out := make([]Unit, len(s.units))
	copy(out, s.units)
	return out
}

// At returns the unit at position i (0 is the coarsest).
func (s *Scale) At(i int) Unit {
	return s.units[i]
}

// Index returns the position of u, 0 being the coarsest unit.
func (s *Scale) Index(u Unit) (int, bool) {
	i, ok := s.index[u]
	return i, ok
}

// MustIndex is like Index but panics if u is not part of the scale.
func (s *Scale) MustIndex(u Unit) int {
	i, ok := s.index[u]
	if !ok {
		panic(fmt.Sprintf("units: %s is not part of the scale", u))
	}
	return i
}

// Contains reports whether u is part of the scale.
func (s *Scale) Contains(u Unit) bool {
	_, ok := s.index[u]
	return ok
}

// Compare orders a and b by coarseness: it returns a positive number when a
// is coarser than b, a negative one when a is finer and 0 when equal.
func (s *Scale) Compare(a, b Unit) int {
	// smaller index means coarser
	return s.MustIndex(b) - s.MustIndex(a)
}

// Ratio returns how many u make one of the next coarser unit. It returns 0
// for the coarsest unit, which never overflows.
func (s *Scale) Ratio(u Unit) int64 {
	return s.maxValues[s.MustIndex(u)]
}

// MaxValueAt returns the carry threshold of the unit at position i.
func (s *Scale) MaxValueAt(i int) int64 {
	return s.maxValues[i]
}

// CoarserOrEqual returns u and every coarser unit, coarsest first.
func (s *Scale) CoarserOrEqual(u Unit) []Unit {
	i := s.MustIndex(u)
	out := make([]Unit, i+1)
	copy(out, s.units[:i+1])
	return out
}

// Between returns the units from a to b, both included, ordered from a
// towards b.
func (s *Scale) Between(a, b Unit) []Unit {
	from, to := s.MustIndex(a), s.MustIndex(b)
	step := 1
	if from > to {
		step = -1
	}
	out := make([]Unit, 0, abs(to-from)+1)
	for i := from; ; i += step {
		out = append(out, s.units[i])
		if i == to {
			break
		}
	}
	return out
}

// Convert expresses value (a non-negative count of from) in unit to. Converting
// towards a coarser unit truncates; converting towards a finer unit saturates
// at math.MaxInt64.
func (s *Scale) Convert(value int64, from, to Unit) int64 {
	i, j := s.MustIndex(from), s.MustIndex(to)
	switch {
	case i == j:
		return value
	case i < j:
		// from is coarser: multiply down the chain
		for k := i + 1; k <= j; k++ {
			value = mulSaturated(value, s.maxValues[k])
		}
	default:
		for k := i; k > j; k-- {
			value /= s.maxValues[k]
		}
	}
	return value
}

func mulSaturated(a, b int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(lo)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
