package buckets_test

import (
	"testing"

	"github.com/sgaunet/durfmt/pkg/buckets"
	"github.com/sgaunet/durfmt/pkg/units"
	"github.com/stretchr/testify/assert"
)

func collectUnits(seq func(func(*buckets.Bucket) bool)) []units.Unit {
	var out []units.Unit
	for b := range seq {
		out = append(out, b.Unit())
	}
	return out
}

func TestSequence_DefaultOrder(t *testing.T) {
	c := buckets.New(units.Standard())

	assert.Equal(t,
		[]units.Unit{units.Days, units.Hours, units.Minutes},
		collectUnits(c.SequenceInclusive(units.Days, units.Minutes)))
	assert.Equal(t,
		[]units.Unit{units.Milliseconds, units.Microseconds, units.Nanoseconds},
		collectUnits(c.SequenceInclusive(units.Milliseconds, units.Nanoseconds)))

	assert.Equal(t,
		[]units.Unit{units.Days, units.Hours},
		collectUnits(c.Sequence(units.Days, units.Minutes)))
	assert.Equal(t,
		[]units.Unit{units.Milliseconds, units.Microseconds},
		collectUnits(c.Sequence(units.Milliseconds, units.Nanoseconds)))
}

func TestSequence_ReverseOrder(t *testing.T) {
	c := buckets.New(units.Standard())

	assert.Equal(t,
		[]units.Unit{units.Minutes, units.Hours, units.Days},
		collectUnits(c.SequenceInclusive(units.Minutes, units.Days)))
	assert.Equal(t,
		[]units.Unit{units.Nanoseconds, units.Microseconds, units.Milliseconds},
		collectUnits(c.SequenceInclusive(units.Nanoseconds, units.Milliseconds)))

	assert.Equal(t,
		[]units.Unit{units.Minutes, units.Hours},
		collectUnits(c.Sequence(units.Minutes, units.Days)))
	assert.Equal(t,
		[]units.Unit{units.Nanoseconds, units.Microseconds},
		collectUnits(c.Sequence(units.Nanoseconds, units.Milliseconds)))
}

func TestSequence_SingleUnit(t *testing.T) {
	c := buckets.New(units.Standard())

	assert.Empty(t, collectUnits(c.Sequence(units.Hours, units.Hours)))
	assert.Equal(t, []units.Unit{units.Hours}, collectUnits(c.SequenceInclusive(units.Hours, units.Hours)))
}

func TestSequence_Restartable(t *testing.T) {
	c := buckets.New(units.Standard())
	seq := c.Sequence(units.Days, units.Seconds)

	assert.Equal(t, collectUnits(seq), collectUnits(seq))
}

func TestSequence_EarlyStop(t *testing.T) {
	c := buckets.New(units.Standard())

	var seen int
	for range c.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestAllAndBackward(t *testing.T) {
	c := buckets.New(units.Standard())

	forward := collectUnits(c.All())
	backward := collectUnits(c.Backward())

	assert.Len(t, forward, 7)
	assert.Equal(t, units.Days, forward[0])
	assert.Equal(t, units.Nanoseconds, backward[0])
	for i := range forward {
		assert.Equal(t, forward[i], backward[len(backward)-1-i])
	}
}

func TestSequence_UnknownUnitPanics(t *testing.T) {
	small, _ := units.NewScale(units.Step{Unit: units.Seconds}, units.Step{Unit: units.Minutes, Ratio: 60})
	c := buckets.New(small)

	assert.Panics(t, func() { c.Sequence(units.Days, units.Seconds) })
}
