// Package buckets splits a duration into one bucket per unit of a scale and
// owns the carry arithmetic between neighbouring buckets.
//
// A Chain is created for a single formatting call and must not be shared
// between goroutines.
package buckets

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sgaunet/durfmt/pkg/units"
)

// Bucket holds the count and the visibility of one unit.
type Bucket struct {
	unit     units.Unit
	value    int64
	maxValue int64 // 0 means unbounded
	visible  bool
}

// Unit returns the unit of the bucket.
func (b *Bucket) Unit() units.Unit { return b.unit }

// Value returns the count of the bucket's unit.
func (b *Bucket) Value() int64 { return b.value }

// MaxValue returns the carry threshold, 0 for the unbounded coarsest bucket.
func (b *Bucket) MaxValue() int64 { return b.maxValue }

// Visible reports whether the bucket is rendered.
func (b *Bucket) Visible() bool { return b.visible }

// SetVisible changes the visibility of the bucket.
func (b *Bucket) SetVisible(visible bool) { b.visible = visible }

func (b *Bucket) String() string {
	return fmt.Sprintf("%s=%d(visible=%t)", b.unit, b.value, b.visible)
}

// Chain is a flat array of buckets, coarsest first. The coarser neighbour of
// the bucket at index i is at index i-1.
type Chain struct {
	scale   *units.Scale
	buckets []Bucket
}

// New creates a chain of zero-valued, visible buckets for every unit of scale.
func New(scale *units.Scale) *Chain {
	c := &Chain{
		scale:   scale,
		buckets: make([]Bucket, scale.Len()),
	}
	for i := range c.buckets {
		c.buckets[i] = Bucket{
			unit:     scale.At(i),
			maxValue: scale.MaxValueAt(i),
			visible:  true,
		}
	}
	return c
}

// NewWithValue creates a chain seeded with value counts of unit.
func NewWithValue(scale *units.Scale, value int64, unit units.Unit) (*Chain, error) {
	c := New(scale)
	if err := c.Add(value, unit); err != nil {
		return nil, err
	}
	return c, nil
}

// Scale returns the scale the chain was built from.
func (c *Chain) Scale() *units.Scale {
	return c.scale
}

// Len returns the number of buckets.
func (c *Chain) Len() int {
	return len(c.buckets)
}

// At returns the bucket at index i, 0 being the coarsest.
func (c *Chain) At(i int) *Bucket {
	return &c.buckets[i]
}

// Bucket returns the bucket for unit.
func (c *Chain) Bucket(unit units.Unit) (*Bucket, error) {
	i, err := c.indexOf(unit)
	if err != nil {
		return nil, err
	}
	return &c.buckets[i], nil
}

// Add adds amount counts of unit, carrying any overflow into coarser buckets.
func (c *Chain) Add(amount int64, unit units.Unit) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d %s", ErrNegativeAmount, amount, unit)
	}
	i, err := c.indexOf(unit)
	if err != nil {
		return err
	}
	c.addAt(i, amount)
	return nil
}

// PushLeftRounded discards the value of unit's bucket, rounding half up into
// its coarser neighbour.
func (c *Chain) PushLeftRounded(unit units.Unit) error {
	i, err := c.indexOf(unit)
	if err != nil {
		return err
	}
	c.PushLeftRoundedAt(i)
	return nil
}

// PollFromLeft folds the values of every bucket coarser than unit into unit,
// leaving them at zero.
func (c *Chain) PollFromLeft(unit units.Unit) error {
	i, err := c.indexOf(unit)
	if err != nil {
		return err
	}
	c.PollFromLeftAt(i)
	return nil
}

// PushLeftRoundedAt is PushLeftRounded addressed by index.
func (c *Chain) PushLeftRoundedAt(i int) {
	b := &c.buckets[i]
	if b.maxValue == 0 {
		b.value = 0
		return
	}
	half := b.maxValue / 2
	if b.value+half >= b.maxValue {
		c.addAt(i, half)
		return
	}
	b.value = 0
}

// PollFromLeftAt is PollFromLeft addressed by index.
func (c *Chain) PollFromLeftAt(i int) {
	if i == 0 {
		return
	}
	c.PollFromLeftAt(i - 1)
	b, prev := &c.buckets[i], &c.buckets[i-1]
	b.value = addSaturated(b.value, mulSaturated(prev.value, b.maxValue))
	prev.value = 0
}

// addAt is the only carry mechanism. It avoids computing amount+value
// directly so amounts close to MaxInt64 cannot overflow.
func (c *Chain) addAt(i int, amount int64) {
	if amount == 0 {
		return
	}
	b := &c.buckets[i]
	if b.maxValue == 0 {
		b.value = addSaturated(b.value, amount)
		return
	}

	carry := amount / b.maxValue
	b.value += amount % b.maxValue
	if b.value >= b.maxValue {
		b.value -= b.maxValue
		carry++
	}
	if carry > 0 && i > 0 {
		c.addAt(i-1, carry)
	}
}

func (c *Chain) indexOf(unit units.Unit) (int, error) {
	i, ok := c.scale.Index(unit)
	if !ok {
		return 0, fmt.Errorf("%w: %s", units.ErrUnknownUnit, unit)
	}
	return i, nil
}

// Values returns the bucket values coarsest first.
func (c *Chain) Values() []int64 {
	out := make([]int64, len(c.buckets))
	for i := range c.buckets {
		out[i] = c.buckets[i].value
	}
	return out
}

// String renders the values coarsest first joined by ':', e.g. "0:0:1:0:0:0:0".
func (c *Chain) String() string {
	parts := make([]string, len(c.buckets))
	for i := range c.buckets {
		parts[i] = strconv.FormatInt(c.buckets[i].value, 10)
	}
	return strings.Join(parts, ":")
}

func addSaturated(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

func mulSaturated(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt64/b {
		return math.MaxInt64
	}
	return a * b
}
