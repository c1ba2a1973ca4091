package visibility_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sgaunet/durfmt/pkg/buckets"
	"github.com/sgaunet/durfmt/pkg/units"
	"github.com/sgaunet/durfmt/pkg/visibility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scale = units.Standard()

// chain seeds a chain with the given values, coarsest first (d h min s ms µs ns).
func chain(t *testing.T, values ...int64) *buckets.Chain {
	t.Helper()
	require.Len(t, values, scale.Len())
	c := buckets.New(scale)
	for i, v := range values {
		require.NoError(t, c.Add(v, scale.At(i)))
	}
	return c
}

// visible renders the visible buckets as "unit=value" pairs.
func visible(c *buckets.Chain) string {
	var parts []string
	for b := range c.All() {
		if b.Visible() {
			parts = append(parts, fmt.Sprintf("%s=%d", b.Unit(), b.Value()))
		}
	}
	return strings.Join(parts, " ")
}

func TestRestrictToRange(t *testing.T) {
	c := chain(t, 1, 2, 3, 4, 5, 6, 7)
	s := visibility.RestrictToRange(units.Seconds, units.Hours)

	s.Apply(c)
	assert.Equal(t, "hours=2 minutes=3 seconds=4", visible(c))

	s.Apply(c)
	assert.Equal(t, "hours=2 minutes=3 seconds=4", visible(c), "reapplying must not change visibility")
	assert.Equal(t, "restrict-to-range", s.Name())
}

func TestRemoveLeadingZeros(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
		want   string
	}{
		{"first non-zero stops", []int64{0, 0, 1, 0, 3, 0, 0}, "minutes=1 seconds=0"},
		{"nothing to hide", []int64{0, 5, 0, 0, 0, 0, 0}, "hours=5 minutes=0 seconds=0"},
		{"minimum survives all zeros", []int64{0, 0, 0, 0, 0, 0, 0}, "seconds=0"},
		{"non-zero minimum", []int64{0, 0, 0, 9, 0, 0, 0}, "seconds=9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := chain(t, tt.values...)
			visibility.RestrictToRange(units.Seconds, units.Hours).Apply(c)
			visibility.RemoveLeadingZeros(units.Seconds, units.Hours).Apply(c)
			assert.Equal(t, tt.want, visible(c))
		})
	}
}

func TestRemoveTrailingZeros(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
		want   string
	}{
		{"first non-zero stops", []int64{1, 0, 3, 0, 0, 0, 0}, "days=1 hours=0 minutes=3"},
		{"nothing to hide", []int64{0, 0, 0, 4, 0, 0, 0}, "days=0 hours=0 minutes=0 seconds=4"},
		{"maximum survives all zeros", []int64{0, 0, 0, 0, 0, 0, 0}, "days=0"},
		{"only maximum non-zero", []int64{1, 0, 0, 0, 0, 0, 0}, "days=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := chain(t, tt.values...)
			visibility.RestrictToRange(units.Seconds, units.Days).Apply(c)
			visibility.RemoveTrailingZeros(units.Seconds, units.Days).Apply(c)
			assert.Equal(t, tt.want, visible(c))
		})
	}
}

func TestRemoveMiddleZeros(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
		want   string
	}{
		{
			"interior zeros are hidden",
			[]int64{0, 1, 0, 0, 0, 1, 0},
			"days=0 hours=1 microseconds=1 nanoseconds=0",
		},
		{
			"single non-zero keeps everything",
			[]int64{1, 0, 0, 0, 0, 0, 0},
			"days=1 hours=0 minutes=0 seconds=0 milliseconds=0 microseconds=0 nanoseconds=0",
		},
		{
			"all zeros keep everything",
			[]int64{0, 0, 0, 0, 0, 0, 0},
			"days=0 hours=0 minutes=0 seconds=0 milliseconds=0 microseconds=0 nanoseconds=0",
		},
		{
			"outer non-zeros",
			[]int64{1, 0, 1, 1, 1, 0, 1},
			"days=1 minutes=1 seconds=1 milliseconds=1 nanoseconds=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := chain(t, tt.values...)
			visibility.RemoveMiddleZeros().Apply(c)
			assert.Equal(t, tt.want, visible(c))
		})
	}
}

func TestRemoveMiddleZeros_IgnoresHiddenBuckets(t *testing.T) {
	c := chain(t, 1, 0, 0, 5, 0, 0, 0)
	visibility.RestrictToRange(units.Seconds, units.Hours).Apply(c)
	visibility.RemoveMiddleZeros().Apply(c)

	// days is out of range, so seconds is both first and last non-zero
	assert.Equal(t, "hours=0 minutes=0 seconds=5", visible(c))
}

func TestLimitCount(t *testing.T) {
	c := chain(t, 3, 12, 31, 1, 0, 0, 0)
	visibility.RestrictToRange(units.Seconds, units.Days).Apply(c)
	visibility.LimitCount(2).Apply(c)
	assert.Equal(t, "days=3 hours=12", visible(c))

	visibility.LimitCount(5).Apply(c)
	assert.Equal(t, "days=3 hours=12", visible(c))
}

func TestRound(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
		limit  int
		want   string
	}{
		{"31 minutes round hours up", []int64{3, 12, 31, 1, 0, 0, 0}, 2, "days=3 hours=13"},
		{"12 hours round days up", []int64{3, 12, 31, 1, 0, 0, 0}, 1, "days=4"},
		{"29 minutes round down", []int64{3, 12, 29, 59, 0, 0, 0}, 2, "days=3 hours=12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := chain(t, tt.values...)
			visibility.RestrictToRange(units.Seconds, units.Days).Apply(c)
			visibility.LimitCount(tt.limit).Apply(c)
			visibility.Round().Apply(c)
			assert.Equal(t, tt.want, visible(c))
		})
	}
}

func TestRound_SubSecondRemainder(t *testing.T) {
	c := chain(t, 0, 0, 0, 0, 999, 0, 0)
	visibility.RestrictToRange(units.Seconds, units.Hours).Apply(c)
	visibility.Round().Apply(c)
	assert.Equal(t, "hours=0 minutes=0 seconds=1", visible(c))
}

func TestRound_FinestVisibleIsNoop(t *testing.T) {
	c := chain(t, 0, 0, 0, 0, 0, 0, 999)
	visibility.Round().Apply(c)
	assert.Equal(t, "0:0:0:0:0:0:999", c.String())
}

func TestPullFromLeft(t *testing.T) {
	c := chain(t, 33, 11, 0, 0, 0, 0, 0)
	visibility.RestrictToRange(units.Seconds, units.Hours).Apply(c)
	visibility.PullFromLeft().Apply(c)

	assert.Equal(t, "hours=803 minutes=0 seconds=0", visible(c))
	assert.Equal(t, int64(0), c.At(0).Value())
}

func TestEnsureAtLeastOneVisible(t *testing.T) {
	c := chain(t, 0, 0, 0, 0, 0, 0, 0)
	for b := range c.All() {
		b.SetVisible(false)
	}
	visibility.EnsureAtLeastOneVisible(units.Seconds).Apply(c)
	assert.Equal(t, "seconds=0", visible(c))

	visibility.EnsureAtLeastOneVisible(units.Minutes).Apply(c)
	assert.Equal(t, "seconds=0", visible(c), "already visible chains are left alone")
}
