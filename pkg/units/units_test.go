package units_test

import (
	"math"
	"testing"

	"github.com/sgaunet/durfmt/pkg/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  units.Unit
	}{
		{"ns", units.Nanoseconds},
		{"NANOSECONDS", units.Nanoseconds},
		{"us", units.Microseconds},
		{"µs", units.Microseconds},
		{"ms", units.Milliseconds},
		{"MS", units.Milliseconds},
		{" s ", units.Seconds},
		{"min", units.Minutes},
		{"m", units.Minutes},
		{"hours", units.Hours},
		{"d", units.Days},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := units.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Unknown(t *testing.T) {
	for _, input := range []string{"", "weeks", "fortnight", "mss"} {
		_, err := units.Parse(input)
		require.ErrorIs(t, err, units.ErrUnknownUnit, "input %q", input)
	}
}

func TestUnitString(t *testing.T) {
	assert.Equal(t, "minutes", units.Minutes.String())
	assert.Equal(t, "unit(42)", units.Unit(42).String())
	assert.Len(t, units.Names(), 7)
	assert.Equal(t, "nanoseconds", units.Names()[0])
}

func TestStandardScale(t *testing.T) {
	s := units.Standard()

	assert.Equal(t, 7, s.Len())
	assert.Equal(t, []units.Unit{
		units.Days, units.Hours, units.Minutes, units.Seconds,
		units.Milliseconds, units.Microseconds, units.Nanoseconds,
	}, s.Units())

	assert.Equal(t, int64(0), s.Ratio(units.Days))
	assert.Equal(t, int64(24), s.Ratio(units.Hours))
	assert.Equal(t, int64(60), s.Ratio(units.Minutes))
	assert.Equal(t, int64(60), s.Ratio(units.Seconds))
	assert.Equal(t, int64(1000), s.Ratio(units.Milliseconds))
	assert.Equal(t, int64(1000), s.Ratio(units.Nanoseconds))
}

func TestScale_Compare(t *testing.T) {
	s := units.Standard()

	assert.Positive(t, s.Compare(units.Days, units.Hours))
	assert.Negative(t, s.Compare(units.Seconds, units.Minutes))
	assert.Zero(t, s.Compare(units.Seconds, units.Seconds))
	// transitive
	assert.Positive(t, s.Compare(units.Days, units.Nanoseconds))
}

func TestScale_CoarserOrEqual(t *testing.T) {
	s := units.Standard()
	assert.Equal(t, []units.Unit{units.Days, units.Hours, units.Minutes}, s.CoarserOrEqual(units.Minutes))
	assert.Equal(t, []units.Unit{units.Days}, s.CoarserOrEqual(units.Days))
}

func TestScale_Between(t *testing.T) {
	s := units.Standard()

	assert.Equal(t, []units.Unit{units.Days, units.Hours, units.Minutes}, s.Between(units.Days, units.Minutes))
	assert.Equal(t, []units.Unit{units.Minutes, units.Hours, units.Days}, s.Between(units.Minutes, units.Days))
	assert.Equal(t, []units.Unit{units.Seconds}, s.Between(units.Seconds, units.Seconds))
}

func TestScale_Convert(t *testing.T) {
	s := units.Standard()

	assert.Equal(t, int64(86_400_000_000_000), s.Convert(1, units.Days, units.Nanoseconds))
	assert.Equal(t, int64(1440), s.Convert(1, units.Days, units.Minutes))
	assert.Equal(t, int64(1), s.Convert(119, units.Seconds, units.Minutes))
	assert.Equal(t, int64(7), s.Convert(7, units.Hours, units.Hours))
	assert.Equal(t, int64(math.MaxInt64), s.Convert(math.MaxInt64/2, units.Days, units.Nanoseconds))
}

func TestScale_UnknownUnitPanics(t *testing.T) {
	s, err := units.NewScale(
		units.Step{Unit: units.Seconds},
		units.Step{Unit: units.Minutes, Ratio: 60},
	)
	require.NoError(t, err)

	assert.False(t, s.Contains(units.Days))
	_, ok := s.Index(units.Days)
	assert.False(t, ok)
	assert.Panics(t, func() { s.Ratio(units.Days) })
}

func TestNewScale_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		steps []units.Step
	}{
		{"empty", nil},
		{"duplicate", []units.Step{{Unit: units.Seconds}, {Unit: units.Seconds, Ratio: 60}}},
		{"ratio too small", []units.Step{{Unit: units.Seconds}, {Unit: units.Minutes, Ratio: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := units.NewScale(tt.steps...)
			require.ErrorIs(t, err, units.ErrInvalidScale)
		})
	}
}
