// Package fixtures provides helpers to build test inputs.
package fixtures

import "github.com/sgaunet/durfmt/pkg/units"

var scale = units.Standard()

// Duration accumulates a duration in nanoseconds from several units.
type Duration struct {
	nanos int64
}

// Get starts a duration with n counts of unit.
func Get(n int64, unit units.Unit) *Duration {
	return new(Duration).And(n, unit)
}

// And adds n counts of unit.
func (d *Duration) And(n int64, unit units.Unit) *Duration {
	d.nanos += scale.Convert(n, unit, units.Nanoseconds)
	return d
}

// As returns the duration expressed in unit, truncated.
func (d *Duration) As(unit units.Unit) int64 {
	return scale.Convert(d.nanos, units.Nanoseconds, unit)
}
