// Package units defines the time units a duration can be split into and the
// scale that orders them.
package units

import (
	"fmt"
	"strings"
)

// Unit identifies a time unit.
type Unit int

// Supported units, finest first.
const (
	Nanoseconds Unit = iota
	Microseconds
	Milliseconds
	Seconds
	Minutes
	Hours
	Days
)

var unitNames = map[Unit]string{
	Nanoseconds:  "nanoseconds",
	Microseconds: "microseconds",
	Milliseconds: "milliseconds",
	Seconds:      "seconds",
	Minutes:      "minutes",
	Hours:        "hours",
	Days:         "days",
}

// unitAliases maps every accepted spelling to its unit.
var unitAliases = map[string]Unit{
	"ns": Nanoseconds, "nanos": Nanoseconds, "nanosecond": Nanoseconds, "nanoseconds": Nanoseconds,
	"us": Microseconds, "µs": Microseconds, "μs": Microseconds, "micros": Microseconds,
	"microsecond": Microseconds, "microseconds": Microseconds,
	"ms": Milliseconds, "millis": Milliseconds, "millisecond": Milliseconds, "milliseconds": Milliseconds,
	"s": Seconds, "sec": Seconds, "second": Seconds, "seconds": Seconds,
	"m": Minutes, "min": Minutes, "minute": Minutes, "minutes": Minutes,
	"h": Hours, "hour": Hours, "hours": Hours,
	"d": Days, "day": Days, "days": Days,
}

// String returns the long lowercase name of the unit.
func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("unit(%d)", int(u))
}

// Parse converts a unit name such as "ms", "min" or "hours" into a Unit.
// Matching is case-insensitive.
func Parse(name string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if u, ok := unitAliases[key]; ok {
		return u, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
}

// Names returns the canonical names of all supported units, finest first.
func Names() []string {
	names := make([]string, 0, len(unitNames))
	for u := Nanoseconds; u <= Days; u++ {
		names = append(names, unitNames[u])
	}
	return names
}
