// Package timeutil formats time.Duration values for CLI output.
package timeutil

import (
	"time"

	"github.com/sgaunet/durfmt/pkg/durationfmt"
	"github.com/sgaunet/durfmt/pkg/units"
)

// compact renders minutes and seconds, e.g. "1m 23s" or "45s".
var compact = durationfmt.MustNew(durationfmt.DefaultConfig().
	WithMinimum(units.Seconds).
	WithMaximum(units.Minutes).
	WithSuppress(durationfmt.SuppressLeading).
	WithSeparator(" ").
	WithFormatAll("%d").
	WithSymbol(units.Minutes, "m").
	WithSymbol(units.Seconds, "s"))

// FormatDuration formats a duration into a human-readable string.
// It rounds to the nearest second and displays in "Xm Ys" or "Ys" format.
//
// Examples:
//   - 1m 23s for durations >= 1 minute
//   - 45s for durations < 1 minute
//   - 480m 0s for 8-hour duration (no hour formatting)
//   - -5s for negative durations
func FormatDuration(d time.Duration) string {
	s, _ := Format(compact, d)
	return s
}

// Format renders d with f. Negative durations are rendered as their absolute
// value prefixed with "-".
func Format(f *durationfmt.Formatter, d time.Duration) (string, error) {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
		if d < 0 {
			// math.MinInt64 has no positive counterpart
			d = time.Duration(1<<63 - 1)
		}
	}
	s, err := f.FormatDuration(d)
	if err != nil {
		return "", err
	}
	return sign + s, nil
}

// Since renders the time elapsed between t and now with f. Timestamps in the
// future render as negative durations.
func Since(f *durationfmt.Formatter, t, now time.Time) (string, error) {
	return Format(f, now.Sub(t))
}
