package durationfmt

import (
	"fmt"
	"slices"

	"github.com/sgaunet/durfmt/pkg/units"
)

// Digits formats seconds to hours as zero padded digits, e.g. "01:12:33".
// Sub-second units use three digits.
func Digits() Config {
	return DefaultConfig().
		WithMinimum(units.Seconds).
		WithMaximum(units.Hours).
		WithFormat(units.Milliseconds, "%03d").
		WithFormat(units.Microseconds, "%03d").
		WithFormat(units.Nanoseconds, "%03d")
}

// Symbols formats seconds to hours with unit symbols, e.g. "1h 12min 33s".
func Symbols() Config {
	return Digits().
		WithSeparator(" ").
		WithFormatAll("%d").
		WithSymbol(units.Nanoseconds, "ns").
		WithSymbol(units.Microseconds, "µs").
		WithSymbol(units.Milliseconds, "ms").
		WithSymbol(units.Seconds, "s").
		WithSymbol(units.Minutes, "min").
		WithSymbol(units.Hours, "h").
		WithSymbol(units.Days, "d")
}

// Words formats days to seconds with english words, e.g. "1 day 2 hours".
func Words() Config {
	return Symbols().
		WithMaximum(units.Days).
		WithSuppress(SuppressAll).
		WithValueSymbolSeparator(" ").
		WithSymbolChoice(units.Nanoseconds, "nanosecond", "nanoseconds").
		WithSymbolChoice(units.Microseconds, "microsecond", "microseconds").
		WithSymbolChoice(units.Milliseconds, "millisecond", "milliseconds").
		WithSymbolChoice(units.Seconds, "second", "seconds").
		WithSymbolChoice(units.Minutes, "minute", "minutes").
		WithSymbolChoice(units.Hours, "hour", "hours").
		WithSymbolChoice(units.Days, "day", "days")
}

var presets = map[string]func() Config{
	"digits":  Digits,
	"symbols": Symbols,
	"words":   Words,
}

// Preset returns the configuration registered under name.
func Preset(name string) (Config, error) {
	p, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p(), nil
}

// PresetNames returns the sorted names of all presets.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
