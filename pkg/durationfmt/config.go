package durationfmt

import (
	"fmt"
	"maps"
	"strings"

	"github.com/sgaunet/durfmt/pkg/units"
)

// DefaultFormat is the number format of units without an explicit format.
const DefaultFormat = "%02d"

// Suppress is a set of zero suppression modes.
type Suppress uint8

// Zero suppression modes. They can be combined with |.
const (
	SuppressLeading Suppress = 1 << iota
	SuppressTrailing
	SuppressMiddle

	SuppressNone Suppress = 0
	SuppressAll           = SuppressLeading | SuppressTrailing | SuppressMiddle
)

// Has reports whether every mode of flag is set.
func (s Suppress) Has(flag Suppress) bool {
	return s&flag == flag
}

func (s Suppress) String() string {
	if s == SuppressNone {
		return "none"
	}
	var parts []string
	for _, m := range []struct {
		flag Suppress
		name string
	}{{SuppressLeading, "leading"}, {SuppressTrailing, "trailing"}, {SuppressMiddle, "middle"}} {
		if s.Has(m.flag) {
			parts = append(parts, m.name)
		}
	}
	return strings.Join(parts, ",")
}

// ParseSuppress parses a comma separated list such as "leading,trailing".
// "all" and "none" are accepted as well.
func ParseSuppress(list string) (Suppress, error) {
	var s Suppress
	for _, part := range strings.Split(list, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "", "none":
		case "leading":
			s |= SuppressLeading
		case "trailing":
			s |= SuppressTrailing
		case "middle":
			s |= SuppressMiddle
		case "all":
			s |= SuppressAll
		default:
			return 0, fmt.Errorf("unknown zero suppression mode %q", part)
		}
	}
	return s, nil
}

// Symbol is the text appended to a unit's value. Plural is used for every
// value other than 1 when it is set.
type Symbol struct {
	Singular string
	Plural   string
}

// For returns the symbol text matching value.
func (s Symbol) For(value int64) string {
	if value != 1 && s.Plural != "" {
		return s.Plural
	}
	return s.Singular
}

// Config describes how durations are formatted. A Config is a value: the
// With methods return modified copies and never change the receiver.
type Config struct {
	Minimum  units.Unit
	Maximum  units.Unit
	Suppress Suppress
	// MaxUnits limits the number of rendered units, 0 means unbounded.
	MaxUnits int
	Round    bool

	Separator            string
	ValueSymbolSeparator string
	DefaultFormat        string
	Formats              map[units.Unit]string
	Symbols              map[units.Unit]Symbol
}

// DefaultConfig formats milliseconds to hours as digits, e.g. "01:02:03:004".
func DefaultConfig() Config {
	return Config{
		Minimum:       units.Milliseconds,
		Maximum:       units.Hours,
		Round:         true,
		Separator:     ":",
		DefaultFormat: DefaultFormat,
	}
}

func (c Config) clone() Config {
	c.Formats = maps.Clone(c.Formats)
	c.Symbols = maps.Clone(c.Symbols)
	return c
}

// WithMinimum sets the finest rendered unit.
func (c Config) WithMinimum(u units.Unit) Config {
	c = c.clone()
	c.Minimum = u
	return c
}

// WithMaximum sets the coarsest rendered unit.
func (c Config) WithMaximum(u units.Unit) Config {
	c = c.clone()
	c.Maximum = u
	return c
}

// WithSuppress replaces the zero suppression modes.
func (c Config) WithSuppress(modes ...Suppress) Config {
	c = c.clone()
	c.Suppress = SuppressNone
	for _, m := range modes {
		c.Suppress |= m
	}
	return c
}

// WithMaxUnits limits the number of rendered units, 0 removes the limit.
func (c Config) WithMaxUnits(n int) Config {
	c = c.clone()
	c.MaxUnits = n
	return c
}

// WithRound enables or disables rounding of the last rendered unit.
func (c Config) WithRound(round bool) Config {
	c = c.clone()
	c.Round = round
	return c
}

// WithSeparator sets the text placed between units.
func (c Config) WithSeparator(sep string) Config {
	c = c.clone()
	c.Separator = sep
	return c
}

// WithValueSymbolSeparator sets the text placed between a value and its symbol.
func (c Config) WithValueSymbolSeparator(sep string) Config {
	c = c.clone()
	c.ValueSymbolSeparator = sep
	return c
}

// WithFormat sets the number format of a single unit.
func (c Config) WithFormat(u units.Unit, format string) Config {
	c = c.clone()
	if c.Formats == nil {
		c.Formats = make(map[units.Unit]string)
	}
	c.Formats[u] = format
	return c
}

// WithFormatAll uses format for every unit, dropping per-unit formats.
func (c Config) WithFormatAll(format string) Config {
	c = c.clone()
	c.DefaultFormat = format
	c.Formats = nil
	return c
}

// WithSymbol sets the symbol of a unit.
func (c Config) WithSymbol(u units.Unit, symbol string) Config {
	return c.WithSymbolChoice(u, symbol, "")
}

// WithSymbolChoice sets distinct singular and plural symbols of a unit.
func (c Config) WithSymbolChoice(u units.Unit, singular, plural string) Config {
	c = c.clone()
	if c.Symbols == nil {
		c.Symbols = make(map[units.Unit]Symbol)
	}
	c.Symbols[u] = Symbol{Singular: singular, Plural: plural}
	return c
}

// FormatFor returns the number format of u.
func (c Config) FormatFor(u units.Unit) string {
	if f, ok := c.Formats[u]; ok {
		return f
	}
	if c.DefaultFormat != "" {
		return c.DefaultFormat
	}
	return DefaultFormat
}

// Validate checks the configuration against scale.
func (c Config) Validate(scale *units.Scale) error {
	for _, u := range []units.Unit{c.Minimum, c.Maximum} {
		if !scale.Contains(u) {
			return fmt.Errorf("%w: %s", units.ErrUnknownUnit, u)
		}
	}
	if scale.Compare(c.Minimum, c.Maximum) > 0 {
		return fmt.Errorf("%w: minimum %s, maximum %s", ErrInvalidRange, c.Minimum, c.Maximum)
	}
	if c.MaxUnits < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLimit, c.MaxUnits)
	}
	for _, u := range scale.Between(c.Maximum, c.Minimum) {
		if err := checkFormat(c.FormatFor(u)); err != nil {
			return fmt.Errorf("format of %s: %w", u, err)
		}
	}
	return nil
}

// checkFormat rejects formats that do not print exactly one integer.
func checkFormat(format string) error {
	out := fmt.Sprintf(format, int64(42))
	if strings.Contains(out, "%!") || !strings.Contains(out, "42") {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
	return nil
}
