// Package main provides the entry point for the durfmt CLI tool.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/durfmt/internal/logger"
	"github.com/sgaunet/durfmt/internal/timeutil"
	"github.com/sgaunet/durfmt/internal/ui"
	"github.com/sgaunet/durfmt/pkg/config"
	"github.com/sgaunet/durfmt/pkg/durationfmt"
	"github.com/sgaunet/durfmt/pkg/units"
	"github.com/spf13/cobra"
)

// sampleMillis is rendered next to each preset: 1d 2h 3min 4s 5ms.
const sampleMillis = 93_784_005

var (
	errInvalidValue     = errors.New("invalid duration value")
	errInvalidTimestamp = errors.New("invalid timestamp, expected RFC3339")
)

// now is replaced in tests.
var now = time.Now

type options struct {
	unit           string
	preset         string
	minimum        string
	maximum        string
	suppress       string
	limit          int
	round          bool
	separator      string
	valueSeparator string
	configPath     string
	interactive    bool
	logLevel       string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "durfmt VALUE",
		Short: "Format durations into human readable strings",
		Long: `durfmt splits a duration into days, hours, minutes, seconds and
sub-second units and renders the significant ones, e.g. "01:02:03",
"1h 2min 3s" or "1 hour 2 minutes 3 seconds".

VALUE is either an integer counted in --unit or a Go duration such as 1h30m.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, opts, args[0])
		},
	}

	rootCmd.Flags().StringVarP(&opts.unit, "unit", "u", "ms",
		"Unit of an integer VALUE ("+strings.Join(units.Names(), ", ")+")")

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.preset, "preset", "p", "",
		"Start from a preset ("+strings.Join(durationfmt.PresetNames(), ", ")+")")
	flags.StringVar(&opts.minimum, "min", "", "Finest unit to render")
	flags.StringVar(&opts.maximum, "max", "", "Coarsest unit to render, coarser units are folded into it")
	flags.StringVar(&opts.suppress, "suppress", "",
		"Comma separated zero suppression modes (leading, trailing, middle, all, none)")
	flags.IntVar(&opts.limit, "limit", 0, "Render at most this many units, 0 means no limit")
	flags.BoolVar(&opts.round, "round", true, "Round the last rendered unit")
	flags.StringVar(&opts.separator, "separator", "", "Separator between units")
	flags.StringVar(&opts.valueSeparator, "value-separator", "", "Separator between a value and its symbol")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Configuration file (default ~/.config/durfmt/config.yml)")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "Choose the preset interactively")
	flags.StringVarP(&opts.logLevel, "log-level", "l", "info", "Set log level (debug, info, warn, error)")

	rootCmd.AddCommand(newSinceCmd(opts), newPresetsCmd())
	return rootCmd
}

func newSinceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "since TIMESTAMP",
		Short: "Format the time elapsed since an RFC3339 timestamp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := time.Parse(time.RFC3339, args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", errInvalidTimestamp, args[0])
			}
			f, err := buildFormatter(cmd, opts)
			if err != nil {
				return err
			}
			out, err := timeutil.Since(f, t, now())
			if err != nil {
				return fmt.Errorf("failed to format elapsed time: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the available presets with a sample rendering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listPresets(cmd.OutOrStdout())
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runFormat(cmd *cobra.Command, opts *options, arg string) error {
	f, err := buildFormatter(cmd, opts)
	if err != nil {
		return err
	}

	var out string
	if value, perr := strconv.ParseInt(arg, 10, 64); perr == nil {
		unit, uerr := units.Parse(opts.unit)
		if uerr != nil {
			return uerr
		}
		out, err = f.Format(value, unit)
	} else {
		d, derr := time.ParseDuration(arg)
		if derr != nil {
			return fmt.Errorf("%w: %q", errInvalidValue, arg)
		}
		out, err = timeutil.Format(f, d)
	}
	if err != nil {
		return fmt.Errorf("failed to format duration: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func buildFormatter(cmd *cobra.Command, opts *options) (*durationfmt.Formatter, error) {
	log := logger.NewLogger(opts.logLevel)

	fileCfg, err := loadConfig(cmd, opts, log)
	if err != nil {
		return nil, err
	}
	if err := overlayFlags(cmd, opts, fileCfg); err != nil {
		return nil, err
	}

	if opts.interactive {
		preset, err := ui.NewPresetSelector().SelectPreset(durationfmt.PresetNames(), presetSample)
		if err != nil {
			return nil, err
		}
		fileCfg.Preset = preset
	}

	if err := fileCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	cfg, err := fileCfg.Apply(durationfmt.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	f, err := durationfmt.New(cfg, durationfmt.WithLogger(logger.Slog(opts.logLevel)))
	if err != nil {
		return nil, err
	}
	log.Debug(fmt.Sprintf("Formatter ready: %s..%s", cfg.Minimum, cfg.Maximum))
	return f, nil
}

func loadConfig(cmd *cobra.Command, opts *options, log *bullets.Logger) (*config.Config, error) {
	path := opts.configPath
	explicit := cmd.Flags().Changed("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			log.Debug("No home directory, skipping configuration file")
			return &config.Config{}, nil
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !explicit {
			log.Debug("No configuration file found, using defaults")
			return &config.Config{}, nil
		}
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	log.Debug("Configuration loaded from " + path)
	return cfg, nil
}

// overlayFlags copies every flag set on the command line into cfg.
func overlayFlags(cmd *cobra.Command, opts *options, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("preset") {
		cfg.Preset = opts.preset
	}
	if flags.Changed("min") {
		cfg.Minimum = opts.minimum
	}
	if flags.Changed("max") {
		cfg.Maximum = opts.maximum
	}
	if flags.Changed("suppress") {
		cfg.Suppress = strings.Split(opts.suppress, ",")
	}
	if flags.Changed("limit") {
		if opts.limit < 0 {
			return fmt.Errorf("%w: %d", durationfmt.ErrNegativeLimit, opts.limit)
		}
		cfg.MaxUnits = &opts.limit
	}
	if flags.Changed("round") {
		cfg.Round = &opts.round
	}
	if flags.Changed("separator") {
		cfg.Separator = &opts.separator
	}
	if flags.Changed("value-separator") {
		cfg.ValueSymbolSeparator = &opts.valueSeparator
	}
	return nil
}

func presetSample(name string) string {
	cfg, err := durationfmt.Preset(name)
	if err != nil {
		return ""
	}
	f, err := durationfmt.New(cfg)
	if err != nil {
		return ""
	}
	s, err := f.FormatMillis(sampleMillis)
	if err != nil {
		return ""
	}
	return s
}

func listPresets(w io.Writer) error {
	for _, name := range durationfmt.PresetNames() {
		if _, err := fmt.Fprintf(w, "%-8s %s\n", name, presetSample(name)); err != nil {
			return err
		}
	}
	return nil
}
