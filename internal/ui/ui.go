// Package ui provides interactive prompts for the durfmt CLI.
package ui

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// ErrNoPresets is returned when there is nothing to choose from.
var ErrNoPresets = errors.New("no presets available")

// AskFunc prompts the user and stores the answer in response.
type AskFunc func(p survey.Prompt, response any, opts ...survey.AskOpt) error

// PresetSelector lets the user pick a formatting preset.
type PresetSelector struct {
	ask AskFunc
}

// NewPresetSelector returns a selector prompting on the terminal.
func NewPresetSelector() *PresetSelector {
	return &PresetSelector{ask: survey.AskOne}
}

// NewPresetSelectorWithAsk returns a selector using ask instead of the terminal.
func NewPresetSelectorWithAsk(ask AskFunc) *PresetSelector {
	return &PresetSelector{ask: ask}
}

// Preview renders a sample for a preset name.
type Preview func(name string) string

// SelectPreset asks for one of names. When preview is not nil, each option
// is described by its rendering of a sample value.
func (ps *PresetSelector) SelectPreset(names []string, preview Preview) (string, error) {
	if len(names) == 0 {
		return "", ErrNoPresets
	}

	prompt := &survey.Select{
		Message: "Choose a preset:",
		Options: names,
		Default: names[0],
	}
	if preview != nil {
		prompt.Description = func(value string, _ int) string {
			return preview(value)
		}
	}

	var selected string
	if err := ps.ask(prompt, &selected); err != nil {
		return "", fmt.Errorf("failed to get preset selection: %w", err)
	}
	return selected, nil
}
