package term

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/fatih/color"
	"github.com/plandex-ai/survey/v2"
	"github.com/plandex-ai/survey/v2/terminal"
)

const selectPageSize = 10

// SelectFromList shows label(option) for each option and returns the option
// the user picked. A nil label falls back to fmt.Sprint.
func SelectFromList[T any](msg string, options []T, label func(T) string) (T, error) {
	var zero T
	if len(options) == 0 {
		return zero, errors.New("nothing to choose from")
	}

	labels := optionLabels(options, label)

	var selected string
	prompt := &survey.Select{
		Message:  color.New(ColorHiMagenta, color.Bold).Sprint(msg),
		Options:  labels,
		PageSize: min(len(labels), selectPageSize),
	}
	err := survey.AskOne(prompt, &selected)
	if err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			os.Exit(0)
		}
		return zero, err
	}

	return pickOption(options, labels, selected)
}

func optionLabels[T any](options []T, label func(T) string) []string {
	if label == nil {
		label = func(v T) string { return fmt.Sprint(v) }
	}
	labels := make([]string, len(options))
	for i, o := range options {
		labels[i] = label(o)
	}
	return labels
}

func pickOption[T any](options []T, labels []string, selected string) (T, error) {
	i := slices.Index(labels, selected)
	if i < 0 {
		var zero T
		return zero, fmt.Errorf("unknown option %q", selected)
	}
	return options[i], nil
}
