package term

import (
	"fmt"
	"os"
	"strings"

	"socialcal/shared"

	"github.com/fatih/color"
)

func OutputSimpleError(msg string, args ...interface{}) {
	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 "+shared.Capitalize(msg)))
}

func OutputErrorAndExit(msg string, args ...interface{}) {
	StopSpinner()
	fmt.Fprintln(os.Stderr, FormatError(fmt.Sprintf(msg, args...)))
	os.Exit(1)
}

// FormatError splits a "a: b: c" chain into one indented line per part,
// skipping repeats.
func FormatError(msg string) string {
	errorParts := strings.Split(msg, ": ")
	if len(errorParts) == 1 {
		return color.New(ColorHiRed, color.Bold).Sprint("🚨 " + shared.Capitalize(msg))
	}

	displayMsg := ""
	addedErrors := map[string]bool{}

	i := 0
	for _, part := range errorParts {
		// don't repeat the same error message
		if addedErrors[strings.ToLower(part)] {
			continue
		}

		if i != 0 {
			displayMsg += "\n" + strings.Repeat("  ", i) + "→ "
		}

		s := shared.Capitalize(part)
		if i == 0 {
			s = color.New(ColorHiRed, color.Bold).Sprint("🚨 " + s)
		}
		displayMsg += s

		addedErrors[strings.ToLower(part)] = true
		i++
	}

	return displayMsg
}

func HandleApiError(apiErr *shared.ApiError) {
	StopSpinner()

	switch apiErr.Type {
	case shared.ApiErrorTypeUnauthorized:
		// the client's unauthorized hook has already told the user
		os.Exit(1)
	case shared.ApiErrorTypeNetwork:
		OutputErrorAndExit("%s Is the backend running?", shared.NetworkErrorMsg)
	}

	OutputErrorAndExit("%s", apiErr.Msg)
}
