package term

import (
	"socialcal/shared"

	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

var IsDarkBg = termenv.HasDarkBackground()

var ColorHiGreen color.Attribute
var ColorHiMagenta color.Attribute
var ColorHiRed color.Attribute
var ColorHiYellow color.Attribute
var ColorHiCyan color.Attribute

func init() {
	if IsDarkBg {
		ColorHiGreen = color.FgHiGreen
		ColorHiMagenta = color.FgHiMagenta
		ColorHiRed = color.FgHiRed
		ColorHiYellow = color.FgHiYellow
		ColorHiCyan = color.FgHiCyan
	} else {
		ColorHiGreen = color.FgGreen
		ColorHiMagenta = color.FgMagenta
		ColorHiRed = color.FgRed
		ColorHiYellow = color.FgYellow
		ColorHiCyan = color.FgCyan
	}
}

// StatusColor is the color a schedule status is printed in.
func StatusColor(s shared.ScheduleStatus) color.Attribute {
	switch s {
	case shared.ScheduleStatusPending:
		return ColorHiYellow
	case shared.ScheduleStatusPublished:
		return ColorHiGreen
	case shared.ScheduleStatusFailed:
		return ColorHiRed
	}
	return color.Reset
}

func Status(s shared.ScheduleStatus) string {
	return color.New(StatusColor(s)).Sprint(string(s))
}

// Trend colors label by the sign of n: up is green, down is red.
func Trend(n int64, label string) string {
	switch {
	case n > 0:
		return color.New(ColorHiGreen).Sprint(label)
	case n < 0:
		return color.New(ColorHiRed).Sprint(label)
	}
	return label
}
