// Adapted from https://raw.githubusercontent.com/dustin/go-humanize/master/times.go

package format

import (
	"fmt"
	"sort"
	"time"
)

const (
	Day      = 24 * time.Hour
	Week     = 7 * Day
	Month    = 30 * Day
	Year     = 12 * Month
	LongTime = 37 * Year
)

// Time formats a time relative to now: "3h ago", "in 2d".
func Time(then time.Time) string {
	return RelTime(then, time.Now())
}

func RelTime(then, now time.Time) string {
	return customRelTime(then.UTC(), now.UTC(), "%s ago", "in %s", defaultMagnitudes)
}

// A relTimeMagnitude switches to Format once the difference reaches D.
// Quantities are the difference divided by DivBy; a DivBy of 1 means the
// format takes no quantity.
type relTimeMagnitude struct {
	D      time.Duration
	Format string
	DivBy  time.Duration
}

var defaultMagnitudes = []relTimeMagnitude{
	{time.Second, "now", time.Second},
	{2 * time.Second, "1s", 1},
	{time.Minute, "%ds", time.Second},
	{2 * time.Minute, "1m", 1},
	{time.Hour, "%dm", time.Minute},
	{2 * time.Hour, "1h", 1},
	{Day, "%dh", time.Hour},
	{2 * Day, "1d", 1},
	{Week, "%dd", Day},
	{2 * Week, "1w", 1},
	{Month, "%dw", Week},
}

func customRelTime(a, b time.Time, pastLbl, futureLbl string, magnitudes []relTimeMagnitude) string {
	lbl := pastLbl
	diff := b.Sub(a)

	if a.After(b) {
		lbl = futureLbl
		diff = a.Sub(b)
	}

	// past the largest magnitude, show the date
	if diff >= magnitudes[len(magnitudes)-1].D {
		return a.Local().Format("Jan 2 2006")
	}

	n := sort.Search(len(magnitudes), func(i int) bool {
		return magnitudes[i].D > diff
	})
	if n >= len(magnitudes) {
		n = len(magnitudes) - 1
	}
	mag := magnitudes[n]

	if n == 0 {
		return mag.Format
	}

	var qty string
	if mag.DivBy == 1 {
		qty = mag.Format
	} else {
		qty = fmt.Sprintf(mag.Format, diff/mag.DivBy)
	}
	return fmt.Sprintf(lbl, qty)
}
