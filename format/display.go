package format

import (
	"fmt"
	"strings"
	"time"

	"socialcal/shared"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/shopspring/decimal"
)

const DateTimeLayout = "Mon Jan 2, 2006 3:04 PM"
const DateLayout = "Mon Jan 2, 2006"
const ClockLayout = "3:04 PM"

func DateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(DateTimeLayout)
}

// When shows the local time followed by the relative time.
func When(t time.Time, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s (%s)", t.Local().Format(DateTimeLayout), RelTime(t, now))
}

func PlatformLabel(p shared.Platform) string {
	return p.Icon() + " " + shared.Capitalize(string(p))
}

func ContentTypeLabel(c shared.ContentType) string {
	return c.Icon() + " " + shared.Capitalize(string(c))
}

// Truncate shortens s to width cells on a single line, adding "…" when cut.
func Truncate(s string, width int) string {
	s = shared.Compact(s)
	return truncate.StringWithTail(s, uint(width), "…")
}

func Wrap(s string, width int) string {
	return wordwrap.String(s, width)
}

func Percent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

func Count(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}

	s := fmt.Sprint(n)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// Signed prefixes non-negative growth with "+".
func Signed(n int64) string {
	if n >= 0 {
		return "+" + Count(n)
	}
	return Count(n)
}
