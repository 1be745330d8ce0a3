package shared

import (
	"strings"
	"time"
)

const TsFormat = "2006-01-02T15:04:05.999Z"

func StringTs() string {
	return time.Now().UTC().Format(TsFormat)
}

func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Compact collapses runs of whitespace into single spaces.
func Compact(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func StrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func StrVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
