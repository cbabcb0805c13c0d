package models

import (
	"fmt"
	"time"
)

// TimeLayout is the canonical post timestamp form: a UTC instant with no
// offset designator and fixed-width microseconds, so that canonical
// timestamps compare correctly as plain strings.
const TimeLayout = "2006-01-02T15:04:05.000000"

// instantLayouts are the ISO-8601 prefixes accepted from callers, most
// precise first.
var instantLayouts = []string{
	TimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// NowInstant returns the current UTC instant in canonical form.
func NowInstant() string {
	return time.Now().UTC().Format(TimeLayout)
}

// ParseInstant parses an ISO-8601 instant and returns it canonicalized.
// Omitted components default to zero, so a date-only bound means midnight
// of that day.
func ParseInstant(s string) (string, error) {
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(TimeLayout), nil
		}
	}
	return "", fmt.Errorf("invalid instant %q", s)
}
