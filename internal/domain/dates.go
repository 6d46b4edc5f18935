package domain

import (
	"math"
	"strings"
	"time"
)

// DateLayout is the canonical date-only format used everywhere a date is
// rendered or exchanged as text.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	"2006-1-2",
	"2006/1/2",
	"1/2/2006",
	"1-2-2006",
}

// ParseDate parses a calendar date, accepting `-` or `/` as the separator
// and both year-first and month-first conventions. An unparseable string
// yields the zero time and false; it never returns an error because a bad
// date upstream means "absent", not "abort".
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders t at date-only granularity. Zero times render empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// RoundDays converts the span from a to b into a whole number of days,
// rounding half away from zero. Positive when b is after a.
func RoundDays(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// SameDate reports whether two times fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return FormatDate(a) == FormatDate(b)
}
