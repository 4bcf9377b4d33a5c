// Package util holds small calendar helpers shared by the account statistics.
package util

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DayLayout is the wire format for calendar days.
const DayLayout = "2006-01-02"

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// DayWindow returns the half-open interval [start, end) covering the calendar day of t in loc.
// The end is computed on the calendar so DST days keep their true length.
func DayWindow(t time.Time, loc *time.Location) (start, end time.Time) {
	start = StartOfDay(t, loc)

	return start, start.AddDate(0, 0, 1)
}

// MonthWindow returns the half-open interval [start, end) covering the calendar month of t in loc.
func MonthWindow(t time.Time, loc *time.Location) (start, end time.Time) {
	t = t.In(loc)
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)

	return start, start.AddDate(0, 1, 0)
}

// ParseDay parses a YYYY-MM-DD string as midnight in loc.
func ParseDay(value string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(DayLayout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid day %q", value)
	}

	return day, nil
}

// ParseInstant accepts either an RFC3339 timestamp or a YYYY-MM-DD day (midnight in loc).
func ParseInstant(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, nil
	}

	return ParseDay(value, loc)
}
