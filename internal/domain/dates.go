package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for schedule dates.
const DateLayout = "2006-01-02"

// InvalidDateError reports a date string that could not be parsed. Malformed
// dates are rejected at the boundary so the calculator never sees one.
type InvalidDateError struct {
	Field string
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%s: invalid date %q (expected YYYY-MM-DD)", e.Field, e.Value)
}

// ParseDate parses a YYYY-MM-DD string into a UTC-midnight time.Time.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, &InvalidDateError{Field: field, Value: value}
	}
	return t.UTC(), nil
}

// Midnight truncates a time to UTC midnight. All schedule math operates on
// whole calendar days.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current date at UTC midnight.
func Today() time.Time {
	return Midnight(time.Now())
}

// DaysBetween returns the signed number of whole days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Midnight(b).Sub(Midnight(a)).Hours() / 24)
}
