package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the only accepted textual date format.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a civil date.
// The result is midnight UTC so that all derived values are
// independent of the local time zone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: use YYYY-MM-DD", ErrInvalidDate, s)
	}
	return t, nil
}

// CivilDate truncates t to its calendar day, expressed as midnight UTC.
// The calendar day is taken in t's own location.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day in the local time zone.
func Today() time.Time {
	return CivilDate(time.Now())
}
