// Package timeutil converts between the terminal's fixed UTC-5 civil calendar
// and absolute UTC instants. The port operates on Colombia local time, which
// has no daylight saving: the -5 hour offset is constant year-round, so the
// conversion is plain offset arithmetic rather than a tz database lookup.
package timeutil

import "time"

// civilOffset is the fixed UTC-5 offset of the terminal's civil clock.
const civilOffset = -5 * time.Hour

// FromCivil interprets the six fields as a wall-clock time in the fixed UTC-5
// frame and returns the corresponding UTC instant.
// FromCivil(2025, 1, 1, 0, 0, 0) == 2025-01-01T05:00:00Z.
func FromCivil(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC).Add(-civilOffset)
}

// CivilDate returns the calendar date of the instant in the UTC-5 civil frame.
// Used to date-stamp generated business codes.
func CivilDate(t time.Time) (year int, month time.Month, day int) {
	return t.UTC().Add(civilOffset).Date()
}

// AddMinutes returns the instant shifted by n minutes (n may be negative).
func AddMinutes(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Minute)
}
