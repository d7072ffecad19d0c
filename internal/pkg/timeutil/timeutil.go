package timeutil

import (
	"fmt"
	"time"
)

// TimeToMinutes parses an "HH:MM" clock string into minutes past midnight.
func TimeToMinutes(clock string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	return h*60 + m, nil
}

// MinutesToTime renders minutes past midnight as a zero-padded "HH:MM" string.
// Callers guarantee the value represents a valid time of day.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate parses a "YYYY-MM-DD" calendar date.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// IsWeekend reports whether a "YYYY-MM-DD" calendar date falls on a Saturday
// or Sunday. The date is interpreted purely from its components, so the
// result never shifts with the server timezone.
func IsWeekend(date string) (bool, error) {
	t, err := ParseDate(date)
	if err != nil {
		return false, err
	}
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday, nil
}
