package domain

import (
	"fmt"
	"time"
)

// WeekDateLayout is the wire format of a week start.
const WeekDateLayout = "2006-01-02"

// WeekStart returns the Monday 00:00 UTC of the week containing t.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsWeekStart reports whether t is exactly a Monday 00:00 UTC.
func IsWeekStart(t time.Time) bool {
	return t.Equal(WeekStart(t))
}

// ValidateWeekStart returns ErrNotMonday unless t is Monday-aligned.
func ValidateWeekStart(t time.Time) error {
	if !IsWeekStart(t) {
		return fmt.Errorf("%w: %s", ErrNotMonday, t.UTC().Format(time.RFC3339))
	}
	return nil
}

// ParseWeekStart parses a YYYY-MM-DD date and checks it is a Monday.
func ParseWeekStart(s string) (time.Time, error) {
	t, err := time.ParseInLocation(WeekDateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: week start %q: %v", ErrDataInvalid, s, err)
	}
	if err := ValidateWeekStart(t); err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// NextWeekStart returns the first Monday 00:00 UTC strictly after t.
func NextWeekStart(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, 7)
}
