package domain

import "time"

// DateLayout is the wire format for calendar dates. All range math is
// calendar-date granular; time-of-day never participates.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Nights returns the number of nights in the half-open stay [start, end).
func Nights(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}
