// Package dateutil holds the calendar-day arithmetic the habit and feed
// services are built on. All computation is in UTC with one-day precision;
// dates travel as YYYY-MM-DD strings so lexicographic order is date order.
package dateutil

import "time"

const layout = "2006-01-02"

// DateString formats t as a UTC calendar day.
func DateString(t time.Time) string {
	return t.UTC().Format(layout)
}

// Today is the current UTC calendar day.
func Today() string {
	return DateString(time.Now())
}

// ParseDate parses a YYYY-MM-DD string. Callers pass dates that were produced
// by this package or validated at the API edge.
func ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation(layout, date, time.UTC)
}

// DayOfWeek returns 0-6 with Sunday=0, matching habit scheduleDays.
func DayOfWeek(t time.Time) int {
	return int(t.UTC().Weekday())
}

// DayOfWeekString is DayOfWeek for a YYYY-MM-DD string.
func DayOfWeekString(date string) (int, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return DayOfWeek(t), nil
}

// AddDays shifts a date string by n calendar days, rolling over month and
// year boundaries.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return DateString(t.AddDate(0, 0, n)), nil
}

// WeekDates returns the 7 dates of the Monday-start week containing t,
// Monday first. With Sunday=0 the offset to Monday is -6, not +1.
func WeekDates(t time.Time) []string {
	dow := DayOfWeek(t)
	mondayOffset := 1 - dow
	if dow == 0 {
		mondayOffset = -6
	}

	day := t.UTC().AddDate(0, 0, mondayOffset)
	dates := make([]string, 7)
	for i := range dates {
		dates[i] = DateString(day)
		day = day.AddDate(0, 0, 1)
	}
	return dates
}
