package utils

import "time"

// Location is the timezone scheduled dates and calendar-day windows are computed in.
func Location() *time.Location {
	name := GetConfig("APP_TIMEZONE")
	if name == "" || name == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

// DayBounds returns 00:00:00.000 and 23:59:59.999 of the calendar day t falls on.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start, end
}

// ParseDate accepts a bare calendar date (read in Location) or a full RFC3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, Location()); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(Location()), nil
}
