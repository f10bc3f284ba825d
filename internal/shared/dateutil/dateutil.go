// Package dateutil handles calendar dates. A date is a time.Time at midnight
// UTC, which is also how Postgres date columns come back from the driver.
package dateutil

import "time"

const Layout = "2006-01-02"

// Parse accepts only YYYY-MM-DD.
func Parse(v string) (time.Time, error) {
	return time.Parse(Layout, v)
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

// Civil drops the clock part of t, keeping the calendar date as seen in t's
// own location.
func Civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Range lists every date from start to end inclusive. It is empty when
// start is after end.
func Range(start, end time.Time) []time.Time {
	start, end = Civil(start), Civil(end)
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Overlaps reports whether [aStart, aEnd] and [bStart, bEnd] share a day.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// Covers reports whether day falls within [start, end].
func Covers(start, end, day time.Time) bool {
	return Overlaps(start, end, day, day)
}

// StartOfWeek returns the Monday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	d := Civil(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// StartOfMonth returns the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	d := Civil(t)
	return d.AddDate(0, 0, -(d.Day() - 1))
}
