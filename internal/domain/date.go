package domain

import "time"

// All recurrence arithmetic works on calendar dates normalized to UTC
// midnight. UTC has no DST transitions, so every day is exactly 24h and
// duration division stays integer-exact.

// NewDate builds a calendar date at UTC midnight
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf truncates t to its calendar date at UTC midnight
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole number of days from a to b.
// Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)) / (24 * time.Hour))
}

// MonthsBetween returns the calendar-month span from a to b, ignoring the
// day-of-month. Negative when b's month is before a's.
func MonthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

// AddMonthsClamped adds whole calendar months to date, clamping the
// day-of-month to the last valid day of the target month. time.AddDate would
// normalize Jan 31 + 1 month into Mar 2/3; a recurring event anchored on the
// 31st must land on Feb 28/29 instead.
func AddMonthsClamped(date time.Time, months int) time.Time {
	y, m, d := date.UTC().Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	if last := lastDayOfMonth(first.Year(), first.Month()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

// lastDayOfMonth exploits time.Date day-zero normalization: day 0 of the
// following month is the last day of this one.
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
