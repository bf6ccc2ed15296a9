// Package day provides a calendar date at day granularity.
package day

import "time"

const layout = "2006-01-02"

// Date is a calendar date without time of day. The zero value is not a valid date.
// Date is comparable and safe to use as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the normalised date for year, month and day. Out-of-range values
// roll over the same way time.Date does (31 Feb becomes 2 or 3 Mar).
func New(year int, month time.Month, d int) Date {
	return Of(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
}

// Of returns the date of t in t's own location.
func Of(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Time().Format(layout)
}

// WithDay replaces the day number, keeping year and month. Day numbers past
// the end of the month roll into the next month.
func (d Date) WithDay(n int) Date {
	return New(d.Year, d.Month, n)
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return New(d.Year, d.Month, d.Day+n)
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}
