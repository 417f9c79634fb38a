// Package date provides a day-granularity calendar date and its position on a
// continuous fractional-year time axis.
package date

import (
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// YearDay returns the day of the year, 1 for January 1st.
func (d Date) YearDay() int { return d.time().YearDay() }

// DaysInYear returns 366 for leap years and 365 otherwise.
func (d Date) DaysInYear() int { return New(d.y, time.December, 31).YearDay() }

// FractionalYear places d on a continuous time axis: the year plus the
// proportion of that year elapsed at the end of the day.
//
// January 1st of 2001 is 2001+1/365 and December 31st is exactly 2002.
func (d Date) FractionalYear() float64 {
	return float64(d.y) + float64(d.YearDay())/float64(d.DaysInYear())
}

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// ParseFormat parses a Date using format, either a strftime pattern such as
// "%d-%b-%Y" or a Go reference layout such as "02/01/2006".
func ParseFormat(format, str string) (Date, error) {
	layout, err := Layout(format)
	if err != nil {
		return Date{}, err
	}
	on, err := time.Parse(layout, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, format, err)
	}
	return New(on.Date()), nil
}
