// Package daterange selects records whose day/month/year date falls inside an
// inclusive period
//
// Dates are compared as calendar values, never as text. The package performs
// no I/O and never reads the clock
package daterange

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar day with no time of day and no zone
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate parses "d/m/yyyy" with 1 or 2 digit day and month and a 4 digit year.
// Surrounding whitespace is ignored. Dates that do not exist on the calendar
// (31/02/2025, 10/13/2025) are rejected
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return Date{}, &MalformedDateError{Value: s, Index: -1}
	}
	d, okD := field(parts[0], 1, 2)
	m, okM := field(parts[1], 1, 2)
	y, okY := field(parts[2], 4, 4)
	if !okD || !okM || !okY {
		return Date{}, &MalformedDateError{Value: s, Index: -1}
	}
	if m < 1 || m > 12 || d < 1 || d > daysIn(y, m) {
		return Date{}, &MalformedDateError{Value: s, Index: -1}
	}
	return Date{Year: y, Month: m, Day: d}, nil
}

// MustParseDate is ParseDate for literals; it panics on malformed input
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Compare returns -1, 0 or 1 as d is before, equal to or after o
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	default:
		return sign(d.Day - o.Day)
	}
}

// String formats the date as dd/mm/yyyy
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

// IsZero reports whether d is the zero Date
func (d Date) IsZero() bool { return d == Date{} }

// Time returns midnight of d in loc (UTC when loc is nil)
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

// FromTime takes the calendar day of t in its own location
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

func field(s string, minLen, maxLen int) (int, bool) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
