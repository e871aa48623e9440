// Package time supplies the clock the services read "now" and the current
// year from, so tests can pin them
package time

import "time"

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock
type ClockFunc func() time.Time

// Now calls f
func (f ClockFunc) Now() time.Time { return f() }

// System is the wall clock
func System() Clock { return ClockFunc(time.Now) }

// Fixed always reports t
func Fixed(t time.Time) Clock { return ClockFunc(func() time.Time { return t }) }

// Year is the calendar year of c.Now() in loc, or in local time when loc is nil
func Year(c Clock, loc *time.Location) int {
	now := c.Now()
	if loc != nil {
		now = now.In(loc)
	}
	return now.Year()
}

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
