// Package clock supplies "today" for date-driven status derivation.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always reports the same instant. Used by tests and by one-off recomputations.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }

// Today returns the calendar date of c.Now() in loc, as midnight UTC.
// Stored dates use the same representation so they compare directly.
func Today(c Clock, loc *time.Location) time.Time {
	if c == nil {
		c = System{}
	}

	if loc == nil {
		loc = time.UTC
	}

	return DateOf(c.Now().In(loc))
}

// DateOf drops the time of day, keeping t's calendar date.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Calendar pairs a clock with the business time zone.
type Calendar struct {
	Clock    Clock
	Location *time.Location
}

func (c Calendar) Today() time.Time {
	return Today(c.Clock, c.Location)
}

func (c Calendar) Now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}

	return c.Clock.Now()
}
