// File: instant.go
// Title: Instants
// Description: Instant value type: a calendar date with time of day and a
//              UTC offset in seconds.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14

package timex

import (
	"fmt"
	"time"
)

// Instant is a calendar date plus time of day and a UTC offset. Two instants
// are equal only when every field matches; offsets are not folded in before
// comparison.
type Instant struct {
	Date   CalendarDate
	Hour   int
	Minute int
	Second int
	// Offset is the UTC offset in seconds, strictly within one day.
	Offset int
}

// NewInstant validates the components and returns the instant
func NewInstant(year, month, day, hour, minute, second, offset int) (Instant, error) {
	date, err := NewDate(year, month, day)
	if err != nil {
		return Instant{}, err
	}
	if hour < 0 || hour > 23 {
		return Instant{}, fail("timex.NewInstant", ErrOutOfRange, nil, "hour %d out of range", hour).
			WithDetail("hour", hour)
	}
	if minute < 0 || minute > 59 {
		return Instant{}, fail("timex.NewInstant", ErrOutOfRange, nil, "minute %d out of range", minute).
			WithDetail("minute", minute)
	}
	// 60 admits a leap second
	if second < 0 || second > 60 {
		return Instant{}, fail("timex.NewInstant", ErrOutOfRange, nil, "second %d out of range", second).
			WithDetail("second", second)
	}
	if offset <= -SecondsPerDay || offset >= SecondsPerDay {
		return Instant{}, fail("timex.NewInstant", ErrOutOfRange, nil, "offset %ds exceeds one day", offset).
			WithDetail("offset", offset)
	}
	return Instant{Date: date, Hour: hour, Minute: minute, Second: second, Offset: offset}, nil
}

// InstantFromTime keeps t's wall clock and zone offset. Sub-second
// precision is dropped.
func InstantFromTime(t time.Time) Instant {
	_, offset := t.Zone()
	return Instant{
		Date:   DateFromTime(t),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
		Offset: offset,
	}
}

// Midnight promotes a date to an instant at 00:00:00 with zero offset
func Midnight(d CalendarDate) Instant {
	return Instant{Date: d}
}

// Time returns the equivalent time.Time in a fixed zone with the instant's
// offset
func (i Instant) Time() time.Time {
	g := gregorianFromJDN(i.Date.JulianDay())
	zone := time.UTC
	if i.Offset != 0 {
		zone = time.FixedZone(OffsetString(i.Offset), i.Offset)
	}
	return time.Date(g.Year, time.Month(g.Month), g.Day, i.Hour, i.Minute, i.Second, 0, zone)
}

// Equal reports whether all fields of i and other match
func (i Instant) Equal(other Instant) bool {
	return i == other
}

// String formats the instant as YYYY-MM-DDThh:mm:ss followed by Z or ±hh:mm
func (i Instant) String() string {
	return fmt.Sprintf("%sT%02d:%02d:%02d%s", i.Date, i.Hour, i.Minute, i.Second, OffsetString(i.Offset))
}

// OffsetString formats an offset in seconds as Z or ±hh:mm. Leftover
// seconds are appended as :ss.
func OffsetString(offset int) string {
	if offset == 0 {
		return "Z"
	}
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	h, m, s := ConvertSeconds(offset)
	if s != 0 {
		return fmt.Sprintf("%c%02d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%c%02d:%02d", sign, h, m)
}
