// File: date.go
// Title: Calendar Dates
// Description: CalendarDate value type with Julian day number conversion,
//              ordering and day arithmetic on the reform calendar.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14

package timex

import (
	"fmt"
	"time"
)

// GregorianReformJDN is the first Julian day counted on the Gregorian
// calendar (1582-10-15). Earlier days use Julian calendar rules.
const GregorianReformJDN = 2299161

// Supported year range. Julian day arithmetic stays far from integer
// overflow inside it.
const (
	MinYear = -999999
	MaxYear = 999999
)

// Julian day numbers of the first and last supported dates
var (
	MinJulianDay = julianJDN(MinYear, 1, 1)
	MaxJulianDay = gregorianJDN(MaxYear, 12, 31)
)

// CalendarDate is a civil date. The zero value is not a valid date; build
// dates with NewDate, FromJulianDay or ToDate.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// NewDate validates year, month and day and returns the date
func NewDate(year, month, day int) (CalendarDate, error) {
	if year < MinYear || year > MaxYear {
		return CalendarDate{}, fail("timex.NewDate", ErrOutOfRange, nil, "year %d outside %d..%d", year, MinYear, MaxYear).
			WithDetail("year", year)
	}
	if month < 1 || month > 12 {
		return CalendarDate{}, fail("timex.NewDate", ErrOutOfRange, nil, "month %d out of range", month).
			WithDetail("month", month)
	}
	if day < 1 || day > daysIn(year, month) {
		return CalendarDate{}, fail("timex.NewDate", ErrOutOfRange, nil, "day %d out of range for %04d-%02d", day, year, month).
			WithDetail("day", day)
	}
	if year == 1582 && month == 10 && day > 4 && day < 15 {
		return CalendarDate{}, fail("timex.NewDate", ErrOutOfRange, nil, "1582-10-%02d was skipped by the Gregorian reform", day)
	}
	return CalendarDate{Year: year, Month: month, Day: day}, nil
}

// DateFromJulianDay converts jdn to its civil date, rejecting numbers
// outside MinJulianDay..MaxJulianDay
func DateFromJulianDay(jdn int64) (CalendarDate, error) {
	if jdn < int64(MinJulianDay) || jdn > int64(MaxJulianDay) {
		return CalendarDate{}, fail("timex.DateFromJulianDay", ErrOutOfRange, nil,
			"Julian day %d outside %d..%d", jdn, MinJulianDay, MaxJulianDay).
			WithDetail("julian_day", jdn)
	}
	return FromJulianDay(int(jdn)), nil
}

// FromJulianDay converts a Julian day number to its civil date. jdn must
// lie within MinJulianDay..MaxJulianDay; use DateFromJulianDay for
// unchecked input.
func FromJulianDay(jdn int) CalendarDate {
	if jdn >= GregorianReformJDN {
		return gregorianFromJDN(jdn)
	}
	return julianFromJDN(jdn)
}

// DateFromTime returns the civil date of t in t's own location
func DateFromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return FromJulianDay(gregorianJDN(y, int(m), d))
}

// JulianDay returns the Julian day number of the date
func (d CalendarDate) JulianDay() int {
	if d.isGregorian() {
		return gregorianJDN(d.Year, d.Month, d.Day)
	}
	return julianJDN(d.Year, d.Month, d.Day)
}

// Sub returns the number of days from other to d (d - other)
func (d CalendarDate) Sub(other CalendarDate) int {
	return d.JulianDay() - other.JulianDay()
}

// AddDays returns the date n days after d; n may be negative
func (d CalendarDate) AddDays(n int) CalendarDate {
	return FromJulianDay(d.JulianDay() + n)
}

// Compare returns -1, 0 or +1 when d is before, equal to or after other
func (d CalendarDate) Compare(other CalendarDate) int {
	switch diff := d.Sub(other); {
	case diff < 0:
		return -1
	case diff > 0:
		return 1
	default:
		return 0
	}
}

// Before reports whether d is before other
func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Compare(other) < 0
}

// After reports whether d is after other
func (d CalendarDate) After(other CalendarDate) bool {
	return d.Compare(other) > 0
}

// Equal reports whether d and other are the same day
func (d CalendarDate) Equal(other CalendarDate) bool {
	return d == other
}

// Weekday returns the day of the week
func (d CalendarDate) Weekday() time.Weekday {
	return time.Weekday(floorMod(d.JulianDay()+1, 7))
}

// Time returns midnight UTC of the same Julian day. time.Time counts on the
// proleptic Gregorian calendar, so pre-reform dates get Gregorian fields.
func (d CalendarDate) Time() time.Time {
	g := gregorianFromJDN(d.JulianDay())
	return time.Date(g.Year, time.Month(g.Month), g.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the date as YYYY-MM-DD
func (d CalendarDate) String() string {
	if d.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d CalendarDate) isGregorian() bool {
	if d.Year != 1582 {
		return d.Year > 1582
	}
	if d.Month != 10 {
		return d.Month > 10
	}
	return d.Day >= 15
}

func isLeap(year int) bool {
	if year < 1582 {
		return floorMod(year, 4) == 0
	}
	return floorMod(year, 4) == 0 && (floorMod(year, 100) != 0 || floorMod(year, 400) == 0)
}

func daysIn(year, month int) int {
	switch month {
	case 2:
		if isLeap(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// gregorianJDN and julianJDN follow the Fliegel / Van Flandern integer
// algorithms with floor division so negative years work.
func gregorianJDN(year, month, day int) int {
	a := floorDiv(14-month, 12)
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + floorDiv(153*m+2, 5) + 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
}

func julianJDN(year, month, day int) int {
	a := floorDiv(14-month, 12)
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + floorDiv(153*m+2, 5) + 365*y + floorDiv(y, 4) - 32083
}

func gregorianFromJDN(jdn int) CalendarDate {
	a := jdn + 32044
	b := floorDiv(4*a+3, 146097)
	c := a - floorDiv(146097*b, 4)
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)
	return CalendarDate{
		Year:  100*b + d - 4800 + floorDiv(m, 10),
		Month: m + 3 - 12*floorDiv(m, 10),
		Day:   e - floorDiv(153*m+2, 5) + 1,
	}
}

func julianFromJDN(jdn int) CalendarDate {
	c := jdn + 32082
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)
	return CalendarDate{
		Year:  d - 4800 + floorDiv(m, 10),
		Month: m + 3 - 12*floorDiv(m, 10),
		Day:   e - floorDiv(153*m+2, 5) + 1,
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - b*floorDiv(a, b)
}
