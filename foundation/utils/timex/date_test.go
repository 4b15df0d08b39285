// File: date_test.go
// Title: Calendar Date Tests
// Description: Julian day conversion, reform calendar boundaries, ordering
//              and day arithmetic.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14

package timex

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestFromJulianDay(t *testing.T) {
	tests := []struct {
		jdn  int
		want CalendarDate
	}{
		{1721058, CalendarDate{0, 1, 1}},
		{2451545, CalendarDate{2000, 1, 1}},
		{2460311, CalendarDate{2024, 1, 1}},
		{2299160, CalendarDate{1582, 10, 4}},
		{2299161, CalendarDate{1582, 10, 15}},
		{0, CalendarDate{-4712, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got := FromJulianDay(tt.jdn)
			if got != tt.want {
				t.Errorf("FromJulianDay(%d) = %v, want %v", tt.jdn, got, tt.want)
			}
			if back := got.JulianDay(); back != tt.jdn {
				t.Errorf("%v.JulianDay() = %d, want %d", got, back, tt.jdn)
			}
		})
	}
}

func TestJulianDayRoundTrip(t *testing.T) {
	for jdn := 2299000; jdn < 2299400; jdn++ {
		if got := FromJulianDay(jdn).JulianDay(); got != jdn {
			t.Fatalf("round trip of %d gave %d", jdn, got)
		}
	}
	for jdn := 2460000; jdn < 2461000; jdn += 7 {
		if got := FromJulianDay(jdn).JulianDay(); got != jdn {
			t.Fatalf("round trip of %d gave %d", jdn, got)
		}
	}
}

func TestNewDate(t *testing.T) {
	tests := []struct {
		name    string
		y, m, d int
		wantErr bool
	}{
		{"regular", 2024, 1, 1, false},
		{"leap day", 2024, 2, 29, false},
		{"no leap day", 2023, 2, 29, true},
		{"century not leap", 1900, 2, 29, true},
		{"julian century leap", 1500, 2, 29, false},
		{"month 13", 2024, 13, 1, true},
		{"month 0", 2024, 0, 1, true},
		{"day 0", 2024, 1, 0, true},
		{"april 31", 2024, 4, 31, true},
		{"reform gap", 1582, 10, 10, true},
		{"last julian day", 1582, 10, 4, false},
		{"year zero", 0, 1, 1, false},
		{"max year", MaxYear, 12, 31, false},
		{"min year", MinYear, 1, 1, false},
		{"year above range", MaxYear + 1, 1, 1, true},
		{"year below range", MinYear - 1, 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDate(tt.y, tt.m, tt.d)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewDate(%d, %d, %d) error = %v, wantErr %v", tt.y, tt.m, tt.d, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrOutOfRange) {
				t.Errorf("error %v should wrap ErrOutOfRange", err)
			}
		})
	}
}

func TestCalendarDateArithmetic(t *testing.T) {
	d := CalendarDate{2024, 2, 28}

	if got := d.AddDays(1); got != (CalendarDate{2024, 2, 29}) {
		t.Errorf("AddDays(1) = %v", got)
	}
	if got := d.AddDays(2); got != (CalendarDate{2024, 3, 1}) {
		t.Errorf("AddDays(2) = %v", got)
	}
	if got := (CalendarDate{2024, 1, 1}).AddDays(-1); got != (CalendarDate{2023, 12, 31}) {
		t.Errorf("AddDays(-1) = %v", got)
	}
	if got := (CalendarDate{1582, 10, 4}).AddDays(1); got != (CalendarDate{1582, 10, 15}) {
		t.Errorf("reform step = %v, want 1582-10-15", got)
	}
	if got := (CalendarDate{2024, 12, 31}).Sub(CalendarDate{2024, 1, 1}); got != 365 {
		t.Errorf("Sub() = %d, want 365", got)
	}
}

func TestCalendarDateOrdering(t *testing.T) {
	a := CalendarDate{2024, 1, 1}
	b := CalendarDate{2024, 1, 2}

	if !a.Before(b) || a.After(b) || a.Compare(b) != -1 {
		t.Errorf("%v should be before %v", a, b)
	}
	if !b.After(a) || b.Compare(a) != 1 {
		t.Errorf("%v should be after %v", b, a)
	}
	if !a.Equal(CalendarDate{2024, 1, 1}) || a.Compare(a) != 0 {
		t.Error("a date should equal itself")
	}
}

func TestCalendarDateWeekdayAndTime(t *testing.T) {
	tests := []struct {
		date CalendarDate
		want time.Weekday
	}{
		{CalendarDate{2000, 1, 1}, time.Saturday},
		{CalendarDate{2024, 1, 1}, time.Monday},
		{CalendarDate{1582, 10, 15}, time.Friday},
		{CalendarDate{1582, 10, 4}, time.Thursday},
	}
	for _, tt := range tests {
		if got := tt.date.Weekday(); got != tt.want {
			t.Errorf("%v.Weekday() = %v, want %v", tt.date, got, tt.want)
		}
	}

	got := CalendarDate{2024, 3, 5}.Time()
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Time() = %v, want %v", got, want)
	}
	if DateFromTime(want) != (CalendarDate{2024, 3, 5}) {
		t.Errorf("DateFromTime(%v) = %v", want, DateFromTime(want))
	}
}

func TestCalendarDateString(t *testing.T) {
	if got := (CalendarDate{2024, 1, 5}).String(); got != "2024-01-05" {
		t.Errorf("String() = %q", got)
	}
	if got := (CalendarDate{-44, 3, 15}).String(); got != "-0044-03-15" {
		t.Errorf("String() = %q", got)
	}
}

func TestDateFromJulianDay(t *testing.T) {
	tests := []struct {
		name    string
		jdn     int64
		want    CalendarDate
		wantErr bool
	}{
		{"reform day", GregorianReformJDN, CalendarDate{1582, 10, 15}, false},
		{"epoch", 0, CalendarDate{-4712, 1, 1}, false},
		{"last supported", int64(MaxJulianDay), CalendarDate{MaxYear, 12, 31}, false},
		{"first supported", int64(MinJulianDay), CalendarDate{MinYear, 1, 1}, false},
		{"past last", int64(MaxJulianDay) + 1, CalendarDate{}, true},
		{"before first", int64(MinJulianDay) - 1, CalendarDate{}, true},
		{"max int64", math.MaxInt64, CalendarDate{}, true},
		{"min int64", math.MinInt64, CalendarDate{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DateFromJulianDay(tt.jdn)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DateFromJulianDay(%d) error = %v, wantErr %v", tt.jdn, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrOutOfRange) {
					t.Errorf("error %v should wrap ErrOutOfRange", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("DateFromJulianDay(%d) = %v, want %v", tt.jdn, got, tt.want)
			}
		})
	}
}
