// File: parse_test.go
// Title: Text Parsing Tests
// Description: Separator handling, layout fallback, offsets and failures.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14

package timex

import (
	"errors"
	"testing"

	herror "github.com/msto63/helper/foundation/core/error"
)

func TestParseDate(t *testing.T) {
	want := CalendarDate{2024, 1, 1}

	tests := []string{
		"2024-01-01",
		"2024/01/01",
		"2024.01.01",
		"2024-1-1",
		"  2024/1/01 ",
		"2024-01-01T23:30:00+02:00",
		"2024-01-01 08:15",
		"January 1, 2024",
		"Jan 1, 2024",
		"1 January 2024",
		"20240101",
		"Mon, 01 Jan 2024 10:00:00 +0100",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			got, err := ParseDate(text)
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", text, err)
			}
			if got != want {
				t.Errorf("ParseDate(%q) = %v, want %v", text, got, want)
			}
		})
	}
}

func TestParseDateFailures(t *testing.T) {
	tests := []string{
		"",
		"yesterday",
		"2024-13-01",
		"2024-02-30",
		"01/02",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			_, err := ParseDate(text)
			if err == nil {
				t.Fatalf("ParseDate(%q) should fail", text)
			}
			if !errors.Is(err, ErrUnparsable) {
				t.Errorf("error %v should wrap ErrUnparsable", err)
			}
			if herror.GetCode(err) != herror.CodeInvalidFormat {
				t.Errorf("code = %v, want INVALID_FORMAT", herror.GetCode(err))
			}
		})
	}
}

func TestParseInstant(t *testing.T) {
	day := CalendarDate{2024, 1, 1}

	tests := []struct {
		text string
		want Instant
	}{
		{"2024-01-01", Instant{Date: day}},
		{"2024/01/01 23:30", Instant{Date: day, Hour: 23, Minute: 30}},
		{"2024.01.01T23:30:15", Instant{Date: day, Hour: 23, Minute: 30, Second: 15}},
		{"2024-01-01T23:30:15.250Z", Instant{Date: day, Hour: 23, Minute: 30, Second: 15}},
		{"2024-01-01T23:30:00+02:00", Instant{Date: day, Hour: 23, Minute: 30, Offset: 7200}},
		{"2024-01-01 23:30:00 -0530", Instant{Date: day, Hour: 23, Minute: 30, Offset: -19800}},
		{"2024-01-01T08:00+01", Instant{Date: day, Hour: 8, Offset: 3600}},
		{"2024-01-01 08:00 UTC", Instant{Date: day, Hour: 8}},
		{"Mon, 01 Jan 2024 10:00:00 -0700", Instant{Date: day, Hour: 10, Offset: -25200}},
		{"20240101083000", Instant{Date: day, Hour: 8, Minute: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseInstant(tt.text)
			if err != nil {
				t.Fatalf("ParseInstant(%q) error = %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseInstant(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseInstantFailures(t *testing.T) {
	tests := []string{
		"2024-01-01T25:00",
		"2024-01-01T10:61",
		"2024-01-01T10:00+25:00",
		"soon",
	}
	for _, text := range tests {
		if _, err := ParseInstant(text); !errors.Is(err, ErrUnparsable) {
			t.Errorf("ParseInstant(%q) error = %v, want ErrUnparsable", text, err)
		}
	}
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		text    string
		want    int
		wantErr bool
	}{
		{"Z", 0, false},
		{"utc", 0, false},
		{"+02:00", 7200, false},
		{"-0530", -19800, false},
		{"+01", 3600, false},
		{" -00:45 ", -2700, false},
		{"+24:00", 0, true},
		{"+02:75", 0, true},
		{"02:00", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseOffset(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOffset(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOffset(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseDateDayFirstAndShortYears(t *testing.T) {
	tests := []struct {
		text string
		want CalendarDate
	}{
		{"01/02/2024", CalendarDate{2024, 2, 1}},
		{"01.02.2024", CalendarDate{2024, 2, 1}},
		{"24-01-01", CalendarDate{2024, 1, 1}},
		{"68/12/31", CalendarDate{2068, 12, 31}},
		{"69.01.01", CalendarDate{1969, 1, 1}},
		{"99-12-31", CalendarDate{1999, 12, 31}},
		{"5-1-1", CalendarDate{2005, 1, 1}},
		{"0024-01-01", CalendarDate{24, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseDate(tt.text)
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}

	i, err := ParseInstant("24-01-01T08:00Z")
	if err != nil || i.Date != (CalendarDate{2024, 1, 1}) {
		t.Errorf("ParseInstant(24-01-01T08:00Z) = %v, %v", i, err)
	}
}
