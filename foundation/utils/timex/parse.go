// File: parse.go
// Title: Text Parsing
// Description: Permissive parsers for date, date-time and UTC offset text.
//              Numeric year-month-day forms with flexible separators are
//              matched first, then a list of common layouts is tried.
//              Layout matches keep the written fields on every calendar.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14

package timex

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Common date and time layouts
const (
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Date     = "2006-01-02"
	ISO8601DateTime = "2006-01-02T15:04:05"

	BusinessDate     = "2006-01-02"
	BusinessDateTime = "2006-01-02 15:04:05"

	DisplayDate     = "January 2, 2006"
	DisplayDateTime = "January 2, 2006 at 3:04 PM"

	CompactDate     = "20060102"
	CompactDateTime = "20060102150405"
)

var (
	dateRe    = regexp.MustCompile(`^\s*([+-]?\d{1,5})[./-](\d{1,2})[./-](\d{1,2})\s*$`)
	instantRe = regexp.MustCompile(`^\s*([+-]?\d{1,5})[./-](\d{1,2})[./-](\d{1,2})` +
		`(?:[T\s]+(\d{1,2}):(\d{2})(?::(\d{2})(?:[.,]\d+)?)?)?` +
		`\s*(Z|z|UTC|[+-]\d{2}(?::?\d{2})?)?\s*$`)
	offsetRe = regexp.MustCompile(`^([+-])(\d{2})(?::?(\d{2}))?$`)
)

// layouts is tried in order once the numeric forms do not match
var layouts = []string{
	time.RFC3339,
	ISO8601DateTime,
	BusinessDateTime,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	DisplayDateTime,
	DisplayDate,
	"Jan 2, 2006",
	"2 January 2006",
	"02/01/2006",
	"02.01.2006",
	CompactDateTime,
	CompactDate,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	time.RFC850,
	time.ANSIC,
}

// ParseDate parses year-month-day text separated by '.', '/' or '-'. Text
// carrying a time of day yields its date part.
func ParseDate(text string) (CalendarDate, error) {
	if m := dateRe.FindStringSubmatch(text); m != nil {
		d, err := dateFromParts("timex.ParseDate", text, m[1], m[2], m[3])
		if err != nil {
			return CalendarDate{}, err
		}
		return d, nil
	}
	if instantRe.MatchString(text) {
		i, err := ParseInstant(text)
		if err != nil {
			return CalendarDate{}, err
		}
		return i.Date, nil
	}
	t, err := parseLayouts(text)
	if err != nil {
		return CalendarDate{}, fail("timex.ParseDate", ErrUnparsable, err, "cannot parse %q as a date", text).
			WithDetail("text", text)
	}
	return dateFromFields("timex.ParseDate", text, t)
}

// ParseInstant parses a date with optional time of day and offset. Time
// is separated by 'T' or spaces, the offset is Z, UTC, ±hh, ±hhmm or ±hh:mm.
// Date-only text is midnight with zero offset. Fractional seconds are
// dropped.
func ParseInstant(text string) (Instant, error) {
	m := instantRe.FindStringSubmatch(text)
	if m == nil {
		t, err := parseLayouts(text)
		if err != nil {
			return Instant{}, fail("timex.ParseInstant", ErrUnparsable, err, "cannot parse %q as a date-time", text).
				WithDetail("text", text)
		}
		date, err := dateFromFields("timex.ParseInstant", text, t)
		if err != nil {
			return Instant{}, err
		}
		_, offset := t.Zone()
		i, err := NewInstant(date.Year, date.Month, date.Day, t.Hour(), t.Minute(), t.Second(), offset)
		if err != nil {
			return Instant{}, fail("timex.ParseInstant", ErrUnparsable, err, "invalid date-time %q", text)
		}
		return i, nil
	}

	date, err := dateFromParts("timex.ParseInstant", text, m[1], m[2], m[3])
	if err != nil {
		return Instant{}, err
	}

	var hour, minute, second, offset int
	if m[4] != "" {
		hour, _ = strconv.Atoi(m[4])
		minute, _ = strconv.Atoi(m[5])
		if m[6] != "" {
			second, _ = strconv.Atoi(m[6])
		}
	}
	if m[7] != "" {
		if offset, err = ParseOffset(m[7]); err != nil {
			return Instant{}, fail("timex.ParseInstant", ErrUnparsable, err, "invalid offset in %q", text)
		}
	}

	i, err := NewInstant(date.Year, date.Month, date.Day, hour, minute, second, offset)
	if err != nil {
		return Instant{}, fail("timex.ParseInstant", ErrUnparsable, err, "invalid date-time %q", text)
	}
	return i, nil
}

// ParseOffset parses Z, UTC, ±hh, ±hhmm or ±hh:mm into seconds east of UTC
func ParseOffset(text string) (int, error) {
	s := strings.TrimSpace(text)
	switch strings.ToUpper(s) {
	case "Z", "UTC":
		return 0, nil
	}

	m := offsetRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fail("timex.ParseOffset", ErrUnparsable, nil, "invalid UTC offset %q", text).
			WithDetail("text", text)
	}
	hours, _ := strconv.Atoi(m[2])
	minutes := 0
	if m[3] != "" {
		minutes, _ = strconv.Atoi(m[3])
	}
	if hours > 23 || minutes > 59 {
		return 0, fail("timex.ParseOffset", ErrOutOfRange, nil, "UTC offset %q out of range", text).
			WithDetail("text", text)
	}

	offset := hours*3600 + minutes*60
	if m[1] == "-" {
		offset = -offset
	}
	return offset, nil
}

// dateFromParts builds a date from regex groups. Unsigned years of one or
// two digits are completed: 69..99 to 19xx, 00..68 to 20xx.
func dateFromParts(op, text, year, month, day string) (CalendarDate, error) {
	y, _ := strconv.Atoi(year)
	if len(year) <= 2 && year[0] != '+' && year[0] != '-' {
		if y >= 69 {
			y += 1900
		} else {
			y += 2000
		}
	}
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	date, err := NewDate(y, mo, d)
	if err != nil {
		return CalendarDate{}, fail(op, ErrUnparsable, err, "invalid date %q", text).
			WithDetail("text", text)
	}
	return date, nil
}

// dateFromFields keeps the fields written in the text. time.Time counts on
// the proleptic Gregorian calendar, so its fields are taken as written
// rather than converted through the Julian day.
func dateFromFields(op, text string, t time.Time) (CalendarDate, error) {
	date, err := NewDate(t.Year(), int(t.Month()), t.Day())
	if err != nil {
		return CalendarDate{}, fail(op, ErrUnparsable, err, "invalid date %q", text).
			WithDetail("text", text)
	}
	return date, nil
}

func parseLayouts(text string) (time.Time, error) {
	value := strings.TrimSpace(text)
	if value == "" {
		return time.Time{}, fail("timex.parseLayouts", ErrUnparsable, nil, "empty text")
	}

	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
