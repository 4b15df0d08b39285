// Package timex normalizes heterogeneous date and date-time inputs and
// compares them.
//
// Package: timex
// Title: Temporal Normalization and Comparison
// Description: Converts sequences, records, text, Julian day numbers and
//              time.Time values into CalendarDate and Instant values, applies
//              offset correction and computes day counts, ordering and
//              time-of-day differentials between two inputs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2026-10-14 v0.2.0: Rebuilt around CalendarDate / Instant normalization
//
// # Calendar
//
// CalendarDate follows the reform calendar: Gregorian rules from 1582-10-15
// (Julian day 2299161) on, Julian rules before. The ten days 1582-10-05 to
// 1582-10-14 do not exist. Julian day 1721058 is 0000-01-01 and 2451545 is
// 2000-01-01.
//
// # Normalization
//
//	d, err := timex.ToDate("2024/01/01")            // text, separators . / -
//	d, err  = timex.ToDate([]int{2024, 1, 1})         // [year, month, day]
//	d, err  = timex.ToDate(map[string]any{"year": 2024, "month": 1, "day": 1})
//	d, err  = timex.ToDate(2460311)                   // Julian day number
//
//	i, err := timex.ToInstant("2024-01-01T23:30:00+02:00")
//	i, err  = timex.ToInstant([]any{2024, 1, 1, 23, 30, 0, "+02:00"})
//
// Every failure is returned as an error wrapping one of ErrInvalidInput,
// ErrUnsupportedInput, ErrUnparsable or ErrOutOfRange; nothing panics.
//
// # Offset correction
//
// ToUTC folds the offset into the time of day: seconds-of-day plus offset,
// rolling the date forward or back when the sum leaves [0, 86400). An Instant
// at 23:30 with offset +02:00 becomes 01:30 the next day.
//
// # Comparison
//
// CompareDates and CompareInstants order two inputs by their (corrected)
// date. TimeDifference subtracts hour, minute and second field by field
// without borrowing, so 14:05 minus 13:50 is 1 hour and -45 minutes.
package timex
