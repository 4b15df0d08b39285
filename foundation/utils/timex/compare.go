// File: compare.go
// Title: Date and Instant Comparison
// Description: Orders two normalized inputs, counts the days between them
//              and, for instants, computes the time-of-day differential.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14

package timex

import (
	"github.com/msto63/helper/foundation/core/log"
)

// DateComparison is the result of CompareDates
type DateComparison struct {
	SameDay     bool
	DaysBetween int
	Begin       CalendarDate
	End         CalendarDate
}

// InstantComparison is the result of CompareInstants. Begin and End are the
// normalized instants as given, without UTC correction.
type InstantComparison struct {
	SameDay     bool
	DaysBetween int
	Begin       Instant
	End         Instant
	HourDiff    int
	MinuteDiff  int
	SecondDiff  int
}

// CompareDates normalizes a and b with ToDate and orders them
func CompareDates(a, b interface{}) (DateComparison, error) {
	da, err := ToDate(a)
	if err != nil {
		return DateComparison{}, err
	}
	db, err := ToDate(b)
	if err != nil {
		return DateComparison{}, err
	}

	result := DateComparison{DaysBetween: abs(da.Sub(db))}
	switch da.Compare(db) {
	case 1:
		result.Begin, result.End = db, da
	case -1:
		result.Begin, result.End = da, db
	default:
		result.Begin, result.End = da, da
		result.SameDay = true
	}
	return result, nil
}

// CompareInstants normalizes a and b with ToInstant and orders them by their
// UTC-corrected dates. The time-of-day differential is later minus earlier;
// on the same day it is a minus b.
func CompareInstants(a, b interface{}) (InstantComparison, error) {
	ia, err := ToInstant(a)
	if err != nil {
		return InstantComparison{}, err
	}
	ib, err := ToInstant(b)
	if err != nil {
		return InstantComparison{}, err
	}

	// Instants always project successfully
	da, _ := ToDate(ia)
	db, _ := ToDate(ib)

	result := InstantComparison{DaysBetween: abs(da.Sub(db))}
	var diff TimeDiff
	switch da.Compare(db) {
	case 1:
		result.Begin, result.End = ib, ia
		diff = TimeDifference(ia, ib)
	case -1:
		result.Begin, result.End = ia, ib
		diff = TimeDifference(ib, ia)
	default:
		result.Begin, result.End = ia, ia
		result.SameDay = true
		diff = TimeDifference(ia, ib)
	}
	result.HourDiff, result.MinuteDiff, result.SecondDiff = diff.Hours, diff.Minutes, diff.Seconds

	log.Trace("instants compared", log.Fields{
		"begin":        result.Begin.String(),
		"end":          result.End.String(),
		"days_between": result.DaysBetween,
		"same_day":     result.SameDay,
	})
	return result, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
