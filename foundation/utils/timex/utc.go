// File: utc.go
// Title: UTC Correction
// Description: Folds an instant's offset into its time of day and computes
//              field-wise time-of-day differentials.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14

package timex

// SecondsPerDay is the length of a civil day without leap seconds
const SecondsPerDay = 86400

// TimeDiff is a field-wise difference of two times of day. Fields are not
// borrowed across, so Minutes may be negative while Hours is positive.
type TimeDiff struct {
	Hours   int
	Minutes int
	Seconds int
}

// ToUTC adds the offset to the time of day and returns the zero-offset
// instant, moving the date by one day when the sum leaves [0, 86400).
func ToUTC(i Instant) Instant {
	total := i.Hour*3600 + i.Minute*60 + i.Second + i.Offset

	date := i.Date
	remaining := total
	switch {
	case total >= SecondsPerDay:
		date = date.AddDays(1)
		remaining = total - SecondsPerDay
	case total < 0:
		date = date.AddDays(-1)
		remaining = SecondsPerDay - (-total)
	}

	h, m, s := ConvertSeconds(remaining)
	return Instant{Date: date, Hour: h, Minute: m, Second: s}
}

// ConvertSeconds splits seconds into hours, minutes and seconds
func ConvertSeconds(seconds int) (hours, minutes, secs int) {
	hours = seconds / 3600
	seconds -= hours * 3600
	minutes = seconds / 60
	secs = seconds - minutes*60
	return hours, minutes, secs
}

// TimeDifference subtracts the time-of-day fields of earlier from later
func TimeDifference(later, earlier Instant) TimeDiff {
	return TimeDiff{
		Hours:   later.Hour - earlier.Hour,
		Minutes: later.Minute - earlier.Minute,
		Seconds: later.Second - earlier.Second,
	}
}
