// File: normalize.go
// Title: Input Normalization
// Description: ToDate and ToInstant accept sequences, records, text, Julian
//              day numbers, time.Time and the package's own value types and
//              return the canonical CalendarDate or Instant.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14

package timex

import (
	"encoding/json"
	"math"
	"reflect"
	"time"
)

// Record keys
const (
	KeyYear   = "year"
	KeyMonth  = "month"
	KeyDay    = "day"
	KeyHour   = "hour"
	KeyMinute = "min"
	KeySecond = "sec"
	KeyOffset = "offset"
)

var (
	dateKeys    = []string{KeyYear, KeyMonth, KeyDay}
	instantKeys = []string{KeyYear, KeyMonth, KeyDay, KeyHour, KeyMinute, KeySecond}
)

// ToDate normalizes input to a CalendarDate.
//
// Accepted inputs: CalendarDate, a [year, month, day] sequence, a record
// with year/month/day keys, date text, an integer Julian day number, an
// Instant (UTC corrected first) and time.Time.
func ToDate(input interface{}) (CalendarDate, error) {
	const op = "timex.ToDate"

	switch v := input.(type) {
	case nil:
		return CalendarDate{}, fail(op, ErrUnsupportedInput, nil, "cannot normalize nil to a date")
	case CalendarDate:
		return v, nil
	case *CalendarDate:
		if v == nil {
			return CalendarDate{}, fail(op, ErrUnsupportedInput, nil, "cannot normalize nil to a date")
		}
		return *v, nil
	case Instant:
		return ToUTC(v).Date, nil
	case *Instant:
		if v == nil {
			return CalendarDate{}, fail(op, ErrUnsupportedInput, nil, "cannot normalize nil to a date")
		}
		return ToUTC(*v).Date, nil
	case time.Time:
		return ToUTC(InstantFromTime(v)).Date, nil
	case string:
		return ParseDate(v)
	case int:
		return DateFromJulianDay(int64(v))
	case int32:
		return DateFromJulianDay(int64(v))
	case int64:
		return DateFromJulianDay(v)
	}

	if elems, ok := sequence(input); ok {
		if len(elems) != len(dateKeys) {
			return CalendarDate{}, fail(op, ErrInvalidInput, nil,
				"date sequence needs %d elements, got %d", len(dateKeys), len(elems)).
				WithDetail("length", len(elems))
		}
		fields, err := intFields(op, dateKeys, elems)
		if err != nil {
			return CalendarDate{}, err
		}
		return NewDate(fields[0], fields[1], fields[2])
	}

	if rec, ok := record(input); ok {
		elems, err := lookup(op, rec, dateKeys)
		if err != nil {
			return CalendarDate{}, err
		}
		fields, err := intFields(op, dateKeys, elems)
		if err != nil {
			return CalendarDate{}, err
		}
		return NewDate(fields[0], fields[1], fields[2])
	}

	return CalendarDate{}, fail(op, ErrUnsupportedInput, nil, "cannot normalize %T to a date", input).
		WithDetail("type", reflect.TypeOf(input).String())
}

// ToInstant normalizes input to an Instant.
//
// Accepted inputs: Instant, a sequence of six (zero offset) or seven
// elements, a record with year/month/day/hour/min/sec and optional offset
// keys, date-time text, a CalendarDate (midnight, zero offset) and
// time.Time. Integers are rejected.
//
// An offset element may be integer seconds, a time.Duration, offset text
// such as "+02:00", or a float. Floats below 1 in magnitude are fractions
// of a day (0.5 is twelve hours); other floats must be whole seconds.
func ToInstant(input interface{}) (Instant, error) {
	const op = "timex.ToInstant"

	switch v := input.(type) {
	case nil:
		return Instant{}, fail(op, ErrUnsupportedInput, nil, "cannot normalize nil to an instant")
	case Instant:
		return v, nil
	case *Instant:
		if v == nil {
			return Instant{}, fail(op, ErrUnsupportedInput, nil, "cannot normalize nil to an instant")
		}
		return *v, nil
	case CalendarDate:
		return Midnight(v), nil
	case *CalendarDate:
		if v == nil {
			return Instant{}, fail(op, ErrUnsupportedInput, nil, "cannot normalize nil to an instant")
		}
		return Midnight(*v), nil
	case time.Time:
		return InstantFromTime(v), nil
	case string:
		return ParseInstant(v)
	}

	if elems, ok := sequence(input); ok {
		if len(elems) != len(instantKeys) && len(elems) != len(instantKeys)+1 {
			return Instant{}, fail(op, ErrInvalidInput, nil,
				"date-time sequence needs 6 or 7 elements, got %d", len(elems)).
				WithDetail("length", len(elems))
		}
		var offset interface{}
		if len(elems) > len(instantKeys) {
			offset = elems[len(instantKeys)]
		}
		return instantFromElems(op, elems[:len(instantKeys)], offset)
	}

	if rec, ok := record(input); ok {
		elems, err := lookup(op, rec, instantKeys)
		if err != nil {
			return Instant{}, err
		}
		return instantFromElems(op, elems, rec[KeyOffset])
	}

	return Instant{}, fail(op, ErrUnsupportedInput, nil, "cannot normalize %T to an instant", input).
		WithDetail("type", reflect.TypeOf(input).String())
}

func instantFromElems(op string, elems []interface{}, offsetValue interface{}) (Instant, error) {
	fields, err := intFields(op, instantKeys, elems)
	if err != nil {
		return Instant{}, err
	}
	offset := 0
	if offsetValue != nil {
		if offset, err = offsetSeconds(op, offsetValue); err != nil {
			return Instant{}, err
		}
	}
	return NewInstant(fields[0], fields[1], fields[2], fields[3], fields[4], fields[5], offset)
}

// sequence returns the elements of a slice or array, excluding text bytes
func sequence(input interface{}) ([]interface{}, bool) {
	if _, isBytes := input.([]byte); isBytes {
		return nil, false
	}
	rv := reflect.ValueOf(input)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	elems := make([]interface{}, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems, true
}

// record returns the entries of a map keyed by strings
func record(input interface{}) (map[string]interface{}, bool) {
	if m, ok := input.(map[string]interface{}); ok {
		return m, true
	}
	rv := reflect.ValueOf(input)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]interface{}, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

func lookup(op string, rec map[string]interface{}, keys []string) ([]interface{}, error) {
	elems := make([]interface{}, len(keys))
	for i, key := range keys {
		v, ok := rec[key]
		if !ok {
			return nil, fail(op, ErrInvalidInput, nil, "record is missing key %q", key).
				WithDetail("key", key)
		}
		elems[i] = v
	}
	return elems, nil
}

func intFields(op string, names []string, elems []interface{}) ([]int, error) {
	fields := make([]int, len(elems))
	for i, elem := range elems {
		n, ok := toInt(elem)
		if !ok {
			return nil, fail(op, ErrInvalidInput, nil, "%s must be an integer, got %T", names[i], elem).
				WithDetail("field", names[i])
		}
		fields[i] = n
	}
	return fields, nil
}

// toInt accepts integer kinds, integral floats and json.Number
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case float64:
		return integral(n)
	case float32:
		return integral(float64(n))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if rv.Uint() > math.MaxInt32 {
			return 0, false
		}
		return int(rv.Uint()), true
	}
	return 0, false
}

func integral(f float64) (int, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func offsetSeconds(op string, v interface{}) (int, error) {
	switch o := v.(type) {
	case time.Duration:
		return int(o / time.Second), nil
	case string:
		seconds, err := ParseOffset(o)
		if err != nil {
			return 0, fail(op, ErrInvalidInput, err, "invalid offset %q", o)
		}
		return seconds, nil
	case json.Number:
		if i, err := o.Int64(); err == nil {
			return int(i), nil
		}
		f, err := o.Float64()
		if err != nil {
			return 0, fail(op, ErrInvalidInput, err, "invalid offset %q", o.String())
		}
		return floatOffset(op, f)
	case float64:
		return floatOffset(op, o)
	case float32:
		return floatOffset(op, float64(o))
	}

	if n, ok := toInt(v); ok {
		return n, nil
	}
	return 0, fail(op, ErrInvalidInput, nil, "unsupported offset type %T", v).
		WithDetail("field", KeyOffset)
}

func floatOffset(op string, f float64) (int, error) {
	if math.Abs(f) < 1 {
		return int(math.Round(f * SecondsPerDay)), nil
	}
	if n, ok := integral(f); ok {
		return n, nil
	}
	return 0, fail(op, ErrInvalidInput, nil, "offset %v is neither a day fraction nor whole seconds", f).
		WithDetail("field", KeyOffset)
}
