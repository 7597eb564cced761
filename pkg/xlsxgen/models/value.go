package models

import (
	"strconv"
	"time"
)

// SerialEpoch is day zero of the serial date numbering.
var SerialEpoch = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

const secondsPerDay = 24 * 60 * 60

// ValueKind identifies which variant a Value holds.
type ValueKind uint8

const (
	// KindText is a string value.
	KindText ValueKind = iota
	// KindNumber is a float64 value.
	KindNumber
	// KindDate is a calendar date value.
	KindDate
)

func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// Value is a cell value holding exactly one of text, number or date.
// The zero Value is the empty string.
type Value struct {
	kind   ValueKind
	text   string
	number float64
	date   time.Time
}

// TextValue returns a text Value.
func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

// NumberValue returns a numeric Value.
func NumberValue(n float64) Value {
	return Value{kind: KindNumber, number: n}
}

// DateValue returns a date Value. Only the calendar date of t in its own
// location is significant.
func DateValue(t time.Time) Value {
	return Value{kind: KindDate, date: t}
}

// Kind returns the variant held by v.
func (v Value) Kind() ValueKind { return v.kind }

// Text returns the string and true if v is text.
func (v Value) Text() (string, bool) { return v.text, v.kind == KindText }

// Number returns the number and true if v is numeric.
func (v Value) Number() (float64, bool) { return v.number, v.kind == KindNumber }

// Date returns the time and true if v is a date.
func (v Value) Date() (time.Time, bool) { return v.date, v.kind == KindDate }

// Serialize returns the canonical literal written for v.
func (v Value) Serialize() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	case KindDate:
		return strconv.FormatInt(DateSerial(v.date), 10)
	default:
		return v.text
	}
}

// DateSerial returns the number of whole days between SerialEpoch and the
// calendar date of t. Time of day and zone offset are discarded before
// differencing, so 1900-01-02 at any hour in any zone is 1.
func DateSerial(t time.Time) int64 {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return (day.Unix() - SerialEpoch.Unix()) / secondsPerDay
}
