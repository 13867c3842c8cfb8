/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package engine

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	dateLayout = "2006-01-02"

	// Accepts unpadded months and days as well.
	looseDateLayout = "2006-1-2"

	secondsPerDay = 24 * 60 * 60
)

// Date is a calendar day. It is stored as midnight UTC and encoded in JSON
// as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate returns the calendar day of t in t's own location.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a strict YYYY-MM-DD day.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	return NewDate(t), nil
}

// AddDays returns the day n days after d.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

// DaysSince returns the whole number of days from earlier to d. It is
// negative when earlier is after d. Both days are midnight UTC, so the
// difference in Unix seconds is an exact multiple of a day; time.Duration
// would saturate for days centuries apart.
func (d Date) DaysSince(earlier Date) int {
	return int((d.Unix() - earlier.Unix()) / secondsPerDay)
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON encodes d as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, b)
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

type dateKind uint8

const (
	dateMissing dateKind = iota
	dateNative
	dateText
)

// DateValue is a history date as supplied by a record store: either a
// native time or free text that may or may not hold a date.
type DateValue struct {
	kind dateKind
	t    time.Time
	text string
}

// DateOf wraps a native time. The zero time counts as missing.
func DateOf(t time.Time) DateValue {
	if t.IsZero() {
		return DateValue{}
	}

	return DateValue{kind: dateNative, t: t}
}

// DateText wraps a textual date such as "2024-10-15" or
// "2024-10-15T08:30:00Z".
func DateText(s string) DateValue {
	return DateValue{kind: dateText, text: s}
}

// Parse returns the calendar day held by v. Text is read from its first
// ten characters as YYYY-MM-DD.
func (v DateValue) Parse() (Date, bool) {
	switch v.kind {
	case dateNative:
		return NewDate(v.t), true
	case dateText:
		s := v.text
		if len(s) > len(dateLayout) {
			s = s[:len(dateLayout)]
		}

		t, err := time.Parse(looseDateLayout, s)
		if err != nil {
			return Date{}, false
		}

		return NewDate(t), true
	default:
		return Date{}, false
	}
}

// String returns the text form of v, or YYYY-MM-DD for native times.
func (v DateValue) String() string {
	switch v.kind {
	case dateNative:
		return NewDate(v.t).String()
	case dateText:
		return v.text
	default:
		return ""
	}
}

// MarshalJSON encodes v as its string form, or null when missing.
func (v DateValue) MarshalJSON() ([]byte, error) {
	if v.kind == dateMissing {
		return []byte("null"), nil
	}

	return json.Marshal(v.String())
}

// UnmarshalJSON accepts any JSON value. Strings become text dates; any
// other value leaves the date missing, so one bad record cannot reject a
// whole history.
func (v *DateValue) UnmarshalJSON(b []byte) error {
	*v = DateValue{}

	if len(b) == 0 || b[0] != '"' {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}

	*v = DateText(s)

	return nil
}

// IsZero reports whether v holds nothing at all.
func (v DateValue) IsZero() bool {
	return v.kind == dateMissing
}
