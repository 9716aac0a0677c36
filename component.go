// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"

	"cloudeng.io/errors"
)

// ComponentRangeError describes a date or time component whose value lies
// outside its valid range. Min and Max are inclusive. ConditionalRange is
// true when the bounds depend on the values of sibling components, eg. the
// maximum day of the month depends on the month and on whether the year is
// a leap year.
type ComponentRangeError struct {
	Name             string
	Min, Max, Value  int64
	ConditionalRange bool
}

// Error implements error.
func (e *ComponentRangeError) Error() string {
	msg := fmt.Sprintf("%s must be in the range %d..%d, have %d", e.Name, e.Min, e.Max, e.Value)
	if e.ConditionalRange {
		msg += ", given values of other parameters"
	}
	return msg
}

// Is supports errors.Is for two identically populated errors.
func (e *ComponentRangeError) Is(target error) bool {
	o, ok := target.(*ComponentRangeError)
	if !ok {
		return false
	}
	return *e == *o
}

// ErrUnrepresentable is returned when a conversion would produce a year or
// day count outside of the supported range. It indicates an implementation
// ceiling rather than invalid input and is deliberately distinct from
// ComponentRangeError.
var ErrUnrepresentable = errors.New("unrepresentable date: year outside the supported range")

// Years beyond this bound would overflow a 32-bit epoch day count.
const (
	MinYear = -5879610
	MaxYear = 5879610
)

func yearInRange(year int) bool {
	return year >= MinYear && year <= MaxYear
}

// CheckMonth returns a ComponentRangeError if month is not in 1..12.
func CheckMonth(month Month) error {
	if month < 1 || month > 12 {
		return &ComponentRangeError{Name: "month", Min: 1, Max: 12, Value: int64(month)}
	}
	return nil
}

// CheckDay returns a ComponentRangeError if day is not a valid day of the
// given month and year. The month must already have been validated.
func CheckDay(year int, month Month, day int) error {
	if n := DaysInMonth(year, month); day < 1 || day > n {
		return &ComponentRangeError{Name: "day", Min: 1, Max: int64(n), Value: int64(day), ConditionalRange: true}
	}
	return nil
}

// CheckOrdinal returns a ComponentRangeError if ordinal is not a valid day
// of the given year, ie. in 1..365 or 1..366 for leap years.
func CheckOrdinal(year, ordinal int) error {
	if n := DaysInYear(year); ordinal < 1 || ordinal > n {
		return &ComponentRangeError{Name: "ordinal", Min: 1, Max: int64(n), Value: int64(ordinal), ConditionalRange: true}
	}
	return nil
}

// CheckHour returns a ComponentRangeError if hour is not in 0..23.
func CheckHour(hour int) error {
	if hour < 0 || hour > 23 {
		return &ComponentRangeError{Name: "hour", Min: 0, Max: 23, Value: int64(hour)}
	}
	return nil
}

// CheckMinute returns a ComponentRangeError if minute is not in 0..59.
func CheckMinute(minute int) error {
	if minute < 0 || minute > 59 {
		return &ComponentRangeError{Name: "minute", Min: 0, Max: 59, Value: int64(minute)}
	}
	return nil
}

// CheckSecond returns a ComponentRangeError if second is not in 0..59.
// A leap second is never expressed as second 60; see CheckNanosecond.
func CheckSecond(second int) error {
	if second < 0 || second > 59 {
		return &ComponentRangeError{Name: "second", Min: 0, Max: 59, Value: int64(second)}
	}
	return nil
}

// CheckNanosecond returns a ComponentRangeError if nanosecond is not in
// 0..1_999_999_999. Values of 1_000_000_000 and above represent a leap
// second carrying a full extra second of nanoseconds.
func CheckNanosecond(nanosecond int) error {
	if nanosecond < 0 || nanosecond > maxLeapNanosecond {
		return &ComponentRangeError{Name: "nanosecond", Min: 0, Max: maxLeapNanosecond, Value: int64(nanosecond)}
	}
	return nil
}

// ValidateDate checks all of the components of a year, month, day
// combination and returns every failing component as an aggregate error
// rather than stopping at the first. When the month is invalid the day is
// checked against 1..31 rather than the length of a specific month.
func ValidateDate(year int, month Month, day int) error {
	errs := &errors.M{}
	if !yearInRange(year) {
		errs.Append(fmt.Errorf("year %d: %w", year, ErrUnrepresentable))
	}
	if err := CheckMonth(month); err != nil {
		errs.Append(err)
		if day < 1 || day > 31 {
			errs.Append(&ComponentRangeError{Name: "day", Min: 1, Max: 31, Value: int64(day), ConditionalRange: true})
		}
		return errs.Err()
	}
	errs.Append(CheckDay(year, month, day))
	return errs.Err()
}

// ValidateClockTime checks all of the components of an hour, minute,
// second, nanosecond combination and returns every failing component as an
// aggregate error.
func ValidateClockTime(hour, minute, second, nanosecond int) error {
	errs := &errors.M{}
	errs.Append(CheckHour(hour))
	errs.Append(CheckMinute(minute))
	errs.Append(CheckSecond(second))
	errs.Append(CheckNanosecond(nanosecond))
	return errs.Err()
}
