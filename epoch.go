// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"time"
)

// Days in the 400, 100 and 4 year Gregorian cycles.
const (
	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461
)

// EpochDays returns the linear day count for the date, with day 1 being
// 0001-01-01, day 0 being 0000-12-31 and negative counts extending
// indefinitely into earlier years. Only integer arithmetic is used.
//
// Years before 1 CE are first shifted forward by whole 400 year cycles,
// each spanning exactly 146,097 days, so that the elapsed-day formula
// operates on a non-negative year.
func (cd CalendarDate) EpochDays() int64 {
	year, ordinal := cd.Year(), cd.Ordinal()
	cycles := floorDiv(year-1, 400)
	y := year - cycles*400 - 1 // 0..399
	elapsed := y*daysPer4Years/4 - y/100 + y/100/4
	return int64(cycles)*daysPer400Years + int64(elapsed) + int64(ordinal)
}

// DateFromEpochDays is the inverse of EpochDays. It returns
// ErrUnrepresentable if days falls outside the supported year range.
func DateFromEpochDays(days int64) (CalendarDate, error) {
	d := days - 1 // 0-based from 0001-01-01
	cycles := floorDiv64(d, daysPer400Years)
	d -= cycles * daysPer400Years // 0..146096

	// The final 100 year block of a cycle has one extra leap day, so on
	// its last day the quotient reaches 4; pull it back to 3. The same
	// correction applies to the final year of a 4 year block.
	n100 := d / daysPer100Years
	n100 -= n100 >> 2
	d -= n100 * daysPer100Years

	n4 := d / daysPer4Years
	d -= n4 * daysPer4Years

	n1 := d / 365
	n1 -= n1 >> 2
	d -= n1 * 365

	year := cycles*400 + n100*100 + n4*4 + n1 + 1
	if year < MinYear || year > MaxYear {
		return 0, fmt.Errorf("epoch day count %d: %w", days, ErrUnrepresentable)
	}
	return newCalendarDate(int(year), int(d)+1), nil
}

// Weekday returns the day of the week for the date. Day 1, 0001-01-01,
// was a Monday.
func (cd CalendarDate) Weekday() time.Weekday {
	return time.Weekday(floorMod64(cd.EpochDays(), 7))
}

// ISOWeek returns the ISO 8601 year and week number for the date. Weeks
// run Monday to Sunday and week 1 is the week containing the year's first
// Thursday, so Jan 01 to Jan 03 may belong to week 52 or 53 of the
// previous year and Dec 29 to Dec 31 to week 1 of the next.
func (cd CalendarDate) ISOWeek() (year, week int) {
	// Move to the Thursday of the date's week; that Thursday's year is
	// the ISO year and its ordinal determines the week number.
	offset := int64(time.Thursday - cd.Weekday())
	if offset == 4 {
		offset = -3 // Sunday belongs to the preceding Monday's week.
	}
	thursday, err := DateFromEpochDays(cd.EpochDays() + offset)
	if err != nil {
		// Only reachable within 3 days of the representable range.
		return cd.Year(), 1
	}
	return thursday.Year(), (thursday.Ordinal()-1)/7 + 1
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorDiv64(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod64(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
