// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides support for working with days and times of day
// in the proleptic Gregorian calendar, that is, with the current Gregorian
// rules extended indefinitely before their historical adoption. Years are
// numbered astronomically: year 0 is 1 BCE, year -1 is 2 BCE and so on.
//
// CalendarDate and ClockTime are immutable value types; all constructors
// and 'With' methods validate their arguments and return a
// ComponentRangeError for out of range values rather than silently
// normalizing them. Derived accessors on an already constructed value
// never fail. Values may be freely copied and compared and are safe for
// concurrent use without synchronization.
package calendar

import (
	"fmt"
	"time"
)

// Month as an int.
type Month time.Month

func (m Month) String() string {
	if m < 1 || m > 12 {
		return fmt.Sprintf("month(%d)", int(m))
	}
	return time.Month(m).String()
}

var (
	dayOfYear       []int // per month cumulative days in year so [0, 31, 59 etc]
	dayOfYearLeap   []int // per month cumulative days in leap year [0, 31, 60 etc]
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] += dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] += dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// IsLeap returns true if the given year is a leap year. The Gregorian rule
// is applied to all years, including those before 1 CE.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the
// given year.
func DaysInMonth(year int, month Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

func dayOfYearForYear(year int) []int {
	if IsLeap(year) {
		return dayOfYearLeap
	}
	return dayOfYear
}
