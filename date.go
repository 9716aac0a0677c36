// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"time"
)

// CalendarDate represents a single day in the proleptic Gregorian calendar
// as a year and an ordinal day of that year, packed as year<<16|ordinal.
// The packing preserves chronological order so values may be compared
// directly with <, == etc. The zero value is not a valid date; use one of
// the constructors.
type CalendarDate int64

func newCalendarDate(year, ordinal int) CalendarDate {
	return CalendarDate(int64(year)<<16 | int64(ordinal))
}

// NewCalendarDate returns the CalendarDate for the given year, month and
// day. The year must be within MinYear..MaxYear (ErrUnrepresentable
// otherwise) and the month and day within their valid ranges
// (ComponentRangeError otherwise).
func NewCalendarDate(year int, month Month, day int) (CalendarDate, error) {
	if !yearInRange(year) {
		return 0, fmt.Errorf("year %d: %w", year, ErrUnrepresentable)
	}
	if err := CheckMonth(month); err != nil {
		return 0, err
	}
	if err := CheckDay(year, month, day); err != nil {
		return 0, err
	}
	return newCalendarDate(year, dayOfYearForYear(year)[month-1]+day), nil
}

// NewOrdinalDate returns the CalendarDate for the given year and ordinal
// day of that year (1..365, or 1..366 for leap years).
func NewOrdinalDate(year, ordinal int) (CalendarDate, error) {
	if !yearInRange(year) {
		return 0, fmt.Errorf("year %d: %w", year, ErrUnrepresentable)
	}
	if err := CheckOrdinal(year, ordinal); err != nil {
		return 0, err
	}
	return newCalendarDate(year, ordinal), nil
}

// CalendarDateFromTime returns the CalendarDate for the given time.Time in
// its location. time.Time values are always within the supported range.
func CalendarDateFromTime(when time.Time) CalendarDate {
	return newCalendarDate(when.Year(), when.YearDay())
}

// Year returns the astronomically numbered year, ie. 0 is 1 BCE.
func (cd CalendarDate) Year() int {
	return int(cd >> 16)
}

// Ordinal returns the day of the year, 1..365 or 1..366 for leap years.
func (cd CalendarDate) Ordinal() int {
	return int(cd & 0xffff)
}

// Month returns the month of the year.
func (cd CalendarDate) Month() Month {
	month, _ := monthAndDay(cd.Year(), cd.Ordinal())
	return month
}

// Day returns the day of the month.
func (cd CalendarDate) Day() int {
	_, day := monthAndDay(cd.Year(), cd.Ordinal())
	return day
}

// Date returns the year, month and day for the date.
func (cd CalendarDate) Date() (year int, month Month, day int) {
	year = cd.Year()
	month, day = monthAndDay(year, cd.Ordinal())
	return
}

func monthAndDay(year, ordinal int) (Month, int) {
	cumulative := dayOfYearForYear(year)
	// Every month has at least 28 days, so the estimate below is never
	// more than one month low.
	month := (ordinal - 1) / 31
	if month < 11 && ordinal > cumulative[month+1] {
		month++
	}
	return Month(month + 1), ordinal - cumulative[month]
}

// YearCE returns the year using CE/BCE numbering: year 0 is 1 BCE,
// year -1 is 2 BCE, year 1 is 1 CE.
func (cd CalendarDate) YearCE() (isCE bool, year uint64) {
	y := cd.Year()
	if y < 1 {
		return false, uint64(1 - y) //nolint:gosec // 1-y is positive for y < 1.
	}
	return true, uint64(y)
}

// WithYear returns a new date for the given year with the month and day
// unchanged, or a ComponentRangeError if the combination is invalid, eg.
// moving Feb 29 to a non-leap year.
func (cd CalendarDate) WithYear(year int) (CalendarDate, error) {
	_, month, day := cd.Date()
	return NewCalendarDate(year, month, day)
}

// WithMonth returns a new date for the given month with the year and day
// unchanged, or a ComponentRangeError if the combination is invalid.
func (cd CalendarDate) WithMonth(month Month) (CalendarDate, error) {
	year, _, day := cd.Date()
	return NewCalendarDate(year, month, day)
}

// WithDay returns a new date for the given day of the month with the year
// and month unchanged, or a ComponentRangeError if the day is invalid for
// them.
func (cd CalendarDate) WithDay(day int) (CalendarDate, error) {
	year, month, _ := cd.Date()
	return NewCalendarDate(year, month, day)
}

// WithOrdinal returns a new date for the given ordinal day of the year
// with the year unchanged.
func (cd CalendarDate) WithOrdinal(ordinal int) (CalendarDate, error) {
	return NewOrdinalDate(cd.Year(), ordinal)
}

// WithMonth0 is WithMonth for a 0-based month, ie. 0 is January.
func (cd CalendarDate) WithMonth0(month int) (CalendarDate, error) {
	return cd.WithMonth(Month(month + 1))
}

// WithDay0 is WithDay for a 0-based day of the month.
func (cd CalendarDate) WithDay0(day int) (CalendarDate, error) {
	return cd.WithDay(day + 1)
}

// WithOrdinal0 is WithOrdinal for a 0-based day of the year.
func (cd CalendarDate) WithOrdinal0(ordinal int) (CalendarDate, error) {
	return cd.WithOrdinal(ordinal + 1)
}

// Tomorrow returns the date of the next day, crossing year boundaries.
// The last representable date is returned unchanged.
func (cd CalendarDate) Tomorrow() CalendarDate {
	year, ordinal := cd.Year(), cd.Ordinal()
	if ordinal < DaysInYear(year) {
		return newCalendarDate(year, ordinal+1)
	}
	if year == MaxYear {
		return cd
	}
	return newCalendarDate(year+1, 1)
}

// Yesterday returns the date of the previous day, crossing year
// boundaries. The first representable date is returned unchanged.
func (cd CalendarDate) Yesterday() CalendarDate {
	year, ordinal := cd.Year(), cd.Ordinal()
	if ordinal > 1 {
		return newCalendarDate(year, ordinal-1)
	}
	if year == MinYear {
		return cd
	}
	return newCalendarDate(year-1, DaysInYear(year-1))
}

// AddDays returns the date n days after (or before, for negative n) the
// date, or ErrUnrepresentable if the result lies outside the supported
// range.
func (cd CalendarDate) AddDays(n int64) (CalendarDate, error) {
	return DateFromEpochDays(cd.EpochDays() + n)
}

// Sub returns the number of days from o to the date; it is positive when
// the date is later than o.
func (cd CalendarDate) Sub(o CalendarDate) int64 {
	return cd.EpochDays() - o.EpochDays()
}

// Time returns the time.Time for the date and clock time in the given
// location, implicitly normalizing leap second nanoseconds as per
// time.Date.
func (cd CalendarDate) Time(ct ClockTime, loc *time.Location) time.Time {
	year, month, day := cd.Date()
	return time.Date(year, time.Month(month), day, ct.Hour(), ct.Minute(), ct.Second(), ct.Nanosecond(), loc)
}

// String returns the date in ISO 8601 layout, eg. 2006-01-02, with a
// leading sign for years before year 0. It is intended for debugging.
func (cd CalendarDate) String() string {
	year, month, day := cd.Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}
