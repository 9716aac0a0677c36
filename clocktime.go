// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"time"
)

// ClockTime represents a time of day as hour, minute, second and
// nanosecond, packed as hour<<48|minute<<40|second<<32|nanosecond so that
// values order chronologically under <. A nanosecond value of
// 1,000,000,000 or above represents a leap second carrying a full extra
// second of nanoseconds; a leap second is never expressed as second 60.
type ClockTime uint64

const maxLeapNanosecond = 1_999_999_999

func newClockTime(hour, minute, second, nanosecond int) ClockTime {
	return ClockTime(uint64(hour)<<48 | uint64(minute)<<40 | uint64(second)<<32 | uint64(nanosecond)) //nolint:gosec // components validated by callers.
}

// NewClockTime returns the ClockTime for the given hour (0..23), minute
// (0..59) and second (0..59), with zero nanoseconds.
func NewClockTime(hour, minute, second int) (ClockTime, error) {
	return NewClockTimeNano(hour, minute, second, 0)
}

// NewClockTimeNano is NewClockTime with an explicit nanosecond in
// 0..1,999,999,999; the upper half of the range denotes a leap second.
func NewClockTimeNano(hour, minute, second, nanosecond int) (ClockTime, error) {
	if err := CheckHour(hour); err != nil {
		return 0, err
	}
	if err := CheckMinute(minute); err != nil {
		return 0, err
	}
	if err := CheckSecond(second); err != nil {
		return 0, err
	}
	if err := CheckNanosecond(nanosecond); err != nil {
		return 0, err
	}
	return newClockTime(hour, minute, second, nanosecond), nil
}

// ClockTimeFromTime returns the ClockTime for the given time.Time in its
// location.
func ClockTimeFromTime(when time.Time) ClockTime {
	return newClockTime(when.Hour(), when.Minute(), when.Second(), when.Nanosecond())
}

func (ct ClockTime) Hour() int {
	return int(ct >> 48)
}

func (ct ClockTime) Minute() int {
	return int(ct >> 40 & 0xff)
}

func (ct ClockTime) Second() int {
	return int(ct >> 32 & 0xff)
}

func (ct ClockTime) Nanosecond() int {
	return int(ct & 0xffffffff)
}

// IsLeapSecond returns true if the nanosecond field carries leap second
// overflow.
func (ct ClockTime) IsLeapSecond() bool {
	return ct.Nanosecond() >= 1_000_000_000
}

// WithHour returns a new ClockTime for the given hour with the remaining
// components unchanged.
func (ct ClockTime) WithHour(hour int) (ClockTime, error) {
	if err := CheckHour(hour); err != nil {
		return 0, err
	}
	return newClockTime(hour, ct.Minute(), ct.Second(), ct.Nanosecond()), nil
}

// WithMinute returns a new ClockTime for the given minute with the
// remaining components unchanged.
func (ct ClockTime) WithMinute(minute int) (ClockTime, error) {
	if err := CheckMinute(minute); err != nil {
		return 0, err
	}
	return newClockTime(ct.Hour(), minute, ct.Second(), ct.Nanosecond()), nil
}

// WithSecond returns a new ClockTime for the given second with the
// remaining components unchanged. The second is restricted to 0..59; leap
// seconds are expressed via WithNanosecond only.
func (ct ClockTime) WithSecond(second int) (ClockTime, error) {
	if err := CheckSecond(second); err != nil {
		return 0, err
	}
	return newClockTime(ct.Hour(), ct.Minute(), second, ct.Nanosecond()), nil
}

// WithNanosecond returns a new ClockTime for the given nanosecond in
// 0..1,999,999,999 with the remaining components unchanged.
func (ct ClockTime) WithNanosecond(nanosecond int) (ClockTime, error) {
	if err := CheckNanosecond(nanosecond); err != nil {
		return 0, err
	}
	return newClockTime(ct.Hour(), ct.Minute(), ct.Second(), nanosecond), nil
}

// Hour12 returns the time of day on a 12 hour clock. Midnight is
// (false, 12) and noon is (true, 12).
func (ct ClockTime) Hour12() (isPM bool, hour int) {
	hour = ct.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return ct.Hour() >= 12, hour
}

// SecondsSinceMidnight returns the number of whole seconds since midnight
// ignoring nanoseconds and hence any leap second overflow.
func (ct ClockTime) SecondsSinceMidnight() int {
	return ct.Hour()*3600 + ct.Minute()*60 + ct.Second()
}

// Duration returns the time.Duration since midnight, including
// nanoseconds.
func (ct ClockTime) Duration() time.Duration {
	return time.Duration(ct.SecondsSinceMidnight())*time.Second + time.Duration(ct.Nanosecond())
}

func (ct ClockTime) String() string {
	if ns := ct.Nanosecond(); ns != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%09d", ct.Hour(), ct.Minute(), ct.Second(), ns)
	}
	return fmt.Sprintf("%02d:%02d:%02d", ct.Hour(), ct.Minute(), ct.Second())
}
